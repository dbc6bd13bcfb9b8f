package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sbilibin2017/gw-training-log/internal/logger"
	"github.com/sbilibin2017/gw-training-log/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// CredentialRepository is the static, in-memory table of users allowed to log in.
// It is built once at startup and never modified.
type CredentialRepository struct {
	hashes map[string]string // username -> bcrypt hash
}

// NewCredentialRepository builds the table from credentials, hashing plain passwords.
func NewCredentialRepository(creds []models.Credential) (*CredentialRepository, error) {
	hashes := make(map[string]string, len(creds))
	for _, c := range creds {
		if c.Username == "" {
			return nil, errors.New("credential without username")
		}
		if _, ok := hashes[c.Username]; ok {
			return nil, fmt.Errorf("duplicate credential for %q", c.Username)
		}

		switch {
		case c.PasswordHash != "":
			if _, err := bcrypt.Cost([]byte(c.PasswordHash)); err != nil {
				return nil, fmt.Errorf("invalid password hash for %q: %w", c.Username, err)
			}
			hashes[c.Username] = c.PasswordHash
		case c.Password != "":
			hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("hash password for %q: %w", c.Username, err)
			}
			hashes[c.Username] = string(hash)
		default:
			return nil, fmt.Errorf("credential %q has no password", c.Username)
		}
	}

	return &CredentialRepository{hashes: hashes}, nil
}

// LoadCredentialRepository reads a YAML credentials file.
func LoadCredentialRepository(path string) (*CredentialRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file models.CredentialsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse credentials file: %w", err)
	}

	repo, err := NewCredentialRepository(file.Users)
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("credentials loaded", "path", path, "users", len(repo.hashes))

	return repo, nil
}

// GetPasswordHash returns the bcrypt hash of a registered user.
func (r *CredentialRepository) GetPasswordHash(ctx context.Context, username string) (string, bool) {
	hash, ok := r.hashes[username]
	return hash, ok
}
