package models

// Credential is one user allowed to log in, as listed in the credentials file.
// Either Password (hashed on load) or PasswordHash (bcrypt) is set.
type Credential struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password,omitempty"`
	PasswordHash string `yaml:"password_hash,omitempty"`
}

// CredentialsFile is the document stored in the credentials file.
type CredentialsFile struct {
	Users []Credential `yaml:"users"`
}
