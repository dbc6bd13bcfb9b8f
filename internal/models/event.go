package models

// EntryEvent is published after an entry is saved.
type EntryEvent struct {
	EventID   string    `json:"event_id"`  // EventID is a unique identifier of the event, also used as the message key.
	Kind      EntryKind `json:"kind"`      // Kind is the record type that was saved.
	Username  string    `json:"user"`      // Username owns the entry.
	Date      string    `json:"date"`      // Date is the entry date as stored.
	EntryID   int64     `json:"entry_id"`  // EntryID is the primary key of the saved row.
	Timestamp int64     `json:"timestamp"` // Timestamp is the Unix time (seconds) the entry was saved.
}
