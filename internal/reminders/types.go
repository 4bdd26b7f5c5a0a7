// Package reminders bridges tool requests to the macOS Reminders store
// through two native backends: a compiled read-only reader binary and
// osascript for mutations.
package reminders

// Reminder is a single item in the native store. Identity is assigned by
// the store; this layer never mutates a Reminder in-process.
type Reminder struct {
	Title       string `json:"title"`
	DueDate     string `json:"dueDate,omitempty"`
	Notes       string `json:"notes,omitempty"`
	List        string `json:"list,omitempty"`
	IsCompleted bool   `json:"isCompleted"`
}

// ReminderList is a named collection of reminders. Read-only from here.
type ReminderList struct {
	Name string `json:"name"`
}

// CreateRequest carries the fields for a new reminder. DueDate is the raw
// caller-supplied string; it is normalized before any script is built.
type CreateRequest struct {
	Title   string
	DueDate string
	List    string
	Notes   string
}
