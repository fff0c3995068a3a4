// Package domain defines the stable record shapes and error taxonomy shared
// between collaboration providers and their callers.
package domain

// TaskStatus is the binary task state derived from completion percentage.
type TaskStatus string

const (
	// TaskStatusComplete means the task's completion percentage is 100.
	TaskStatusComplete TaskStatus = "complete"
	// TaskStatusInProgress covers every other completion percentage.
	TaskStatusInProgress TaskStatus = "in_progress"
)

// UnknownSender is the sender name used when a message carries no author identity.
const UnknownSender = "Unknown"

// User is a directory user snapshot. Created per query, never cached.
type User struct {
	// ID is the vendor-opaque identifier. Empty string when the vendor omits
	// it, never absent.
	ID          string
	DisplayName string
	// Email is the mail address, falling back to the principal name.
	Email      string
	Department string
}

// Channel is a messaging channel, optionally annotated with its owning team.
type Channel struct {
	ID          string
	Name        string
	Description string
	// TeamID is required when querying messages against the channel.
	TeamID string
	// TeamName is set only when the channel was discovered via team enumeration.
	TeamName string
}

// Message is a single channel message.
type Message struct {
	ID      string
	Content string
	// Sender is the author's display name, or UnknownSender when absent.
	Sender string
	// Timestamp is the string-serialised creation time, empty when absent.
	Timestamp string
	ChannelID string
}

// Document is a drive item (file or folder).
type Document struct {
	ID   string
	Name string
	// Path is the containing folder path, "/" for the drive root.
	Path   string
	WebURL string
	// Size is the item size in bytes, zero when the vendor omits it.
	Size     int64
	IsFolder bool
}

// Task is a planner task with a binary status.
type Task struct {
	ID     string
	Title  string
	Status TaskStatus
	// DueDate is the string-serialised due date, empty when none is set.
	DueDate string
}
