package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the status of a download session
type SessionStatus string

const (
	// SessionStatusIdle means no session is running
	SessionStatusIdle SessionStatus = "Idle"

	// SessionStatusRunning means the worker is downloading
	SessionStatusRunning SessionStatus = "Running"

	// SessionStatusCancelling means the user requested a soft cancel while
	// the worker is still finishing its current item
	SessionStatusCancelling SessionStatus = "Cancelling"

	// SessionStatusCompleted means the session finished successfully
	SessionStatusCompleted SessionStatus = "Completed"

	// SessionStatusError means the session failed with an error
	SessionStatusError SessionStatus = "Error"
)

// String returns the string representation of SessionStatus
func (ss SessionStatus) String() string {
	return string(ss)
}

// IsActive returns true if a worker may still be emitting events
func (ss SessionStatus) IsActive() bool {
	return ss == SessionStatusRunning || ss == SessionStatusCancelling
}

// IsFinished returns true if the session reached a terminal state
func (ss SessionStatus) IsFinished() bool {
	return ss == SessionStatusCompleted || ss == SessionStatusError
}

// Session represents one download run of a playlist URL into a destination
// directory. A new session replaces the previous one on start.
type Session struct {
	ID         string
	URL        string
	DestDir    string
	Status     SessionStatus
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewSession creates a running session for the given URL and destination.
func NewSession(url, destDir string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		URL:       url,
		DestDir:   destDir,
		Status:    SessionStatusRunning,
		StartedAt: time.Now(),
	}
}

// Finish moves the session into a terminal state.
func (s *Session) Finish(status SessionStatus) {
	s.Status = status
	s.FinishedAt = time.Now()
}
