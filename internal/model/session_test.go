package model

import "testing"

func TestSessionStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   SessionStatus
		expected bool
	}{
		{SessionStatusIdle, false},
		{SessionStatusRunning, true},
		{SessionStatusCancelling, true},
		{SessionStatusCompleted, false},
		{SessionStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("SessionStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestSessionStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   SessionStatus
		expected bool
	}{
		{SessionStatusIdle, false},
		{SessionStatusRunning, false},
		{SessionStatusCancelling, false},
		{SessionStatusCompleted, true},
		{SessionStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("SessionStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestNewSession(t *testing.T) {
	session := NewSession("https://soundcloud.com/user/sets/mix", "/tmp/out")

	if session.ID == "" {
		t.Error("Expected session ID to be generated")
	}
	if session.URL != "https://soundcloud.com/user/sets/mix" {
		t.Errorf("Unexpected URL %q", session.URL)
	}
	if session.DestDir != "/tmp/out" {
		t.Errorf("Unexpected DestDir %q", session.DestDir)
	}
	if session.Status != SessionStatusRunning {
		t.Errorf("Expected new session to be Running, got %s", session.Status)
	}
	if session.StartedAt.IsZero() {
		t.Error("Expected StartedAt to be set")
	}
}

func TestSession_Finish(t *testing.T) {
	session := NewSession("https://soundcloud.com/user/sets/mix", "/tmp/out")
	session.Finish(SessionStatusCompleted)

	if session.Status != SessionStatusCompleted {
		t.Errorf("Expected Completed, got %s", session.Status)
	}
	if session.FinishedAt.IsZero() {
		t.Error("Expected FinishedAt to be set")
	}
}
