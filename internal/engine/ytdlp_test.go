package engine

import (
	"testing"

	"github.com/lrstanley/go-ytdlp"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestNormalizeUpdate_Statuses(t *testing.T) {
	tests := []struct {
		raw      ytdlp.ProgressStatus
		expected ProgressStatus
	}{
		{ytdlp.ProgressStatusDownloading, StatusDownloading},
		{ytdlp.ProgressStatusFinished, StatusFinished},
		{ytdlp.ProgressStatusError, StatusErrored},
	}

	for _, test := range tests {
		got := normalizeUpdate(ytdlp.ProgressUpdate{Status: test.raw})
		if got.Status != test.expected {
			t.Errorf("normalizeUpdate status %q = %q, expected %q", test.raw, got.Status, test.expected)
		}
	}
}

func TestNormalizeUpdate_Fields(t *testing.T) {
	raw := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 512,
		TotalBytes:      2048,
		Info: &ytdlp.ExtractedInfo{
			Filename:      strPtr("/tmp/out/Playlist/track.mp3"),
			PlaylistCount: intPtr(12),
		},
	}

	got := normalizeUpdate(raw)

	if got.DownloadedBytes != 512 || got.TotalBytes != 2048 {
		t.Errorf("Expected byte counts 512/2048, got %d/%d", got.DownloadedBytes, got.TotalBytes)
	}
	if got.Filename != "/tmp/out/Playlist/track.mp3" {
		t.Errorf("Unexpected filename %q", got.Filename)
	}
	if got.PlaylistCount != 12 {
		t.Errorf("Expected playlist count 12, got %d", got.PlaylistCount)
	}
}

func TestNormalizeUpdate_NilInfo(t *testing.T) {
	got := normalizeUpdate(ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusDownloading})

	if got.Filename != "" {
		t.Errorf("Expected empty filename, got %q", got.Filename)
	}
	if got.PlaylistCount != 0 {
		t.Errorf("Expected zero playlist count, got %d", got.PlaylistCount)
	}
}

func TestEntryFromInfo(t *testing.T) {
	info := &ytdlp.ExtractedInfo{
		ID:    "12345",
		Title: strPtr("Some Track"),
		URL:   strPtr("https://soundcloud.com/artist/some-track"),
	}

	entry := entryFromInfo(info)

	if entry.ID != "12345" {
		t.Errorf("Expected ID '12345', got %q", entry.ID)
	}
	if entry.Title != "Some Track" {
		t.Errorf("Expected title 'Some Track', got %q", entry.Title)
	}
	if entry.URL != "https://soundcloud.com/artist/some-track" {
		t.Errorf("Unexpected URL %q", entry.URL)
	}
}
