package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/joshdecs/soundcloud-playlist-converter/internal/engine"
	"github.com/joshdecs/soundcloud-playlist-converter/internal/model"
)

// blockingEngine parks DownloadAll until the test releases it, so control
// state can be asserted while a session is running.
type blockingEngine struct {
	release chan struct{}
}

func newBlockingEngine() *blockingEngine {
	return &blockingEngine{release: make(chan struct{})}
}

func (b *blockingEngine) Enumerate(ctx context.Context, url string) ([]engine.Entry, error) {
	return nil, errors.New("scan disabled in test")
}

func (b *blockingEngine) DownloadAll(ctx context.Context, url string, opts engine.Options, onProgress engine.ProgressFunc) error {
	<-b.release
	return nil
}

func newTestUI(t *testing.T) (*RootUI, *blockingEngine) {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("test")
	eng := newBlockingEngine()
	t.Cleanup(func() { close(eng.release) })
	return NewRootUI(window, app, eng), eng
}

func TestRootUI_StartWithEmptyURL(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.urlEntry.SetText("")
	ui.destEntry.SetText(t.TempDir())
	ui.onStartClick()

	if ui.startBtn.Disabled() {
		t.Error("Expected start button to stay enabled on empty URL")
	}
	if !ui.cancelBtn.Disabled() {
		t.Error("Expected cancel button to stay disabled on empty URL")
	}
	if ui.session != nil {
		t.Error("Expected no session to be created on empty URL")
	}
}

func TestRootUI_StartWithEmptyDestination(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.urlEntry.SetText("https://soundcloud.com/user/sets/mix")
	ui.destEntry.SetText("")
	ui.onStartClick()

	if ui.session != nil {
		t.Error("Expected no session on empty destination")
	}
	if ui.startBtn.Disabled() {
		t.Error("Expected controls to stay idle on empty destination")
	}
}

func TestRootUI_StartWithUncreatableDestination(t *testing.T) {
	ui, _ := newTestUI(t)

	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ui.urlEntry.SetText("https://soundcloud.com/user/sets/mix")
	ui.destEntry.SetText(filepath.Join(blocker, "child"))
	ui.onStartClick()

	if ui.session != nil {
		t.Error("Expected no session when destination cannot be created")
	}
}

func TestRootUI_StartFlipsControls(t *testing.T) {
	ui, _ := newTestUI(t)

	dest := t.TempDir()
	ui.urlEntry.SetText("https://soundcloud.com/user/sets/mix")
	ui.destEntry.SetText(dest)
	ui.onStartClick()

	if !ui.startBtn.Disabled() {
		t.Error("Expected start button disabled while running")
	}
	if ui.cancelBtn.Disabled() {
		t.Error("Expected cancel button enabled while running")
	}
	if ui.session == nil || ui.session.Status != model.SessionStatusRunning {
		t.Fatal("Expected a running session")
	}

	transcript := ui.state.Transcript
	if len(transcript) < 2 {
		t.Fatalf("Expected destination and URL logged, got %v", transcript)
	}
	if transcript[0] != "Output: "+dest {
		t.Errorf("Expected first log line to name the destination, got %q", transcript[0])
	}
	if transcript[1] != "URL: https://soundcloud.com/user/sets/mix" {
		t.Errorf("Expected second log line to name the URL, got %q", transcript[1])
	}
}

func TestRootUI_CancelIsSoft(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.urlEntry.SetText("https://soundcloud.com/user/sets/mix")
	ui.destEntry.SetText(t.TempDir())
	ui.onStartClick()

	ui.onCancelClick()

	if ui.startBtn.Disabled() {
		t.Error("Expected start button re-enabled after cancel")
	}
	if !ui.cancelBtn.Disabled() {
		t.Error("Expected cancel button disabled after cancel")
	}
	if ui.session.Status != model.SessionStatusCancelling {
		t.Errorf("Expected session Cancelling, got %s", ui.session.Status)
	}
	if ui.state.StatusLine != "Cancellation requested." {
		t.Errorf("Unexpected status line %q", ui.state.StatusLine)
	}
}

func TestRootUI_LateEventsAfterCancelStillLogged(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.urlEntry.SetText("https://soundcloud.com/user/sets/mix")
	ui.destEntry.SetText(t.TempDir())
	ui.onStartClick()
	ui.onCancelClick()

	before := len(ui.state.Transcript)
	ui.applyEvents([]model.Event{
		model.LogEvent("Finished: late-track.mp3"),
		model.TrackDoneEvent(),
		model.FailEvent(),
	})

	if len(ui.state.Transcript) != before+1 {
		t.Error("Expected late log line to be appended after cancel")
	}
	if ui.session.Status != model.SessionStatusError {
		t.Errorf("Expected session to record terminal status, got %s", ui.session.Status)
	}
}

func TestRootUI_DoneReturnsControlsToIdle(t *testing.T) {
	ui, _ := newTestUI(t)

	ui.urlEntry.SetText("https://soundcloud.com/user/sets/mix")
	ui.destEntry.SetText(t.TempDir())
	ui.onStartClick()

	ui.applyEvents([]model.Event{
		model.StatusEvent("✓ Completed"),
		model.DoneEvent(),
	})

	if ui.startBtn.Disabled() {
		t.Error("Expected start button re-enabled after done")
	}
	if !ui.cancelBtn.Disabled() {
		t.Error("Expected cancel button disabled after done")
	}
	if ui.session.Status != model.SessionStatusCompleted {
		t.Errorf("Expected Completed, got %s", ui.session.Status)
	}
	if ui.state.ItemPercent != 100 {
		t.Errorf("Expected item bar forced to 100, got %v", ui.state.ItemPercent)
	}
	if ui.statusLabel.Text != "✓ Completed" {
		t.Errorf("Expected status label updated, got %q", ui.statusLabel.Text)
	}
}

func TestRootUI_DrainEmptyIsIdempotent(t *testing.T) {
	ui, _ := newTestUI(t)

	if batch := ui.drainEvents(); batch != nil {
		t.Errorf("Expected nil batch before any session, got %v", batch)
	}

	statusBefore := ui.statusLabel.Text
	ui.applyEvents(nil)
	if ui.statusLabel.Text != statusBefore {
		t.Error("Expected applying an empty batch to leave state unchanged")
	}
}
