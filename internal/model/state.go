package model

import "fmt"

// Outcome reports whether applying an event terminated the session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDone
	OutcomeFail
)

// SessionState is the aggregated, UI-visible state of a session: the
// in-flight item progress, whole-playlist progress, status line and the
// append-only transcript. It is owned by the presentation layer and mutated
// only on the draining side, so it needs no locking.
type SessionState struct {
	ItemPercent float64 // clamped to [0,100]
	ItemLabel   string

	TotalTracks int // 0 = unknown
	DoneTracks  int

	StatusLine string
	Transcript []string

	Running bool
}

// NewSessionState returns an idle state.
func NewSessionState() *SessionState {
	return &SessionState{StatusLine: "Idle."}
}

// Reset clears per-session values ahead of a new run. The transcript is kept;
// it is an append-only scrollback across the app lifetime.
func (st *SessionState) Reset() {
	st.ItemPercent = 0
	st.ItemLabel = ""
	st.TotalTracks = 0
	st.DoneTracks = 0
}

// Apply consumes one worker event and returns whether it was terminal.
func (st *SessionState) Apply(ev Event) Outcome {
	switch ev.Kind {
	case EventProgress:
		st.setItemProgress(ev.Percent, ev.Label)

	case EventSetTotal:
		st.TotalTracks = max(0, ev.Total)
		st.DoneTracks = 0
		st.AppendLog(fmt.Sprintf("Playlist items: %d", st.TotalTracks))

	case EventTrackDone:
		st.DoneTracks = min(st.TotalTracks, st.DoneTracks+1)

	case EventStatus:
		st.StatusLine = ev.Text

	case EventLog:
		st.AppendLog(ev.Text)

	case EventDone:
		st.Running = false
		st.setItemProgress(100, "100%")
		return OutcomeDone

	case EventFail:
		st.Running = false
		return OutcomeFail
	}

	return OutcomeNone
}

// AppendLog adds one line to the transcript.
func (st *SessionState) AppendLog(line string) {
	st.Transcript = append(st.Transcript, line)
}

// CollectionPercent returns the whole-playlist completion percentage,
// 0 when the total is unknown.
func (st *SessionState) CollectionPercent() int {
	if st.TotalTracks == 0 {
		return 0
	}
	return st.DoneTracks * 100 / st.TotalTracks
}

// CollectionText renders the playlist progress as "done/total (pct%)".
func (st *SessionState) CollectionText() string {
	return fmt.Sprintf("%d/%d (%d%%)", st.DoneTracks, st.TotalTracks, st.CollectionPercent())
}

// ItemText renders the item progress label, falling back to a bare percent.
func (st *SessionState) ItemText() string {
	if st.ItemLabel != "" {
		return st.ItemLabel
	}
	return fmt.Sprintf("%.1f%%", st.ItemPercent)
}

func (st *SessionState) setItemProgress(percent float64, label string) {
	st.ItemPercent = min(100, max(0, percent))
	st.ItemLabel = label
}
