package model

// EventKind tags a message flowing from the acquisition worker to the UI.
type EventKind string

const (
	// EventProgress carries the percent and label of the in-flight item
	EventProgress EventKind = "progress"

	// EventSetTotal sets the playlist track count (resets completed count)
	EventSetTotal EventKind = "set_total"

	// EventTrackDone marks one more track as finished
	EventTrackDone EventKind = "track_done"

	// EventStatus replaces the status line
	EventStatus EventKind = "status"

	// EventLog appends one line to the transcript
	EventLog EventKind = "log"

	// EventDone terminates the session successfully
	EventDone EventKind = "done"

	// EventFail terminates the session with an error
	EventFail EventKind = "fail"
)

// Event is a single tagged message from the worker. Only the fields relevant
// to Kind are populated. Events are produced by exactly one worker goroutine
// and consumed by exactly one drain loop; the channel carrying them is the
// only shared structure between the two.
type Event struct {
	Kind    EventKind
	Percent float64 // EventProgress
	Label   string  // EventProgress
	Total   int     // EventSetTotal
	Text    string  // EventStatus, EventLog
}

// ProgressEvent reports per-item progress.
func ProgressEvent(percent float64, label string) Event {
	return Event{Kind: EventProgress, Percent: percent, Label: label}
}

// SetTotalEvent reports the number of tracks in the playlist.
func SetTotalEvent(total int) Event {
	return Event{Kind: EventSetTotal, Total: total}
}

// TrackDoneEvent marks completion of a single track.
func TrackDoneEvent() Event {
	return Event{Kind: EventTrackDone}
}

// StatusEvent replaces the status line.
func StatusEvent(text string) Event {
	return Event{Kind: EventStatus, Text: text}
}

// LogEvent appends a transcript line.
func LogEvent(text string) Event {
	return Event{Kind: EventLog, Text: text}
}

// DoneEvent signals successful completion of the whole run.
func DoneEvent() Event {
	return Event{Kind: EventDone}
}

// FailEvent signals a fatal failure of the run.
func FailEvent() Event {
	return Event{Kind: EventFail}
}
