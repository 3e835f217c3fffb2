package acquire

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/joshdecs/soundcloud-playlist-converter/internal/engine"
	"github.com/joshdecs/soundcloud-playlist-converter/internal/logging"
	"github.com/joshdecs/soundcloud-playlist-converter/internal/model"
	"github.com/joshdecs/soundcloud-playlist-converter/internal/platform"
)

// EventBufferSize is the capacity of the worker→UI event channel. The drain
// loop empties it every poll tick, so it only needs to absorb bursts.
const EventBufferSize = 64

// Worker performs one playlist download off the UI thread, emitting events
// into its channel. Create a fresh Worker per session.
type Worker struct {
	engine engine.Engine
	opts   engine.Options
	events chan model.Event
	log    zerolog.Logger
}

// NewWorker creates a worker around the given engine and download options.
func NewWorker(eng engine.Engine, opts engine.Options) *Worker {
	return &Worker{
		engine: eng,
		opts:   opts,
		events: make(chan model.Event, EventBufferSize),
		log:    logging.Component("acquire"),
	}
}

// Events returns the channel the UI drains. Events arrive in emission order.
func (w *Worker) Events() <-chan model.Event {
	return w.events
}

// Run executes the two-phase download: a best-effort entry count, then the
// actual download with progress reporting. It is intended to run on its own
// goroutine and always terminates the stream with a done or fail event.
func (w *Worker) Run(ctx context.Context, url, destDir string) {
	totalKnown := w.countEntries(ctx, url)
	w.downloadAll(ctx, url, destDir, totalKnown)
}

// countEntries asks the engine for the playlist size without downloading.
// Failures are non-fatal: the run proceeds with an unknown total.
func (w *Worker) countEntries(ctx context.Context, url string) bool {
	entries, err := w.engine.Enumerate(ctx, url)
	if err != nil {
		w.log.Warn().Err(err).Msg("playlist count failed")
		w.emit(model.LogEvent(fmt.Sprintf("Count warning: %v", err)))
		return false
	}

	if len(entries) == 0 {
		return false
	}

	w.emit(model.SetTotalEvent(len(entries)))
	return true
}

func (w *Worker) downloadAll(ctx context.Context, url, destDir string, totalKnown bool) {
	opts := w.opts
	opts.DestDir = destDir

	w.emit(model.StatusEvent("Downloading…"))

	err := w.engine.DownloadAll(ctx, url, opts, func(update engine.ProgressUpdate) {
		switch update.Status {
		case engine.StatusDownloading:
			pct := 0.0
			if update.TotalBytes > 0 {
				pct = float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
			}
			short := platform.ShortFileName(update.Filename)
			w.emit(model.ProgressEvent(pct, fmt.Sprintf("%5.1f%% — %s", pct, short)))

			// The engine may report the entry count mid-stream when the
			// pre-scan came up empty. Take it once.
			if update.PlaylistCount > 0 && !totalKnown {
				totalKnown = true
				w.emit(model.SetTotalEvent(update.PlaylistCount))
			}

		case engine.StatusFinished:
			w.emit(model.LogEvent(finishedLine(update)))
			w.emit(model.TrackDoneEvent())

		case engine.StatusErrored:
			// The engine's own skip-and-continue policy decides whether the
			// run keeps going.
			w.emit(model.LogEvent("An error occurred during download."))
		}
	})

	if err != nil {
		w.log.Error().Err(err).Str("url", url).Msg("download failed")
		w.emit(model.StatusEvent("Error"))
		w.emit(model.LogEvent(fmt.Sprintf("FATAL: %v", err)))
		w.emit(model.FailEvent())
		return
	}

	w.emit(model.StatusEvent("✓ Completed"))
	w.emit(model.DoneEvent())
}

// emit never blocks. A drained channel absorbs bursts within its buffer;
// once the UI has moved on to a newer session nothing empties this channel
// anymore, and a blocking send would pin the goroutine and the engine
// callback forever. Overflow drops the event instead.
func (w *Worker) emit(ev model.Event) {
	select {
	case w.events <- ev:
	default:
		w.log.Warn().Str("kind", string(ev.Kind)).Msg("event buffer full, dropping event")
	}
}

func finishedLine(update engine.ProgressUpdate) string {
	name := platform.ShortFileName(update.Filename)
	if update.TotalBytes > 0 {
		return fmt.Sprintf("Finished: %s (%s)", name, humanize.Bytes(uint64(update.TotalBytes)))
	}
	return fmt.Sprintf("Finished: %s", name)
}
