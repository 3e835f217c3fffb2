package engine

import "context"

// Entry describes one downloadable item in a playlist.
type Entry struct {
	ID    string
	Title string
	URL   string
}

// Options configures a DownloadAll run.
type Options struct {
	// DestDir is the directory under which files are written, nested as
	// playlist-title/track-title.
	DestDir string

	// AudioFormat is the target codec, e.g. "mp3".
	AudioFormat string

	// AudioQuality is the target bitrate, e.g. "192K".
	AudioQuality string

	// SkipFailures makes the engine continue past per-item errors instead of
	// aborting the whole run.
	SkipFailures bool
}

// ProgressStatus tags a single progress callback invocation.
type ProgressStatus string

const (
	StatusDownloading ProgressStatus = "downloading"
	StatusFinished    ProgressStatus = "finished"
	StatusErrored     ProgressStatus = "error"
)

// ProgressUpdate is the normalized per-item progress payload delivered to the
// callback, possibly many times per item.
type ProgressUpdate struct {
	Status          ProgressStatus
	DownloadedBytes int64
	TotalBytes      int64 // 0 when unknown
	Filename        string
	PlaylistCount   int // live entry count when the engine reports one, else 0
}

// ProgressFunc receives progress updates. It is invoked synchronously from
// the engine and must not block.
type ProgressFunc func(ProgressUpdate)

// Engine defines the acquisition engine contract: enumerate playlist entries
// without downloading, and download-all with per-item progress reporting.
type Engine interface {
	Enumerate(ctx context.Context, url string) ([]Entry, error)
	DownloadAll(ctx context.Context, url string, opts Options, onProgress ProgressFunc) error
}
