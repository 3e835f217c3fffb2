package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"
)

// Progress reporting and output constants
const (
	DefaultProgressInterval = 500 * time.Millisecond

	// OutputTemplate nests downloads by playlist title then track title.
	OutputTemplate = "%(playlist_title)s/%(title)s.%(ext)s"
)

// EnsureInstalled provisions the yt-dlp binary when it is not already on
// PATH. Best effort: callers may still rely on a system-installed binary.
func EnsureInstalled(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("yt-dlp install failed: %w", err)
	}
	return nil
}

// YTDLPEngine implements Engine on top of the yt-dlp CLI via go-ytdlp.
type YTDLPEngine struct {
	progressInterval time.Duration
}

// NewYTDLPEngine creates the production engine.
func NewYTDLPEngine() *YTDLPEngine {
	return &YTDLPEngine{
		progressInterval: DefaultProgressInterval,
	}
}

// SetProgressInterval overrides how often the engine emits progress updates.
func (e *YTDLPEngine) SetProgressInterval(interval time.Duration) {
	e.progressInterval = interval
}

// Enumerate resolves the playlist entries for url without downloading
// anything. Uses a flat playlist extraction, which is cheap but best effort:
// some entries may be unresolvable at download time.
func (e *YTDLPEngine) Enumerate(ctx context.Context, url string) ([]Entry, error) {
	dl := ytdlp.New().
		FlatPlaylist().
		SkipDownload().
		NoWarnings()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("playlist scan failed: %w", err)
	}

	infos, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to parse playlist info: %w", err)
	}

	var entries []Entry
	for _, info := range infos {
		// A playlist extraction yields a single info with nested entries;
		// a bare track yields one info for itself.
		if len(info.Entries) > 0 {
			for _, item := range info.Entries {
				entries = append(entries, entryFromInfo(item))
			}
			continue
		}
		entries = append(entries, entryFromInfo(info))
	}

	return entries, nil
}

// DownloadAll fetches every entry of url, transcoding to the configured audio
// format and reporting per-item progress through onProgress.
func (e *YTDLPEngine) DownloadAll(ctx context.Context, url string, opts Options, onProgress ProgressFunc) error {
	dl := ytdlp.New().
		Format("bestaudio/best").
		ExtractAudio().
		AudioFormat(opts.AudioFormat).
		AudioQuality(opts.AudioQuality).
		RestrictFilenames().
		NoWarnings().
		Output(filepath.Join(opts.DestDir, OutputTemplate))

	if opts.SkipFailures {
		dl = dl.IgnoreErrors()
	}

	if onProgress != nil {
		dl.ProgressFunc(e.progressInterval, func(update ytdlp.ProgressUpdate) {
			onProgress(normalizeUpdate(update))
		})
	}

	if _, err := dl.Run(ctx, url); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	return nil
}

// normalizeUpdate converts a raw go-ytdlp progress payload into the typed
// ProgressUpdate the rest of the app consumes.
func normalizeUpdate(update ytdlp.ProgressUpdate) ProgressUpdate {
	normalized := ProgressUpdate{
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
	}

	switch update.Status {
	case ytdlp.ProgressStatusFinished:
		normalized.Status = StatusFinished
	case ytdlp.ProgressStatusError:
		normalized.Status = StatusErrored
	default:
		// starting/downloading/post-processing all render as in-flight
		normalized.Status = StatusDownloading
	}

	if update.Info != nil {
		if update.Info.Filename != nil {
			normalized.Filename = *update.Info.Filename
		}
		if update.Info.PlaylistCount != nil {
			normalized.PlaylistCount = *update.Info.PlaylistCount
		}
	}

	return normalized
}

func entryFromInfo(info *ytdlp.ExtractedInfo) Entry {
	entry := Entry{ID: info.ID}
	if info.Title != nil {
		entry.Title = *info.Title
	}
	if info.URL != nil {
		entry.URL = *info.URL
	}
	return entry
}
