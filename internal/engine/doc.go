package engine

// Package engine wraps the external acquisition/transcoding service behind a
// small interface. The production implementation shells out to yt-dlp via
// github.com/lrstanley/go-ytdlp; loosely-typed progress payloads are
// normalized into ProgressUpdate at this boundary so nothing downstream
// inspects raw engine output.
