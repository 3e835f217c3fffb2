package acquire

// Package acquire implements the background acquisition worker: a two-phase
// playlist run (count, then download) that reports progress and outcome as a
// stream of model.Event values. All failures cross to the UI as events, never
// as panics or returned errors.
