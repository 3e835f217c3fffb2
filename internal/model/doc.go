package model

// Package model defines domain data structures used across the app: worker
// events, download sessions, and the aggregated session state the UI renders.
// Structures are UI-free and designed for explicit state transitions.
