package ui

// Package ui contains the Fyne-based desktop user interface: input row,
// nested progress bars, transcript, dialogs, and the poll loop that drains
// worker events into the session state. All UI strings are localized via
// Localization.
