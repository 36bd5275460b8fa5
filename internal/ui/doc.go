package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// RootUI is the download notifier: it marshals every callback of a run onto the
// Fyne event loop and renders the log, progress and confirmation dialogs.
// All UI strings are localized via Localization.
