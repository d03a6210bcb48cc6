package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the session, the configuration documents and
// the pipeline service. All UI strings are localized via Localization.
