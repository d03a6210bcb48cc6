package model

// Package model defines domain data structures used across the app: odd/even
// file selections, pipeline stages, stage status enums and execution results.
// Structures are plain values so the UI and the CLI can share them.
