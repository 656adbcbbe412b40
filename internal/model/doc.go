package model

// Package model defines domain data structures used across the app:
// translation and detection results, audio clips, notification kinds, and
// the supported-language table. Structures are designed for direct display
// in the UI and explicit state transitions.
