package translate

// Package translate implements the UI-independent orchestration for the
// app: precondition checks, busy/idle state around each backend call,
// debounced language detection, and ownership of the current translation
// and audio clip. Rendering goes through the View interface so the whole
// flow is testable without a graphical environment.
