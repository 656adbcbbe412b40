package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconSpeak    = "🔊"
	IconCopy     = "📋"
	IconDownload = "💾"
	IconClose    = "×"
	IconLanguage = "🌐"
	IconSwap     = "⇄"
)

// Text fragments
const (
	DashPlaceholder = "—"
	CharCountFormat = "%d / %d"
)

// Layout sizing
const (
	WindowMinWidth  float32 = 560
	WindowMinHeight float32 = 620

	InputMinHeight  float32 = 140
	ResultMinHeight float32 = 120
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 320
	ToastHeight   float32 = 72
	ToastMargin   float32 = 16
	ToastAutoHide         = 5 * time.Second
)

// Button feedback
const (
	CopyFlashDuration = 2 * time.Second
)
