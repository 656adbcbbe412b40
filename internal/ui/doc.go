// Package ui implements the Fyne desktop surface: the root window, the
// transient toast notifications, settings dialog, localization, and the
// compact theme. The package renders what the translate controller
// decides; it holds no translation state of its own.
package ui
