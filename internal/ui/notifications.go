package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/bhashadesk/bhashadesk/internal/model"
)

// toastManager shows transient in-app notifications in the top-right
// corner. At most one toast is visible at a time: showing a new one
// evicts the current one and restarts the auto-hide timer.
type toastManager struct {
	window fyne.Window

	mu    sync.Mutex
	popup *widget.PopUp
	timer *time.Timer
}

func newToastManager(window fyne.Window) *toastManager {
	return &toastManager{window: window}
}

// Show displays a toast with the given message. Must be called on the UI
// thread.
func (tm *toastManager) Show(message string, kind model.NotificationKind) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.dismissLocked()

	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	kindLabel := widget.NewLabel(tm.kindBadge(kind))
	kindLabel.TextStyle = fyne.TextStyle{Bold: true}

	var popup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		tm.mu.Lock()
		defer tm.mu.Unlock()
		if tm.popup == popup {
			tm.dismissLocked()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, kindLabel, closeBtn, messageLabel)

	popup = widget.NewPopUp(content, tm.window.Canvas())

	// Position in top-right corner
	canvasSize := tm.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	popup.Resize(toastSize)
	popup.ShowAtPosition(toastPos)

	tm.popup = popup
	tm.timer = time.AfterFunc(ToastAutoHide, func() {
		tm.mu.Lock()
		defer tm.mu.Unlock()
		if tm.popup != popup {
			return // Already evicted by a newer toast
		}
		fyne.Do(func() { popup.Hide() })
		tm.popup = nil
		tm.timer = nil
	})
}

// Dismiss hides the current toast, if any.
func (tm *toastManager) Dismiss() {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.dismissLocked()
}

func (tm *toastManager) dismissLocked() {
	if tm.timer != nil {
		tm.timer.Stop()
		tm.timer = nil
	}
	if tm.popup != nil {
		tm.popup.Hide()
		tm.popup = nil
	}
}

// kindBadge returns the symbol prefixed to each toast.
func (tm *toastManager) kindBadge(kind model.NotificationKind) string {
	switch kind {
	case model.NotifySuccess:
		return "✓"
	case model.NotifyError:
		return "!"
	default:
		return "ℹ"
	}
}
