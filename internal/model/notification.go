package model

// NotificationKind classifies transient user-facing status messages.
type NotificationKind string

const (
	// NotifyInfo is a neutral status message (e.g. "cleared").
	NotifyInfo NotificationKind = "info"

	// NotifySuccess confirms a completed action.
	NotifySuccess NotificationKind = "success"

	// NotifyError reports a failed validation or request.
	NotifyError NotificationKind = "error"
)

// String returns the string representation of NotificationKind.
func (nk NotificationKind) String() string {
	return string(nk)
}

// Notification is an ephemeral status message. At most one is visible at a
// time; showing a new one evicts the old.
type Notification struct {
	Message string
	Kind    NotificationKind
}
