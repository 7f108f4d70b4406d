package models

import "time"

// ToastType classifies a toast notification.
type ToastType string

const (
	ToastInfo    ToastType = "info"
	ToastSuccess ToastType = "success"
	ToastWarning ToastType = "warning"
	ToastError   ToastType = "error"
)

// DefaultToastDuration is how long a toast stays visible when no explicit
// duration is given.
const DefaultToastDuration = 3000 * time.Millisecond

// Toast is an ephemeral user-facing message. It self-destructs after its
// duration elapses unless dismissed earlier.
type Toast struct {
	ID       string        `json:"id"`
	Type     ToastType     `json:"type"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"duration"`
}
