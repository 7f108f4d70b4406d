package stores

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LilMortal/Feastly-App/internal/models"
)

// ToastStore is the ephemeral message queue. Each toast schedules its own
// removal; manual dismissal cancels the pending timer so a removal never
// fires twice for the same id.
type ToastStore struct {
	mu     sync.Mutex
	toasts []models.Toast
	timers map[string]*time.Timer
}

// NewToastStore creates a new ToastStore.
func NewToastStore() *ToastStore {
	return &ToastStore{
		timers: make(map[string]*time.Timer),
	}
}

// AddToast enqueues a toast and schedules its removal after duration. A
// duration of zero or less falls back to the 3 second default. The generated
// id is returned so callers can dismiss early.
func (s *ToastStore) AddToast(toastType models.ToastType, message string, duration time.Duration) string {
	if duration <= 0 {
		duration = models.DefaultToastDuration
	}

	toast := models.Toast{
		ID:       uuid.New().String(),
		Type:     toastType,
		Message:  message,
		Duration: duration,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.toasts = append(s.toasts, toast)
	s.timers[toast.ID] = time.AfterFunc(duration, func() {
		s.RemoveToast(toast.ID)
	})
	return toast.ID
}

// RemoveToast removes a toast immediately, cancelling its expiry timer.
// Removing an absent id is a no-op.
func (s *ToastStore) RemoveToast(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	for i, toast := range s.toasts {
		if toast.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			break
		}
	}
}

// Toasts returns the live toasts in insertion order.
func (s *ToastStore) Toasts() []models.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Toast(nil), s.toasts...)
}

// Notify implements Notifier with the default duration.
func (s *ToastStore) Notify(toastType models.ToastType, message string) {
	s.AddToast(toastType, message, 0)
}
