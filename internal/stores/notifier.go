// Package stores holds the observable application state and the actions that
// mutate it. Each store is an explicit instance constructed once at startup
// and injected where needed; there are no package-level singletons.
package stores

import "github.com/LilMortal/Feastly-App/internal/models"

// Notifier pushes user-facing feedback messages. The toast store implements
// it; tests substitute a stub so stores can be checked in isolation.
type Notifier interface {
	Notify(toastType models.ToastType, message string)
}
