package storage

// Keys under which Feastly state is persisted.
const (
	KeyUser  = "feastly-user"
	KeyTheme = "feastly-theme"
)

// Store is an opaque key-value persistence surface for the handful of values
// the app keeps across restarts (current user, theme preference). A missing
// key is not an error; callers treat absence as "no preference".
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
