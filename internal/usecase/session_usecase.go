package usecase

// SessionUsecase manages the storefront admin session. The session is a
// process-wide flag mirrored to local persistence; the returned token only
// lets stateless HTTP clients prove they hold it.
type SessionUsecase interface {
	// Login compares the password against the configured shared secret. On
	// match it raises the admin flag in memory and in the mirror and returns
	// a session token; on mismatch it changes nothing.
	Login(password string) (token string, err error)

	// Logout clears the admin flag in memory and in the mirror.
	Logout() error

	// Restore re-raises the admin flag from the mirror on startup.
	Restore() error

	// IsAdmin reports whether an admin session is active.
	IsAdmin() bool
}
