package repository

// Mirror keys. The mirror holds JSON-encoded lists or scalars under these
// fixed keys; it is a denormalized copy of in-memory state, never a second
// source of truth.
const (
	MirrorKeyProducts = "rental_products"
	MirrorKeyOrders   = "rental_orders"
	MirrorKeyAdmin    = "rental_admin"
)

// MirrorAdminTrue is the sentinel stored under MirrorKeyAdmin while an admin
// session is active; the key is absent otherwise.
const MirrorAdminTrue = "true"

// MirrorStore is the local persistence fallback: a synchronous string
// key-value store durable across process restarts. Get reports absence via
// its second return rather than an error; errors are reserved for real I/O
// faults.
type MirrorStore interface {
	// Get returns the value stored under key, or ok=false when absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string) error
}
