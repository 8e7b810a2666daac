package database

// Store persists the approval ledger across restarts as a flat mapping of
// source message ID to starboard publication ID.
//
// Load runs once at startup; Save runs on graceful shutdown and on normal
// process exit. A failed Save is logged by the caller and never blocks
// shutdown.
type Store interface {
	// Load reads the full mapping. A missing or corrupt backing store yields
	// an empty map with a logged warning, never an abort.
	Load() map[string]string

	// Save writes the full mapping, replacing the previous contents.
	Save(entries map[string]string) error

	// Close releases the backing store.
	Close() error
}
