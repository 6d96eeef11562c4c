package store

// StoreState represents the initialization state of the datastore.
type StoreState int

const (
	StateMissing       StoreState = iota // File doesn't exist
	StateUninitialized                   // File exists but neither user table
	StateLegacy                          // Legacy user table still present, needs migrate
	StateReady                           // Current user table only
)

func (s StoreState) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateUninitialized:
		return "uninitialized"
	case StateLegacy:
		return "legacy"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// Store defines the wurlitzer datastore contract.
// A Store is owned by a single action run and is not shared.
type Store interface {
	// Open opens the datastore connection, creating the file if needed
	Open() error

	// Close closes the datastore connection
	Close() error

	// Create applies the schema to a fresh datastore
	Create(schema string) error

	// Migrate applies the schema and moves legacy user rows into the current table
	Migrate(schema string) error

	// CheckState returns the current state of the datastore
	CheckState() (StoreState, error)

	// CountUsers returns the number of rows in the current user table
	CountUsers() (int, error)
}
