package store

import "github.com/guidopacc/insurapro/models"

// CustomerStore defines the interface for customer persistence.
// It is the sole mutator of the in-memory dataset: the CLI layer calls
// these operations and the query engine reads snapshots, but nothing else
// touches the collection or the codec.
type CustomerStore interface {
	// Initialize configures the store with backend-specific settings, such
	// as the paths of the two data files. It should be called before any
	// other store operation. Existing data is loaded if present; a missing
	// data set is the normal first-run state, not an error.
	Initialize(config map[string]string) error

	// Add appends a new customer to the end of the collection. It returns
	// ErrDuplicateKey if a customer with the same tax code already exists,
	// leaving the store unchanged.
	Add(c models.Customer) error

	// FindByTaxCode returns the position of the first customer with the
	// given tax code, or ErrNotFound.
	FindByTaxCode(taxCode string) (int, error)

	// FindByName returns the position of the first customer whose first and
	// last name both match exactly, or ErrNotFound.
	FindByName(firstName, lastName string) (int, error)

	// Get returns a copy of the customer with the given tax code, or
	// ErrNotFound.
	Get(taxCode string) (models.Customer, error)

	// Update overwrites fields of the customer identified by tax code.
	// The updates map uses the field names firstName, lastName, email,
	// phone, address and birthDate; absent keys and empty values both mean
	// "leave unchanged", so a field can never be cleared to empty here,
	// only set to a new non-empty value. The tax code itself is immutable.
	// It returns the updated customer or ErrNotFound.
	Update(taxCode string, updates map[string]string) (models.Customer, error)

	// Remove deletes the customer with the given tax code together with all
	// of its interactions, or returns ErrNotFound. No orphaned interactions
	// survive a removal.
	Remove(taxCode string) error

	// AddInteraction appends an interaction to the customer's list, or
	// returns ErrNotFound if the customer does not exist.
	AddInteraction(taxCode string, i models.Interaction) error

	// RemoveInteraction removes the interaction at the given zero-based
	// position, shifting subsequent positions down by one. It returns
	// ErrNotFound if the customer is missing or the position is out of
	// range.
	RemoveInteraction(taxCode string, index int) error

	// Customers returns a snapshot of the collection in insertion order.
	// Mutating the snapshot does not affect the store.
	Customers() []models.Customer

	// Count returns the number of customers in the store.
	Count() int

	// Save writes every customer to the customer file and every owned
	// interaction to the interaction file, truncating prior contents.
	// There is no atomicity across the two files: a failure between the
	// two writes leaves them mutually inconsistent.
	Save() error

	// Load replaces the in-memory collection with the contents of the two
	// data files. It returns ErrNoData if either file cannot be opened.
	// Blank lines are skipped, malformed lines are discarded without
	// failing the load, and interactions whose tax code matches no loaded
	// customer are silently dropped.
	Load() error

	// Close releases any resources held by the store, such as file locks.
	Close() error
}
