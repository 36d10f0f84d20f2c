package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gofrs/flock"
	"github.com/guidopacc/insurapro/models"
	"github.com/guidopacc/insurapro/types"
	"github.com/rs/zerolog/log"
)

const (
	customerFileKey        = "customerFile"
	interactionFileKey     = "interactionFile"
	defaultCustomerFile    = "data/customers.txt"
	defaultInteractionFile = "data/interactions.txt"
	lockSuffix             = ".lock"
)

var errNotInitialized = errors.New("store not initialized: call Initialize first")

// FileCustomerStore implements the CustomerStore interface with two flat
// text files as backend: one line per customer, one line per interaction,
// pipe-separated fields. The collection lives in memory between Save and
// Load; file access is serialized with a file lock so two processes cannot
// interleave their writes.
type FileCustomerStore struct {
	customerPath    string
	interactionPath string
	customers       []models.Customer
	flk             *flock.Flock
}

// NewFileCustomerStore creates a new instance of FileCustomerStore.
// It does not initialize the store; Initialize must be called separately.
func NewFileCustomerStore() *FileCustomerStore {
	return &FileCustomerStore{}
}

// Initialize configures the FileCustomerStore. It expects 'customerFile'
// and 'interactionFile' keys in the config map; missing keys fall back to
// data/customers.txt and data/interactions.txt. The parent directories are
// created if needed, a file lock is established next to the customer file,
// and existing data is loaded. A data set that does not exist yet leaves
// the store empty.
func (s *FileCustomerStore) Initialize(config map[string]string) error {
	s.customerPath = defaultCustomerFile
	if val, ok := config[customerFileKey]; ok && val != "" {
		s.customerPath = val
	}
	s.interactionPath = defaultInteractionFile
	if val, ok := config[interactionFileKey]; ok && val != "" {
		s.interactionPath = val
	}

	for _, path := range []string{s.customerPath, s.interactionPath} {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	s.flk = flock.New(s.customerPath + lockSuffix)

	s.customers = nil
	if err := s.Load(); err != nil && !errors.Is(err, types.ErrNoData) {
		return err
	}
	return nil
}

// Add appends a customer to the end of the collection, preserving
// insertion order. Tax codes are unique: a collision returns
// ErrDuplicateKey and leaves the store untouched.
func (s *FileCustomerStore) Add(c models.Customer) error {
	if err := models.ValidateStruct(c); err != nil {
		return fmt.Errorf("validation failed for new customer: %w", err)
	}
	if _, err := s.FindByTaxCode(c.TaxCode); err == nil {
		return types.ErrDuplicateKey
	}
	s.customers = append(s.customers, c.Clone())
	return nil
}

// FindByTaxCode performs a linear scan and returns the position of the
// first customer with the given tax code.
func (s *FileCustomerStore) FindByTaxCode(taxCode string) (int, error) {
	for i := range s.customers {
		if s.customers[i].TaxCode == taxCode {
			return i, nil
		}
	}
	return -1, types.ErrNotFound
}

// FindByName returns the position of the first customer whose first and
// last name both match exactly.
func (s *FileCustomerStore) FindByName(firstName, lastName string) (int, error) {
	for i := range s.customers {
		if s.customers[i].FirstName == firstName && s.customers[i].LastName == lastName {
			return i, nil
		}
	}
	return -1, types.ErrNotFound
}

// Get returns a copy of the customer with the given tax code.
func (s *FileCustomerStore) Get(taxCode string) (models.Customer, error) {
	i, err := s.FindByTaxCode(taxCode)
	if err != nil {
		return models.Customer{}, err
	}
	return s.customers[i].Clone(), nil
}

// Update overwrites the supplied fields of the customer identified by tax
// code. Empty values mean "leave unchanged"; the tax code itself cannot be
// changed.
func (s *FileCustomerStore) Update(taxCode string, updates map[string]string) (models.Customer, error) {
	i, err := s.FindByTaxCode(taxCode)
	if err != nil {
		return models.Customer{}, err
	}
	c := &s.customers[i]
	for field, value := range updates {
		if value == "" {
			continue
		}
		switch field {
		case "firstName":
			c.FirstName = value
		case "lastName":
			c.LastName = value
		case "email":
			c.Email = value
		case "phone":
			c.Phone = value
		case "address":
			c.Address = value
		case "birthDate":
			c.BirthDate = value
		default:
			return models.Customer{}, fmt.Errorf("unknown or immutable field for update: %q", field)
		}
	}
	return c.Clone(), nil
}

// Remove deletes the customer with the given tax code. The customer's
// interactions are owned by it, so the removal cascades by construction.
func (s *FileCustomerStore) Remove(taxCode string) error {
	i, err := s.FindByTaxCode(taxCode)
	if err != nil {
		return err
	}
	dropped := len(s.customers[i].Interactions)
	s.customers = slices.Delete(s.customers, i, i+1)
	log.Debug().Str("taxCode", taxCode).Int("interactions", dropped).Msg("customer removed")
	return nil
}

// AddInteraction appends an interaction to the customer's list.
func (s *FileCustomerStore) AddInteraction(taxCode string, interaction models.Interaction) error {
	if err := models.ValidateStruct(interaction); err != nil {
		return fmt.Errorf("validation failed for new interaction: %w", err)
	}
	i, err := s.FindByTaxCode(taxCode)
	if err != nil {
		return err
	}
	s.customers[i].AddInteraction(interaction)
	return nil
}

// RemoveInteraction removes the interaction at the given zero-based
// position from the customer's list.
func (s *FileCustomerStore) RemoveInteraction(taxCode string, index int) error {
	i, err := s.FindByTaxCode(taxCode)
	if err != nil {
		return err
	}
	if !s.customers[i].RemoveInteraction(index) {
		return fmt.Errorf("interaction at position %d: %w", index, types.ErrNotFound)
	}
	return nil
}

// Customers returns a snapshot of the collection in insertion order. The
// snapshot does not alias the store's interaction lists.
func (s *FileCustomerStore) Customers() []models.Customer {
	snapshot := make([]models.Customer, len(s.customers))
	for i := range s.customers {
		snapshot[i] = s.customers[i].Clone()
	}
	return snapshot
}

// Count returns the number of customers in the store.
func (s *FileCustomerStore) Count() int {
	return len(s.customers)
}

// Save writes one encoded line per customer to the customer file, then one
// encoded line per owned interaction to the interaction file, in store
// iteration order. Each file is written to a temporary sibling and renamed
// into place, but there is no atomicity across the two files.
func (s *FileCustomerStore) Save() error {
	if s.flk == nil {
		return errNotInitialized
	}
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("could not lock data files for save: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	var customerLines, interactionLines strings.Builder
	for _, c := range s.customers {
		customerLines.WriteString(EncodeCustomer(c))
		customerLines.WriteByte('\n')
		for _, interaction := range c.Interactions {
			interactionLines.WriteString(EncodeInteraction(c.TaxCode, interaction))
			interactionLines.WriteByte('\n')
		}
	}

	if err := writeFileAtomic(s.customerPath, []byte(customerLines.String())); err != nil {
		return fmt.Errorf("failed to write customer file %s: %w", s.customerPath, err)
	}
	if err := writeFileAtomic(s.interactionPath, []byte(interactionLines.String())); err != nil {
		return fmt.Errorf("failed to write interaction file %s: %w", s.interactionPath, err)
	}

	log.Debug().Int("customers", len(s.customers)).Msg("data saved")
	return nil
}

// Load replaces the in-memory collection with the contents of the two data
// files. Both files are read before the current collection is discarded,
// so a failed load never leaves the store half-cleared. Malformed lines
// are skipped, and interactions referencing an unknown tax code are
// dropped so that no orphan ever enters memory.
func (s *FileCustomerStore) Load() error {
	if s.flk == nil {
		return errNotInitialized
	}
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("could not lock data files for load: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	customerData, err := os.ReadFile(s.customerPath)
	if err != nil {
		return fmt.Errorf("%w: %s", types.ErrNoData, s.customerPath)
	}
	interactionData, err := os.ReadFile(s.interactionPath)
	if err != nil {
		return fmt.Errorf("%w: %s", types.ErrNoData, s.interactionPath)
	}

	s.customers = nil

	skipped := 0
	for _, line := range splitLines(customerData) {
		c, err := DecodeCustomer(line)
		if err != nil {
			skipped++
			log.Debug().Err(err).Str("line", line).Msg("skipping customer line")
			continue
		}
		s.customers = append(s.customers, c)
	}

	orphans := 0
	for _, line := range splitLines(interactionData) {
		taxCode, interaction, err := DecodeInteraction(line)
		if err != nil {
			skipped++
			log.Debug().Err(err).Str("line", line).Msg("skipping interaction line")
			continue
		}
		i, err := s.FindByTaxCode(taxCode)
		if err != nil {
			orphans++
			log.Debug().Str("taxCode", taxCode).Msg("dropping interaction with no owning customer")
			continue
		}
		s.customers[i].AddInteraction(interaction)
	}

	log.Debug().
		Int("customers", len(s.customers)).
		Int("skipped", skipped).
		Int("orphans", orphans).
		Msg("data loaded")
	return nil
}

// Close releases the file lock held by the store.
func (s *FileCustomerStore) Close() error {
	if s.flk == nil {
		return nil
	}
	return s.flk.Close()
}

// splitLines splits file contents into lines, dropping blank ones and any
// trailing carriage returns.
func splitLines(data []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// writeFileAtomic writes data to a temporary sibling of path and renames
// it into place.
func writeFileAtomic(path string, data []byte) error {
	tempPath := path + ".tmp"
	defer func() { _ = os.Remove(tempPath) }()
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tempPath, path)
}
