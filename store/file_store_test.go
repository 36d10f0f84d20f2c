package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/guidopacc/insurapro/models"
	"github.com/guidopacc/insurapro/query"
	"github.com/guidopacc/insurapro/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*FileCustomerStore, string, string) {
	t.Helper()

	tempDir := t.TempDir()
	customerPath := filepath.Join(tempDir, "customers.txt")
	interactionPath := filepath.Join(tempDir, "interactions.txt")

	s := NewFileCustomerStore()
	err := s.Initialize(map[string]string{
		"customerFile":    customerPath,
		"interactionFile": interactionPath,
	})
	require.NoError(t, err, "failed to initialize store")
	t.Cleanup(func() { _ = s.Close() })

	return s, customerPath, interactionPath
}

func anna() models.Customer {
	return models.NewCustomer("Anna", "Rossi", "a@x.it", "000", "Via Roma", "RSSANN80A01H501Z", "01/01/1980")
}

func mario() models.Customer {
	return models.NewCustomer("Mario", "Bianchi", "m@b.it", "333", "Via Garibaldi 1", "BNCMRA75C10F205X", "10/03/1975")
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	s, _, _ := setupTestStore(t)

	require.NoError(t, s.Add(anna()))
	require.NoError(t, s.Add(mario()))

	customers := s.Customers()
	require.Len(t, customers, 2)
	assert.Equal(t, "RSSANN80A01H501Z", customers[0].TaxCode)
	assert.Equal(t, "BNCMRA75C10F205X", customers[1].TaxCode)
}

func TestAdd_DuplicateKey(t *testing.T) {
	s, _, _ := setupTestStore(t)

	require.NoError(t, s.Add(anna()))

	duplicate := models.NewCustomer("Other", "Person", "", "", "", "RSSANN80A01H501Z", "")
	err := s.Add(duplicate)
	assert.ErrorIs(t, err, types.ErrDuplicateKey)

	// the store must be unchanged
	require.Equal(t, 1, s.Count())
	c, err := s.Get("RSSANN80A01H501Z")
	require.NoError(t, err)
	assert.Equal(t, "Anna", c.FirstName)
}

func TestAdd_RequiresTaxCode(t *testing.T) {
	s, _, _ := setupTestStore(t)

	err := s.Add(models.NewCustomer("Anna", "Rossi", "", "", "", "", ""))
	assert.Error(t, err)
	assert.Equal(t, 0, s.Count())
}

func TestFindByTaxCode(t *testing.T) {
	s, _, _ := setupTestStore(t)
	require.NoError(t, s.Add(anna()))
	require.NoError(t, s.Add(mario()))

	i, err := s.FindByTaxCode("BNCMRA75C10F205X")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = s.FindByTaxCode("MISSING")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestFindByName(t *testing.T) {
	s, _, _ := setupTestStore(t)
	require.NoError(t, s.Add(anna()))
	require.NoError(t, s.Add(mario()))

	i, err := s.FindByName("Mario", "Bianchi")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	// the match is exact, not case-insensitive
	_, err = s.FindByName("mario", "bianchi")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = s.FindByName("Mario", "Rossi")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdate_PartialFields(t *testing.T) {
	s, _, _ := setupTestStore(t)
	require.NoError(t, s.Add(anna()))

	updated, err := s.Update("RSSANN80A01H501Z", map[string]string{
		"email": "new@x.it",
		"phone": "", // empty means leave unchanged
	})
	require.NoError(t, err)

	assert.Equal(t, "new@x.it", updated.Email)
	assert.Equal(t, "000", updated.Phone)
	assert.Equal(t, "Anna", updated.FirstName)
}

func TestUpdate_NotFound(t *testing.T) {
	s, _, _ := setupTestStore(t)

	_, err := s.Update("MISSING", map[string]string{"email": "x@y.it"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdate_TaxCodeIsImmutable(t *testing.T) {
	s, _, _ := setupTestStore(t)
	require.NoError(t, s.Add(anna()))

	_, err := s.Update("RSSANN80A01H501Z", map[string]string{"taxCode": "NEWCODE"})
	assert.Error(t, err)
}

func TestRemove_Cascade(t *testing.T) {
	s, _, _ := setupTestStore(t)
	require.NoError(t, s.Add(anna()))
	for _, desc := range []string{"first", "second", "third"} {
		require.NoError(t, s.AddInteraction("RSSANN80A01H501Z",
			models.NewInteraction("01/06/2024", "10:00", models.KindCall, desc, "Luigi", "")))
	}

	require.NoError(t, s.Remove("RSSANN80A01H501Z"))

	_, err := s.FindByTaxCode("RSSANN80A01H501Z")
	assert.ErrorIs(t, err, types.ErrNotFound)

	// no trace of the interactions remains
	engine := query.NewEngine(s.Customers)
	for range engine.SearchInteractions("Luigi") {
		t.Fatal("no interaction should survive the cascade")
	}
}

func TestRemove_NotFound(t *testing.T) {
	s, _, _ := setupTestStore(t)
	assert.ErrorIs(t, s.Remove("MISSING"), types.ErrNotFound)
}

func TestAddInteraction(t *testing.T) {
	s, _, _ := setupTestStore(t)
	require.NoError(t, s.Add(anna()))

	interaction := models.NewInteraction("01/06/2024", "10:00", models.KindAppointment, "Checkup", "Luigi", "Booked")
	require.NoError(t, s.AddInteraction("RSSANN80A01H501Z", interaction))

	c, err := s.Get("RSSANN80A01H501Z")
	require.NoError(t, err)
	require.Len(t, c.Interactions, 1)
	assert.Equal(t, interaction, c.Interactions[0])

	err = s.AddInteraction("MISSING", interaction)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRemoveInteraction(t *testing.T) {
	s, _, _ := setupTestStore(t)
	require.NoError(t, s.Add(anna()))
	for _, desc := range []string{"first", "second"} {
		require.NoError(t, s.AddInteraction("RSSANN80A01H501Z",
			models.NewInteraction("01/06/2024", "10:00", models.KindCall, desc, "", "")))
	}

	require.NoError(t, s.RemoveInteraction("RSSANN80A01H501Z", 0))

	c, err := s.Get("RSSANN80A01H501Z")
	require.NoError(t, err)
	require.Len(t, c.Interactions, 1)
	assert.Equal(t, "second", c.Interactions[0].Description)

	assert.ErrorIs(t, s.RemoveInteraction("RSSANN80A01H501Z", 5), types.ErrNotFound)
	assert.ErrorIs(t, s.RemoveInteraction("MISSING", 0), types.ErrNotFound)
}

func TestSave_WritesExpectedLines(t *testing.T) {
	s, customerPath, interactionPath := setupTestStore(t)
	require.NoError(t, s.Add(anna()))
	require.NoError(t, s.AddInteraction("RSSANN80A01H501Z",
		models.NewInteraction("01/06/2024", "10:00", models.KindAppointment, "Checkup", "Luigi", "Booked")))

	require.NoError(t, s.Save())

	customerData, err := os.ReadFile(customerPath)
	require.NoError(t, err)
	assert.Equal(t, "Anna|Rossi|a@x.it|000|Via Roma|RSSANN80A01H501Z|01/01/1980\n", string(customerData))

	interactionData, err := os.ReadFile(interactionPath)
	require.NoError(t, err)
	assert.Equal(t, "RSSANN80A01H501Z|01/06/2024|10:00|Appointment|Checkup|Luigi|Booked\n", string(interactionData))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, customerPath, interactionPath := setupTestStore(t)
	require.NoError(t, s.Add(anna()))
	require.NoError(t, s.Add(mario()))
	require.NoError(t, s.AddInteraction("RSSANN80A01H501Z",
		models.NewInteraction("01/06/2024", "10:00", models.KindAppointment, "Checkup", "Luigi", "Booked")))
	require.NoError(t, s.AddInteraction("RSSANN80A01H501Z",
		models.NewInteraction("05/06/2024", "16:30", models.KindEmail, "Follow-up", "Luigi", "Sent")))
	require.NoError(t, s.AddInteraction("BNCMRA75C10F205X",
		models.NewInteraction("02/06/2024", "09:15", models.KindContract, "Renewal", "Carla", "Signed")))

	require.NoError(t, s.Save())

	fresh := NewFileCustomerStore()
	require.NoError(t, fresh.Initialize(map[string]string{
		"customerFile":    customerPath,
		"interactionFile": interactionPath,
	}))
	t.Cleanup(func() { _ = fresh.Close() })

	assert.Equal(t, s.Customers(), fresh.Customers())
}

func TestLoad_ReplacesCurrentData(t *testing.T) {
	s, _, _ := setupTestStore(t)
	require.NoError(t, s.Add(anna()))
	require.NoError(t, s.Save())

	// mutate in memory only, then reload
	require.NoError(t, s.Add(mario()))
	require.Equal(t, 2, s.Count())

	require.NoError(t, s.Load())
	require.Equal(t, 1, s.Count())
}

func TestLoad_MalformedLinesAreSkipped(t *testing.T) {
	tempDir := t.TempDir()
	customerPath := filepath.Join(tempDir, "customers.txt")
	interactionPath := filepath.Join(tempDir, "interactions.txt")

	customerFile := "Anna|Rossi|a@x.it|000|Via Roma|RSSANN80A01H501Z|01/01/1980\n" +
		"Broken|Line|With|Five|Fields\n" +
		"\n"
	require.NoError(t, os.WriteFile(customerPath, []byte(customerFile), 0o644))
	require.NoError(t, os.WriteFile(interactionPath, []byte("\n"), 0o644))

	s := NewFileCustomerStore()
	require.NoError(t, s.Initialize(map[string]string{
		"customerFile":    customerPath,
		"interactionFile": interactionPath,
	}))
	t.Cleanup(func() { _ = s.Close() })

	require.Equal(t, 1, s.Count())
	c, err := s.Get("RSSANN80A01H501Z")
	require.NoError(t, err)
	assert.Equal(t, "Anna", c.FirstName)
}

func TestLoad_OrphanInteractionsAreDropped(t *testing.T) {
	tempDir := t.TempDir()
	customerPath := filepath.Join(tempDir, "customers.txt")
	interactionPath := filepath.Join(tempDir, "interactions.txt")

	require.NoError(t, os.WriteFile(customerPath,
		[]byte("Anna|Rossi|a@x.it|000|Via Roma|RSSANN80A01H501Z|01/01/1980\n"), 0o644))
	interactionFile := "RSSANN80A01H501Z|01/06/2024|10:00|Appointment|Checkup|Luigi|Booked\n" +
		"UNKNOWNCODE|02/06/2024|11:00|Call|Ghost|Nobody|None\n"
	require.NoError(t, os.WriteFile(interactionPath, []byte(interactionFile), 0o644))

	s := NewFileCustomerStore()
	require.NoError(t, s.Initialize(map[string]string{
		"customerFile":    customerPath,
		"interactionFile": interactionPath,
	}))
	t.Cleanup(func() { _ = s.Close() })

	c, err := s.Get("RSSANN80A01H501Z")
	require.NoError(t, err)
	require.Len(t, c.Interactions, 1)
	assert.Equal(t, "Checkup", c.Interactions[0].Description)

	// referential integrity: every interaction in memory has an owner
	engine := query.NewEngine(s.Customers)
	for hit := range engine.SearchInteractions("Ghost") {
		t.Fatalf("orphan interaction must not enter memory, got %+v", hit)
	}
}

func TestLoad_NoData(t *testing.T) {
	s, _, _ := setupTestStore(t)

	// Initialize tolerated the missing files; an explicit Load reports them
	err := s.Load()
	assert.ErrorIs(t, err, types.ErrNoData)
	assert.Equal(t, 0, s.Count())
}

func TestInitialize_MissingFilesStartEmpty(t *testing.T) {
	s, _, _ := setupTestStore(t)
	assert.Equal(t, 0, s.Count())
}

func TestCustomers_SnapshotDoesNotAliasStore(t *testing.T) {
	s, _, _ := setupTestStore(t)
	require.NoError(t, s.Add(anna()))
	require.NoError(t, s.AddInteraction("RSSANN80A01H501Z",
		models.NewInteraction("01/06/2024", "10:00", models.KindCall, "original", "", "")))

	snapshot := s.Customers()
	snapshot[0].FirstName = "Changed"
	snapshot[0].Interactions[0].Description = "changed"

	c, err := s.Get("RSSANN80A01H501Z")
	require.NoError(t, err)
	assert.Equal(t, "Anna", c.FirstName)
	assert.Equal(t, "original", c.Interactions[0].Description)
}
