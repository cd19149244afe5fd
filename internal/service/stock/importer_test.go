package stock

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
)

// fakeResolver resolves names from fixed in-memory tables, mirroring the
// exact-equality contract of the store-backed resolver.
type fakeResolver struct {
	organizations map[string]primitive.ObjectID
	branches      map[string]primitive.ObjectID
	customers     map[string]primitive.ObjectID
	categories    map[string]primitive.ObjectID
	models        map[string]primitive.ObjectID
	devices       map[string]primitive.ObjectID
	capacities    map[string]primitive.ObjectID
	colors        map[string]primitive.ObjectID
	accounts      map[string]primitive.ObjectID

	err error

	mu      sync.Mutex
	lookups int
}

func (f *fakeResolver) lookup(table map[string]primitive.ObjectID, name string) (primitive.ObjectID, bool, error) {
	f.mu.Lock()
	f.lookups++
	f.mu.Unlock()

	if f.err != nil {
		return primitive.NilObjectID, false, f.err
	}

	id, ok := table[name]
	return id, ok, nil
}

func (f *fakeResolver) LookupOrganization(_ context.Context, name string) (primitive.ObjectID, bool, error) {
	return f.lookup(f.organizations, name)
}

func (f *fakeResolver) LookupBranch(_ context.Context, name string) (primitive.ObjectID, bool, error) {
	return f.lookup(f.branches, name)
}

func (f *fakeResolver) LookupCustomer(_ context.Context, name string) (primitive.ObjectID, bool, error) {
	return f.lookup(f.customers, name)
}

func (f *fakeResolver) LookupCategory(_ context.Context, name string) (primitive.ObjectID, bool, error) {
	return f.lookup(f.categories, name)
}

func (f *fakeResolver) LookupModel(_ context.Context, name string) (primitive.ObjectID, bool, error) {
	return f.lookup(f.models, name)
}

func (f *fakeResolver) LookupDevice(_ context.Context, name string) (primitive.ObjectID, bool, error) {
	return f.lookup(f.devices, name)
}

func (f *fakeResolver) LookupCapacity(_ context.Context, name string) (primitive.ObjectID, bool, error) {
	return f.lookup(f.capacities, name)
}

func (f *fakeResolver) LookupColor(_ context.Context, name string) (primitive.ObjectID, bool, error) {
	return f.lookup(f.colors, name)
}

func (f *fakeResolver) LookupAccount(_ context.Context, name string) (primitive.ObjectID, bool, error) {
	return f.lookup(f.accounts, name)
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		organizations: map[string]primitive.ObjectID{"Acme": primitive.NewObjectID()},
		branches:      map[string]primitive.ObjectID{"Main": primitive.NewObjectID()},
		customers:     map[string]primitive.ObjectID{"Jane Doe": primitive.NewObjectID()},
		categories:    map[string]primitive.ObjectID{"Phone": primitive.NewObjectID()},
		models:        map[string]primitive.ObjectID{"X12": primitive.NewObjectID()},
		devices:       map[string]primitive.ObjectID{"Nova": primitive.NewObjectID()},
		capacities:    map[string]primitive.ObjectID{"128GB": primitive.NewObjectID()},
		colors:        map[string]primitive.ObjectID{"Black": primitive.NewObjectID()},
		accounts:      map[string]primitive.ObjectID{"Till": primitive.NewObjectID()},
	}
}

func validRow() models.ImportRow {
	return models.ImportRow{
		OrganizationName: "Acme",
		BranchName:       "Main",
		CustomerName:     "Jane Doe",
		CustomerPhone:    "555-0101",
		CategoryName:     "Phone",
		ModelName:        "X12",
		DeviceName:       "Nova",
		CapacityName:     "128GB",
		ColorName:        "Black",
		IMEINo:           "350000000000001",
		SrNo:             "A1",
		TotalAmount:      "900",
		PaidToCustomer:   "700",
		RemainingAmount:  "200",
		AccountName:      "Till",
		PaymentAmount:    "700",
	}
}

func TestImporterImportRows(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves every dimension to its canonical identifier", func(t *testing.T) {
		resolver := newFakeResolver()
		importer := NewImporter(resolver, nil)

		units, err := importer.ImportRows(ctx, []models.ImportRow{validRow()})
		require.NoError(t, err)
		require.Len(t, units, 1)

		unit := units[0]
		assert.Equal(t, resolver.organizations["Acme"], unit.Organization)
		assert.Equal(t, resolver.branches["Main"], unit.Branch)
		require.NotNil(t, unit.Customer)
		assert.Equal(t, resolver.customers["Jane Doe"], *unit.Customer)
		assert.Equal(t, resolver.categories["Phone"], unit.Category)
		assert.Equal(t, resolver.models["X12"], unit.Model)
		assert.Equal(t, resolver.devices["Nova"], unit.Device)
		assert.Equal(t, resolver.capacities["128GB"], unit.Capacity)
		assert.Equal(t, resolver.colors["Black"], unit.Color)
		assert.Equal(t, 900.0, unit.TotalAmount)
		assert.Equal(t, 700.0, unit.PaidToCustomer)
		assert.Equal(t, 200.0, unit.RemainingAmount)

		require.Len(t, unit.Payment, 1)
		assert.Equal(t, resolver.accounts["Till"], unit.Payment[0].Account)
		assert.Equal(t, 700.0, unit.Payment[0].Amount)
	})

	t.Run("remaining amount defaults to zero when the cell is blank", func(t *testing.T) {
		row := validRow()
		row.RemainingAmount = ""

		units, err := NewImporter(newFakeResolver(), nil).ImportRows(ctx, []models.ImportRow{row})
		require.NoError(t, err)
		assert.Equal(t, 0.0, units[0].RemainingAmount)
	})

	t.Run("empty customer name resolves to no customer", func(t *testing.T) {
		row := validRow()
		row.CustomerName = "  "

		units, err := NewImporter(newFakeResolver(), nil).ImportRows(ctx, []models.ImportRow{row})
		require.NoError(t, err)
		assert.Nil(t, units[0].Customer)
	})

	t.Run("unknown account aborts with the file row number", func(t *testing.T) {
		bad := validRow()
		bad.AccountName = "Unknown Till"

		rows := []models.ImportRow{validRow(), bad, validRow()}

		units, err := NewImporter(newFakeResolver(), nil).ImportRows(ctx, rows)
		assert.Nil(t, units)

		var rowErr *ImportRowError
		require.ErrorAs(t, err, &rowErr)
		assert.Equal(t, 3, rowErr.Row)
		assert.Equal(t, []string{"paymentAccount"}, rowErr.Fields)
		assert.Equal(t, bad, rowErr.Data)
	})

	t.Run("coercion failures are reported alongside missing names", func(t *testing.T) {
		row := validRow()
		row.ColorName = "Chartreuse"
		row.TotalAmount = "a lot"

		_, err := NewImporter(newFakeResolver(), nil).ImportRows(ctx, []models.ImportRow{row})

		var rowErr *ImportRowError
		require.ErrorAs(t, err, &rowErr)
		assert.Equal(t, 2, rowErr.Row)
		assert.Equal(t, []string{"color", "totalAmount"}, rowErr.Fields)
	})

	t.Run("resolution is idempotent across rows", func(t *testing.T) {
		units, err := NewImporter(newFakeResolver(), nil).ImportRows(ctx, []models.ImportRow{validRow(), validRow()})
		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.Equal(t, units[0].Organization, units[1].Organization)
		assert.Equal(t, units[0].Payment[0].Account, units[1].Payment[0].Account)
	})

	t.Run("storage failure surfaces as a plain error, not a row diagnostic", func(t *testing.T) {
		resolver := newFakeResolver()
		resolver.err = errors.New("connection reset")

		_, err := NewImporter(resolver, nil).ImportRows(ctx, []models.ImportRow{validRow()})
		require.Error(t, err)

		var rowErr *ImportRowError
		assert.False(t, errors.As(err, &rowErr))
	})
}
