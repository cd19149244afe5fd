package stock

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
)

// ReferenceResolver resolves human-readable names to canonical identifiers,
// one typed lookup per reference dimension. A false boolean means no document
// matched; the error is reserved for storage failures.
type ReferenceResolver interface {
	LookupOrganization(ctx context.Context, name string) (primitive.ObjectID, bool, error)
	LookupBranch(ctx context.Context, name string) (primitive.ObjectID, bool, error)
	LookupCustomer(ctx context.Context, name string) (primitive.ObjectID, bool, error)
	LookupCategory(ctx context.Context, name string) (primitive.ObjectID, bool, error)
	LookupModel(ctx context.Context, name string) (primitive.ObjectID, bool, error)
	LookupDevice(ctx context.Context, name string) (primitive.ObjectID, bool, error)
	LookupCapacity(ctx context.Context, name string) (primitive.ObjectID, bool, error)
	LookupColor(ctx context.Context, name string) (primitive.ObjectID, bool, error)
	LookupAccount(ctx context.Context, name string) (primitive.ObjectID, bool, error)
}

// ResolvedRefs is the aggregate outcome of resolving every dimension of one
// import row. Customer stays nil when the row carries no customer name.
type ResolvedRefs struct {
	Organization primitive.ObjectID
	Branch       primitive.ObjectID
	Customer     *primitive.ObjectID
	Category     primitive.ObjectID
	Model        primitive.ObjectID
	Device       primitive.ObjectID
	Capacity     primitive.ObjectID
	Color        primitive.ObjectID
	Account      primitive.ObjectID
}

// resolveRow runs every dimension lookup concurrently, then reports the
// dimensions that matched nothing in a fixed order. The customer dimension is
// optional: an empty name resolves to no customer rather than a failure.
func resolveRow(ctx context.Context, resolver ReferenceResolver, row models.ImportRow) (ResolvedRefs, []string, error) {
	var (
		refs     ResolvedRefs
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		found    = make(map[string]bool, 8)
	)

	lookups := []struct {
		dimension string
		run       func(ctx context.Context) (bool, error)
	}{
		{"organization", func(ctx context.Context) (bool, error) {
			id, ok, err := resolver.LookupOrganization(ctx, row.OrganizationName)
			refs.Organization = id
			return ok, err
		}},
		{"branch", func(ctx context.Context) (bool, error) {
			id, ok, err := resolver.LookupBranch(ctx, row.BranchName)
			refs.Branch = id
			return ok, err
		}},
		{"category", func(ctx context.Context) (bool, error) {
			id, ok, err := resolver.LookupCategory(ctx, row.CategoryName)
			refs.Category = id
			return ok, err
		}},
		{"model", func(ctx context.Context) (bool, error) {
			id, ok, err := resolver.LookupModel(ctx, row.ModelName)
			refs.Model = id
			return ok, err
		}},
		{"device", func(ctx context.Context) (bool, error) {
			id, ok, err := resolver.LookupDevice(ctx, row.DeviceName)
			refs.Device = id
			return ok, err
		}},
		{"capacity", func(ctx context.Context) (bool, error) {
			id, ok, err := resolver.LookupCapacity(ctx, row.CapacityName)
			refs.Capacity = id
			return ok, err
		}},
		{"color", func(ctx context.Context) (bool, error) {
			id, ok, err := resolver.LookupColor(ctx, row.ColorName)
			refs.Color = id
			return ok, err
		}},
		{"paymentAccount", func(ctx context.Context) (bool, error) {
			id, ok, err := resolver.LookupAccount(ctx, row.AccountName)
			refs.Account = id
			return ok, err
		}},
	}

	for _, lookup := range lookups {
		wg.Add(1)
		go func(dimension string, run func(ctx context.Context) (bool, error)) {
			defer wg.Done()
			ok, err := run(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil && firstErr == nil {
				firstErr = err
			}
			found[dimension] = ok
		}(lookup.dimension, lookup.run)
	}

	if name := strings.TrimSpace(row.CustomerName); name != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, ok, err := resolver.LookupCustomer(ctx, name)
			mu.Lock()
			defer mu.Unlock()
			if err != nil && firstErr == nil {
				firstErr = err
			}
			if ok {
				refs.Customer = &id
			}
		}()
	}

	wg.Wait()

	if firstErr != nil {
		return ResolvedRefs{}, nil, firstErr
	}

	var missing []string
	for _, lookup := range lookups {
		if !found[lookup.dimension] {
			missing = append(missing, lookup.dimension)
		}
	}

	return refs, missing, nil
}
