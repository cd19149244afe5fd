package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Name lookups resolve a human-readable value to the canonical identifier of
// the matching reference document. Matching is exact string equality on the
// collection's name field; no case or whitespace normalization is applied.
// The boolean result reports whether a document matched.

// LookupOrganization resolves an organization name.
func (r *Repository) LookupOrganization(ctx context.Context, name string) (primitive.ObjectID, bool, error) {
	return r.lookupID(ctx, "organizations", "organizationName", name)
}

// LookupBranch resolves a branch name.
func (r *Repository) LookupBranch(ctx context.Context, name string) (primitive.ObjectID, bool, error) {
	return r.lookupID(ctx, "branches", "branchName", name)
}

// LookupCustomer resolves a customer name.
func (r *Repository) LookupCustomer(ctx context.Context, name string) (primitive.ObjectID, bool, error) {
	return r.lookupID(ctx, "customers", "customerName", name)
}

// LookupCategory resolves a category name.
func (r *Repository) LookupCategory(ctx context.Context, name string) (primitive.ObjectID, bool, error) {
	return r.lookupID(ctx, "categories", "categoryName", name)
}

// LookupModel resolves a device model name.
func (r *Repository) LookupModel(ctx context.Context, name string) (primitive.ObjectID, bool, error) {
	return r.lookupID(ctx, "models", "modelName", name)
}

// LookupDevice resolves a device name.
func (r *Repository) LookupDevice(ctx context.Context, name string) (primitive.ObjectID, bool, error) {
	return r.lookupID(ctx, "devices", "deviceName", name)
}

// LookupCapacity resolves a capacity name.
func (r *Repository) LookupCapacity(ctx context.Context, name string) (primitive.ObjectID, bool, error) {
	return r.lookupID(ctx, "capacities", "capacityName", name)
}

// LookupColor resolves a color name.
func (r *Repository) LookupColor(ctx context.Context, name string) (primitive.ObjectID, bool, error) {
	return r.lookupID(ctx, "colors", "colorName", name)
}

// LookupAccount resolves a payment account name.
func (r *Repository) LookupAccount(ctx context.Context, name string) (primitive.ObjectID, bool, error) {
	return r.lookupID(ctx, "accounts", "accountName", name)
}

func (r *Repository) lookupID(ctx context.Context, collection, field, name string) (primitive.ObjectID, bool, error) {
	var doc struct {
		ID primitive.ObjectID `bson:"_id"`
	}

	err := r.db.Collection(collection).FindOne(ctx, bson.M{field: name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, false, nil
	}
	if err != nil {
		return primitive.NilObjectID, false, fmt.Errorf("failed to look up %s %q: %w", field, name, err)
	}

	return doc.ID, true, nil
}
