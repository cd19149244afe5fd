package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
)

const stockCollection = "stocks"

// InsertStock persists a single stock unit and returns it with its assigned
// identifier and timestamps.
func (r *Repository) InsertStock(ctx context.Context, unit models.StockUnit) (models.StockUnit, error) {
	now := time.Now().UTC()
	unit.ID = primitive.NewObjectID()
	unit.CreatedAt = now
	unit.UpdatedAt = now

	if _, err := r.db.Collection(stockCollection).InsertOne(ctx, unit); err != nil {
		return models.StockUnit{}, fmt.Errorf("failed to insert stock unit: %w", err)
	}

	return unit, nil
}

// InsertStockBatch persists all units inside a single transaction: either the
// whole batch lands or none of it does. Requires the deployment to support
// multi-document transactions (replica set).
func (r *Repository) InsertStockBatch(ctx context.Context, units []models.StockUnit) ([]models.StockUnit, error) {
	now := time.Now().UTC()
	docs := make([]interface{}, len(units))
	for i := range units {
		units[i].ID = primitive.NewObjectID()
		units[i].CreatedAt = now
		units[i].UpdatedAt = now
		docs[i] = units[i]
	}

	session, err := r.client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("failed to start mongodb session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		opts := options.InsertMany().SetOrdered(true)
		return r.db.Collection(stockCollection).InsertMany(sessCtx, docs, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert stock batch: %w", err)
	}

	r.logger.Debug("stock batch inserted", zap.Int("count", len(units)))
	return units, nil
}

// FindStockByID fetches one stock unit. A nil unit with a nil error means no
// document matched.
func (r *Repository) FindStockByID(ctx context.Context, id string) (*models.StockUnit, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var unit models.StockUnit
	err = r.db.Collection(stockCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&unit)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find stock unit %s: %w", id, err)
	}

	return &unit, nil
}

// FindAllStock lists live (non soft-deleted) units, optionally scoped to one
// organization.
func (r *Repository) FindAllStock(ctx context.Context, organization *primitive.ObjectID) ([]models.StockUnit, error) {
	filter := bson.M{"deleted": false}
	if organization != nil {
		filter["organization"] = *organization
	}

	cursor, err := r.db.Collection(stockCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock units: %w", err)
	}

	units := make([]models.StockUnit, 0)
	if err := cursor.All(ctx, &units); err != nil {
		return nil, fmt.Errorf("failed to decode stock units: %w", err)
	}

	return units, nil
}

// FindStockByOrgAndCustomer lists live units belonging to an organization and
// assigned to a customer.
func (r *Repository) FindStockByOrgAndCustomer(ctx context.Context, organization, customer primitive.ObjectID) ([]models.StockUnit, error) {
	filter := bson.M{
		"organization": organization,
		"customer":     customer,
		"deleted":      false,
	}

	cursor, err := r.db.Collection(stockCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock by org and customer: %w", err)
	}

	units := make([]models.StockUnit, 0)
	if err := cursor.All(ctx, &units); err != nil {
		return nil, fmt.Errorf("failed to decode stock units: %w", err)
	}

	return units, nil
}

// FindAllStockDetails lists every unit with the display names of its reference
// dimensions joined in.
func (r *Repository) FindAllStockDetails(ctx context.Context) ([]models.StockUnitDetails, error) {
	joins := []struct {
		from       string
		localField string
		nameField  string
	}{
		{"organizations", "organization", "organizationName"},
		{"branches", "branch", "branchName"},
		{"customers", "customer", "customerName"},
		{"categories", "category", "categoryName"},
		{"models", "model", "modelName"},
		{"devices", "device", "deviceName"},
		{"capacities", "capacity", "capacityName"},
		{"colors", "color", "colorName"},
	}

	pipeline := mongo.Pipeline{}
	unset := bson.A{}
	for _, j := range joins {
		tmp := "_" + j.nameField
		pipeline = append(pipeline,
			bson.D{{Key: "$lookup", Value: bson.M{
				"from":         j.from,
				"localField":   j.localField,
				"foreignField": "_id",
				"as":           tmp,
			}}},
			bson.D{{Key: "$addFields", Value: bson.M{
				j.nameField: bson.M{"$ifNull": bson.A{
					bson.M{"$arrayElemAt": bson.A{"$" + tmp + "." + j.nameField, 0}},
					"",
				}},
			}}},
		)
		unset = append(unset, tmp)
	}
	pipeline = append(pipeline, bson.D{{Key: "$unset", Value: unset}})

	cursor, err := r.db.Collection(stockCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stock details: %w", err)
	}

	details := make([]models.StockUnitDetails, 0)
	if err := cursor.All(ctx, &details); err != nil {
		return nil, fmt.Errorf("failed to decode stock details: %w", err)
	}

	return details, nil
}

// UpdateStock applies a partial update and returns the updated unit, or nil
// when no document matched.
func (r *Repository) UpdateStock(ctx context.Context, id string, patch models.StockUnitPatch) (*models.StockUnit, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Customer != nil {
		set["customer"] = *patch.Customer
	}
	if patch.CustomerPhone != nil {
		set["customerPhone"] = *patch.CustomerPhone
	}
	if patch.SrNo != nil {
		set["srNo"] = *patch.SrNo
	}
	if patch.TotalAmount != nil {
		set["totalAmount"] = *patch.TotalAmount
	}
	if patch.PaidToCustomer != nil {
		set["paidToCustomer"] = *patch.PaidToCustomer
	}
	if patch.RemainingAmount != nil {
		set["remainingAmount"] = *patch.RemainingAmount
	}
	if patch.Payment != nil {
		set["payment"] = patch.Payment
	}
	if patch.Upload != nil {
		set["upload"] = *patch.Upload
	}

	return r.findOneAndUpdate(ctx, oid, bson.M{"$set": set})
}

// SetStockDeleted flips the soft-delete flag and returns the updated unit, or
// nil when no document matched.
func (r *Repository) SetStockDeleted(ctx context.Context, id string, deleted bool) (*models.StockUnit, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	update := bson.M{"$set": bson.M{"deleted": deleted, "updatedAt": time.Now().UTC()}}
	return r.findOneAndUpdate(ctx, oid, update)
}

// DeleteStock removes a unit permanently and returns the removed document, or
// nil when no document matched.
func (r *Repository) DeleteStock(ctx context.Context, id string) (*models.StockUnit, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var unit models.StockUnit
	err = r.db.Collection(stockCollection).FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&unit)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete stock unit %s: %w", id, err)
	}

	return &unit, nil
}

func (r *Repository) findOneAndUpdate(ctx context.Context, oid primitive.ObjectID, update bson.M) (*models.StockUnit, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var unit models.StockUnit
	err := r.db.Collection(stockCollection).FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&unit)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update stock unit %s: %w", oid.Hex(), err)
	}

	return &unit, nil
}
