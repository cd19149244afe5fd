package stock

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
)

// RoleSuperAdmin sees stock across every organization; everyone else is
// scoped to their own.
const RoleSuperAdmin = "superadmin"

// Store is the persistence surface the stock service depends on.
type Store interface {
	Inserter
	FindStockByID(ctx context.Context, id string) (*models.StockUnit, error)
	FindAllStock(ctx context.Context, organization *primitive.ObjectID) ([]models.StockUnit, error)
	FindStockByOrgAndCustomer(ctx context.Context, organization, customer primitive.ObjectID) ([]models.StockUnit, error)
	FindAllStockDetails(ctx context.Context) ([]models.StockUnitDetails, error)
	UpdateStock(ctx context.Context, id string, patch models.StockUnitPatch) (*models.StockUnit, error)
	SetStockDeleted(ctx context.Context, id string, deleted bool) (*models.StockUnit, error)
	DeleteStock(ctx context.Context, id string) (*models.StockUnit, error)
}

// Service coordinates stock ingestion, lookup and lifecycle operations.
type Service struct {
	store    Store
	importer *Importer
	writer   *Writer
	logger   *zap.Logger
}

// NewService wires the stock service.
func NewService(store Store, resolver ReferenceResolver, writer *Writer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		importer: NewImporter(resolver, logger.Named("importer")),
		writer:   writer,
		logger:   logger,
	}
}

// CreateOrder validates the order payload, expands it into flat candidates
// and persists them. Validation failure aborts before anything is expanded or
// written.
func (s *Service) CreateOrder(ctx context.Context, order models.OrderPayload) ([]models.StockUnit, error) {
	if err := ValidateOrder(order); err != nil {
		return nil, err
	}

	units := ExpandOrder(order)
	s.logger.Info("order expanded", zap.Int("candidates", len(units)))

	return s.writer.WriteAll(ctx, units)
}

// Import normalizes the parsed spreadsheet rows and, only when the whole file
// resolved and validated, persists the batch.
func (s *Service) Import(ctx context.Context, rows []models.ImportRow) ([]models.StockUnit, error) {
	units, err := s.importer.ImportRows(ctx, rows)
	if err != nil {
		return nil, err
	}

	return s.writer.WriteAll(ctx, units)
}

// List returns the live stock visible to the caller: every organization for a
// super admin, otherwise the caller's own.
func (s *Service) List(ctx context.Context, identity models.Identity) ([]models.StockUnit, error) {
	if identity.Role == RoleSuperAdmin {
		return s.store.FindAllStock(ctx, nil)
	}

	org, err := primitive.ObjectIDFromHex(identity.Organization)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid organization"}
	}

	return s.store.FindAllStock(ctx, &org)
}

// ListByOrgAndCustomer returns the live stock of one organization assigned to
// one customer.
func (s *Service) ListByOrgAndCustomer(ctx context.Context, orgID, customerID string) ([]models.StockUnit, error) {
	org, err := primitive.ObjectIDFromHex(orgID)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid orgId"}
	}

	customer, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid cusId"}
	}

	return s.store.FindStockByOrgAndCustomer(ctx, org, customer)
}

// ListDetails returns every unit with its reference names joined in.
func (s *Service) ListDetails(ctx context.Context) ([]models.StockUnitDetails, error) {
	return s.store.FindAllStockDetails(ctx)
}

// Get fetches one stock unit by identifier.
func (s *Service) Get(ctx context.Context, id string) (*models.StockUnit, error) {
	unit, err := s.store.FindStockByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, ErrNotFound
	}
	return unit, nil
}

// Update applies a field-level partial update.
func (s *Service) Update(ctx context.Context, id string, patch models.StockUnitPatch) (*models.StockUnit, error) {
	unit, err := s.store.UpdateStock(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, ErrNotFound
	}
	return unit, nil
}

// SoftDelete flags a unit as deleted without removing it.
func (s *Service) SoftDelete(ctx context.Context, id string) (*models.StockUnit, error) {
	unit, err := s.store.SetStockDeleted(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, ErrNotFound
	}
	return unit, nil
}

// HardDelete removes a unit permanently.
func (s *Service) HardDelete(ctx context.Context, id string) (*models.StockUnit, error) {
	unit, err := s.store.DeleteStock(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, ErrNotFound
	}
	return unit, nil
}
