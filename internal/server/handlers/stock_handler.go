package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
	"github.com/mamadbah2/stocktrack/internal/excel"
	"github.com/mamadbah2/stocktrack/internal/service/activity"
	"github.com/mamadbah2/stocktrack/internal/service/stock"
)

// StockHandler exposes the stock unit operations over HTTP.
type StockHandler struct {
	svc       *stock.Service
	activity  *activity.Recorder
	uploadDir string
	logger    *zap.Logger
}

// NewStockHandler constructs the HTTP handler adapter.
func NewStockHandler(svc *stock.Service, recorder *activity.Recorder, uploadDir string, logger *zap.Logger) *StockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockHandler{svc: svc, activity: recorder, uploadDir: uploadDir, logger: logger}
}

// GetAll lists the stock visible to the caller.
func (h *StockHandler) GetAll(c *gin.Context) {
	units, err := h.svc.List(c.Request.Context(), identityFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock retrieved successfully", "data": units})
}

// Get fetches a single stock unit by id.
func (h *StockHandler) Get(c *gin.Context) {
	unit, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock retrieved successfully", "data": unit})
}

// Create expands an order payload into stock units and persists them.
func (h *StockHandler) Create(c *gin.Context) {
	var order models.OrderPayload
	if err := c.ShouldBindJSON(&order); err != nil {
		h.logger.Warn("invalid order payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	created, err := h.svc.CreateOrder(c.Request.Context(), order)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.activity.Record(c.Request.Context(), identityFrom(c), fmt.Sprintf("create %d stock", len(created)))
	c.JSON(http.StatusOK, gin.H{"message": "Stocks created", "data": created})
}

// Update applies a partial update to one stock unit.
func (h *StockHandler) Update(c *gin.Context) {
	var patch models.StockUnitPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("invalid update payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	unit, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.activity.Record(c.Request.Context(), identityFrom(c), "update stock")
	c.JSON(http.StatusOK, gin.H{"message": "Stock updated", "data": unit})
}

// SoftDelete flags a stock unit as deleted.
func (h *StockHandler) SoftDelete(c *gin.Context) {
	unit, err := h.svc.SoftDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.activity.Record(c.Request.Context(), identityFrom(c), "soft delete stock")
	c.JSON(http.StatusOK, gin.H{"message": "Stock soft deleted", "data": unit})
}

// Delete removes a stock unit permanently.
func (h *StockHandler) Delete(c *gin.Context) {
	unit, err := h.svc.HardDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.activity.Record(c.Request.Context(), identityFrom(c), "delete stock")
	c.JSON(http.StatusOK, gin.H{"message": "Stock deleted", "data": unit})
}

// ByOrgAndCustomer lists the stock of one organization assigned to one customer.
func (h *StockHandler) ByOrgAndCustomer(c *gin.Context) {
	units, err := h.svc.ListByOrgAndCustomer(c.Request.Context(), c.Query("orgId"), c.Query("cusId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock retrieved successfully", "data": units})
}

// AllDetails lists every unit with its reference names joined in.
func (h *StockHandler) AllDetails(c *gin.Context) {
	details, err := h.svc.ListDetails(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock retrieved successfully", "data": details})
}

// ImportExcel ingests a spreadsheet of name-keyed stock rows. The uploaded
// file is deleted as soon as its rows are in memory, before any row is
// resolved.
func (h *StockHandler) ImportExcel(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	dst := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.logger.Error("failed to store upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
		return
	}

	rows, parseErr := excel.Parse(dst)
	if err := os.Remove(dst); err != nil {
		h.logger.Warn("failed to remove upload", zap.Error(err), zap.String("path", dst))
	}
	if parseErr != nil {
		if errors.Is(parseErr, excel.ErrNoRows) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Excel file is empty"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unable to read Excel file", "error": parseErr.Error()})
		return
	}

	created, err := h.svc.Import(c.Request.Context(), rows)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.activity.Record(c.Request.Context(), identityFrom(c), fmt.Sprintf("import %d stock", len(created)))
	c.JSON(http.StatusOK, gin.H{
		"message":  "Stocks imported successfully",
		"inserted": len(created),
		"data":     created,
	})
}

func (h *StockHandler) respondError(c *gin.Context, err error) {
	var rowErr *stock.ImportRowError
	var validationErr *stock.ValidationError

	switch {
	case errors.As(err, &rowErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": rowErr.Error(), "rowData": rowErr.Data})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
	case errors.Is(err, stock.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Stock not found"})
	default:
		h.logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
	}
}
