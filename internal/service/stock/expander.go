package stock

import "github.com/mamadbah2/stocktrack/internal/domain/models"

// ExpandOrder flattens a nested order payload into one stock unit candidate
// per serialized device. Every candidate inherits the order-level fields
// verbatim, including the full payment list, plus its device group's shared
// attributes and its own per-unit fields. Candidates keep device-list order,
// then imei-list order within each group.
//
// A device group without imei entries contributes zero candidates; that is a
// documented soft-failure of the input shape, not an error.
func ExpandOrder(order models.OrderPayload) []models.StockUnit {
	units := make([]models.StockUnit, 0)

	for _, group := range order.Device {
		for _, entry := range group.IMEI {
			units = append(units, models.StockUnit{
				Organization:    order.Organization,
				Branch:          order.Branch,
				Customer:        order.Customer,
				CustomerPhone:   order.CustomerPhone,
				Category:        group.Category,
				Model:           group.Model,
				Device:          group.Device,
				Capacity:        group.Capacity,
				Color:           group.Color,
				IMEINo:          entry.IMEINo,
				SrNo:            entry.SrNo,
				TotalAmount:     entry.TotalAmount,
				PaidToCustomer:  entry.PaidToCustomer,
				RemainingAmount: entry.RemainingAmount,
				Payment:         order.Payment,
				Upload:          order.Upload,
			})
		}
	}

	return units
}
