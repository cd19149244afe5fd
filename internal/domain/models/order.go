package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// IMEIEntry carries the per-unit fields of one serialized device inside an
// order payload.
type IMEIEntry struct {
	IMEINo          string  `json:"imeiNo"`
	SrNo            string  `json:"srNo"`
	TotalAmount     float64 `json:"totalAmount"`
	PaidToCustomer  float64 `json:"paidToCustomer"`
	RemainingAmount float64 `json:"remainingAmount"`
}

// DeviceGroup bundles the shared attributes of several serialized units of the
// same device model.
type DeviceGroup struct {
	Category primitive.ObjectID `json:"category"`
	Model    primitive.ObjectID `json:"model"`
	Device   primitive.ObjectID `json:"device"`
	Capacity primitive.ObjectID `json:"capacity"`
	Color    primitive.ObjectID `json:"color"`
	IMEI     []IMEIEntry        `json:"imei"`
}

// OrderPayload is the nested input of the direct create path: one
// customer/payment context shared by several device groups. All reference
// fields already carry canonical identifiers, so no name resolution happens
// on this path.
type OrderPayload struct {
	Organization  primitive.ObjectID  `json:"organization"`
	Branch        primitive.ObjectID  `json:"branch"`
	Customer      *primitive.ObjectID `json:"customer"`
	CustomerPhone string              `json:"customerPhone"`
	Upload        string              `json:"upload"`
	Payment       []PaymentAllocation `json:"payment"`
	Device        []DeviceGroup       `json:"device"`
}
