package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentAllocation ties a portion of a stock unit's price to a payment account.
type PaymentAllocation struct {
	Account primitive.ObjectID `bson:"paymentAccount" json:"paymentAccount"`
	Amount  float64            `bson:"paymentAmount" json:"paymentAmount"`
}

// StockUnit is one physical serialized device tracked as an individual
// inventory record. A unit is owned by exactly one organization/branch pair;
// the customer reference is optional and may be assigned later.
type StockUnit struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Organization    primitive.ObjectID  `bson:"organization" json:"organization"`
	Branch          primitive.ObjectID  `bson:"branch" json:"branch"`
	Customer        *primitive.ObjectID `bson:"customer,omitempty" json:"customer,omitempty"`
	CustomerPhone   string              `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	Category        primitive.ObjectID  `bson:"category" json:"category"`
	Model           primitive.ObjectID  `bson:"model" json:"model"`
	Device          primitive.ObjectID  `bson:"device" json:"device"`
	Capacity        primitive.ObjectID  `bson:"capacity" json:"capacity"`
	Color           primitive.ObjectID  `bson:"color" json:"color"`
	IMEINo          string              `bson:"imeiNo" json:"imeiNo"`
	SrNo            string              `bson:"srNo,omitempty" json:"srNo,omitempty"`
	TotalAmount     float64             `bson:"totalAmount" json:"totalAmount"`
	PaidToCustomer  float64             `bson:"paidToCustomer" json:"paidToCustomer"`
	RemainingAmount float64             `bson:"remainingAmount" json:"remainingAmount"`
	Payment         []PaymentAllocation `bson:"payment" json:"payment"`
	Upload          string              `bson:"upload,omitempty" json:"upload,omitempty"`
	Deleted         bool                `bson:"deleted" json:"deleted"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// StockUnitPatch carries the fields a partial update may touch. Nil pointers
// leave the stored value untouched.
type StockUnitPatch struct {
	Customer        *primitive.ObjectID `json:"customer"`
	CustomerPhone   *string             `json:"customerPhone"`
	SrNo            *string             `json:"srNo"`
	TotalAmount     *float64            `json:"totalAmount"`
	PaidToCustomer  *float64            `json:"paidToCustomer"`
	RemainingAmount *float64            `json:"remainingAmount"`
	Payment         []PaymentAllocation `json:"payment"`
	Upload          *string             `json:"upload"`
}

// StockUnitDetails is a stock unit joined with the display names of its
// reference dimensions, as produced by the details aggregation.
type StockUnitDetails struct {
	StockUnit        `bson:",inline"`
	OrganizationName string `bson:"organizationName" json:"organizationName"`
	BranchName       string `bson:"branchName" json:"branchName"`
	CustomerName     string `bson:"customerName,omitempty" json:"customerName,omitempty"`
	CategoryName     string `bson:"categoryName" json:"categoryName"`
	ModelName        string `bson:"modelName" json:"modelName"`
	DeviceName       string `bson:"deviceName" json:"deviceName"`
	CapacityName     string `bson:"capacityName" json:"capacityName"`
	ColorName        string `bson:"colorName" json:"colorName"`
}
