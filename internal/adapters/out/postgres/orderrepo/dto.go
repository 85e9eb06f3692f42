// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Identifiers are allocated by the engine, not by the database, so the
// primary key carries no autoincrement.
type OrderDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement:false"`
	Status         int   `gorm:"index"`
	FulfillmentFee int64
	ShipmentFee    int64
	Paid           int64
	InvoiceURI     string
	Tracking       string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CounterDTO is the allocation counter backing dense order identifiers.
// A single named row holds the identifier the next created order receives;
// it is read under a row lock so concurrent creations serialize.
type CounterDTO struct {
	Name   string `gorm:"primaryKey"`
	NextID int64
}

// TableName specifies the database table name for allocation counters.
func (CounterDTO) TableName() string {
	return "order_counters"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:             aggregate.ID(),
		Status:         int(aggregate.Status()),
		FulfillmentFee: aggregate.FulfillmentFee().Amount(),
		ShipmentFee:    aggregate.ShipmentFee().Amount(),
		Paid:           aggregate.Paid().Amount(),
		InvoiceURI:     aggregate.InvoiceURI(),
		Tracking:       aggregate.Tracking(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which re-validates
// the stored status and funds combination.
func toDomain(dto OrderDTO) (*order.Order, error) {
	fulfillmentFee, err := kernel.NewMoney(dto.FulfillmentFee)
	if err != nil {
		return nil, err
	}

	shipmentFee, err := kernel.NewMoney(dto.ShipmentFee)
	if err != nil {
		return nil, err
	}

	paid, err := kernel.NewMoney(dto.Paid)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		order.Status(dto.Status),
		fulfillmentFee,
		shipmentFee,
		paid,
		dto.InvoiceURI,
		dto.Tracking,
	)
}
