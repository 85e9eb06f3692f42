package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetNextOrderIDQueryHandler reads the allocation counter without locking
// it. The returned value is a snapshot; a concurrent creation may claim it
// before the caller does.
type GetNextOrderIDQueryHandler struct {
	db *gorm.DB
}

// NewGetNextOrderIDQueryHandler creates a handler for next-identifier queries.
func NewGetNextOrderIDQueryHandler(db *gorm.DB) GetNextOrderIDQueryHandler {
	return GetNextOrderIDQueryHandler{db: db}
}

// Handle executes the query. A missing counter row means no order was ever
// created and the next identifier is zero.
func (h GetNextOrderIDQueryHandler) Handle(ctx context.Context, query GetNextOrderIDQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT next_id FROM order_counters WHERE name = ?
	`, "orders").Row()

	var nextID int64
	err := row.Scan(&nextID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return nextID, nil
}
