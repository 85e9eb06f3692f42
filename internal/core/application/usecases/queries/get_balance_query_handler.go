package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetBalanceQueryHandler reads a party's escrow balance from the database.
type GetBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetBalanceQueryHandler creates a handler for balance queries.
func NewGetBalanceQueryHandler(db *gorm.DB) GetBalanceQueryHandler {
	return GetBalanceQueryHandler{db: db}
}

// Handle executes the query. A party without a stored row has never
// received funds and reads back as zero.
func (h GetBalanceQueryHandler) Handle(ctx context.Context, query GetBalanceQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT balance FROM accounts WHERE party = ?
	`, query.Party().String()).Row()

	var balance int64
	err := row.Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return balance, nil
}
