package accountrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/escrow"
	"fulfillment/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the account of the given party. The row is read FOR UPDATE
// so concurrent balance movements on the same party serialize. A party
// without a stored row has never received funds and yields a fresh
// zero-balance account.
func (r *GormAccountRepository) Get(ctx context.Context, party kernel.Address) (*escrow.Account, error) {
	if err := party.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "party = ?", party.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return escrow.NewAccount(party)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Save persists the account's current balance, inserting the row on first
// write and overwriting the balance afterwards.
func (r *GormAccountRepository) Save(ctx context.Context, account *escrow.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := fromDomain(account)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "party"}},
			DoUpdates: clause.AssignmentColumns([]string{"balance"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(account.Party().String(), account)
	return nil
}
