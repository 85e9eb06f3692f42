package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// counterName is the allocation counter row shared by all order creations.
const counterName = "orders"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id any, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextID allocates the next dense order identifier. The counter row is read
// FOR UPDATE, so concurrent allocations serialize and each caller gets a
// distinct value. Must run inside the same transaction as the Add that
// consumes the identifier: rolling back the transaction also rolls back the
// counter increment, keeping the sequence gapless.
func (r *GormOrderRepository) NextID(ctx context.Context) (int64, error) {
	var counter CounterDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&counter, "name = ?", counterName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		counter = CounterDTO{Name: counterName, NextID: 0}
		if err = r.db.WithContext(ctx).Create(&counter).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	id := counter.NextID
	if err = r.db.WithContext(ctx).
		Model(&CounterDTO{}).
		Where("name = ?", counterName).
		Update("next_id", id+1).Error; err != nil {
		return 0, err
	}

	return id, nil
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID. The row is read FOR UPDATE, so inside a
// command transaction concurrent mutations of the same order serialize:
// the second transaction blocks on the row lock and re-reads the committed
// status instead of acting on a stale one.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	if id < 0 {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
