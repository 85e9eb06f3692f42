package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/accountrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/outboxrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     *services.AccessPolicy
	publisher  *kafka.Publisher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	provider, err := kernel.NewAddress(configs.ProviderAddress)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid provider address: %w", err)
	}

	client, err := kernel.NewAddress(configs.ClientAddress)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid client address: %w", err)
	}

	courier, err := kernel.NewAddress(configs.CourierAddress)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid courier address: %w", err)
	}

	policy, err := services.NewAccessPolicy(provider, client, courier)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid access policy: %w", err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     policy,
		publisher:  kafka.NewPublisher(configs.KafkaHost, configs.KafkaOrderEventsTopic),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}, nil
}

// AutoMigrate creates or updates the database schema for all aggregates,
// the id counter, the account ledger and the outbox.
func (c *CompositionRoot) AutoMigrate() error {
	return c.gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.CounterDTO{},
		&accountrepo.AccountDTO{},
		&outboxrepo.MessageDTO{},
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) escrowUoWFactory() commands.EscrowUoWFactory {
	return FuncEscrowUoWFactory(func() commands.EscrowUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.policy, c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetPriceCommandHandler() commands.SetPriceCommandHandler {
	return commands.NewSetPriceCommandHandler(c.policy, c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkProcessingCommandHandler() commands.MarkProcessingCommandHandler {
	return commands.NewMarkProcessingCommandHandler(c.policy, c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestPaymentCommandHandler() commands.RequestPaymentCommandHandler {
	return commands.NewRequestPaymentCommandHandler(c.policy, c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.policy, c.escrowUoWFactory())
}

func (c *CompositionRoot) CreateUploadInvoiceCommandHandler() commands.UploadInvoiceCommandHandler {
	return commands.NewUploadInvoiceCommandHandler(c.policy, c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	return commands.NewCloseOrderCommandHandler(c.policy, c.escrowUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.policy, c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetTrackingCommandHandler() commands.SetTrackingCommandHandler {
	return commands.NewSetTrackingCommandHandler(c.policy, c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNextOrderIDQueryHandler() queries.GetNextOrderIDQueryHandler {
	return queries.NewGetNextOrderIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBalanceQueryHandler() queries.GetBalanceQueryHandler {
	return queries.NewGetBalanceQueryHandler(c.gormDB)
}

// CreateJobManager wires the outbox relay against a repository that is not
// bound to any command transaction. The relay only reads committed rows.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		outboxrepo.NewGormOutboxRepository(c.gormDB),
		c.publisher,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncEscrowUoWFactory func() commands.EscrowUoW

func (f FuncEscrowUoWFactory) Create() commands.EscrowUoW {
	return f()
}
