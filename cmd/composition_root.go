package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/adapters/out/filestore"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	evidenceStorage ports.EvidenceStorage
	publisher       ports.OrderEventPublisher
	logger          *slog.Logger
	stuckThreshold  time.Duration
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	evidenceStorage, err := filestore.NewLocalEvidenceStorage(config.EvidenceDir)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("init evidence storage: %w", err)
	}

	stuckThreshold, err := time.ParseDuration(config.StuckOrderThreshold)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("parse stuck order threshold: %w", err)
	}

	publisher := kafka.NewPublisher([]string{config.KafkaHost}, config.KafkaOrderFulfillmentTopic)

	return CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		evidenceStorage: evidenceStorage,
		publisher:       publisher,
		logger:          logger,
		stuckThreshold:  stuckThreshold,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateFulfillmentCommandHandler() commands.UpdateFulfillmentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateFulfillmentCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAttachEvidenceCommandHandler() commands.AttachEvidenceCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachEvidenceCommandHandler(f, c.evidenceStorage, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRemoveEvidenceCommandHandler() commands.RemoveEvidenceCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveEvidenceCommandHandler(f, c.evidenceStorage, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusCatalogQueryHandler() queries.GetStatusCatalogQueryHandler {
	return queries.NewGetStatusCatalogQueryHandler()
}

// CreateJobManager wires the background jobs. The repository handed to the
// jobs reads on the main connection outside any unit of work.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	orders := c.uowFactory.Create().OrderRepository()
	return jobs.NewJobManager(orders, c.stuckThreshold, c.logger)
}

func (c *CompositionRoot) EvidenceStorage() ports.EvidenceStorage {
	return c.evidenceStorage
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
