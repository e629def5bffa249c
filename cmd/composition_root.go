package cmd

import (
	"log/slog"

	httpin "github.com/arrows94/3d-order-manager/internal/adapters/in/http"
	"github.com/arrows94/3d-order-manager/internal/adapters/out/adminauth"
	"github.com/arrows94/3d-order-manager/internal/adapters/out/filestore"
	"github.com/arrows94/3d-order-manager/internal/adapters/out/postgres"
	"github.com/arrows94/3d-order-manager/internal/adapters/out/postgres/orderrepo"
	"github.com/arrows94/3d-order-manager/internal/core/application/usecases/commands"
	"github.com/arrows94/3d-order-manager/internal/core/application/usecases/queries"
	"github.com/arrows94/3d-order-manager/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	uploads    *filestore.DiskUploadStore
	auth       *adminauth.EnvAuthenticator
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	uploads, err := filestore.NewDiskUploadStore(config.UploadDir, config.MaxUploadBytes)
	if err != nil {
		return CompositionRoot{}, err
	}

	auth, err := adminauth.NewEnvAuthenticator(config.AdminUser, config.AdminPassword)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		uploads:    uploads,
		auth:       auth,
	}, nil
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateSetPriceCommandHandler() commands.SetPriceCommandHandler {
	return commands.NewSetPriceCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateDecidePriceCommandHandler() commands.DecidePriceCommandHandler {
	return commands.NewDecidePriceCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueueQueryHandler() queries.GetOrderQueueQueryHandler {
	return queries.NewGetOrderQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateSubmitOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateRejectOrderCommandHandler(),
		c.CreateSetPriceCommandHandler(),
		c.CreateDecidePriceCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateGetOrderQueueQueryHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.uploads,
		c.auth,
		c.config.DefaultCurrency,
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	cleanup := jobs.NewUploadCleanupJob(
		c.uploads,
		orderrepo.NewOrderExistenceChecker(c.gormDB),
		c.config.UploadRetention,
		c.config.UploadCleanupSchedule,
		logger,
	)
	return jobs.NewJobManager(cleanup)
}

func (c *CompositionRoot) createOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
