package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/arrows94/3d-order-manager/internal/adapters/out/postgres/orderrepo"
	"github.com/arrows94/3d-order-manager/internal/core/application/usecases/queries"
	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/domain/model/order"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TrackOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.TrackOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *TrackOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewTrackOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *TrackOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *TrackOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_NewOrder_ReturnsViewWithoutPrice() {
	ctx := context.Background()

	o := suite.createOrder()
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	query, err := queries.NewTrackOrderQuery(o.CustomerToken())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(o.ID()))
	suite.Equal(order.New.String(), result.Status)
	suite.Equal(o.Submission().Link(), result.Link)
	suite.Equal(o.Submission().Description(), result.Description)
	suite.Nil(result.Price)
	suite.Empty(result.OperatorNote)
	suite.WithinDuration(o.CreatedAt(), result.CreatedAt, time.Second)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_PricedOrder_ReturnsPriceAndNotes() {
	ctx := context.Background()

	o := suite.createOrder()
	now := time.Now().UTC()
	price, err := kernel.NewPrice(1250, "EUR")
	suite.Require().NoError(err)

	suite.Require().NoError(o.Accept("sliced, 6h print", now))
	suite.Require().NoError(o.SendPrice(price, now))
	suite.Require().NoError(o.AcceptPrice(o.CustomerToken(), "deal", now))
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	query, err := queries.NewTrackOrderQuery(o.CustomerToken())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(order.PriceAccepted.String(), result.Status)
	suite.Require().NotNil(result.Price)
	suite.True(result.Price.IsEqual(price))
	suite.Equal("sliced, 6h print", result.OperatorNote)
	suite.Equal("deal", result.CustomerNote)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_UnknownToken_ReturnsNotFoundError() {
	ctx := context.Background()

	o := suite.createOrder()
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	otherToken, err := kernel.NewCustomerToken()
	suite.Require().NoError(err)

	query, err := queries.NewTrackOrderQuery(otherToken)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_TokenOnlyMatchesOwnOrder() {
	ctx := context.Background()

	mine := suite.createOrder()
	other := suite.createOrder()
	suite.Require().NoError(suite.orderRepo.Add(ctx, mine))
	suite.Require().NoError(suite.orderRepo.Add(ctx, other))

	query, err := queries.NewTrackOrderQuery(mine.CustomerToken())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(mine.ID()))
	suite.False(result.ID.IsEqual(other.ID()))
}

func (suite *TrackOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.TrackOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewTrackOrderQuery constructor")
}

func (suite *TrackOrderQueryHandlerTestSuite) createOrder() *order.Order {
	token, err := kernel.NewCustomerToken()
	suite.Require().NoError(err)
	customer, err := order.NewCustomer("Iris Falk", "iris@example.com")
	suite.Require().NoError(err)
	submission, err := order.NewSubmission("http://example.com/vase.stl", "", "spiral vase mode")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), token, customer, submission, time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func TestTrackOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackOrderQueryHandlerTestSuite))
}
