package orderrepo_test

import (
	"context"
	"testing"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite tests the GORM order repository against
// a real PostgreSQL database.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

// noopTracker satisfies the aggregate tracker without a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.ID, any) {}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestAdd_PersistsOrderAndItemLines verifies that adding an order stores the
// order row plus one row per snapshot line and assigns identifiers back.
func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderAndItemLines() {
	ctx := context.Background()

	testOrder := suite.newOrderWithLines(
		"Margherita", 9.5, 2,
		"Tiramisu", 4.0, 1,
	)

	err := suite.repo.Add(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Require().False(testOrder.ID().IsZero())

	for _, line := range testOrder.Items() {
		suite.False(line.ID().IsZero(), "Line should receive an identifier")
		suite.Equal(testOrder.ID(), line.OrderID())
	}

	var lineCount int64
	err = suite.db.Model(&orderrepo.OrderItemDTO{}).
		Where("order_id = ?", testOrder.ID().Int64()).
		Count(&lineCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(2), lineCount)
}

// TestGet_ReturnsStoredOrder verifies a round trip of order fields.
func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ReturnsStoredOrder() {
	ctx := context.Background()

	testOrder := suite.newOrderWithLines("Margherita", 9.5, 1)
	err := suite.repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	stored, err := suite.repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), stored.ID())
	suite.Equal(testOrder.CustomerID(), stored.CustomerID())
	suite.Equal(testOrder.RestaurantID(), stored.RestaurantID())
	suite.Equal(order.StatusPlaced, stored.Status())
	suite.Nil(stored.DeliveryManID())
	suite.Equal("1 Main Street", stored.DeliveryAddress())
}

// TestGet_NotFound verifies the repository maps a missing row to the
// not-found error kind.
func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repo.Get(ctx, kernel.ID(424242))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestUpdate_PersistsStatusAndAssignment verifies progressing an order and
// assigning a delivery man survive a round trip.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndAssignment() {
	ctx := context.Background()

	testOrder := suite.newOrderWithLines("Margherita", 9.5, 1)
	err := suite.repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = testOrder.Progress(order.StatusAccepted, nil)
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = testOrder.Progress(order.StatusReadyForPickup, nil)
	suite.Require().NoError(err)
	deliveryMan := kernel.ID(77)
	err = testOrder.Progress(order.StatusOutForDelivery, &deliveryMan)
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, testOrder)
	suite.Require().NoError(err)

	stored, err := suite.repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusOutForDelivery, stored.Status())
	suite.Require().NotNil(stored.DeliveryManID())
	suite.Equal(deliveryMan, *stored.DeliveryManID())
}

// TestUpdate_NotFound verifies updating a vanished order reports not-found.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()

	testOrder := suite.newOrderWithLines("Margherita", 9.5, 1)
	err := suite.repo.Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = suite.db.Exec("DELETE FROM orders WHERE id = ?", testOrder.ID().Int64()).Error
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrderWithLines(args ...any) *order.Order {
	suite.Require().Zero(len(args) % 3)

	lines := make([]*order.Item, 0, len(args)/3)
	for i := 0; i < len(args); i += 3 {
		line, err := order.NewItem(args[i].(string), args[i+1].(float64), args[i+2].(int))
		suite.Require().NoError(err)
		lines = append(lines, line)
	}

	testOrder, err := order.NewOrder(kernel.ID(10), kernel.ID(20), "1 Main Street", "", lines)
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
