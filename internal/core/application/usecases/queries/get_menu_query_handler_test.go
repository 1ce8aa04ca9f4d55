package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/menurepo"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetMenuQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetMenuQueryHandler
}

func (suite *GetMenuQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&menurepo.MenuItemDTO{})
	suite.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.handler = queries.NewGetMenuQueryHandler(db, logger)
}

func (suite *GetMenuQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetMenuQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE menu_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_EmptyMenu_ReturnsEmptySlice() {
	query, err := queries.NewGetMenuQuery(kernel.ID(20))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_ReturnsOnlyRequestedRestaurantOrderedByName() {
	rows := []menurepo.MenuItemDTO{
		{RestaurantID: 20, Name: "Tiramisu", Price: 6.0, Description: "dessert"},
		{RestaurantID: 20, Name: "Margherita", Price: 9.5, Description: "pizza"},
		{RestaurantID: 99, Name: "Ramen", Price: 11.0, Description: "other restaurant"},
	}
	for i := range rows {
		suite.Require().NoError(suite.db.Create(&rows[i]).Error)
	}

	query, err := queries.NewGetMenuQuery(kernel.ID(20))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Margherita", result[0].Name)
	suite.Equal("Tiramisu", result[1].Name)
	suite.Equal(kernel.ID(20), result[0].RestaurantID)
	suite.InDelta(9.5, result[0].Price, 0.001)
}

func TestGetMenuQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetMenuQueryHandlerTestSuite))
}
