package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/adapters/out/postgres/orderrepo"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey,
	// which the create path relies on for collision retries.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(time.Now().UTC())

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_ReturnsDuplicatedKey() {
	ctx := context.Background()
	first := suite.createTestOrder(time.Now().UTC())
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Second order with the same tracking code must be rejected by the
	// unique index.
	clone, err := order.NewOrder(
		kernel.NewUUID(), first.TrackingCode(),
		"John Roe", "john@x.com", "",
		"3 Pine Rd, City, ST 00002", "4 Elm St, Town, ST 00003",
		nil, nil, time.Now().UTC(),
	)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, clone)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTrips() {
	ctx := context.Background()
	eta := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Microsecond)
	createdBy := kernel.NewUUID()
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.GenerateTrackingCode(),
		"Jane Doe", "jane@x.com", "+371 20000000",
		"1 Main St, City, ST 00000", "2 Oak Ave, Town, ST 00001",
		&eta, &createdBy, time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(testOrder.ID()))
	suite.True(loaded.TrackingCode().IsEqual(testOrder.TrackingCode()))
	suite.Equal("Jane Doe", loaded.CustomerName())
	suite.Equal("jane@x.com", loaded.CustomerEmail())
	suite.Equal("+371 20000000", loaded.CustomerPhone())
	suite.Equal(order.StatusPending, loaded.Status())
	suite.Require().NotNil(loaded.EstimatedDelivery())
	suite.True(loaded.EstimatedDelivery().Equal(eta))
	suite.Require().NotNil(loaded.CreatedBy())
	suite.True(loaded.CreatedBy().IsEqual(createdBy))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownOrder_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByTrackingCode_ExistingOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(time.Now().UTC())
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.GetByTrackingCode(ctx, testOrder.TrackingCode())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testOrder.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByTrackingCode_UnknownCode_ReturnsNotFound() {
	_, err := suite.repository.GetByTrackingCode(context.Background(), kernel.GenerateTrackingCode())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChange_Persists() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(time.Now().UTC().Truncate(time.Microsecond))
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	at := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(testOrder.ApplyUpdate(order.StatusInTransit, at))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusInTransit, loaded.Status())
	suite.True(loaded.UpdatedAt().Equal(at))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder_ReturnsNotFound() {
	testOrder := suite.createTestOrder(time.Now().UTC())

	err := suite.repository.Update(context.Background(), testOrder)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction_LocksRow() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(time.Now().UTC())
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	tx := suite.db.WithContext(ctx).Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
	loaded, err := txRepo.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testOrder.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsOldestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	second := suite.createTestOrder(base.Add(time.Minute))
	first := suite.createTestOrder(base)
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, first))

	orders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(orders[0].ID().IsEqual(first.ID()))
	suite.True(orders[1].ID().IsEqual(second.ID()))
}

// createTestOrder creates a basic test order created at the given time.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(createdAt time.Time) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.GenerateTrackingCode(),
		"Jane Doe", "jane@x.com", "",
		"1 Main St, City, ST 00000", "2 Oak Ave, Town, ST 00001",
		nil, nil, createdAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
