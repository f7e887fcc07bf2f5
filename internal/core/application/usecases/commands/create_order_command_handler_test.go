package commands_test

import (
	"context"
	"errors"
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTrackingCode(ctx context.Context, code kernel.TrackingCode) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockShipmentUpdateRepository struct{ mock.Mock }

func (m *MockShipmentUpdateRepository) Add(ctx context.Context, u *shipment.ShipmentUpdate) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockShipmentUpdateRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*shipment.ShipmentUpdate, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.ShipmentUpdate), args.Error(1)
}

type MockOrderUoW struct {
	mock.Mock
	orderRepo *MockOrderRepository
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.orderRepo
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

func newOrderUoW() *MockOrderUoW {
	uow := &MockOrderUoW{orderRepo: new(MockOrderRepository)}
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	return uow
}

func validCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand(
		"Jane Doe", "jane@x.com", "",
		"1 Main St, City, ST 00000", "2 Oak Ave, Town, ST 00001",
		nil, kernel.NewUUID(),
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	uow := newOrderUoW()
	uow.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil)

	handler := commands.NewCreateOrderCommandHandler(
		FuncOrderUoWFactory(func() commands.OrderUoW { return uow }),
	)

	created, err := handler.Handle(context.Background(), validCreateOrderCommand(t))

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.StatusPending, created.Status())
	require.NoError(t, created.TrackingCode().Validate())
	assert.Equal(t, created.CreatedAt(), created.UpdatedAt())
	require.NotNil(t, created.CreatedBy())

	uow.orderRepo.AssertNumberOfCalls(t, "Add", 1)
	uow.AssertCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_RetriesOnTrackingCodeCollision(t *testing.T) {
	uow := newOrderUoW()
	uow.orderRepo.On("Add", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey).Once()
	uow.orderRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

	handler := commands.NewCreateOrderCommandHandler(
		FuncOrderUoWFactory(func() commands.OrderUoW { return uow }),
	)

	created, err := handler.Handle(context.Background(), validCreateOrderCommand(t))

	require.NoError(t, err)
	require.NotNil(t, created)
	uow.orderRepo.AssertNumberOfCalls(t, "Add", 2)
}

func TestCreateOrderCommandHandler_Handle_GivesUpAfterRepeatedCollisions(t *testing.T) {
	uow := newOrderUoW()
	uow.orderRepo.On("Add", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	handler := commands.NewCreateOrderCommandHandler(
		FuncOrderUoWFactory(func() commands.OrderUoW { return uow }),
	)

	_, err := handler.Handle(context.Background(), validCreateOrderCommand(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	uow.orderRepo.AssertNumberOfCalls(t, "Add", 3)
}

func TestCreateOrderCommandHandler_Handle_NonCollisionErrorIsNotRetried(t *testing.T) {
	persistErr := errors.New("connection reset")
	uow := newOrderUoW()
	uow.orderRepo.On("Add", mock.Anything, mock.Anything).Return(persistErr)

	handler := commands.NewCreateOrderCommandHandler(
		FuncOrderUoWFactory(func() commands.OrderUoW { return uow }),
	)

	_, err := handler.Handle(context.Background(), validCreateOrderCommand(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, persistErr)
	uow.orderRepo.AssertNumberOfCalls(t, "Add", 1)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	handler := commands.NewCreateOrderCommandHandler(
		FuncOrderUoWFactory(func() commands.OrderUoW { return newOrderUoW() }),
	)

	_, err := handler.Handle(context.Background(), commands.CreateOrderCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
