package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FetchOrders(ctx context.Context, userID *int64) ([]*Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) FetchOrderItems(ctx context.Context, orderIDs []int64) (map[int64][]OrderItem, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]OrderItem), args.Error(1)
}

func (m *MockRepository) CreateOrderTx(ctx context.Context, input CreateOrderInput) (int64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetOrderStatus(ctx context.Context, orderID int64) (Status, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(Status), args.Error(1)
}

func (m *MockRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

// --- Tests ---

func TestService_GetOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("AttachesItems", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		userID := int64(7)
		orders := []*Order{{ID: 2, UserID: 7}, {ID: 1, UserID: 7}}
		repo.On("FetchOrders", ctx, &userID).Return(orders, nil)
		repo.On("FetchOrderItems", ctx, []int64{2, 1}).Return(map[int64][]OrderItem{
			2: {{OrderID: 2, ProductID: 1, Quantity: 3, Unit: UnitBox}},
		}, nil)

		res, err := svc.GetOrders(ctx, &userID)
		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Len(t, res[0].Items, 1)
		assert.NotNil(t, res[1].Items)
		assert.Empty(t, res[1].Items)
		repo.AssertExpectations(t)
	})

	t.Run("NoOrders", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("FetchOrders", ctx, (*int64)(nil)).Return([]*Order{}, nil)

		res, err := svc.GetOrders(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, res)
		repo.AssertNotCalled(t, "FetchOrderItems", mock.Anything, mock.Anything)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("FetchOrders", ctx, (*int64)(nil)).Return(nil, errors.New("db down"))

		_, err := svc.GetOrders(ctx, nil)
		assert.ErrorIs(t, err, ErrFailedFetchOrders)
	})
}

func TestService_CreateOrder(t *testing.T) {
	ctx := context.Background()
	valid := CreateOrderInput{
		UserID:       7,
		EmployeeName: " Ann ",
		Items: []NewOrderItem{
			{ProductID: 1, Quantity: 2, Unit: UnitPack},
			{ProductID: 2, Quantity: 10, Unit: UnitPiece},
		},
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		expected := valid
		expected.EmployeeName = "Ann"
		repo.On("CreateOrderTx", ctx, expected).Return(int64(42), nil)

		id, err := svc.CreateOrder(ctx, valid)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
		repo.AssertExpectations(t)
	})

	t.Run("ValidationFailures", func(t *testing.T) {
		tests := []struct {
			name  string
			input CreateOrderInput
			want  error
		}{
			{"MissingUser", CreateOrderInput{Items: valid.Items}, ErrMissingUser},
			{"NoItems", CreateOrderInput{UserID: 7}, ErrEmptyItems},
			{"ZeroQuantity", CreateOrderInput{UserID: 7, Items: []NewOrderItem{{ProductID: 1, Quantity: 0, Unit: UnitBox}}}, ErrInvalidQuantity},
			{"BadUnit", CreateOrderInput{UserID: 7, Items: []NewOrderItem{{ProductID: 1, Quantity: 1, Unit: "crate"}}}, ErrInvalidUnit},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := new(MockRepository)
				svc := NewService(repo)

				_, err := svc.CreateOrder(ctx, tt.input)
				assert.ErrorIs(t, err, tt.want)
				repo.AssertNotCalled(t, "CreateOrderTx", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("CreateOrderTx", ctx, mock.Anything).Return(int64(0), ErrProductNotFound)

		_, err := svc.CreateOrder(ctx, valid)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("CreateOrderTx", ctx, mock.Anything).Return(int64(0), errors.New("db error"))

		_, err := svc.CreateOrder(ctx, valid)
		assert.ErrorIs(t, err, ErrFailedCreateOrder)
	})
}

func TestService_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("ForwardSteps", func(t *testing.T) {
		for _, step := range [][2]Status{
			{StatusPending, StatusCollected},
			{StatusCollected, StatusCompleted},
		} {
			repo := new(MockRepository)
			svc := NewService(repo)
			repo.On("GetOrderStatus", ctx, int64(5)).Return(step[0], nil)
			repo.On("UpdateOrderStatus", ctx, int64(5), step[1]).Return(nil)

			assert.NoError(t, svc.UpdateOrderStatus(ctx, 5, step[1]))
			repo.AssertExpectations(t)
		}
	})

	t.Run("RejectsSkipAndBackward", func(t *testing.T) {
		for _, step := range [][2]Status{
			{StatusPending, StatusCompleted},
			{StatusCompleted, StatusPending},
			{StatusCollected, StatusPending},
			{StatusCompleted, StatusCompleted},
		} {
			repo := new(MockRepository)
			svc := NewService(repo)
			repo.On("GetOrderStatus", ctx, int64(5)).Return(step[0], nil)

			err := svc.UpdateOrderStatus(ctx, 5, step[1])
			assert.ErrorIs(t, err, ErrInvalidTransition)
			repo.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		assert.ErrorIs(t, svc.UpdateOrderStatus(ctx, 5, "shipped"), ErrInvalidStatus)
		repo.AssertNotCalled(t, "GetOrderStatus", mock.Anything, mock.Anything)
	})

	t.Run("MissingOrderID", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		assert.ErrorIs(t, svc.UpdateOrderStatus(ctx, 0, StatusCollected), ErrOrderIDRequired)
		repo.AssertNotCalled(t, "GetOrderStatus", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("GetOrderStatus", ctx, int64(99)).Return(Status(""), ErrOrderNotFound)

		assert.ErrorIs(t, svc.UpdateOrderStatus(ctx, 99, StatusCollected), ErrOrderNotFound)
	})

	t.Run("UpdateFails", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("GetOrderStatus", ctx, int64(5)).Return(StatusPending, nil)
		repo.On("UpdateOrderStatus", ctx, int64(5), StatusCollected).Return(errors.New("db error"))

		assert.ErrorIs(t, svc.UpdateOrderStatus(ctx, 5, StatusCollected), ErrFailedUpdateOrder)
	})
}
