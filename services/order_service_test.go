package services

import (
	"context"
	"testing"
	"time"

	"orchid-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeOrderStore struct {
	orders map[string]*models.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]*models.Order)}
}

func (f *fakeOrderStore) FindAll(_ context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderStore) FindByID(_ context.Context, id string) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return order, nil
}

func (f *fakeOrderStore) FindByAccount(_ context.Context, accountID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.AccountID.Hex() == accountID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) FindByStatus(_ context.Context, status string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.OrderStatus == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) FindByDateRange(_ context.Context, start, end time.Time) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if !o.OrderDate.Before(start) && !o.OrderDate.After(end) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) Insert(_ context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	f.orders[order.ID.Hex()] = order
	return nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id string, status string) error {
	order, ok := f.orders[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	order.OrderStatus = status
	return nil
}

func (f *fakeOrderStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderStore) Delete(_ context.Context, id string) error {
	if _, ok := f.orders[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.orders, id)
	return nil
}

type fakeAccounts struct {
	accounts map[string]*models.Account
}

func (f *fakeAccounts) FindByID(_ context.Context, id string) (*models.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return account, nil
}

func newOrderFixture() (*OrderService, *fakeOrderStore, string, string, string) {
	accountID := primitive.NewObjectID()
	orchid1 := primitive.NewObjectID()
	orchid2 := primitive.NewObjectID()

	store := newFakeOrderStore()
	accounts := &fakeAccounts{accounts: map[string]*models.Account{
		accountID.Hex(): {ID: accountID, AccountName: "Dewi", Email: "dewi@example.com", Role: models.RoleUser},
	}}
	catalog := &fakeCatalog{orchids: map[string]*models.Orchid{
		orchid1.Hex(): {ID: orchid1, OrchidName: "Phalaenopsis", Price: 10.0},
		orchid2.Hex(): {ID: orchid2, OrchidName: "Vanda", Price: 40.0},
	}}

	svc := NewOrderService(store, catalog, accounts, nil)
	return svc, store, accountID.Hex(), orchid1.Hex(), orchid2.Hex()
}

func TestCreateOrderComputesTotalServerSide(t *testing.T) {
	svc, _, accountID, orchid1, orchid2 := newOrderFixture()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, accountID, models.CreateOrderRequest{
		OrderDetails: []models.OrderDetailRequest{
			{OrchidID: orchid1, Quantity: 3},
			{OrchidID: orchid2, Quantity: 1},
		},
		ShippingAddress: "Jl. Anggrek 5",
		PaymentMethod:   "transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, 70.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.OrderStatus)
	assert.Equal(t, "Dewi", order.AccountName)
	require.Len(t, order.OrderDetails, 2)
	assert.Equal(t, "Phalaenopsis", order.OrderDetails[0].OrchidName)
	assert.Equal(t, 30.0, order.OrderDetails[0].Subtotal)
	assert.False(t, order.ID.IsZero())
	assert.WithinDuration(t, time.Now(), order.OrderDate, time.Minute)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _, accountID, orchid1, _ := newOrderFixture()
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, accountID, models.CreateOrderRequest{})
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = svc.CreateOrder(ctx, accountID, models.CreateOrderRequest{
		OrderDetails: []models.OrderDetailRequest{{OrchidID: orchid1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.CreateOrder(ctx, accountID, models.CreateOrderRequest{
		OrderDetails: []models.OrderDetailRequest{{OrchidID: primitive.NewObjectID().Hex(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrOrchidNotFound)

	_, err = svc.CreateOrder(ctx, primitive.NewObjectID().Hex(), models.CreateOrderRequest{
		OrderDetails: []models.OrderDetailRequest{{OrchidID: orchid1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	svc, _, accountID, orchid1, _ := newOrderFixture()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, accountID, models.CreateOrderRequest{
		OrderDetails: []models.OrderDetailRequest{{OrchidID: orchid1, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateOrderStatus(ctx, order.ID.Hex(), models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.OrderStatus)

	_, err = svc.UpdateOrderStatus(ctx, order.ID.Hex(), "lost-in-the-mail")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)

	_, err = svc.UpdateOrderStatus(ctx, primitive.NewObjectID().Hex(), models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetOrdersByStatusRejectsUnknown(t *testing.T) {
	svc, _, _, _, _ := newOrderFixture()

	_, err := svc.GetOrdersByStatus(context.Background(), "teleported")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestCalculateOrderTotalRecomputes(t *testing.T) {
	svc, store, accountID, orchid1, orchid2 := newOrderFixture()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, accountID, models.CreateOrderRequest{
		OrderDetails: []models.OrderDetailRequest{
			{OrchidID: orchid1, Quantity: 2},
			{OrchidID: orchid2, Quantity: 2},
		},
	})
	require.NoError(t, err)

	// corrupt the stored amount; the recomputed value must win
	store.orders[order.ID.Hex()].TotalAmount = 1.0

	total, err := svc.CalculateOrderTotal(ctx, order.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 100.0, total)
}

func TestDeleteOrder(t *testing.T) {
	svc, _, accountID, orchid1, _ := newOrderFixture()
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, accountID, models.CreateOrderRequest{
		OrderDetails: []models.OrderDetailRequest{{OrchidID: orchid1, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(ctx, order.ID.Hex()))

	_, err = svc.GetOrderByID(ctx, order.ID.Hex())
	assert.ErrorIs(t, err, ErrOrderNotFound)

	assert.ErrorIs(t, svc.DeleteOrder(ctx, order.ID.Hex()), ErrOrderNotFound)
}
