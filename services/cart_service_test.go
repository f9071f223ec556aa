package services

import (
	"context"
	"sync"
	"testing"

	"orchid-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeCatalog struct {
	orchids map[string]*models.Orchid
}

func (f *fakeCatalog) FindByID(_ context.Context, id string) (*models.Orchid, error) {
	orchid, ok := f.orchids[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return orchid, nil
}

func newCartFixture() (*CartService, *fakeCatalog) {
	catalog := &fakeCatalog{orchids: map[string]*models.Orchid{
		"orchid-1": {OrchidName: "Phalaenopsis", OrchidURL: "https://img/phal.jpg", Price: 10.0},
		"orchid-2": {OrchidName: "Cattleya", OrchidURL: "https://img/catt.jpg", Price: 25.5},
	}}
	return NewCartService(NewCartStore(), catalog), catalog
}

func TestGetCartEmpty(t *testing.T) {
	svc, _ := newCartFixture()

	cart := svc.GetCart("acc-1")

	assert.Equal(t, "acc-1", cart.AccountID)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.TotalAmount)
	assert.Equal(t, 0, cart.TotalItems)
}

func TestAddToCartAccumulates(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "acc-1", "orchid-1", 2)
	require.NoError(t, err)

	cart, err := svc.AddToCart(ctx, "acc-1", "orchid-1", 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 50.0, cart.Items[0].Subtotal)
	assert.Equal(t, 50.0, cart.TotalAmount)
	assert.Equal(t, 5, cart.TotalItems)
}

func TestAddToCartSnapshotsCatalog(t *testing.T) {
	svc, catalog := newCartFixture()
	ctx := context.Background()

	cart, err := svc.AddToCart(ctx, "acc-1", "orchid-1", 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Phalaenopsis", cart.Items[0].OrchidName)
	assert.Equal(t, "https://img/phal.jpg", cart.Items[0].OrchidURL)
	assert.Equal(t, 10.0, cart.Items[0].UnitPrice)

	// a later catalog price change must not leak into the existing line
	catalog.orchids["orchid-1"].Price = 99.0
	cart, err = svc.AddToCart(ctx, "acc-1", "orchid-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cart.Items[0].UnitPrice)
	assert.Equal(t, 20.0, cart.Items[0].Subtotal)
}

func TestAddToCartInvalidQuantity(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "acc-1", "orchid-1", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddToCart(ctx, "acc-1", "orchid-1", -3)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	cart := svc.GetCart("acc-1")
	assert.Empty(t, cart.Items)
}

func TestAddToCartUnknownOrchidLeavesCartUnchanged(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "acc-1", "orchid-1", 2)
	require.NoError(t, err)

	_, err = svc.AddToCart(ctx, "acc-1", "nope", 1)
	assert.ErrorIs(t, err, ErrOrchidNotFound)

	cart := svc.GetCart("acc-1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestUpdateCartItemOverwrites(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "acc-1", "orchid-1", 5)
	require.NoError(t, err)

	cart, err := svc.UpdateCartItem("acc-1", "orchid-1", 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 20.0, cart.TotalAmount)
}

func TestUpdateCartItemZeroRemovesLine(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "acc-1", "orchid-1", 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "acc-1", "orchid-2", 1)
	require.NoError(t, err)

	cart, err := svc.UpdateCartItem("acc-1", "orchid-1", 0)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "orchid-2", cart.Items[0].OrchidID)
	assert.Equal(t, 25.5, cart.TotalAmount)
}

func TestUpdateCartItemErrors(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.UpdateCartItem("acc-1", "orchid-1", 2)
	assert.ErrorIs(t, err, ErrCartNotFound)

	_, err = svc.AddToCart(ctx, "acc-1", "orchid-1", 1)
	require.NoError(t, err)

	_, err = svc.UpdateCartItem("acc-1", "orchid-2", 2)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestRemoveFromCartIdempotent(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	// removing from a cart that never existed is fine
	cart := svc.RemoveFromCart("acc-1", "orchid-1")
	assert.Empty(t, cart.Items)

	_, err := svc.AddToCart(ctx, "acc-1", "orchid-1", 2)
	require.NoError(t, err)

	cart = svc.RemoveFromCart("acc-1", "orchid-1")
	assert.Empty(t, cart.Items)

	// second remove of the same line is a no-op
	cart = svc.RemoveFromCart("acc-1", "orchid-1")
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.TotalAmount)
}

func TestClearCartIdempotent(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	svc.ClearCart("acc-1")

	_, err := svc.AddToCart(ctx, "acc-1", "orchid-1", 3)
	require.NoError(t, err)

	svc.ClearCart("acc-1")
	svc.ClearCart("acc-1")

	cart := svc.GetCart("acc-1")
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
}

func TestCartsIsolatedPerOwner(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "acc-1", "orchid-1", 1)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "acc-2", "orchid-2", 4)
	require.NoError(t, err)

	cart1 := svc.GetCart("acc-1")
	cart2 := svc.GetCart("acc-2")

	require.Len(t, cart1.Items, 1)
	require.Len(t, cart2.Items, 1)
	assert.Equal(t, "orchid-1", cart1.Items[0].OrchidID)
	assert.Equal(t, "orchid-2", cart2.Items[0].OrchidID)
}

func TestTotalsAcrossLines(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "acc-1", "orchid-1", 3)
	require.NoError(t, err)
	cart, err := svc.AddToCart(ctx, "acc-1", "orchid-2", 2)
	require.NoError(t, err)

	assert.Equal(t, 3*10.0+2*25.5, cart.TotalAmount)
	assert.Equal(t, 5, cart.TotalItems)
}

func TestCartLifecycleScenario(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	cart, err := svc.AddToCart(ctx, "u1", "orchid-1", 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 20.0, cart.Items[0].Subtotal)
	assert.Equal(t, 20.0, cart.TotalAmount)

	cart, err = svc.AddToCart(ctx, "u1", "orchid-1", 3)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 50.0, cart.Items[0].Subtotal)

	cart, err = svc.UpdateCartItem("u1", "orchid-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 10.0, cart.Items[0].Subtotal)

	cart = svc.RemoveFromCart("u1", "orchid-1")
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.TotalAmount)
}

func TestConcurrentAddToCartSameLine(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()
	const n = 100

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.AddToCart(ctx, "acc-1", "orchid-1", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cart := svc.GetCart("acc-1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, n, cart.Items[0].Quantity)
	assert.Equal(t, float64(n)*10.0, cart.TotalAmount)
	assert.Equal(t, n, cart.TotalItems)
}

func TestConcurrentAddAndClear(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()
	const n = 50

	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.AddToCart(ctx, "acc-1", "orchid-1", 1)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			svc.ClearCart("acc-1")
		}()
	}
	wg.Wait()

	// whatever interleaving happened, the snapshot must be internally
	// consistent: totals derived from the surviving lines
	cart := svc.GetCart("acc-1")
	total := 0.0
	items := 0
	for _, item := range cart.Items {
		total += item.Subtotal
		items += item.Quantity
	}
	assert.Equal(t, total, cart.TotalAmount)
	assert.Equal(t, items, cart.TotalItems)
}

func TestConcurrentOwnersDoNotInterfere(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()
	const owners = 20
	const perOwner = 25

	var wg sync.WaitGroup
	for i := 0; i < owners; i++ {
		owner := string(rune('a' + i))
		for j := 0; j < perOwner; j++ {
			wg.Add(1)
			go func(owner string) {
				defer wg.Done()
				_, err := svc.AddToCart(ctx, owner, "orchid-2", 1)
				assert.NoError(t, err)
			}(owner)
		}
	}
	wg.Wait()

	for i := 0; i < owners; i++ {
		owner := string(rune('a' + i))
		cart := svc.GetCart(owner)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, perOwner, cart.Items[0].Quantity)
	}
}
