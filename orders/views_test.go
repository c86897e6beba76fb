package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListForCustomerNewestFirst(t *testing.T) {
	customer := primitive.NewObjectID()
	p := testProduct(primitive.NewObjectID(), "Notebook", 4)
	env := newTestEnv(Rates{}, p)

	first := placeOrder(t, env, customer, Selection{ProductID: p.ID, Qty: 1})
	advanceClock(env, time.Hour)
	second := placeOrder(t, env, customer, Selection{ProductID: p.ID, Qty: 2})

	list, err := env.svc.ListForCustomer(context.Background(), customer)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	// Full line items are included on the customer view.
	assert.Len(t, list[0].Items, 1)
}

func TestListForCustomerExcludesOthers(t *testing.T) {
	customerA := primitive.NewObjectID()
	customerB := primitive.NewObjectID()
	p := testProduct(primitive.NewObjectID(), "Notebook", 4)
	env := newTestEnv(Rates{}, p)

	placeOrder(t, env, customerA, Selection{ProductID: p.ID, Qty: 1})

	list, err := env.svc.ListForCustomer(context.Background(), customerB)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListForSellerFiltersLineItems(t *testing.T) {
	sellerX := primitive.NewObjectID()
	sellerY := primitive.NewObjectID()
	customer := primitive.NewObjectID()
	px := testProduct(sellerX, "X Widget", 10)
	py := testProduct(sellerY, "Y Widget", 99)
	env := newTestEnv(Rates{}, px, py)

	order := placeOrder(t, env, customer,
		Selection{ProductID: px.ID, Qty: 1},
		Selection{ProductID: py.ID, Qty: 3},
	)

	views, err := env.svc.ListForSeller(context.Background(), sellerX)
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, order.ID, view.ID)
	assert.Equal(t, customer, view.Customer)
	require.Len(t, view.Items, 1)
	assert.Equal(t, sellerX, view.Items[0].Seller)
	// The other seller's name and price never leak into this view.
	for _, it := range view.Items {
		assert.NotEqual(t, "Y Widget", it.Name)
		assert.NotEqual(t, 99.0, it.Price)
	}
	// Totals still describe the whole order.
	assert.Equal(t, order.Total, view.Totals.Total)
}

func TestListForSellerSkipsUnrelatedOrders(t *testing.T) {
	sellerX := primitive.NewObjectID()
	sellerY := primitive.NewObjectID()
	customer := primitive.NewObjectID()
	py := testProduct(sellerY, "Y Widget", 99)
	env := newTestEnv(Rates{}, py)

	placeOrder(t, env, customer, Selection{ProductID: py.ID, Qty: 1})

	views, err := env.svc.ListForSeller(context.Background(), sellerX)
	require.NoError(t, err)
	assert.Empty(t, views)
}
