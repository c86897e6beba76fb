package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-marketplace/middleware"
	"go-marketplace/models"
	"go-marketplace/orders"
	"go-marketplace/utils"
)

// In-memory stores backing the order service under test.

type memProducts map[primitive.ObjectID]models.Product

func (m memProducts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := m[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m memProducts) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	var out []models.Product
	for _, id := range ids {
		if p, ok := m[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type memCarts map[primitive.ObjectID]*models.Cart

func (m memCarts) FindByCustomer(_ context.Context, customerID primitive.ObjectID) (*models.Cart, error) {
	cart, ok := m[customerID]
	if !ok {
		return nil, nil
	}
	cp := *cart
	return &cp, nil
}

func (m memCarts) SetItems(_ context.Context, customerID primitive.ObjectID, items []models.CartItem) error {
	cart, ok := m[customerID]
	if !ok {
		cart = &models.Cart{Customer: customerID}
		m[customerID] = cart
	}
	cart.Items = items
	return nil
}

type memOrders map[primitive.ObjectID]*models.Order

func (m memOrders) Insert(_ context.Context, o *models.Order) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	cp := *o
	cp.ID = id
	m[id] = &cp
	return id, nil
}

func (m memOrders) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	o, ok := m[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m memOrders) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) error {
	o, ok := m[id]
	if !ok {
		return orders.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (m memOrders) FindByCustomer(_ context.Context, customerID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m {
		if o.Customer == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m memOrders) FindBySeller(_ context.Context, sellerID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m {
		for _, it := range o.Items {
			if it.Seller == sellerID {
				out = append(out, *o)
				break
			}
		}
	}
	return out, nil
}

type orderTestEnv struct {
	controller *OrderController
	orders     memOrders
	carts      memCarts
	products   memProducts
}

func newOrderTestEnv(products ...models.Product) *orderTestEnv {
	env := &orderTestEnv{
		orders:   memOrders{},
		carts:    memCarts{},
		products: memProducts{},
	}
	for _, p := range products {
		env.products[p.ID] = p
	}
	svc := orders.NewService(env.orders, env.carts, env.products, orders.Rates{
		TaxRate:      decimal.NewFromFloat(0.05),
		ShippingFlat: decimal.NewFromInt(50),
	})
	env.controller = &OrderController{Service: svc}
	return env
}

func authedRequest(t *testing.T, method, target string, body interface{}, actor primitive.ObjectID, role string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	r := httptest.NewRequest(method, target, &buf)
	claims := &utils.Claims{ID: actor.Hex(), Role: role}
	return r.WithContext(context.WithValue(r.Context(), middleware.UserContextKey, claims))
}

func TestCreateOrderHandler(t *testing.T) {
	seller := primitive.NewObjectID()
	customer := primitive.NewObjectID()
	p := models.Product{ID: primitive.NewObjectID(), Name: "Lamp", Price: 100, Seller: seller}
	env := newOrderTestEnv(p)

	body := map[string]interface{}{
		"source": "direct",
		"items": []map[string]interface{}{
			{"productId": p.ID.Hex(), "qty": 2},
		},
		"payment": map[string]string{"method": "upi", "status": "paid"},
	}
	req := authedRequest(t, http.MethodPost, "/api/orders", body, customer, "customer")
	rec := httptest.NewRecorder()

	env.controller.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var order models.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
	assert.Equal(t, 200.0, order.Subtotal)
	assert.Equal(t, 260.0, order.Total)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "upi", order.Payment.Method)
}

func TestCreateOrderHandlerEmptyCart(t *testing.T) {
	env := newOrderTestEnv()
	req := authedRequest(t, http.MethodPost, "/api/orders",
		map[string]string{"source": "cart"}, primitive.NewObjectID(), "customer")
	rec := httptest.NewRecorder()

	env.controller.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.orders)
}

func TestCreateOrderHandlerInvalidSource(t *testing.T) {
	env := newOrderTestEnv()
	req := authedRequest(t, http.MethodPost, "/api/orders",
		map[string]string{"source": "telepathy"}, primitive.NewObjectID(), "customer")
	rec := httptest.NewRecorder()

	env.controller.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderHandlerMissingProduct(t *testing.T) {
	env := newOrderTestEnv()
	body := map[string]interface{}{
		"source": "direct",
		"items": []map[string]interface{}{
			{"productId": primitive.NewObjectID().Hex(), "qty": 1},
		},
	}
	req := authedRequest(t, http.MethodPost, "/api/orders", body, primitive.NewObjectID(), "customer")
	rec := httptest.NewRecorder()

	env.controller.Create(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, env.orders)
}

func TestCreateOrderHandlerDefaultsToCartSource(t *testing.T) {
	customer := primitive.NewObjectID()
	p := models.Product{ID: primitive.NewObjectID(), Name: "Lamp", Price: 10, Seller: primitive.NewObjectID()}
	env := newOrderTestEnv(p)
	env.carts[customer] = &models.Cart{
		Customer: customer,
		Items:    []models.CartItem{{Product: p.ID, Qty: 1}},
	}

	req := authedRequest(t, http.MethodPost, "/api/orders", map[string]string{}, customer, "customer")
	rec := httptest.NewRecorder()

	env.controller.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, env.carts[customer].Items)
}

func TestCancelHandler(t *testing.T) {
	customer := primitive.NewObjectID()
	p := models.Product{ID: primitive.NewObjectID(), Name: "Lamp", Price: 10, Seller: primitive.NewObjectID()}
	env := newOrderTestEnv(p)
	order := placeTestOrder(t, env, customer, p.ID)

	req := authedRequest(t, http.MethodPut,
		fmt.Sprintf("/api/orders/%s/cancel", order.ID.Hex()), nil, customer, "customer")
	req = mux.SetURLVars(req, map[string]string{"id": order.ID.Hex()})
	rec := httptest.NewRecorder()

	env.controller.Cancel(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var cancelled models.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cancelled))
	assert.Equal(t, "cancelled", cancelled.Status)
}

func TestCancelHandlerForbidden(t *testing.T) {
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	p := models.Product{ID: primitive.NewObjectID(), Name: "Lamp", Price: 10, Seller: primitive.NewObjectID()}
	env := newOrderTestEnv(p)
	order := placeTestOrder(t, env, owner, p.ID)

	req := authedRequest(t, http.MethodPut,
		fmt.Sprintf("/api/orders/%s/cancel", order.ID.Hex()), nil, stranger, "customer")
	req = mux.SetURLVars(req, map[string]string{"id": order.ID.Hex()})
	rec := httptest.NewRecorder()

	env.controller.Cancel(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCancelHandlerNotFound(t *testing.T) {
	env := newOrderTestEnv()
	id := primitive.NewObjectID()

	req := authedRequest(t, http.MethodPut,
		fmt.Sprintf("/api/orders/%s/cancel", id.Hex()), nil, primitive.NewObjectID(), "customer")
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})
	rec := httptest.NewRecorder()

	env.controller.Cancel(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatusHandler(t *testing.T) {
	seller := primitive.NewObjectID()
	customer := primitive.NewObjectID()
	p := models.Product{ID: primitive.NewObjectID(), Name: "Lamp", Price: 10, Seller: seller}
	env := newOrderTestEnv(p)
	order := placeTestOrder(t, env, customer, p.ID)

	req := authedRequest(t, http.MethodPut,
		fmt.Sprintf("/api/orders/%s/status", order.ID.Hex()),
		map[string]string{"status": "shipped"}, seller, "seller")
	req = mux.SetURLVars(req, map[string]string{"id": order.ID.Hex()})
	rec := httptest.NewRecorder()

	env.controller.UpdateStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, "shipped", updated.Status)
}

func TestUpdateStatusHandlerInvalidStatus(t *testing.T) {
	seller := primitive.NewObjectID()
	p := models.Product{ID: primitive.NewObjectID(), Name: "Lamp", Price: 10, Seller: seller}
	env := newOrderTestEnv(p)
	order := placeTestOrder(t, env, primitive.NewObjectID(), p.ID)

	req := authedRequest(t, http.MethodPut,
		fmt.Sprintf("/api/orders/%s/status", order.ID.Hex()),
		map[string]string{"status": "lost"}, seller, "seller")
	req = mux.SetURLVars(req, map[string]string{"id": order.ID.Hex()})
	rec := httptest.NewRecorder()

	env.controller.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStatusHandlerForbidden(t *testing.T) {
	seller := primitive.NewObjectID()
	outsider := primitive.NewObjectID()
	p := models.Product{ID: primitive.NewObjectID(), Name: "Lamp", Price: 10, Seller: seller}
	env := newOrderTestEnv(p)
	order := placeTestOrder(t, env, primitive.NewObjectID(), p.ID)

	req := authedRequest(t, http.MethodPut,
		fmt.Sprintf("/api/orders/%s/status", order.ID.Hex()),
		map[string]string{"status": "shipped"}, outsider, "seller")
	req = mux.SetURLVars(req, map[string]string{"id": order.ID.Hex()})
	rec := httptest.NewRecorder()

	env.controller.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSellerOrdersHandlerFiltersItems(t *testing.T) {
	sellerX := primitive.NewObjectID()
	sellerY := primitive.NewObjectID()
	customer := primitive.NewObjectID()
	px := models.Product{ID: primitive.NewObjectID(), Name: "X Widget", Price: 10, Seller: sellerX}
	py := models.Product{ID: primitive.NewObjectID(), Name: "Y Widget", Price: 99, Seller: sellerY}
	env := newOrderTestEnv(px, py)
	placeTestOrder(t, env, customer, px.ID, py.ID)

	req := authedRequest(t, http.MethodGet, "/api/orders/seller", nil, sellerX, "seller")
	rec := httptest.NewRecorder()

	env.controller.SellerOrders(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var views []orders.SellerOrderView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&views))
	require.Len(t, views, 1)
	require.Len(t, views[0].Items, 1)
	assert.Equal(t, "X Widget", views[0].Items[0].Name)
}

func placeTestOrder(t *testing.T, env *orderTestEnv, customer primitive.ObjectID, productIDs ...primitive.ObjectID) *models.Order {
	t.Helper()
	selections := make([]orders.Selection, 0, len(productIDs))
	for _, id := range productIDs {
		selections = append(selections, orders.Selection{ProductID: id, Qty: 1})
	}
	order, err := env.controller.Service.CreateOrder(context.Background(), customer, orders.CreateOrderInput{
		Source:     orders.SourceDirect,
		Selections: selections,
	})
	require.NoError(t, err)
	return order
}
