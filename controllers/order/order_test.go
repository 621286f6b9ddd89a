package orderControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Aayushsah6969/ShoeStore/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func seedData(t *testing.T, db *gorm.DB) (models.User, models.Product) {
	t.Helper()
	user := models.User{FullName: "Buyer", Email: "buyer@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	sale := 80.0
	product := models.Product{
		Name:      "Air Runner",
		Brand:     "Nike",
		Category:  "running",
		Price:     100,
		SalePrice: &sale,
		Stock:     5,
		Sizes:     []string{"42", "43"},
	}
	require.NoError(t, db.Create(&product).Error)
	return user, product
}

func orderRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	fakeSession := func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
	r.POST("/api/orders/create", fakeSession, CreateOrderHandler(db))
	r.PUT("/api/orders/update/:id", UpdateOrderStatusHandler(db))
	r.GET("/api/orders/getAllOrders", GetAllOrdersHandler(db))
	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrderSnapshotsSalePriceAndDecrementsStock(t *testing.T) {
	db := setupTestDB(t)
	user, product := seedData(t, db)
	router := orderRouter(db, user.ID)

	w := doJSON(t, router, http.MethodPost, "/api/orders/create", gin.H{
		"items": []gin.H{{"product_id": product.ID, "quantity": 2, "size": "42"}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, 160.0, order.TotalAmount) // sale price, not list price
	assert.Equal(t, models.DeliveryStatusPending, order.DeliveryStatus)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 80.0, order.Items[0].PriceAtPurchase)
	assert.Equal(t, "42", order.Items[0].Size)

	var after models.Product
	require.NoError(t, db.First(&after, product.ID).Error)
	assert.Equal(t, 3, after.Stock)
}

func TestCreateOrderRejectsInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	user, product := seedData(t, db)
	router := orderRouter(db, user.ID)

	w := doJSON(t, router, http.MethodPost, "/api/orders/create", gin.H{
		"items": []gin.H{{"product_id": product.ID, "quantity": 6}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No oversell, no partial order.
	var after models.Product
	require.NoError(t, db.First(&after, product.ID).Error)
	assert.Equal(t, 5, after.Stock)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderRollsBackEarlierDecrements(t *testing.T) {
	db := setupTestDB(t)
	user, product := seedData(t, db)
	second := models.Product{Name: "Court Classic", Price: 90, Stock: 1}
	require.NoError(t, db.Create(&second).Error)
	router := orderRouter(db, user.ID)

	w := doJSON(t, router, http.MethodPost, "/api/orders/create", gin.H{
		"items": []gin.H{
			{"product_id": product.ID, "quantity": 2},
			{"product_id": second.ID, "quantity": 3},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The first item's decrement must have been rolled back with the rest.
	var first models.Product
	require.NoError(t, db.First(&first, product.ID).Error)
	assert.Equal(t, 5, first.Stock)
}

func TestUpdateOrderStatusFollowsTransitionGraph(t *testing.T) {
	db := setupTestDB(t)
	user, product := seedData(t, db)
	router := orderRouter(db, user.ID)

	w := doJSON(t, router, http.MethodPost, "/api/orders/create", gin.H{
		"items": []gin.H{{"product_id": product.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	path := fmt.Sprintf("/api/orders/update/%d", order.ID)

	// Pending -> Shipped -> Delivered is legal.
	w = doJSON(t, router, http.MethodPut, path, gin.H{"delivery_status": "Shipped"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPut, path, gin.H{"delivery_status": "Delivered"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Delivered is terminal.
	w = doJSON(t, router, http.MethodPut, path, gin.H{"delivery_status": "Pending"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var after models.Order
	require.NoError(t, db.First(&after, order.ID).Error)
	assert.Equal(t, models.DeliveryStatusDelivered, after.DeliveryStatus)
}

func TestUpdateOrderStatusGuardsAgainstConcurrentWrite(t *testing.T) {
	db := setupTestDB(t)
	user, product := seedData(t, db)
	router := orderRouter(db, user.ID)

	w := doJSON(t, router, http.MethodPost, "/api/orders/create", gin.H{
		"items": []gin.H{{"product_id": product.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	// The write is conditional on the status the transition was checked
	// against. A writer still holding the stale Pending view loses once
	// another update has landed.
	res := db.Model(&models.Order{}).
		Where("id = ? AND delivery_status = ?", order.ID, models.DeliveryStatusPending).
		Update("delivery_status", models.DeliveryStatusShipped)
	require.NoError(t, res.Error)
	require.EqualValues(t, 1, res.RowsAffected)

	stale := db.Model(&models.Order{}).
		Where("id = ? AND delivery_status = ?", order.ID, models.DeliveryStatusPending).
		Update("delivery_status", models.DeliveryStatusCancelled)
	require.NoError(t, stale.Error)
	assert.Zero(t, stale.RowsAffected)

	var after models.Order
	require.NoError(t, db.First(&after, order.ID).Error)
	assert.Equal(t, models.DeliveryStatusShipped, after.DeliveryStatus)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	user, product := seedData(t, db)
	router := orderRouter(db, user.ID)

	w := doJSON(t, router, http.MethodPost, "/api/orders/create", gin.H{
		"items": []gin.H{{"product_id": product.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/orders/update/%d", order.ID),
		gin.H{"delivery_status": "Teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeliveryStatusTransitionTable(t *testing.T) {
	cases := []struct {
		from, to models.DeliveryStatus
		ok       bool
	}{
		{models.DeliveryStatusPending, models.DeliveryStatusShipped, true},
		{models.DeliveryStatusPending, models.DeliveryStatusCancelled, true},
		{models.DeliveryStatusPending, models.DeliveryStatusDelivered, false},
		{models.DeliveryStatusShipped, models.DeliveryStatusDelivered, true},
		{models.DeliveryStatusShipped, models.DeliveryStatusCancelled, true},
		{models.DeliveryStatusShipped, models.DeliveryStatusPending, false},
		{models.DeliveryStatusDelivered, models.DeliveryStatusPending, false},
		{models.DeliveryStatusCancelled, models.DeliveryStatusShipped, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
