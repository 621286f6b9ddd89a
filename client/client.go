// Package client is the REST client used by the storefront and admin state
// containers. Session cookies live in the client's jar, so auth state
// follows the cookie the same way a browser session does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/Aayushsah6969/ShoeStore/auth"
	"github.com/Aayushsah6969/ShoeStore/models"
)

type Client struct {
	base string
	http *http.Client
}

// New builds a client for the given API base URL, e.g. "http://localhost:8080".
func New(base string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}
}

// UserInfo is the authenticated identity returned by login and /me.
type UserInfo struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type authResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

// ---------- auth ----------

func (c *Client) Signup(ctx context.Context, fullName, email, password string) error {
	body := map[string]string{"full_name": fullName, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/users/signup", body, nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (*UserInfo, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/users/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/users/logout", nil, nil)
}

func (c *Client) AdminLogin(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/users/admin-login", body, nil)
}

func (c *Client) AdminLogout(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/users/admin-logout", nil, nil)
}

// Me verifies the session against the server. The stores treat local auth
// state as an optimistic cache; this is the authority.
func (c *Client) Me(ctx context.Context) (*UserInfo, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// AdminMe verifies the admin session against the server, the admin-side
// counterpart of Me. The admin flag is re-checked server-side.
func (c *Client) AdminMe(ctx context.Context) (*UserInfo, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// HasSessionCookie reports whether the jar currently holds the given session
// cookie. Presence proves nothing about validity or expiry.
func (c *Client) HasSessionCookie(name string) bool {
	u, err := urlOf(c.base)
	if err != nil {
		return false
	}
	for _, ck := range c.http.Jar.Cookies(u) {
		if ck.Name == name && ck.Value != "" {
			return true
		}
	}
	return false
}

// HasUserSession reports cookie presence for the storefront session.
func (c *Client) HasUserSession() bool { return c.HasSessionCookie(auth.UserCookie) }

// ---------- products ----------

type ProductInput struct {
	Name        string   `json:"product_name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	SalePrice   *float64 `json:"sale_price,omitempty"`
	Stock       int      `json:"stock_quantity"`
	Images      []string `json:"product_images"`
	Sizes       []string `json:"available_sizes"`
	Colors      []string `json:"available_colors"`
	Featured    bool     `json:"is_featured"`
	Description string   `json:"description"`
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPost, "/api/products/upload", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, updates map[string]any) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/update/%d", id), updates, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/delete/%d", id), nil, nil)
}

// ---------- orders ----------

type OrderItemInput struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

func (c *Client) CreateOrder(ctx context.Context, items []OrderItemInput) (*models.Order, error) {
	var order models.Order
	body := map[string]any{"items": items}
	if err := c.do(ctx, http.MethodPost, "/api/orders/create", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/my-orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) AllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/getAllOrders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id uint, status models.DeliveryStatus) (*models.Order, error) {
	var order models.Order
	body := map[string]string{"delivery_status": string(status)}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/update/%d", id), body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/orders/delete/%d", id), nil, nil)
}

// ---------- admin ----------

type DashboardStats struct {
	TotalProducts int64   `json:"total_products"`
	TotalOrders   int64   `json:"total_orders"`
	TotalSales    float64 `json:"total_sales"`
	LowStock      int64   `json:"low_stock"`
	PendingOrders int64   `json:"pending_orders"`
}

func (c *Client) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ---------- plumbing ----------

func urlOf(base string) (*url.URL, error) {
	return url.Parse(base)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: ValidationError, Message: err.Error()}
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return &APIError{Kind: NetworkError, Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Kind: NetworkError, Message: "Network error"}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		msg := payload.Message
		if msg == "" {
			msg = payload.Error
		}
		return &APIError{Kind: kindForStatus(resp.StatusCode), Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &APIError{Kind: NetworkError, Message: "malformed response: " + err.Error()}
		}
	}
	return nil
}
