package store

import (
	"context"
	"sync"

	"github.com/Aayushsah6969/ShoeStore/client"
	"github.com/Aayushsah6969/ShoeStore/models"
)

// Orders is the REST-backed order collection. The storefront fetches the
// session user's orders; the dashboard fetches all of them and drives
// status updates.
type Orders struct {
	mu     sync.Mutex
	client *client.Client

	items   []models.Order
	loading bool
	err     error
}

func NewOrders(c *client.Client) *Orders {
	return &Orders{client: c}
}

// FetchMine loads the authenticated user's orders.
func (o *Orders) FetchMine(ctx context.Context) error {
	return o.fetch(ctx, o.client.MyOrders)
}

// FetchAll loads every order (admin).
func (o *Orders) FetchAll(ctx context.Context) error {
	return o.fetch(ctx, o.client.AllOrders)
}

func (o *Orders) fetch(ctx context.Context, load func(context.Context) ([]models.Order, error)) error {
	o.mu.Lock()
	o.loading = true
	o.err = nil
	o.mu.Unlock()

	items, err := load(ctx)
	o.mu.Lock()
	defer o.mu.Unlock()
	o.loading = false
	if err != nil {
		o.err = err
		return err
	}
	o.items = items
	return nil
}

// Create places an order from the given cart lines and mirrors it locally.
// The cart itself is not cleared here; checkout decides that after the
// order is accepted.
func (o *Orders) Create(ctx context.Context, lines []CartItem) (*models.Order, error) {
	items := make([]client.OrderItemInput, 0, len(lines))
	for _, line := range lines {
		items = append(items, client.OrderItemInput{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Size:      line.SelectedSize,
		})
	}

	order, err := o.client.CreateOrder(ctx, items)
	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.err = err
		return nil, err
	}
	o.err = nil
	o.items = append([]models.Order{*order}, o.items...)
	return order, nil
}

// UpdateStatus moves an order along the delivery graph (admin).
func (o *Orders) UpdateStatus(ctx context.Context, id uint, status models.DeliveryStatus) (*models.Order, error) {
	updated, err := o.client.UpdateOrderStatus(ctx, id, status)
	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.err = err
		return nil, err
	}
	o.err = nil
	for i := range o.items {
		if o.items[i].ID == id {
			o.items[i] = *updated
			break
		}
	}
	return updated, nil
}

// Items returns a copy of the current orders.
func (o *Orders) Items() []models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]models.Order, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Orders) Loading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.loading
}

func (o *Orders) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}
