package store

import (
	"context"
	"sort"
	"sync"

	"github.com/Aayushsah6969/ShoeStore/client"
	"github.com/Aayushsah6969/ShoeStore/models"
)

// Products is the REST-backed catalog collection with per-resource loading
// and error flags. A failed fetch leaves the previous items in place and
// never touches any other container.
type Products struct {
	mu     sync.Mutex
	client *client.Client

	items   []models.Product
	loading bool
	err     error
}

func NewProducts(c *client.Client) *Products {
	return &Products{client: c}
}

// Fetch replaces the collection from the server. A response that arrives
// after a newer fetch still wins the write; rapid successive fetches are
// last-writer-wins.
func (p *Products) Fetch(ctx context.Context) error {
	p.setLoading(true)

	items, err := p.client.Products(ctx)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if err != nil {
		p.err = err
		return err
	}
	p.err = nil
	p.items = items
	return nil
}

// Create adds a product through the API and mirrors it locally.
func (p *Products) Create(ctx context.Context, input client.ProductInput) (*models.Product, error) {
	created, err := p.client.CreateProduct(ctx, input)
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.err = err
		return nil, err
	}
	p.err = nil
	p.items = append(p.items, *created)
	return created, nil
}

// Update edits a product through the API and mirrors the result locally.
func (p *Products) Update(ctx context.Context, id uint, updates map[string]any) (*models.Product, error) {
	updated, err := p.client.UpdateProduct(ctx, id, updates)
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.err = err
		return nil, err
	}
	p.err = nil
	for i := range p.items {
		if p.items[i].ID == id {
			p.items[i] = *updated
			break
		}
	}
	return updated, nil
}

// Delete removes a product through the API and locally.
func (p *Products) Delete(ctx context.Context, id uint) error {
	if err := p.client.DeleteProduct(ctx, id); err != nil {
		p.mu.Lock()
		p.err = err
		p.mu.Unlock()
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = nil
	kept := p.items[:0]
	for _, item := range p.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	p.items = kept
	return nil
}

// Items returns a copy of the current catalog.
func (p *Products) Items() []models.Product {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Product, len(p.items))
	copy(out, p.items)
	return out
}

// Categories is the sorted set of categories present in the catalog,
// derived on demand.
func (p *Products) Categories() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	seen := make(map[string]struct{})
	var categories []string
	for _, item := range p.items {
		if item.Category == "" {
			continue
		}
		if _, ok := seen[item.Category]; !ok {
			seen[item.Category] = struct{}{}
			categories = append(categories, item.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

func (p *Products) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *Products) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *Products) setLoading(v bool) {
	p.mu.Lock()
	p.loading = v
	p.err = nil
	p.mu.Unlock()
}
