package store

import "sync"

// Wishlist is a set of product ids. Membership is the only contract; no
// ordering is guaranteed.
type Wishlist struct {
	mu     sync.Mutex
	ids    map[uint]struct{}
	bucket *Bucket
}

func NewWishlist(bucket *Bucket) *Wishlist {
	w := &Wishlist{ids: make(map[uint]struct{}), bucket: bucket}
	if bucket != nil {
		var ids []uint
		if ok, err := bucket.Get("wishlist", &ids); err == nil && ok {
			for _, id := range ids {
				w.ids[id] = struct{}{}
			}
		}
	}
	return w
}

func (w *Wishlist) Add(productID uint) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ids[productID] = struct{}{}
	w.persist()
}

func (w *Wishlist) Remove(productID uint) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.ids, productID)
	w.persist()
}

func (w *Wishlist) Contains(productID uint) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.ids[productID]
	return ok
}

func (w *Wishlist) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.ids)
}

// IDs returns the members in no particular order.
func (w *Wishlist) IDs() []uint {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot()
}

func (w *Wishlist) snapshot() []uint {
	ids := make([]uint, 0, len(w.ids))
	for id := range w.ids {
		ids = append(ids, id)
	}
	return ids
}

func (w *Wishlist) persist() {
	if w.bucket == nil {
		return
	}
	_ = w.bucket.Set("wishlist", w.snapshot())
}
