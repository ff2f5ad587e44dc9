package cache

import (
	"sync"

	"github.com/Cheertaboi/marketplace-schema/internal/models"
)

// CouponCache keeps coupon rows by id. Entries are copies so callers cannot
// mutate cached state.
//
// Every Set and Delete bumps the id's version. A read-through loader takes
// Version before reading the database and stores with Fill, which drops the
// row if a write happened in between.
type CouponCache struct {
	mu       sync.RWMutex
	store    map[int64]models.Coupon
	versions map[int64]uint64
}

func NewCouponCache() *CouponCache {
	return &CouponCache{
		store:    make(map[int64]models.Coupon),
		versions: make(map[int64]uint64),
	}
}

func (c *CouponCache) Get(id int64) (*models.Coupon, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.store[id]
	if !ok {
		return nil, false
	}
	return clone(val), true
}

func (c *CouponCache) Version(id int64) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.versions[id]
}

// Set stores a row that was just written.
func (c *CouponCache) Set(coupon *models.Coupon) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[coupon.ID]++
	c.store[coupon.ID] = *clone(*coupon)
}

// Fill stores a row loaded at version. It reports false and stores nothing
// when the id was written since.
func (c *CouponCache) Fill(coupon *models.Coupon, version uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.versions[coupon.ID] != version {
		return false
	}
	c.store[coupon.ID] = *clone(*coupon)
	return true
}

func (c *CouponCache) Delete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[id]++
	delete(c.store, id)
}

func (c *CouponCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func clone(c models.Coupon) *models.Coupon {
	if c.Expires != nil {
		exp := *c.Expires
		c.Expires = &exp
	}
	c.Discount = append(models.Document(nil), c.Discount...)
	return &c
}
