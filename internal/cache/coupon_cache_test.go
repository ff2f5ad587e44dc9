package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/marketplace-schema/internal/models"
)

func TestCouponCacheReturnsCopies(t *testing.T) {
	c := NewCouponCache()
	coupon := &models.Coupon{ID: 7, LimitUses: 3, LimitBasis: models.LimitWeek, Discount: models.Document(`{"percent":5}`)}
	c.Set(coupon)

	coupon.LimitUses = 99
	got, ok := c.Get(7)
	require.True(t, ok)
	assert.Equal(t, int64(3), got.LimitUses)

	got.Discount[0] = '['
	again, _ := c.Get(7)
	assert.Equal(t, models.Document(`{"percent":5}`), again.Discount)

	c.Delete(7)
	_, ok = c.Get(7)
	assert.False(t, ok)
}

func TestCouponCacheConcurrentAccess(t *testing.T) {
	c := NewCouponCache()
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			c.Set(&models.Coupon{ID: id, LimitBasis: models.LimitDay})
			_, _ = c.Get(id)
		}(int64(i))
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())
}

func TestCouponCacheFillAfterWriteIsDropped(t *testing.T) {
	c := NewCouponCache()

	v := c.Version(9)
	stale := &models.Coupon{ID: 9, LimitBasis: models.LimitDay}

	// an update lands between the loader's read and its fill
	c.Delete(9)
	assert.False(t, c.Fill(stale, v))
	_, ok := c.Get(9)
	assert.False(t, ok)

	v = c.Version(9)
	assert.True(t, c.Fill(stale, v))
	_, ok = c.Get(9)
	assert.True(t, ok)

	c.Set(&models.Coupon{ID: 9, LimitBasis: models.LimitWeek})
	assert.False(t, c.Fill(stale, v), "a newer Set wins over an older load")
	got, _ := c.Get(9)
	assert.Equal(t, models.LimitWeek, got.LimitBasis)
}
