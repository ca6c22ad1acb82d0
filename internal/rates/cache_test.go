package rates_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-fxrates/internal/rates"
)

func TestCache_EmptyUntilFirstSet(t *testing.T) {
	cache := rates.NewCache("USD")

	_, ok := cache.Latest()
	assert.False(t, ok)
}

func TestCache_SetReplacesWholesale(t *testing.T) {
	cache := rates.NewCache("USD")

	cache.Set(rates.Table{"THB": 31.17037, "JPY": 104.728996})
	cache.Set(rates.Table{"EUR": 0.92})

	latest, ok := cache.Latest()
	require.True(t, ok)
	assert.Equal(t, "USD", latest.Base)
	assert.Equal(t, map[string]float64{"EUR": 0.92}, latest.Rates)
	assert.WithinDuration(t, time.Now(), latest.FetchedAt, time.Minute)
}

func TestCache_ConcurrentReaders(t *testing.T) {
	cache := rates.NewCache("USD")
	cache.Set(rates.Table{"THB": 31.17037})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if latest, ok := cache.Latest(); ok {
					_ = latest.Rates
				}
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cache.Set(rates.Table{"THB": 31.17037})
			}
		}()
	}
	wg.Wait()

	_, ok := cache.Latest()
	assert.True(t, ok)
}
