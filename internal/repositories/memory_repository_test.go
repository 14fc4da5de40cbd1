package repositories

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sunshare/internal/models"
)

func TestMockPropertiesAreFixed(t *testing.T) {
	props, err := NewMockPropertyRepository().List(context.Background())
	require.NoError(t, err)
	require.Len(t, props, 3)

	for i, p := range props {
		assert.Equal(t, fmt.Sprintf("mock-%d", i+1), p.ID)
		assert.Equal(t, *p.PricePerPanel, *p.Price)
		assert.Equal(t, *p.CapacityKw, *p.Capacity)
		assert.Equal(t, *p.FundedLevel, *p.FundedPercentage)
	}
	assert.Equal(t, "Sunny Acres Solar Farm", props[0].Title)
	assert.Equal(t, 201600.0, *props[2].TotalValue)
}

func TestMemoryCreateAppendsWithGeneratedID(t *testing.T) {
	repo := NewMockPropertyRepository()
	repo.now = func() time.Time { return time.UnixMilli(1700000000123) }

	p := &models.Property{Title: "Roof A", CapacityKw: models.Float(20), PricePerPanel: models.Float(410), FundedLevel: models.Float(5)}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.Regexp(t, regexp.MustCompile(`^mock-1700000000123-[0-9a-z]{7}$`), p.ID)

	props, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, props, 4)

	last := props[3]
	assert.Equal(t, p.ID, last.ID)
	assert.Equal(t, 20.0, *last.Capacity)
	assert.Equal(t, 410.0, *last.Price)
	assert.Equal(t, 5.0, *last.FundedPercentage)
}

func TestMemoryListReturnsCopy(t *testing.T) {
	repo := NewMockPropertyRepository()
	props, err := repo.List(context.Background())
	require.NoError(t, err)
	props[0].Title = "changed"

	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Sunny Acres Solar Farm", again[0].Title)
}

func TestMemoryConcurrentCreates(t *testing.T) {
	repo := NewMemoryPropertyRepository(nil)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Create(context.Background(), &models.Property{Title: "p"}))
		}()
	}
	wg.Wait()

	props, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, props, n)

	seen := make(map[string]bool, n)
	for _, p := range props {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}
