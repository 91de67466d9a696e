package product_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/warehouse/product"
)

func TestNew_Accessors(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p, err := product.New("P1", "Drill", "Tools", 2.0, product.WithClock(func() time.Time { return stamp }))
	require.NoError(t, err)

	assert.Equal(t, "P1", p.ID())
	assert.Equal(t, "Drill", p.Name())
	assert.Equal(t, "Tools", p.Category())
	assert.InDelta(t, 2.0, p.Weight(), 1e-9)
	assert.Equal(t, stamp, p.CreatedAt())
	assert.Equal(t, "[P1] Drill (Tools) - 2.00kg", p.String())
}

func TestNew_DefaultClock(t *testing.T) {
	before := time.Now()
	p, err := product.New("P2", "Saw", "", 0)
	require.NoError(t, err)
	assert.False(t, p.CreatedAt().Before(before))
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name     string
		id, nm   string
		category string
		weight   float64
	}{
		{"empty id", "", "Drill", "Tools", 1},
		{"empty name", "P1", "", "Tools", 1},
		{"negative weight", "P1", "Drill", "Tools", -0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := product.New(tc.id, tc.nm, tc.category, tc.weight)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, errors.Is(err, product.ErrInvalidProduct))
		})
	}
}
