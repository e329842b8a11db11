package tax_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bizbooks/bizbooks_backend/internal/utils/tax"
)

func TestAmount(t *testing.T) {
	rate := decimal.NewFromInt(18)

	got := tax.Amount(decimal.NewFromInt(1000), rate)
	assert.True(t, got.Equal(decimal.NewFromInt(180)), "got %s", got)

	// Rounds to two places.
	got = tax.Amount(decimal.NewFromFloat(99.99), rate)
	assert.True(t, got.Equal(decimal.NewFromFloat(18.00)), "got %s", got)

	got = tax.Amount(decimal.Zero, rate)
	assert.True(t, got.IsZero())
}

func TestGross(t *testing.T) {
	got := tax.Gross(decimal.NewFromInt(1000), decimal.NewFromInt(18))
	assert.True(t, got.Equal(decimal.NewFromInt(1180)), "got %s", got)
}
