package snapshot_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizbooks/bizbooks_backend/internal/adapters/store/memory"
	"github.com/bizbooks/bizbooks_backend/internal/adapters/store/snapshot"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

func TestManager_SaveAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "books.json")

	ledgers := memory.NewLedgerRepository()
	vouchers := memory.NewVoucherRepository()

	require.NoError(t, ledgers.SaveLedger(ctx, domain.Ledger{
		LedgerID:       "L1",
		Name:           "Cash",
		Group:          domain.GroupCash,
		OpeningBalance: decimal.NewFromInt(50000),
	}))
	require.NoError(t, vouchers.SaveVoucher(ctx, domain.Voucher{
		VoucherID: "V1",
		Date:      time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Type:      domain.Sales,
		LedgerID:  "L1",
		Amount:    decimal.NewFromInt(45000),
	}))

	require.NoError(t, snapshot.NewManager(path, ledgers, vouchers).Save())

	freshLedgers := memory.NewLedgerRepository()
	freshVouchers := memory.NewVoucherRepository()
	require.NoError(t, snapshot.NewManager(path, freshLedgers, freshVouchers).Load())

	gotLedgers, err := freshLedgers.ListLedgers(ctx)
	require.NoError(t, err)
	require.Len(t, gotLedgers, 1)
	assert.Equal(t, "Cash", gotLedgers[0].Name)
	assert.True(t, gotLedgers[0].OpeningBalance.Equal(decimal.NewFromInt(50000)))

	gotVouchers, err := freshVouchers.ListVouchers(ctx)
	require.NoError(t, err)
	require.Len(t, gotVouchers, 1)
	assert.Equal(t, domain.Sales, gotVouchers[0].Type)
	assert.True(t, gotVouchers[0].Amount.Equal(decimal.NewFromInt(45000)))
}

func TestManager_LoadMissingFileIsFreshSession(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nope.json")

	ledgers := memory.NewLedgerRepository()
	vouchers := memory.NewVoucherRepository()

	require.NoError(t, snapshot.NewManager(path, ledgers, vouchers).Load())

	got, err := ledgers.ListLedgers(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
