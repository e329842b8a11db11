package repositories

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// LedgerRepository is the Ledger Registry: the store of named accounts.
// Implementations preserve insertion order for listing and never enforce
// name uniqueness.
type LedgerRepository interface {
	SaveLedger(ctx context.Context, ledger domain.Ledger) error
	// FindLedgerByID returns apperrors.ErrNotFound when no ledger has the id.
	FindLedgerByID(ctx context.Context, ledgerID string) (*domain.Ledger, error)
	ListLedgers(ctx context.Context) ([]domain.Ledger, error)
	// DeleteLedger removes the ledger with the id; it is a no-op when absent
	// and never touches the Voucher Journal.
	DeleteLedger(ctx context.Context, ledgerID string) error
}

// VoucherRepository is the Voucher Journal: the insertion-ordered store of
// recorded transactions.
type VoucherRepository interface {
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error
	// FindVoucherByID returns apperrors.ErrNotFound when no voucher has the id.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context) ([]domain.Voucher, error)
	// ListVouchersByDate filters vouchers recorded on the given calendar day,
	// preserving insertion order.
	ListVouchersByDate(ctx context.Context, date time.Time) ([]domain.Voucher, error)
	// DeleteVoucher removes the voucher with the id; no-op when absent.
	DeleteVoucher(ctx context.Context, voucherID string) error
}

// RepositoryProvider bundles the two stores for service wiring.
type RepositoryProvider struct {
	LedgerRepo  LedgerRepository
	VoucherRepo VoucherRepository
}
