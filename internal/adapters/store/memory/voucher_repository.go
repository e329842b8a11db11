package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
)

// VoucherRepository is the in-memory Voucher Journal. The journal is an
// insertion-ordered collection; order matters for the day book and export
// but carries no accounting significance.
type VoucherRepository struct {
	mu       sync.RWMutex
	vouchers []domain.Voucher
}

// NewVoucherRepository creates an empty journal.
func NewVoucherRepository() *VoucherRepository {
	return &VoucherRepository{}
}

var _ portsrepo.VoucherRepository = (*VoucherRepository)(nil)

func (r *VoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vouchers = append(r.vouchers, voucher)
	return nil
}

func (r *VoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.vouchers {
		if r.vouchers[i].VoucherID == voucherID {
			v := r.vouchers[i]
			return &v, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *VoucherRepository) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Voucher, len(r.vouchers))
	copy(out, r.vouchers)
	return out, nil
}

func (r *VoucherRepository) ListVouchersByDate(ctx context.Context, date time.Time) ([]domain.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	y, m, d := date.Date()
	out := make([]domain.Voucher, 0)
	for _, v := range r.vouchers {
		vy, vm, vd := v.Date.Date()
		if vy == y && vm == m && vd == d {
			out = append(out, v)
		}
	}
	return out, nil
}

// DeleteVoucher removes the voucher with the id; no-op when absent.
func (r *VoucherRepository) DeleteVoucher(ctx context.Context, voucherID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.vouchers {
		if r.vouchers[i].VoucherID == voucherID {
			r.vouchers = append(r.vouchers[:i], r.vouchers[i+1:]...)
			return nil
		}
	}
	return nil
}

// Snapshot returns the journal contents in insertion order.
func (r *VoucherRepository) Snapshot() []domain.Voucher {
	out, _ := r.ListVouchers(context.Background())
	return out
}

// Restore replaces the journal contents, preserving the given order.
func (r *VoucherRepository) Restore(vouchers []domain.Voucher) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vouchers = make([]domain.Voucher, len(vouchers))
	copy(r.vouchers, vouchers)
}
