package services

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// VoucherSvcFacade exposes Voucher Journal operations to the caller.
// Vouchers are immutable once recorded: create and delete only.
type VoucherSvcFacade interface {
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest) (*domain.Voucher, error)
	GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context) ([]domain.Voucher, error)
	DeleteVoucher(ctx context.Context, voucherID string) error
}
