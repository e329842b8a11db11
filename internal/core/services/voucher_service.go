package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// voucherService implements the VoucherSvcFacade interface.
type voucherService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepository
}

// NewVoucherService creates a new voucher service.
func NewVoucherService(voucherRepo portsrepo.VoucherRepository) portssvc.VoucherSvcFacade {
	return &voucherService{
		voucherRepo: voucherRepo,
	}
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

func (s *voucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest) (*domain.Voucher, error) {
	now := time.Now().UTC()

	date, err := resolveVoucherDate(req.Date, now)
	if err != nil {
		s.LogError(ctx, err, "Invalid voucher date", slog.String("date", req.Date))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	voucher := domain.Voucher{
		VoucherID:     uuid.NewString(),
		Date:          date,
		Type:          req.Type,
		LedgerID:      req.LedgerID,
		Amount:        req.Amount,
		Narration:     req.Narration,
		InvoiceNumber: req.InvoiceNumber,
		CreatedAt:     now,
	}

	// The journal must stay unchanged when validation fails.
	if err := voucher.Validate(); err != nil {
		s.LogError(ctx, err, "Voucher failed validation",
			slog.String("type", string(req.Type)),
			slog.String("ledger_id", req.LedgerID))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	// No existence check on the party ledger: the reference is weak by
	// design and a later deletion must not invalidate the voucher either.
	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		s.LogError(ctx, err, "Failed to save voucher", slog.String("voucher_id", voucher.VoucherID))
		return nil, err
	}

	s.LogInfo(ctx, "Voucher recorded successfully",
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("type", string(voucher.Type)),
		slog.String("amount", voucher.Amount.String()))
	return &voucher, nil
}

func (s *voucherService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find voucher by ID", slog.String("voucher_id", voucherID))
		}
		return nil, err
	}
	return voucher, nil
}

func (s *voucherService) ListVouchers(ctx context.Context) ([]domain.Voucher, error) {
	vouchers, err := s.voucherRepo.ListVouchers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers")
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	if vouchers == nil {
		return []domain.Voucher{}, nil
	}
	return vouchers, nil
}

func (s *voucherService) DeleteVoucher(ctx context.Context, voucherID string) error {
	if err := s.voucherRepo.DeleteVoucher(ctx, voucherID); err != nil {
		s.LogError(ctx, err, "Failed to delete voucher", slog.String("voucher_id", voucherID))
		return err
	}

	s.LogInfo(ctx, "Voucher deleted", slog.String("voucher_id", voucherID))
	return nil
}

// resolveVoucherDate parses a YYYY-MM-DD date, defaulting to the current
// day when empty. Voucher dates carry no time component.
func resolveVoucherDate(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %s", raw)
	}
	return date, nil
}
