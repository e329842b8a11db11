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
	"github.com/bizbooks/bizbooks_backend/internal/utils/accounting"
)

// ledgerService implements the LedgerSvcFacade interface.
type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepository
	voucherRepo portsrepo.VoucherRepository
}

// NewLedgerService creates a new ledger service. The voucher repository is
// read only here; balance derivation needs the journal.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, voucherRepo portsrepo.VoucherRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo:  ledgerRepo,
		voucherRepo: voucherRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) CreateLedger(ctx context.Context, req dto.CreateLedgerRequest) (*domain.Ledger, error) {
	now := time.Now().UTC()

	ledger := domain.Ledger{
		LedgerID:       uuid.NewString(),
		Name:           req.Name,
		Group:          req.Group,
		OpeningBalance: req.OpeningBalance,
		GSTNumber:      req.GSTNumber,
		Contact:        req.Contact,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := ledger.Validate(); err != nil {
		s.LogError(ctx, err, "Ledger failed validation", slog.String("ledger_name", req.Name))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	// Duplicate names are legal; two ledgers may share a display name and
	// stay distinct accounts keyed by id.
	if err := s.ledgerRepo.SaveLedger(ctx, ledger); err != nil {
		s.LogError(ctx, err, "Failed to save ledger", slog.String("ledger_id", ledger.LedgerID))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger created successfully",
		slog.String("ledger_id", ledger.LedgerID),
		slog.String("group", string(ledger.Group)))
	return &ledger, nil
}

func (s *ledgerService) GetLedgerByID(ctx context.Context, ledgerID string) (*domain.Ledger, error) {
	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, ledgerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find ledger by ID", slog.String("ledger_id", ledgerID))
		}
		return nil, err
	}
	return ledger, nil
}

func (s *ledgerService) ListLedgers(ctx context.Context) ([]domain.Ledger, error) {
	ledgers, err := s.ledgerRepo.ListLedgers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledgers")
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	if ledgers == nil {
		return []domain.Ledger{}, nil
	}
	return ledgers, nil
}

func (s *ledgerService) DeleteLedger(ctx context.Context, ledgerID string) error {
	// Removal never cascades: vouchers referencing this ledger stay in the
	// journal and resolve to the unknown-ledger sentinel from now on.
	if err := s.ledgerRepo.DeleteLedger(ctx, ledgerID); err != nil {
		s.LogError(ctx, err, "Failed to delete ledger", slog.String("ledger_id", ledgerID))
		return err
	}

	s.LogInfo(ctx, "Ledger deleted", slog.String("ledger_id", ledgerID))
	return nil
}

func (s *ledgerService) GetLedgerBalance(ctx context.Context, ledgerID string) (*domain.LedgerBalance, error) {
	ledger, err := s.GetLedgerByID(ctx, ledgerID)
	if err != nil {
		return nil, err
	}

	vouchers, err := s.voucherRepo.ListVouchers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers for balance derivation", slog.String("ledger_id", ledgerID))
		return nil, fmt.Errorf("failed to derive balance for ledger %s: %w", ledgerID, err)
	}

	balance := accounting.DeriveBalance(*ledger, vouchers)

	s.LogDebug(ctx, "Ledger balance derived",
		slog.String("ledger_id", ledgerID),
		slog.String("amount", balance.Amount.String()),
		slog.String("nature", string(balance.Nature)))
	return &balance, nil
}
