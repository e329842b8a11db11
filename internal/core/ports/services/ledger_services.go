package services

import (
	"context"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
)

// LedgerSvcFacade exposes Ledger Registry operations to the caller.
type LedgerSvcFacade interface {
	CreateLedger(ctx context.Context, req dto.CreateLedgerRequest) (*domain.Ledger, error)
	GetLedgerByID(ctx context.Context, ledgerID string) (*domain.Ledger, error)
	ListLedgers(ctx context.Context) ([]domain.Ledger, error)
	// DeleteLedger removes the ledger; vouchers referencing it are left
	// untouched and resolve to the unknown-ledger sentinel afterwards.
	DeleteLedger(ctx context.Context, ledgerID string) error
	// GetLedgerBalance runs the balance engine for one ledger.
	GetLedgerBalance(ctx context.Context, ledgerID string) (*domain.LedgerBalance, error)
}
