package services

import (
	"context"
	"time"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// ReportingSvcFacade generates the derived views over the two stores.
type ReportingSvcFacade interface {
	// TrialBalance lists every non-zero ledger balance in registry insertion
	// order. Footer totals are intentionally not computed.
	TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error)
	ProfitAndLoss(ctx context.Context) (*domain.ProfitAndLossReport, error)
	// DayBook lists the vouchers recorded on one calendar day with party
	// names resolved.
	DayBook(ctx context.Context, date time.Time) ([]domain.DayBookEntry, error)
	// DayBookWorkbook renders the same rows as an XLSX workbook.
	DayBookWorkbook(ctx context.Context, date time.Time) ([]byte, error)
}
