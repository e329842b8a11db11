package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/utils/accounting"
	"github.com/bizbooks/bizbooks_backend/internal/utils/tax"
)

// reportingService implements the ReportingSvcFacade interface.
type reportingService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepository
	voucherRepo portsrepo.VoucherRepository
	gstRate     decimal.Decimal
}

// NewReportingService creates a new reporting service. gstRate is the flat
// percentage applied to Sales and Purchase rows in workbook exports.
func NewReportingService(ledgerRepo portsrepo.LedgerRepository, voucherRepo portsrepo.VoucherRepository, gstRate decimal.Decimal) portssvc.ReportingSvcFacade {
	return &reportingService{
		ledgerRepo:  ledgerRepo,
		voucherRepo: voucherRepo,
		gstRate:     gstRate,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// TrialBalance derives every ledger's balance and emits one row per
// non-zero balance, in registry insertion order. Zero-net ledgers are
// omitted entirely, not shown with zero amounts. Footer totals are
// intentionally not computed.
func (s *reportingService) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	ledgers, err := s.ledgerRepo.ListLedgers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledgers for trial balance")
		return nil, fmt.Errorf("failed to generate trial balance: %w", err)
	}

	vouchers, err := s.voucherRepo.ListVouchers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers for trial balance")
		return nil, fmt.Errorf("failed to generate trial balance: %w", err)
	}

	rows := make([]domain.TrialBalanceRow, 0, len(ledgers))
	for _, ledger := range ledgers {
		balance := accounting.DeriveBalance(ledger, vouchers)
		if balance.Amount.IsZero() {
			continue
		}

		row := domain.TrialBalanceRow{
			LedgerID:   ledger.LedgerID,
			LedgerName: ledger.Name,
			Group:      ledger.Group,
		}
		if balance.Nature == domain.Debit {
			row.Debit = balance.Amount
		} else {
			row.Credit = balance.Amount
		}
		rows = append(rows, row)
	}

	s.LogInfo(ctx, "Trial balance generated", slog.Int("row_count", len(rows)))
	return rows, nil
}

// ProfitAndLoss aggregates the whole journal regardless of ledger:
// revenue from Sales, cost of goods from Purchase, direct expenses from
// Payment. Net profit is revenue minus the two cost aggregates.
func (s *reportingService) ProfitAndLoss(ctx context.Context) (*domain.ProfitAndLossReport, error) {
	vouchers, err := s.voucherRepo.ListVouchers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers for profit and loss")
		return nil, fmt.Errorf("failed to generate profit and loss: %w", err)
	}

	revenue := decimal.Zero
	costOfGoods := decimal.Zero
	directExpenses := decimal.Zero

	for _, v := range vouchers {
		switch v.Type {
		case domain.Sales:
			revenue = revenue.Add(v.Amount)
		case domain.Purchase:
			costOfGoods = costOfGoods.Add(v.Amount)
		case domain.Payment:
			directExpenses = directExpenses.Add(v.Amount)
		}
	}

	report := &domain.ProfitAndLossReport{
		Revenue:        revenue,
		CostOfGoods:    costOfGoods,
		DirectExpenses: directExpenses,
		NetProfit:      revenue.Sub(costOfGoods).Sub(directExpenses),
	}

	s.LogInfo(ctx, "Profit and loss generated",
		slog.String("revenue", revenue.String()),
		slog.String("net_profit", report.NetProfit.String()))
	return report, nil
}

// DayBook lists the vouchers recorded on one calendar day, in insertion
// order, with party ledger names resolved. A dangling reference resolves
// to the unknown-ledger sentinel, never an error.
func (s *reportingService) DayBook(ctx context.Context, date time.Time) ([]domain.DayBookEntry, error) {
	vouchers, err := s.voucherRepo.ListVouchersByDate(ctx, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers for day book", slog.String("date", date.Format("2006-01-02")))
		return nil, fmt.Errorf("failed to generate day book: %w", err)
	}

	entries := make([]domain.DayBookEntry, 0, len(vouchers))
	for _, v := range vouchers {
		partyName, err := s.resolvePartyName(ctx, v.LedgerID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.DayBookEntry{
			VoucherID: v.VoucherID,
			Date:      v.Date,
			Type:      v.Type,
			LedgerID:  v.LedgerID,
			PartyName: partyName,
			Amount:    v.Amount,
			Narration: v.Narration,
			Reference: v.Reference(),
		})
	}

	s.LogDebug(ctx, "Day book generated",
		slog.String("date", date.Format("2006-01-02")),
		slog.Int("entry_count", len(entries)))
	return entries, nil
}

// DayBookWorkbook renders one day's entries as an XLSX workbook. Sales and
// Purchase rows carry the GST amount at the configured flat rate.
func (s *reportingService) DayBookWorkbook(ctx context.Context, date time.Time) ([]byte, error) {
	entries, err := s.DayBook(ctx, date)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	headers := []string{"Date", "Voucher No", "Type", "Party", "Narration", "Amount", "GST"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrExportFailure, err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrExportFailure, err)
		}
	}

	for i, e := range entries {
		row := i + 2
		gst := decimal.Zero
		if e.Type == domain.Sales || e.Type == domain.Purchase {
			gst = tax.Amount(e.Amount, s.gstRate)
		}
		values := []any{
			e.Date.Format("2006-01-02"),
			e.Reference,
			e.Type.DisplayName(),
			e.PartyName,
			e.Narration,
			e.Amount.InexactFloat64(),
			gst.InexactFloat64(),
		}
		for col, val := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrExportFailure, err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrExportFailure, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.LogError(ctx, err, "Failed to serialize day book workbook")
		return nil, fmt.Errorf("%w: %s", apperrors.ErrExportFailure, err)
	}

	s.LogInfo(ctx, "Day book workbook generated",
		slog.String("date", date.Format("2006-01-02")),
		slog.Int("entry_count", len(entries)))
	return buf.Bytes(), nil
}

// resolvePartyName looks up the party ledger name, substituting the
// sentinel for dangling references.
func (s *reportingService) resolvePartyName(ctx context.Context, ledgerID string) (string, error) {
	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, ledgerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.UnknownLedgerName, nil
		}
		s.LogError(ctx, err, "Failed to resolve party ledger", slog.String("ledger_id", ledgerID))
		return "", fmt.Errorf("failed to resolve party ledger %s: %w", ledgerID, err)
	}
	return ledger.Name, nil
}
