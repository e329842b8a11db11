package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// TrialBalanceRowResponse represents a row in the trial balance report.
// Only the side matching the balance's nature is populated; the other
// serializes as null.
type TrialBalanceRowResponse struct {
	LedgerID   string           `json:"ledgerID"`
	LedgerName string           `json:"ledgerName"`
	Group      string           `json:"group"`
	Debit      *decimal.Decimal `json:"debit"`
	Credit     *decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report. There is no
// totals footer; the report is rows only.
type TrialBalanceResponse struct {
	Rows []TrialBalanceRowResponse `json:"rows"`
}

// ToTrialBalanceResponse converts domain trial balance rows to the DTO.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow) TrialBalanceResponse {
	response := TrialBalanceResponse{
		Rows: make([]TrialBalanceRowResponse, len(rows)),
	}

	for i, row := range rows {
		r := TrialBalanceRowResponse{
			LedgerID:   row.LedgerID,
			LedgerName: row.LedgerName,
			Group:      string(row.Group),
		}
		if row.Debit.IsPositive() {
			d := row.Debit
			r.Debit = &d
		}
		if row.Credit.IsPositive() {
			c := row.Credit
			r.Credit = &c
		}
		response.Rows[i] = r
	}

	return response
}

// ProfitAndLossResponse represents the profit and loss summary.
type ProfitAndLossResponse struct {
	Revenue        decimal.Decimal `json:"revenue"`
	CostOfGoods    decimal.Decimal `json:"costOfGoods"`
	DirectExpenses decimal.Decimal `json:"directExpenses"`
	NetProfit      decimal.Decimal `json:"netProfit"`
}

// ToProfitAndLossResponse converts a domain P&L report to the DTO.
func ToProfitAndLossResponse(report *domain.ProfitAndLossReport) ProfitAndLossResponse {
	return ProfitAndLossResponse{
		Revenue:        report.Revenue,
		CostOfGoods:    report.CostOfGoods,
		DirectExpenses: report.DirectExpenses,
		NetProfit:      report.NetProfit,
	}
}

// DayBookEntryResponse is one voucher row in the day book.
type DayBookEntryResponse struct {
	VoucherID string          `json:"voucherID"`
	Type      string          `json:"type"`
	PartyName string          `json:"partyName"`
	Amount    decimal.Decimal `json:"amount"`
	Narration string          `json:"narration,omitempty"`
	Reference string          `json:"reference"`
}

// DayBookResponse represents one calendar day's vouchers in insertion order.
type DayBookResponse struct {
	Date    string                 `json:"date"`
	Entries []DayBookEntryResponse `json:"entries"`
}

// ToDayBookResponse converts day book entries to the DTO.
func ToDayBookResponse(date time.Time, entries []domain.DayBookEntry) DayBookResponse {
	response := DayBookResponse{
		Date:    date.Format("2006-01-02"),
		Entries: make([]DayBookEntryResponse, len(entries)),
	}
	for i, e := range entries {
		response.Entries[i] = DayBookEntryResponse{
			VoucherID: e.VoucherID,
			Type:      e.Type.DisplayName(),
			PartyName: e.PartyName,
			Amount:    e.Amount,
			Narration: e.Narration,
			Reference: e.Reference,
		}
	}
	return response
}
