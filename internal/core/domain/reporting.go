package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report.
// Exactly one of Debit/Credit is non-zero; zero-net ledgers never produce
// a row at all.
type TrialBalanceRow struct {
	LedgerID   string          `json:"ledgerID"`
	LedgerName string          `json:"ledgerName"`
	Group      LedgerGroup     `json:"group"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
}

// ProfitAndLossReport summarises the whole journal into four aggregates.
type ProfitAndLossReport struct {
	Revenue        decimal.Decimal `json:"revenue"`
	CostOfGoods    decimal.Decimal `json:"costOfGoods"`
	DirectExpenses decimal.Decimal `json:"directExpenses"`
	NetProfit      decimal.Decimal `json:"netProfit"`
}

// DayBookEntry is one voucher as shown in the day book, with the party
// ledger name resolved (or the unknown-ledger sentinel).
type DayBookEntry struct {
	VoucherID string          `json:"voucherID"`
	Date      time.Time       `json:"date"`
	Type      VoucherType     `json:"type"`
	LedgerID  string          `json:"ledgerID"`
	PartyName string          `json:"partyName"`
	Amount    decimal.Decimal `json:"amount"`
	Narration string          `json:"narration"`
	Reference string          `json:"reference"`
}
