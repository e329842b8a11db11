package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryLeg is one side (debit or credit) of a balanced double-entry pair.
// Positive mirrors the amount's sign: a debit-positive leg carries +amount,
// its counterpart carries -amount.
type EntryLeg struct {
	LedgerName string
	Positive   bool
	Amount     decimal.Decimal
}

// VoucherEntry is the two-leg representation of a voucher used by the
// interchange export. The two legs always net to zero.
type VoucherEntry struct {
	Type      VoucherType
	Date      time.Time
	Narration string
	Reference string
	Party     EntryLeg
	Contra    EntryLeg
}
