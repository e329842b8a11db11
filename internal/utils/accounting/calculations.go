package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// DeriveBalance computes a ledger's reported balance from its opening
// balance plus the journal entries that reference it. Sales and Receipt
// vouchers accumulate on the debit side, Purchase and Payment on the credit
// side; Journal and Contra vouchers do not participate. The reported amount
// is the absolute net, with the nature taken from the net's sign (debit on
// zero, so the trial balance can omit the row).
//
// A single voucher only ever updates the party ledger's totals here — this
// one-sided derivation is a display convenience, not a ledger-balancing
// guarantee. The interchange export performs its double-entry inference
// independently.
func DeriveBalance(ledger domain.Ledger, vouchers []domain.Voucher) domain.LedgerBalance {
	debitTotal := decimal.Zero
	creditTotal := decimal.Zero

	for _, v := range vouchers {
		if v.LedgerID != ledger.LedgerID {
			continue
		}
		switch {
		case v.Type.AddsToDebit():
			debitTotal = debitTotal.Add(v.Amount)
		case v.Type.AddsToCredit():
			creditTotal = creditTotal.Add(v.Amount)
		}
	}

	net := ledger.OpeningBalance.Add(debitTotal).Sub(creditTotal)

	nature := domain.Debit
	if net.IsNegative() {
		nature = domain.Credit
	}

	return domain.LedgerBalance{
		LedgerID: ledger.LedgerID,
		Amount:   net.Abs(),
		Nature:   nature,
	}
}

// BuildEntryPair maps a voucher onto its balanced two-leg representation.
// The party leg is debit-positive for Sales and Payment vouchers and
// credit-positive for every other type. The contra leg mirrors the party
// leg with the sign and polarity flipped, so the pair always nets to zero.
func BuildEntryPair(v domain.Voucher, partyLedgerName string) domain.VoucherEntry {
	partyDebit := v.Type.PartyIsDebit()

	partyAmount := v.Amount
	if !partyDebit {
		partyAmount = partyAmount.Neg()
	}

	return domain.VoucherEntry{
		Type:      v.Type,
		Date:      v.Date,
		Narration: v.Narration,
		Reference: v.Reference(),
		Party: domain.EntryLeg{
			LedgerName: partyLedgerName,
			Positive:   partyDebit,
			Amount:     partyAmount,
		},
		Contra: domain.EntryLeg{
			LedgerName: v.Type.ContraLedgerName(),
			Positive:   !partyDebit,
			Amount:     partyAmount.Neg(),
		},
	}
}
