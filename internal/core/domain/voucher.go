package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType is the closed set of transaction kinds the journal records.
type VoucherType string

const (
	Sales    VoucherType = "SALES"
	Purchase VoucherType = "PURCHASE"
	Receipt  VoucherType = "RECEIPT"
	Payment  VoucherType = "PAYMENT"
	Journal  VoucherType = "JOURNAL"
	Contra   VoucherType = "CONTRA"
)

// Valid reports whether t is one of the known voucher types.
func (t VoucherType) Valid() bool {
	switch t {
	case Sales, Purchase, Receipt, Payment, Journal, Contra:
		return true
	}
	return false
}

// AddsToDebit reports whether vouchers of this type accumulate on the debit
// side of the party ledger's balance derivation.
func (t VoucherType) AddsToDebit() bool {
	return t == Sales || t == Receipt
}

// AddsToCredit reports whether vouchers of this type accumulate on the
// credit side. Journal and Contra vouchers feed neither total.
func (t VoucherType) AddsToCredit() bool {
	return t == Purchase || t == Payment
}

// PartyIsDebit reports whether the party leg of the exported entry pair is
// the debit-positive side for this voucher type.
func (t VoucherType) PartyIsDebit() bool {
	return t == Sales || t == Payment
}

// ContraLedgerName returns the fixed offset account used for the second leg
// of the exported entry pair. The cash fallback is intentional; the contra
// account is not derived from the actual payment instrument.
func (t VoucherType) ContraLedgerName() string {
	switch t {
	case Sales:
		return "Sales Account"
	case Purchase:
		return "Purchase Account"
	default:
		return "Cash Account"
	}
}

// DisplayName returns the human-facing voucher type label used on exports.
func (t VoucherType) DisplayName() string {
	switch t {
	case Sales:
		return "Sales"
	case Purchase:
		return "Purchase"
	case Receipt:
		return "Receipt"
	case Payment:
		return "Payment"
	case Journal:
		return "Journal"
	case Contra:
		return "Contra"
	}
	return string(t)
}

// Voucher represents one recorded transaction against a party ledger.
// Type and LedgerID are fixed at creation; there is no edit operation,
// only create and delete. LedgerID is a weak reference: the ledger it
// points at may have been removed since.
type Voucher struct {
	VoucherID     string          `json:"voucherID"`
	Date          time.Time       `json:"date"`
	Type          VoucherType     `json:"type"`
	LedgerID      string          `json:"ledgerID"`
	Amount        decimal.Decimal `json:"amount"`
	Narration     string          `json:"narration"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Reference returns the label used on exports: the invoice number when
// present, otherwise the voucher id.
func (v Voucher) Reference() string {
	if v.InvoiceNumber != "" {
		return v.InvoiceNumber
	}
	return v.VoucherID
}

// Validate rejects vouchers the journal must never store. The journal is
// left untouched when any of these fail.
func (v Voucher) Validate() error {
	if !v.Type.Valid() {
		return fmt.Errorf("unknown voucher type %q", v.Type)
	}
	if v.LedgerID == "" {
		return fmt.Errorf("voucher requires a party ledger")
	}
	if v.Amount.LessThan(decimal.Zero) {
		return fmt.Errorf("voucher amount must not be negative, got %s", v.Amount)
	}
	return nil
}
