package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// LedgerGroup classifies a ledger under one of the fixed account heads.
type LedgerGroup string

const (
	GroupAsset          LedgerGroup = "ASSET"
	GroupLiability      LedgerGroup = "LIABILITY"
	GroupIncome         LedgerGroup = "INCOME"
	GroupExpense        LedgerGroup = "EXPENSE"
	GroupBank           LedgerGroup = "BANK"
	GroupCash           LedgerGroup = "CASH"
	GroupSundryDebtor   LedgerGroup = "SUNDRY_DEBTOR"
	GroupSundryCreditor LedgerGroup = "SUNDRY_CREDITOR"
)

// BalanceNature indicates which side of the books a balance sits on.
type BalanceNature string

const (
	Debit  BalanceNature = "DEBIT"
	Credit BalanceNature = "CREDIT"
)

// NaturalNature returns the side a group's balances normally sit on.
// Asset-like groups are debit-natured; liability-like groups credit-natured.
func (g LedgerGroup) NaturalNature() (BalanceNature, error) {
	switch g {
	case GroupAsset, GroupExpense, GroupCash, GroupBank, GroupSundryDebtor:
		return Debit, nil
	case GroupLiability, GroupIncome, GroupSundryCreditor:
		return Credit, nil
	default:
		return "", fmt.Errorf("unknown ledger group %q", g)
	}
}

// UnknownLedgerName is the sentinel shown wherever a voucher references a
// ledger that no longer exists. Dangling references are tolerated, never
// an error.
const UnknownLedgerName = "Unknown Ledger"

// Ledger represents a named account bucket (customer, supplier, bank,
// expense category, etc.). Names are not unique; every structure keys on
// LedgerID.
type Ledger struct {
	LedgerID       string          `json:"ledgerID"`
	Name           string          `json:"name"`
	Group          LedgerGroup     `json:"group"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	GSTNumber      string          `json:"gstNumber"`
	Contact        string          `json:"contact"`
	AuditFields
}

// Validate checks the fields required at creation.
func (l Ledger) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("ledger name must not be empty")
	}
	if _, err := l.Group.NaturalNature(); err != nil {
		return err
	}
	return nil
}

// LedgerBalance is the derived balance of a single ledger: the absolute net
// amount together with the side it sits on. A zero net reports as debit by
// convention.
type LedgerBalance struct {
	LedgerID string          `json:"ledgerID"`
	Amount   decimal.Decimal `json:"amount"`
	Nature   BalanceNature   `json:"nature"`
}
