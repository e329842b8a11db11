package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	"github.com/bizbooks/bizbooks_backend/internal/utils/accounting"
)

func TestDeriveBalance(t *testing.T) {
	ledger := domain.Ledger{
		LedgerID:       "L6",
		Name:           "Tech Solutions",
		Group:          domain.GroupSundryCreditor,
		OpeningBalance: decimal.Zero,
	}

	vouchers := []domain.Voucher{
		{VoucherID: "V002", Type: domain.Purchase, LedgerID: "L6", Amount: decimal.NewFromInt(25000)},
		{VoucherID: "V003", Type: domain.Sales, LedgerID: "L5", Amount: decimal.NewFromInt(45000)},
	}

	balance := accounting.DeriveBalance(ledger, vouchers)

	assert.Equal(t, "L6", balance.LedgerID)
	assert.True(t, balance.Amount.Equal(decimal.NewFromInt(25000)), "amount: %s", balance.Amount)
	assert.Equal(t, domain.Credit, balance.Nature)
}

func TestDeriveBalance_OpeningBalanceOnly(t *testing.T) {
	ledger := domain.Ledger{
		LedgerID:       "L1",
		Name:           "Cash",
		Group:          domain.GroupCash,
		OpeningBalance: decimal.NewFromInt(50000),
	}

	balance := accounting.DeriveBalance(ledger, nil)

	assert.True(t, balance.Amount.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, domain.Debit, balance.Nature)
}

func TestDeriveBalance_JournalAndContraExcluded(t *testing.T) {
	ledger := domain.Ledger{
		LedgerID: "L2",
		Group:    domain.GroupBank,
	}

	vouchers := []domain.Voucher{
		{Type: domain.Journal, LedgerID: "L2", Amount: decimal.NewFromInt(9999)},
		{Type: domain.Contra, LedgerID: "L2", Amount: decimal.NewFromInt(1234)},
	}

	balance := accounting.DeriveBalance(ledger, vouchers)

	assert.True(t, balance.Amount.IsZero())
	assert.Equal(t, domain.Debit, balance.Nature, "zero nets report as debit")
}

func TestDeriveBalance_NetSignFlipsNature(t *testing.T) {
	ledger := domain.Ledger{
		LedgerID:       "L3",
		Group:          domain.GroupSundryDebtor,
		OpeningBalance: decimal.NewFromInt(100),
	}

	vouchers := []domain.Voucher{
		{Type: domain.Receipt, LedgerID: "L3", Amount: decimal.NewFromInt(50)},
		{Type: domain.Payment, LedgerID: "L3", Amount: decimal.NewFromInt(400)},
	}

	// 100 + 50 - 400 = -250, reported as 250 credit.
	balance := accounting.DeriveBalance(ledger, vouchers)

	assert.True(t, balance.Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, domain.Credit, balance.Nature)
}

func TestBuildEntryPair_NetsToZero(t *testing.T) {
	types := []domain.VoucherType{
		domain.Sales, domain.Purchase, domain.Receipt,
		domain.Payment, domain.Journal, domain.Contra,
	}

	for _, vType := range types {
		t.Run(string(vType), func(t *testing.T) {
			v := domain.Voucher{
				VoucherID: "V9",
				Type:      vType,
				LedgerID:  "L9",
				Amount:    decimal.NewFromInt(777),
			}

			entry := accounting.BuildEntryPair(v, "Some Party")

			sum := entry.Party.Amount.Add(entry.Contra.Amount)
			assert.True(t, sum.IsZero(), "legs must net to zero, got %s", sum)
			assert.NotEqual(t, entry.Party.Positive, entry.Contra.Positive)
		})
	}
}

func TestBuildEntryPair_SalesVoucher(t *testing.T) {
	v := domain.Voucher{
		VoucherID: "V003",
		Type:      domain.Sales,
		LedgerID:  "L5",
		Amount:    decimal.NewFromInt(45000),
		Narration: "Invoice to Innovate LLP",
	}

	entry := accounting.BuildEntryPair(v, domain.UnknownLedgerName)

	assert.Equal(t, domain.UnknownLedgerName, entry.Party.LedgerName)
	assert.True(t, entry.Party.Positive)
	assert.True(t, entry.Party.Amount.Equal(decimal.NewFromInt(45000)))

	assert.Equal(t, "Sales Account", entry.Contra.LedgerName)
	assert.False(t, entry.Contra.Positive)
	assert.True(t, entry.Contra.Amount.Equal(decimal.NewFromInt(-45000)))

	assert.Equal(t, "V003", entry.Reference, "voucher id stands in when there is no invoice number")
}

func TestBuildEntryPair_PurchaseVoucher(t *testing.T) {
	v := domain.Voucher{
		VoucherID:     "V002",
		Type:          domain.Purchase,
		LedgerID:      "L6",
		Amount:        decimal.NewFromInt(25000),
		InvoiceNumber: "TS-881",
	}

	entry := accounting.BuildEntryPair(v, "Tech Solutions")

	assert.Equal(t, "Tech Solutions", entry.Party.LedgerName)
	assert.False(t, entry.Party.Positive)
	assert.True(t, entry.Party.Amount.Equal(decimal.NewFromInt(-25000)))

	assert.Equal(t, "Purchase Account", entry.Contra.LedgerName)
	assert.True(t, entry.Contra.Positive)
	assert.True(t, entry.Contra.Amount.Equal(decimal.NewFromInt(25000)))

	assert.Equal(t, "TS-881", entry.Reference)
}
