package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// CreateLedgerRequest defines the data needed to create a new ledger.
type CreateLedgerRequest struct {
	Name           string             `json:"name" binding:"required"`
	Group          domain.LedgerGroup `json:"group" binding:"required,oneof=ASSET LIABILITY INCOME EXPENSE BANK CASH SUNDRY_DEBTOR SUNDRY_CREDITOR"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	GSTNumber      string             `json:"gstNumber"`
	Contact        string             `json:"contact"`
}

// LedgerResponse defines the data returned for a ledger.
type LedgerResponse struct {
	LedgerID       string               `json:"ledgerID"`
	Name           string               `json:"name"`
	Group          domain.LedgerGroup   `json:"group"`
	NaturalNature  domain.BalanceNature `json:"naturalNature"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	GSTNumber      string               `json:"gstNumber,omitempty"`
	Contact        string               `json:"contact,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// ToLedgerResponse converts a domain.Ledger to a LedgerResponse DTO.
func ToLedgerResponse(l *domain.Ledger) LedgerResponse {
	nature, _ := l.Group.NaturalNature()
	return LedgerResponse{
		LedgerID:       l.LedgerID,
		Name:           l.Name,
		Group:          l.Group,
		NaturalNature:  nature,
		OpeningBalance: l.OpeningBalance,
		GSTNumber:      l.GSTNumber,
		Contact:        l.Contact,
		CreatedAt:      l.CreatedAt,
	}
}

// ListLedgersResponse wraps the list of ledgers.
type ListLedgersResponse struct {
	Ledgers []LedgerResponse `json:"ledgers"`
}

// ToListLedgersResponse converts a slice of domain.Ledger to the list DTO.
func ToListLedgersResponse(ledgers []domain.Ledger) ListLedgersResponse {
	res := make([]LedgerResponse, len(ledgers))
	for i := range ledgers {
		res[i] = ToLedgerResponse(&ledgers[i])
	}
	return ListLedgersResponse{Ledgers: res}
}

// LedgerBalanceResponse defines the data returned for a balance query.
type LedgerBalanceResponse struct {
	LedgerID string               `json:"ledgerID"`
	Amount   decimal.Decimal      `json:"amount"`
	Nature   domain.BalanceNature `json:"nature"`
}

// ToLedgerBalanceResponse converts a domain.LedgerBalance to its DTO.
func ToLedgerBalanceResponse(b *domain.LedgerBalance) LedgerBalanceResponse {
	return LedgerBalanceResponse{
		LedgerID: b.LedgerID,
		Amount:   b.Amount,
		Nature:   b.Nature,
	}
}
