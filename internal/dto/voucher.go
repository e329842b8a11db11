package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// CreateVoucherRequest defines the data needed to record a voucher.
// Date defaults to the current day when omitted. Amount must be
// non-negative; the sign of a transaction is derived from its type,
// never stored.
type CreateVoucherRequest struct {
	Date          string             `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Type          domain.VoucherType `json:"type" binding:"required,oneof=SALES PURCHASE RECEIPT PAYMENT JOURNAL CONTRA"`
	LedgerID      string             `json:"ledgerID" binding:"required"`
	Amount        decimal.Decimal    `json:"amount" binding:"dgte0"`
	Narration     string             `json:"narration"`
	InvoiceNumber string             `json:"invoiceNumber"`
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID     string             `json:"voucherID"`
	Date          string             `json:"date"`
	Type          domain.VoucherType `json:"type"`
	LedgerID      string             `json:"ledgerID"`
	Amount        decimal.Decimal    `json:"amount"`
	Narration     string             `json:"narration,omitempty"`
	InvoiceNumber string             `json:"invoiceNumber,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// ToVoucherResponse converts a domain.Voucher to a VoucherResponse DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:     v.VoucherID,
		Date:          v.Date.Format("2006-01-02"),
		Type:          v.Type,
		LedgerID:      v.LedgerID,
		Amount:        v.Amount,
		Narration:     v.Narration,
		InvoiceNumber: v.InvoiceNumber,
		CreatedAt:     v.CreatedAt,
	}
}

// ListVouchersResponse wraps the journal listing in insertion order.
type ListVouchersResponse struct {
	Vouchers []VoucherResponse `json:"vouchers"`
}

// ToListVouchersResponse converts a slice of domain.Voucher to the list DTO.
func ToListVouchersResponse(vouchers []domain.Voucher) ListVouchersResponse {
	res := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		res[i] = ToVoucherResponse(&vouchers[i])
	}
	return ListVouchersResponse{Vouchers: res}
}
