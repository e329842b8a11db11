package services

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/utils/accounting"
)

// tallyExportService implements the TallyExportSvcFacade interface.
type tallyExportService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepository
	voucherRepo portsrepo.VoucherRepository
}

// NewTallyExportService creates a new interchange export service.
func NewTallyExportService(ledgerRepo portsrepo.LedgerRepository, voucherRepo portsrepo.VoucherRepository) portssvc.TallyExportSvcFacade {
	return &tallyExportService{
		ledgerRepo:  ledgerRepo,
		voucherRepo: voucherRepo,
	}
}

var _ portssvc.TallyExportSvcFacade = (*tallyExportService)(nil)

// ExportInterchange maps every voucher in the journal onto a balanced
// two-leg entry pair and serializes the batch as one Tally import
// document. A dangling party reference exports under the unknown-ledger
// sentinel; the export never skips or drops a voucher.
func (s *tallyExportService) ExportInterchange(ctx context.Context) (string, error) {
	vouchers, err := s.voucherRepo.ListVouchers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vouchers for export")
		return "", fmt.Errorf("failed to export vouchers: %w", err)
	}

	entries := make([]domain.VoucherEntry, 0, len(vouchers))
	for _, v := range vouchers {
		partyName, err := s.resolvePartyName(ctx, v.LedgerID)
		if err != nil {
			return "", err
		}
		entries = append(entries, accounting.BuildEntryPair(v, partyName))
	}

	doc, err := marshalTallyDocument(entries)
	if err != nil {
		s.LogError(ctx, err, "Failed to serialize interchange document")
		return "", fmt.Errorf("%w: %s", apperrors.ErrExportFailure, err)
	}

	s.LogInfo(ctx, "Interchange document exported", slog.Int("voucher_count", len(entries)))
	return doc, nil
}

func (s *tallyExportService) resolvePartyName(ctx context.Context, ledgerID string) (string, error) {
	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, ledgerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.UnknownLedgerName, nil
		}
		s.LogError(ctx, err, "Failed to resolve party ledger for export", slog.String("ledger_id", ledgerID))
		return "", fmt.Errorf("failed to resolve party ledger %s: %w", ledgerID, err)
	}
	return ledger.Name, nil
}

// marshalTallyDocument writes the fixed envelope and one TALLYMESSAGE
// block per entry. Field names, order and nesting are dictated by the
// Tally import format and must not change.
func marshalTallyDocument(entries []domain.VoucherEntry) (string, error) {
	var b strings.Builder

	b.WriteString("<ENVELOPE>\n")
	b.WriteString(" <HEADER>\n")
	b.WriteString("  <TALLYREQUEST>Import Data</TALLYREQUEST>\n")
	b.WriteString(" </HEADER>\n")
	b.WriteString(" <BODY>\n")
	b.WriteString("  <IMPORTDATA>\n")
	b.WriteString("   <REQUESTDESC>\n")
	b.WriteString("    <REPORTNAME>Vouchers</REPORTNAME>\n")
	b.WriteString("   </REQUESTDESC>\n")
	b.WriteString("   <REQUESTDATA>\n")

	for _, e := range entries {
		if err := writeTallyMessage(&b, e); err != nil {
			return "", err
		}
	}

	b.WriteString("   </REQUESTDATA>\n")
	b.WriteString("  </IMPORTDATA>\n")
	b.WriteString(" </BODY>\n")
	b.WriteString("</ENVELOPE>\n")

	return b.String(), nil
}

func writeTallyMessage(b *strings.Builder, e domain.VoucherEntry) error {
	b.WriteString("    <TALLYMESSAGE>\n")
	b.WriteString(`     <VOUCHER VCHTYPE="`)
	if err := xml.EscapeText(b, []byte(e.Type.DisplayName())); err != nil {
		return err
	}
	b.WriteString("\" ACTION=\"Create\">\n")

	if err := writeTag(b, "      ", "DATE", e.Date.Format("20060102")); err != nil {
		return err
	}
	if err := writeTag(b, "      ", "NARRATION", e.Narration); err != nil {
		return err
	}
	if err := writeTag(b, "      ", "VOUCHERNUMBER", e.Reference); err != nil {
		return err
	}
	if err := writeLedgerEntry(b, e.Party); err != nil {
		return err
	}
	if err := writeLedgerEntry(b, e.Contra); err != nil {
		return err
	}

	b.WriteString("     </VOUCHER>\n")
	b.WriteString("    </TALLYMESSAGE>\n")
	return nil
}

func writeLedgerEntry(b *strings.Builder, leg domain.EntryLeg) error {
	positive := "No"
	if leg.Positive {
		positive = "Yes"
	}

	b.WriteString("      <ALLLEDGERENTRIES.LIST>\n")
	if err := writeTag(b, "       ", "LEDGERNAME", leg.LedgerName); err != nil {
		return err
	}
	if err := writeTag(b, "       ", "ISDEEMEDPOSITIVE", positive); err != nil {
		return err
	}
	if err := writeTag(b, "       ", "AMOUNT", leg.Amount.String()); err != nil {
		return err
	}
	b.WriteString("      </ALLLEDGERENTRIES.LIST>\n")
	return nil
}

func writeTag(b *strings.Builder, indent, name, value string) error {
	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	if err := xml.EscapeText(b, []byte(value)); err != nil {
		return err
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">\n")
	return nil
}
