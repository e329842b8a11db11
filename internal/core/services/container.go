package services

import (
	"github.com/shopspring/decimal"

	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly
// initialized dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, gstRate decimal.Decimal) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:      NewLedgerService(repos.LedgerRepo, repos.VoucherRepo),
		Voucher:     NewVoucherService(repos.VoucherRepo),
		Reporting:   NewReportingService(repos.LedgerRepo, repos.VoucherRepo, gstRate),
		TallyExport: NewTallyExportService(repos.LedgerRepo, repos.VoucherRepo),
	}
}
