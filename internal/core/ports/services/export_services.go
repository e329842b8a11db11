package services

import "context"

// TallyExportSvcFacade produces the double-entry interchange document.
type TallyExportSvcFacade interface {
	// ExportInterchange serializes every voucher in the journal into one
	// Tally import document. It either emits the whole journal or fails;
	// there is no partial output.
	ExportInterchange(ctx context.Context) (string, error)
}
