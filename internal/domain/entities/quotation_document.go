package entities

import "time"

// QuotationDocument is the printable view of an LPU, shared by the xlsx and pdf exporters.
type QuotationDocument struct {
	LPUID      string
	WorkID     string
	LimitDate  string
	Status     LPUStatus
	AccessURL  string
	Lines      []QuotationLine
	Total      float64
	Submission *SubmissionMetadata
	Revisions  []RevisionSummary
	Comment    string
	IssuedAt   time.Time
}

// QuotationLine is one line item, in natural dotted order.
type QuotationLine struct {
	ItemID   string
	Quantity float64
	Price    float64
	Total    float64
	Priced   bool
}

type RevisionSummary struct {
	Number       int
	CreatedAt    time.Time
	SupplierName string
	SignerName   string
	Total        float64
	Items        int
}
