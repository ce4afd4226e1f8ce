package interfaces

import "gestao_obras/internal/domain/entities"

// IDocumentRenderer turns a quotation into a downloadable file (xlsx, pdf).
type IDocumentRenderer interface {
	Format() string
	ContentType() string
	Render(doc entities.QuotationDocument) ([]byte, error)
}
