package documents

import (
	"bytes"
	"fmt"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	pdfPageWidth = 190.0
	qrImageName  = "supplier-access-qr"
	qrSizePixels = 256
	qrSizeMM     = 32.0
)

// PDFRenderer prints the quotation on A4. While the LPU waits for the supplier, the
// access link is printed together with a QR code pointing at it.
type PDFRenderer struct{}

var _ interfaces.IDocumentRenderer = PDFRenderer{}

func NewPDFRenderer() PDFRenderer { return PDFRenderer{} }

func (PDFRenderer) Format() string { return "pdf" }

func (PDFRenderer) ContentType() string { return "application/pdf" }

func (PDFRenderer) Render(doc entities.QuotationDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; accents would print as garbage without the translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(pdfPageWidth, 6, tr(fmt.Sprintf("Emitido em %s - página %d", formatTime(doc.IssuedAt), pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(pdfPageWidth, 10, tr("Lista de Preços Unitários"))
	pdf.Ln(12)

	top := pdf.GetY()
	pdf.SetFont("Arial", "", 10)
	info := [][2]string{
		{"LPU", doc.LPUID},
		{"Obra", doc.WorkID},
		{"Data limite", orDash(doc.LimitDate)},
		{"Status", statusLabel(doc.Status)},
	}
	if doc.Submission != nil {
		info = append(info,
			[2]string{"Fornecedor", doc.Submission.SupplierName},
			[2]string{"CNPJ", doc.Submission.SupplierCNPJ},
			[2]string{"Assinado por", doc.Submission.SignerName},
			[2]string{"Enviado em", formatTime(doc.Submission.SubmissionDate)},
		)
	}
	for _, kv := range info {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(35, 6, tr(kv[0]+":"))
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(110, 6, tr(kv[1]))
		pdf.Ln(6)
	}

	if doc.AccessURL != "" {
		if err := drawAccessQR(pdf, doc.AccessURL, top); err != nil {
			return nil, err
		}
		pdf.SetY(max(pdf.GetY(), top+qrSizeMM) + 2)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(pdfPageWidth, 5, tr("Acesso do fornecedor: "+doc.AccessURL), "", "L", false)
	}

	if doc.Comment != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(pdfPageWidth, 6, tr("Comentário de revisão"))
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(pdfPageWidth, 5, tr(doc.Comment), "", "L", false)
	}
	pdf.Ln(4)

	cols := []float64{70, 35, 40, 45}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for i, h := range []string{"Item", "Quantidade", "Preço unitário", "Total"} {
		pdf.CellFormat(cols[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, line := range doc.Lines {
		price, total := "-", "-"
		if line.Priced {
			price, total = formatMoney(line.Price), formatMoney(line.Total)
		}
		pdf.CellFormat(cols[0], 7, tr(line.ItemID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[1], 7, formatQuantity(line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[2], 7, tr(price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[3], 7, tr(total), "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(cols[0]+cols[1]+cols[2], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(cols[3], 8, tr(formatMoney(doc.Total)), "1", 1, "R", false, 0, "")

	if len(doc.Revisions) > 0 {
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(pdfPageWidth, 8, tr("Histórico de revisões"))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 9)
		for _, rev := range doc.Revisions {
			line := fmt.Sprintf("%s | %s | %s | %d itens | %s",
				revisionLabel(rev.Number), formatTime(rev.CreatedAt), orDash(rev.SupplierName), rev.Items, formatMoney(rev.Total))
			pdf.MultiCell(pdfPageWidth, 5, tr(line), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawAccessQR places the QR code in the top right corner, next to the header block.
func drawAccessQR(pdf *gofpdf.Fpdf, url string, top float64) error {
	png, err := qrcode.Encode(url, qrcode.Medium, qrSizePixels)
	if err != nil {
		return fmt.Errorf("encode access qr: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(png))
	if err := pdf.Error(); err != nil {
		return err
	}
	pageWidth, _ := pdf.GetPageSize()
	_, _, right, _ := pdf.GetMargins()
	pdf.ImageOptions(qrImageName, pageWidth-right-qrSizeMM, top, qrSizeMM, qrSizeMM, false, opts, 0, "")
	return nil
}
