package documents

import (
	"fmt"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxSheetLPU     = "LPU"
	xlsxSheetHistory = "Historico"
)

// XLSXRenderer writes the quotation as a spreadsheet: the priced lines on the
// first sheet and one row per revision snapshot on the second.
type XLSXRenderer struct{}

var _ interfaces.IDocumentRenderer = XLSXRenderer{}

func NewXLSXRenderer() XLSXRenderer { return XLSXRenderer{} }

func (XLSXRenderer) Format() string { return "xlsx" }

func (XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXRenderer) Render(doc entities.QuotationDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheetLPU); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F0F0F0"}},
	})
	if err != nil {
		return nil, err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, err
	}

	w := sheetWriter{f: f, sheet: xlsxSheetLPU}
	w.row("LPU", doc.LPUID)
	w.row("Obra", doc.WorkID)
	w.row("Data limite", orDash(doc.LimitDate))
	w.row("Status", statusLabel(doc.Status))
	if doc.AccessURL != "" {
		w.row("Link do fornecedor", doc.AccessURL)
	}
	if doc.Submission != nil {
		w.row("Fornecedor", doc.Submission.SupplierName)
		w.row("CNPJ", doc.Submission.SupplierCNPJ)
		w.row("Assinado por", doc.Submission.SignerName)
		w.row("Enviado em", formatTime(doc.Submission.SubmissionDate))
	}
	if doc.Comment != "" {
		w.row("Comentário de revisão", doc.Comment)
	}
	w.row("Emitido em", formatTime(doc.IssuedAt))
	if err := f.SetCellStyle(xlsxSheetLPU, "A1", fmt.Sprintf("A%d", w.next-1), bold); err != nil {
		return nil, err
	}

	w.next++
	first := w.next
	w.row("Item", "Quantidade", "Preço unitário", "Total")
	if err := f.SetCellStyle(xlsxSheetLPU, cell("A", first), cell("D", first), header); err != nil {
		return nil, err
	}
	for _, line := range doc.Lines {
		if line.Priced {
			w.row(line.ItemID, line.Quantity, line.Price, line.Total)
		} else {
			w.row(line.ItemID, line.Quantity, "", "")
		}
	}
	w.row("Total", "", "", doc.Total)
	last := w.next - 1
	if err := f.SetCellStyle(xlsxSheetLPU, cell("C", first+1), cell("D", last), money); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(xlsxSheetLPU, cell("A", last), cell("A", last), bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(xlsxSheetLPU, "A", "A", 24); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(xlsxSheetLPU, "B", "D", 16); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(xlsxSheetHistory); err != nil {
		return nil, err
	}
	h := sheetWriter{f: f, sheet: xlsxSheetHistory, next: 1}
	h.row("Revisão", "Criada em", "Fornecedor", "Assinado por", "Itens", "Total")
	if err := f.SetCellStyle(xlsxSheetHistory, "A1", "F1", header); err != nil {
		return nil, err
	}
	for _, rev := range doc.Revisions {
		h.row(rev.Number, formatTime(rev.CreatedAt), orDash(rev.SupplierName), orDash(rev.SignerName), rev.Items, rev.Total)
	}
	if err := f.SetColWidth(xlsxSheetHistory, "A", "F", 18); err != nil {
		return nil, err
	}
	if w.err != nil {
		return nil, w.err
	}
	if h.err != nil {
		return nil, h.err
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type sheetWriter struct {
	f     *excelize.File
	sheet string
	next  int
	err   error
}

func (w *sheetWriter) row(values ...interface{}) {
	if w.next == 0 {
		w.next = 1
	}
	if w.err == nil {
		w.err = w.f.SetSheetRow(w.sheet, cell("A", w.next), &values)
	}
	w.next++
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
