package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/mfarias/recibos-api/internal/models"
)

// RenderService lays an assembled receipt out as a PDF. The body string is
// treated as final: nothing in it is re-derived or reformatted here.
type RenderService struct{}

func NewRenderService() *RenderService {
	return &RenderService{}
}

// RenderPDF produces the printable artifact for an assembled receipt: the
// paragraph with page wrap plus a dated signature block.
func (s *RenderService) RenderPDF(doc *models.ReceiptDocument) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, tr("Recibo de Pago"))
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 7, tr(doc.Body), "", "J", false)
	pdf.Ln(24)

	pdf.Cell(90, 7, tr(fmt.Sprintf("Fecha de emisión: %s", doc.GeneratedAt.Format("02/01/2006"))))
	pdf.Ln(18)

	pdf.Cell(90, 7, "_________________________")
	pdf.Ln(6)
	pdf.Cell(90, 7, tr("Firma y aclaración"))

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), doc.Filename + ".pdf", nil
}
