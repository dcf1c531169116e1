package services

import (
	"fmt"

	"github.com/mfarias/recibos-api/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportService produces the bookkeeping spreadsheet that accompanies a
// receipt: one row per acknowledged concept with its amount in words.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func (s *ExportService) ExportXLSX(req models.ReceiptRequest, doc *models.ReceiptDocument) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Detalle"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("Recibo %s — periodo %s", doc.Filename, req.Period))
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	_ = f.SetCellValue(sheet, "A3", "Concepto")
	_ = f.SetCellValue(sheet, "B3", "Periodo")
	_ = f.SetCellValue(sheet, "C3", "Importe")
	_ = f.SetCellValue(sheet, "D3", "Importe en letras")
	_ = f.SetCellStyle(sheet, "A3", "D3", headerStyle)

	row := 4
	for _, item := range req.Items {
		words, err := NumberToWords(item.Amount.IntPart())
		if err != nil {
			return nil, "", fmt.Errorf("concepto %d (%s): %w", item.ID, item.Concept, err)
		}

		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Concept)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Period)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), FormatAmount(item.Amount))
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), words)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 30)
	_ = f.SetColWidth(sheet, "C", "C", 16)
	_ = f.SetColWidth(sheet, "D", "D", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), doc.Filename + ".xlsx", nil
}
