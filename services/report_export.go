package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/utils"
	"github.com/go-pdf/fpdf"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/xuri/excelize/v2"
)

// Exports format already-generated rows; they never re-aggregate.

// ExportXLSX renders report rows into a spreadsheet.
func (rs *ReportService) ExportXLSX(f ReportFilters, rows []ReportRow) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Report"
	file.SetSheetName("Sheet1", sheet)

	file.SetCellValue(sheet, "A1", fmt.Sprintf("%s report (%s)", f.ReportType, f.DateRange))
	file.SetCellValue(sheet, "A2", "Group")
	file.SetCellValue(sheet, "B2", "Label")
	file.SetCellValue(sheet, "C2", "Count")
	file.SetCellValue(sheet, "D2", "Amount")

	for i, row := range rows {
		line := i + 3
		file.SetCellValue(sheet, fmt.Sprintf("A%d", line), row.Group)
		file.SetCellValue(sheet, fmt.Sprintf("B%d", line), row.Label)
		file.SetCellValue(sheet, fmt.Sprintf("C%d", line), row.Count)
		file.SetCellValue(sheet, fmt.Sprintf("D%d", line), row.Amount)
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	from, to, _ := utils.ResolveDateRange(f.DateRange, f.StartDate, f.EndDate)
	rs.appendHistory(f, models.ReportExportedXLSX, len(rows), from, to)
	return buf.Bytes(), nil
}

// ExportPDF renders report rows into a PDF document. Day-grouped rows also
// get a bar chart page.
func (rs *ReportService) ExportPDF(f ReportFilters, rows []ReportRow) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s report", f.ReportType), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("%s report (%s)", f.ReportType, f.DateRange))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 7, "Group", "1", 0, "L", false, 0, "")
	pdf.CellFormat(75, 7, "Label", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Count", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(35, 7, row.Group, "1", 0, "L", false, 0, "")
		pdf.CellFormat(75, 7, row.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", row.Count), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", row.Amount), "1", 1, "R", false, 0, "")
	}

	if png, err := renderDayChart(rows); err == nil && png != nil {
		opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader("day-chart", opts, bytes.NewReader(png))
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 10, "Per-day breakdown")
		pdf.Ln(12)
		pdf.ImageOptions("day-chart", 10, pdf.GetY(), 190, 0, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	from, to, _ := utils.ResolveDateRange(f.DateRange, f.StartDate, f.EndDate)
	rs.appendHistory(f, models.ReportExportedPDF, len(rows), from, to)
	return buf.Bytes(), nil
}

// renderDayChart builds a bar chart from rows grouped by day. Returns nil
// bytes when there is nothing to plot.
func renderDayChart(rows []ReportRow) ([]byte, error) {
	var bars []chart.Value
	for _, row := range rows {
		if row.Group != "day" {
			continue
		}
		bars = append(bars, chart.Value{Label: row.Label, Value: float64(row.Count)})
	}
	if len(bars) == 0 {
		return nil, nil
	}

	graph := chart.BarChart{
		Width:    900,
		Height:   400,
		BarWidth: 40,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
