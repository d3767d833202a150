package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const timestampLayout = "2006-01-02 15:04:05"

var attendeeHeaders = []string{"#", "User ID", "Username", "Full Name", "Email", "Phone", "Joined At"}

// ReportExporter renders attendee reports. It returns the file body, its name and MIME type.
type ReportExporter interface {
	Export(format string, report AttendeeReport) ([]byte, string, string, error)
}

type reportExporter struct{}

func NewReportExporter() ReportExporter {
	return &reportExporter{}
}

func (e *reportExporter) Export(format string, report AttendeeReport) ([]byte, string, string, error) {
	base := fmt.Sprintf("event_%d_attendees_%s", report.EventID, report.GeneratedAt.Format("20060102_150405"))

	switch format {
	case FormatCSV:
		data, err := e.exportCSV(report)
		if err != nil {
			return nil, "", "", err
		}
		return data, base + ".csv", mimeCSV, nil

	case FormatExcel:
		data, err := e.exportExcel(report)
		if err != nil {
			return nil, "", "", err
		}
		return data, base + ".xlsx", mimeExcel, nil

	case FormatPDF:
		data, err := e.exportPDF(report)
		if err != nil {
			return nil, "", "", err
		}
		return data, base + ".pdf", mimePDF, nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for attendees: %s", format)
	}
}

func rowValues(i int, r AttendeeReportRow) []string {
	return []string{
		strconv.Itoa(i + 1),
		strconv.FormatUint(uint64(r.UserID), 10),
		r.Username,
		r.FullName,
		r.Email,
		r.Phone,
		r.JoinedAt.Format(timestampLayout),
	}
}

func (e *reportExporter) exportCSV(report AttendeeReport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(attendeeHeaders); err != nil {
		return nil, err
	}
	for i, row := range report.Rows {
		if err := writer.Write(rowValues(i, row)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportExcel(report AttendeeReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Attendees"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	// title rows, then the table from row 4
	f.SetCellValue(sheetName, "A1", report.Title)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("%s, %s", report.Location, report.Schedule))

	for i, header := range attendeeHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheetName, cell, header)
	}

	for i, row := range report.Rows {
		for j, v := range rowValues(i, row) {
			cell, err := excelize.CoordinatesToCellName(j+1, i+5)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheetName, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportPDF(report AttendeeReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(report.Title))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%s, %s (%d going)", report.Location, report.Schedule, len(report.Rows))))
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 9)
	widths := []float64{10, 18, 40, 50, 60, 35, 40}
	for i, h := range attendeeHeaders {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i, row := range report.Rows {
		for j, v := range rowValues(i, row) {
			pdf.CellFormat(widths[j], 6, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
