package reports

import "time"

const (
	FormatCSV   = "csv"
	FormatExcel = "xlsx"
	FormatPDF   = "pdf"
)

const (
	mimeCSV   = "text/csv"
	mimeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF   = "application/pdf"
)

// NormalizeFormat maps accepted spellings onto the export formats. ok is false for
// anything unsupported.
func NormalizeFormat(raw string) (string, bool) {
	switch raw {
	case "", FormatCSV:
		return FormatCSV, true
	case FormatExcel, "excel":
		return FormatExcel, true
	case FormatPDF:
		return FormatPDF, true
	default:
		return "", false
	}
}

// AttendeeReport is everything an export of one event's attendees contains.
type AttendeeReport struct {
	EventID     uint
	Title       string
	Location    string
	Schedule    string // already rendered in the server time zone
	GeneratedAt time.Time
	Rows        []AttendeeReportRow
}

type AttendeeReportRow struct {
	UserID   uint
	Username string
	FullName string
	Email    string
	Phone    string
	JoinedAt time.Time
}
