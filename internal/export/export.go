package export

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/leadmapr/leadmapr/internal/entity"
)

type Format string

const (
	FormatCSV      Format = "csv"
	FormatXLSX     Format = "xlsx"
	FormatWhatsApp Format = "whatsapp"
)

// ErrUnsupportedFormat is returned for an unrecognized format token.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// File is one generated export, ready to stream as a download.
type File struct {
	Content     []byte
	ContentType string
	Filename    string
}

var columns = []string{
	"Business Name",
	"Address",
	"Phone",
	"Website",
	"Rating",
	"Reviews",
	"Google Maps",
	"AI Summary",
}

// Leads serializes the list into the requested format. Empty input is not
// special-cased here: it yields a header-only table, and rejecting it is
// the caller's job. messageTemplate only applies to the whatsapp format.
func Leads(leads []entity.Lead, format Format, messageTemplate string) (*File, error) {
	stamp := time.Now().UnixMilli()

	switch format {
	case FormatCSV:
		content, err := generateCSV(leads)
		if err != nil {
			return nil, err
		}
		return &File{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("leads-%d.csv", stamp),
		}, nil

	case FormatXLSX:
		content, err := generateExcel(leads)
		if err != nil {
			return nil, err
		}
		return &File{
			Content:     content,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Filename:    fmt.Sprintf("leads-%d.xlsx", stamp),
		}, nil

	case FormatWhatsApp:
		return &File{
			Content:     generateWhatsApp(leads, messageTemplate),
			ContentType: "text/tab-separated-values",
			Filename:    fmt.Sprintf("leads-whatsapp-%d.tsv", stamp),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// leadRow renders a lead into the shared column order. Absent optional
// fields become empty strings, never zeros.
func leadRow(lead entity.Lead) []string {
	phone, website, rating, reviews, summary := "", "", "", "", ""
	if lead.Phone != nil {
		phone = *lead.Phone
	}
	if lead.Website != nil {
		website = *lead.Website
	}
	if lead.Rating != nil {
		rating = strconv.FormatFloat(*lead.Rating, 'f', -1, 64)
	}
	if lead.ReviewCount != nil {
		reviews = strconv.Itoa(*lead.ReviewCount)
	}
	if lead.AISummary != nil {
		summary = *lead.AISummary
	}

	return []string{lead.Name, lead.Address, phone, website, rating, reviews, lead.MapsURL, summary}
}
