package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/leadmapr/leadmapr/internal/entity"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func exportLeads() []entity.Lead {
	return []entity.Lead{
		{
			PlaceID:     "p1",
			Name:        "Cafe Aurora",
			Address:     "12 Main St, Austin",
			Phone:       strPtr("+1 555-0100"),
			Website:     strPtr("https://aurora.example"),
			Rating:      floatPtr(4.5),
			ReviewCount: intPtr(120),
			MapsURL:     "https://www.google.com/maps/place/?q=place_id:p1",
			AISummary:   strPtr("Specialty coffee shop."),
		},
		{
			PlaceID: "p2",
			Name:    "Corner Deli",
			Address: "34 Side St, Austin",
			MapsURL: "https://www.google.com/maps/place/?q=place_id:p2",
		},
	}
}

func TestCSVRoundTrip(t *testing.T) {
	file, err := Leads(exportLeads(), FormatCSV, "")
	require.NoError(t, err)

	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasPrefix(file.Filename, "leads-"))
	assert.True(t, strings.HasSuffix(file.Filename, ".csv"))

	records, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"Business Name", "Address", "Phone", "Website",
		"Rating", "Reviews", "Google Maps", "AI Summary",
	}, records[0])

	assert.Equal(t, []string{
		"Cafe Aurora", "12 Main St, Austin", "+1 555-0100", "https://aurora.example",
		"4.5", "120", "https://www.google.com/maps/place/?q=place_id:p1", "Specialty coffee shop.",
	}, records[1])

	// Absent optionals are empty strings, not zeros.
	assert.Equal(t, []string{
		"Corner Deli", "34 Side St, Austin", "", "",
		"", "", "https://www.google.com/maps/place/?q=place_id:p2", "",
	}, records[2])
}

func TestXLSXRoundTrip(t *testing.T) {
	file, err := Leads(exportLeads(), FormatXLSX, "")
	require.NoError(t, err)

	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Leads"}, f.GetSheetList())

	rows, err := f.GetRows("Leads")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Business Name", rows[0][0])
	assert.Equal(t, "Cafe Aurora", rows[1][0])
	assert.Equal(t, "+1 555-0100", rows[1][2])
	assert.Equal(t, "4.5", rows[1][4])
	assert.Equal(t, "120", rows[1][5])
	assert.Equal(t, "Corner Deli", rows[2][0])

	width, err := f.GetColWidth("Leads", "A")
	require.NoError(t, err)
	assert.InDelta(t, 30, width, 1)
}

func TestWhatsAppDropsLeadsWithoutPhone(t *testing.T) {
	leads := []entity.Lead{
		{PlaceID: "a", Name: "Cafe A", Phone: strPtr("+1 555-0100")},
		{PlaceID: "b", Name: "Cafe B"},
	}

	file, err := Leads(leads, FormatWhatsApp, "")
	require.NoError(t, err)

	assert.Equal(t, "text/tab-separated-values", file.ContentType)
	assert.True(t, strings.HasPrefix(file.Filename, "leads-whatsapp-"))
	assert.True(t, strings.HasSuffix(file.Filename, ".tsv"))

	lines := strings.Split(string(file.Content), "\n")
	require.Len(t, lines, 2, "Cafe B has no phone and must be dropped")

	assert.Equal(t, "Business Name\tPhone\tWhatsApp Link", lines[0])

	fields := strings.Split(lines[1], "\t")
	require.Len(t, fields, 3)
	assert.Equal(t, "Cafe A", fields[0])
	assert.Equal(t, "+1 555-0100", fields[1])
	assert.Contains(t, fields[2], "https://wa.me/15550100?text=")
	assert.Contains(t, fields[2], "Cafe+A")
}

func TestWhatsAppCustomTemplate(t *testing.T) {
	leads := []entity.Lead{
		{PlaceID: "a", Name: "Bistro Nine", Phone: strPtr("(555) 010-2222")},
	}

	file, err := Leads(leads, FormatWhatsApp, "Hello {{business_name}}!")
	require.NoError(t, err)

	lines := strings.Split(string(file.Content), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "https://wa.me/5550102222?text=Hello+Bistro+Nine%21")
}

func TestWhatsAppEmptyInputIsHeaderOnly(t *testing.T) {
	file, err := Leads(nil, FormatWhatsApp, "")
	require.NoError(t, err)
	assert.Equal(t, "Business Name\tPhone\tWhatsApp Link", string(file.Content))
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := Leads(exportLeads(), Format("pdf"), "")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
