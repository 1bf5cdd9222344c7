// Package importer implements the CSV bulk-import pipeline for builder
// profiles: parse, validate, transform. Persistence is driven by the
// import usecase through the builder repository.
package importer

import "strings"

// Column headers of the bulk-upload template. Rows are keyed by these
// verbatim header names.
const (
	ColCompanyName         = "Company Name"
	ColEmail               = "Email"
	ColPhoneNumber         = "Phone Number"
	ColContactPerson       = "Contact Person"
	ColCountry             = "Country"
	ColCities              = "Cities"
	ColServicesProvided    = "Services Provided"
	ColBusinessDescription = "Business Description"
	ColWebsite             = "Website"
	ColType                = "Type"
	ColImageURL            = "Image URL"
	ColPortfolioImages     = "Portfolio Images"
)

// RawRow maps a column header to the raw string value of one CSV data line.
type RawRow map[string]string

// Parse converts raw delimited text into an ordered sequence of RawRows.
// Blank lines are dropped; the first surviving line is the header. Fewer
// than two non-blank lines yields nil ("nothing to import", not an error).
//
// Values are split on "," positionally; quoted commas are not supported.
// The template never emits embedded commas, and row numbering downstream
// depends on this simple positional model.
func Parse(content string) []RawRow {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil
	}

	headers := splitLine(lines[0])

	rows := make([]RawRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitLine(line)

		row := make(RawRow, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = values[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}

// splitLine splits one CSV line on commas, stripping quotes and whitespace
// from every cell.
func splitLine(line string) []string {
	cells := strings.Split(line, ",")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(strings.ReplaceAll(cell, `"`, ""))
	}

	return cells
}

// splitList splits a comma-separated list cell into trimmed elements.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	return parts
}
