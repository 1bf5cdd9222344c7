package importer

import (
	"fmt"
	"regexp"
	"strings"
)

// FirstDataRow is the 1-based spreadsheet row number of the first data row;
// row 1 is the header. Error rows must line up with what the user sees in
// their spreadsheet application.
const FirstDataRow = 2

// FieldError is a single validation failure tied to a specific row and field.
type FieldError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)
)

// validTypes is the closed set of stand types accepted in the Type column.
var validTypes = []string{"modular", "custom", "portable", "double-deck", "country-pavilion", "design-only"}

// Validate checks every row against the field-level rules and returns all
// accumulated errors; it never short-circuits, so the user can fix the whole
// file in one pass. An empty result means all rows are valid. Duplicate
// detection here is scoped to the uploaded file; duplicates against already
// stored profiles are handled at persistence time.
func Validate(rows []RawRow, startRow int) []FieldError {
	var errs []FieldError
	seenEmails := make(map[string]struct{}, len(rows))

	for index, row := range rows {
		rowNumber := startRow + index

		if strings.TrimSpace(row[ColCompanyName]) == "" {
			errs = append(errs, FieldError{Row: rowNumber, Field: ColCompanyName, Message: "Company name is required"})
		}

		email := row[ColEmail]
		switch {
		case strings.TrimSpace(email) == "":
			errs = append(errs, FieldError{Row: rowNumber, Field: ColEmail, Message: "Email is required"})
		case !emailPattern.MatchString(email):
			errs = append(errs, FieldError{Row: rowNumber, Field: ColEmail, Message: "Invalid email format"})
		default:
			lower := strings.ToLower(email)
			if _, dup := seenEmails[lower]; dup {
				errs = append(errs, FieldError{Row: rowNumber, Field: ColEmail, Message: "Duplicate email in file"})
			} else {
				seenEmails[lower] = struct{}{}
			}
		}

		phone := row[ColPhoneNumber]
		if strings.TrimSpace(phone) == "" {
			errs = append(errs, FieldError{Row: rowNumber, Field: ColPhoneNumber, Message: "Phone number is required"})
		} else if !phonePattern.MatchString(phone) {
			errs = append(errs, FieldError{Row: rowNumber, Field: ColPhoneNumber, Message: "Invalid phone number format"})
		}

		if strings.TrimSpace(row[ColCountry]) == "" {
			errs = append(errs, FieldError{Row: rowNumber, Field: ColCountry, Message: "Country is required"})
		}

		if strings.TrimSpace(row[ColCities]) == "" {
			errs = append(errs, FieldError{Row: rowNumber, Field: ColCities, Message: "At least one city is required"})
		}

		if strings.TrimSpace(row[ColServicesProvided]) == "" {
			errs = append(errs, FieldError{Row: rowNumber, Field: ColServicesProvided, Message: "Services are required"})
		}

		if standType := row[ColType]; standType != "" && !isValidType(standType) {
			errs = append(errs, FieldError{
				Row:     rowNumber,
				Field:   ColType,
				Message: fmt.Sprintf("Invalid type. Must be one of: %s", strings.Join(validTypes, ", ")),
			})
		}

		// Deliberately lax: anything starting with "http" passes.
		if website := row[ColWebsite]; strings.TrimSpace(website) != "" && !strings.HasPrefix(website, "http") {
			errs = append(errs, FieldError{Row: rowNumber, Field: ColWebsite, Message: "Website must start with http:// or https://"})
		}
	}

	return errs
}

func isValidType(standType string) bool {
	lower := strings.ToLower(standType)
	for _, valid := range validTypes {
		if lower == valid {
			return true
		}
	}

	return false
}
