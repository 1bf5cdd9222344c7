package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_WellFormedFile(t *testing.T) {
	content := "Company Name,Email,Country\n" +
		"\"Smart Expo Solutions\",info@smartexpo.com,\"United States\"\n" +
		"Berlin Design Studios,contact@berlindesign.de,Germany\n"

	rows := Parse(content)

	require.Len(t, rows, 2)
	assert.Equal(t, "Smart Expo Solutions", rows[0][ColCompanyName])
	assert.Equal(t, "info@smartexpo.com", rows[0][ColEmail])
	assert.Equal(t, "United States", rows[0][ColCountry])
	assert.Equal(t, "Berlin Design Studios", rows[1][ColCompanyName])
}

func TestParse_PreservesRowOrder(t *testing.T) {
	content := "Company Name\nfirst\nsecond\nthird\n"

	rows := Parse(content)

	require.Len(t, rows, 3)
	assert.Equal(t, "first", rows[0][ColCompanyName])
	assert.Equal(t, "second", rows[1][ColCompanyName])
	assert.Equal(t, "third", rows[2][ColCompanyName])
}

func TestParse_DropsBlankLines(t *testing.T) {
	content := "Company Name,Email\n\n   \nAcme,info@acme.com\n\n"

	rows := Parse(content)

	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0][ColCompanyName])
}

func TestParse_CRLFLineEndings(t *testing.T) {
	content := "Company Name,Email\r\nAcme,info@acme.com\r\n"

	rows := Parse(content)

	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0][ColCompanyName])
	assert.Equal(t, "info@acme.com", rows[0][ColEmail])
}

func TestParse_TooFewLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty input", ""},
		{"only whitespace", "  \n \n"},
		{"header only", "Company Name,Email\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Parse(tt.content))
		})
	}
}

func TestParse_MissingTrailingValues(t *testing.T) {
	content := "Company Name,Email,Website\nAcme,info@acme.com\n"

	rows := Parse(content)

	require.Len(t, rows, 1)
	assert.Equal(t, "info@acme.com", rows[0][ColEmail])
	assert.Equal(t, "", rows[0][ColWebsite])
}
