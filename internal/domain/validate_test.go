package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		wantErr string
	}{
		{"valid one-digit", Record{Code: "03-58-22-01", CheckDigit: "7"}, ""},
		{"valid two-digit", Record{Code: "03-40-15-01", CheckDigit: "14"}, ""},
		{"missing code", Record{CheckDigit: "7"}, "station_number"},
		{"non-canonical code", Record{Code: "58-22", CheckDigit: "7"}, "canonical"},
		{"wrong building", Record{Code: "04-58-22-01", CheckDigit: "7"}, "canonical"},
		{"missing digit", Record{Code: "03-58-22-01"}, "check_digit"},
		{"digit too long", Record{Code: "03-58-22-01", CheckDigit: "123"}, "digits"},
		{"non-numeric digit", Record{Code: "03-58-22-01", CheckDigit: "x7"}, "digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecord(tt.record)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIssueString(t *testing.T) {
	issue := Issue{Row: 12, Message: "expected 2 columns, got 3"}
	assert.Equal(t, "row 12: expected 2 columns, got 3", issue.String())
}
