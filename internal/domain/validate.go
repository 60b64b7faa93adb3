package domain

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// checkDigitRe matches the recorded check digit values: one or two digits.
var checkDigitRe = regexp.MustCompile(`^\d{1,2}$`)

// Issue describes a malformed row in a source or output file. Issues are
// collected and reported; they never abort a pass (valid rows still process).
type Issue struct {
	Row     int
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("row %d: %s", i.Row, i.Message)
}

// ValidateRecord checks that a record has a canonical code and a 1-2 digit
// numeric check digit.
func ValidateRecord(r Record) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code,
			validation.Required,
			validation.Match(canonicalRe).Error("must be a canonical 03-AA-SS-01 code"),
		),
		validation.Field(&r.CheckDigit,
			validation.Required,
			validation.Match(checkDigitRe).Error("must be one or two digits"),
		),
	)
}
