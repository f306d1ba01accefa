// Package validation holds the field rules shared by the checkout and contact forms.
//
// Every rule is a pure predicate over a string. Formatters are pure and idempotent so
// they can be reapplied on every keystroke.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// emailPart excludes every Unicode space, not only ASCII whitespace.
const emailPart = `[^\s\p{Zs}\x{2028}\x{2029}\x{FEFF}\v@]`

var (
	emailRegex  = regexp.MustCompile(`^` + emailPart + `+@` + emailPart + `+\.` + emailPart + `+$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	cvvRegex    = regexp.MustCompile(`^\d{3}$`)
	zipRegex    = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	nonDigit    = regexp.MustCompile(`\D`)
	digitRun    = regexp.MustCompile(`\d{4,16}`)
)

// ValidateEmail checks the non-whitespace@non-whitespace.non-whitespace shape.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone accepts any formatting as long as exactly 10 digits remain.
func ValidatePhone(phone string) bool {
	return len(digits(phone)) == 10
}

// ValidateCardNumber accepts any formatting as long as exactly 16 digits remain.
func ValidateCardNumber(cardNumber string) bool {
	return len(digits(cardNumber)) == 16
}

// ValidateExpiryDate checks an MM/YY expiry against the current month.
func ValidateExpiryDate(expiryDate string) bool {
	return ValidateExpiryDateAt(expiryDate, time.Now())
}

// ValidateExpiryDateAt checks an MM/YY expiry against the month of now.
//
// Years are compared as two digits, so the check wraps at the century: "99" is
// treated as earlier than "05". This matches the card-issuer convention the form
// has always used and is kept as is.
func ValidateExpiryDateAt(expiryDate string, now time.Time) bool {
	m := expiryRegex.FindStringSubmatch(expiryDate)
	if m == nil {
		return false
	}

	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())

	return year > currentYear || (year == currentYear && month >= currentMonth)
}

// ValidateCVV requires exactly three digits.
func ValidateCVV(cvv string) bool {
	return cvvRegex.MatchString(cvv)
}

// ValidateZipCode accepts 12345 or 12345-6789.
func ValidateZipCode(zipCode string) bool {
	return zipRegex.MatchString(zipCode)
}

// FormatCardNumber groups the first run of 4 to 16 digits into blocks of four.
// Input without such a run is returned unchanged.
func FormatCardNumber(value string) string {
	match := digitRun.FindString(digits(value))
	if match == "" {
		return value
	}

	parts := make([]string, 0, 4)
	for i := 0; i < len(match); i += 4 {
		end := min(i+4, len(match))
		parts = append(parts, match[i:end])
	}

	return strings.Join(parts, " ")
}

// FormatExpiryDate inserts the slash once a third digit is typed.
func FormatExpiryDate(value string) string {
	clean := digits(value)
	if len(clean) < 3 {
		return clean
	}

	return clean[:2] + "/" + clean[2:min(4, len(clean))]
}

// RedactCardNumber keeps only the last four digits.
func RedactCardNumber(cardNumber string) string {
	clean := digits(cardNumber)
	if len(clean) > 4 {
		clean = clean[len(clean)-4:]
	}

	return "**** **** **** " + clean
}

func digits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}
