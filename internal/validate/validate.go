// Package validate contains the field-format predicates used by the input
// prompts and re-checked by the services. All predicates are pure so the
// same rule runs at the input boundary and inside the workflow.
package validate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	dateLayout   = "2006-01-02"
	expiryLayout = "01-2006"
)

var emailRe = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
var passportRe = regexp.MustCompile(`^[A-Za-z0-9]{6,12}$`)

// Date reports whether s is a calendar date in YYYY-MM-DD form.
func Date(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// DateAfter reports whether end is a valid date strictly later than start.
// The boundary end == start is rejected.
func DateAfter(end, start string) bool {
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return false
	}
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return false
	}
	return e.After(s)
}

// Expiry reports whether s is a card expiration in MM-YYYY form strictly
// later than now. A card expiring in the current month is rejected.
func Expiry(s string, now time.Time) bool {
	exp, err := time.Parse(expiryLayout, s)
	if err != nil {
		return false
	}
	return exp.After(now)
}

// CardNumber reports whether s is an all-digit string of exactly 13 or 16
// characters.
func CardNumber(s string) bool {
	if len(s) != 13 && len(s) != 16 {
		return false
	}
	return allDigits(s)
}

// PositiveInt reports whether s is a decimal integer greater than zero.
func PositiveInt(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && allDigits(s) && n > 0
}

// Plate reports whether s is a 6-character plate number.
func Plate(s string) bool {
	return len(s) == 6
}

// Alphabetic reports whether s contains only letters and spaces and has at
// least min non-space length. Used for brand, color, names and addresses.
func Alphabetic(s string, min int) bool {
	stripped := strings.ReplaceAll(s, " ", "")
	if len(strings.TrimSpace(s)) < min {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(stripped) > 0
}

// Alphanumeric reports whether s contains only letters, digits and spaces
// and has at least min non-space length.
func Alphanumeric(s string, min int) bool {
	stripped := strings.ReplaceAll(s, " ", "")
	if len(stripped) < min {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Year reports whether s is a vehicle model year between 1990 and 2025.
func Year(s string) bool {
	if !allDigits(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1990 && n <= 2025
}

// Capacity reports whether s is a passenger capacity between 1 and 15.
func Capacity(s string) bool {
	if !allDigits(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 1 && n <= 15
}

// Email reports whether s looks like name@domain.tld.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Password reports whether s has between 8 and 12 characters.
func Password(s string) bool {
	return len(s) >= 8 && len(s) <= 12
}

// IDNumber validates an identification number against its document type:
//
//   - fisica: 9 digits, first digit between 1 and 7
//   - dimex: 11 or 12 digits
//   - pasaporte: 6 to 12 alphanumeric characters
//   - juridica: 10 digits
func IDNumber(idType, number string) bool {
	switch idType {
	case "fisica":
		return allDigits(number) && len(number) == 9 && number[0] >= '1' && number[0] <= '7'
	case "dimex":
		return allDigits(number) && (len(number) == 11 || len(number) == 12)
	case "pasaporte":
		return passportRe.MatchString(number)
	case "juridica":
		return allDigits(number) && len(number) == 10
	}
	return false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
