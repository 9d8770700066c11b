package checkout

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Result is the outcome of checking one field.
type Result struct {
	Valid   bool
	Message string
}

func ok() Result { return Result{Valid: true} }

func fail(msg string) Result { return Result{Message: msg} }

const minAddressLength = 10

// ServiceablePincodes is the delivery allow-list.
var ServiceablePincodes = map[string]bool{
	"123456": true,
	"987654": true,
	"213454": true,
	"781009": true,
}

var (
	phonePattern  = regexp.MustCompile(`^[6-9]\d{9}$`)
	cardPattern   = regexp.MustCompile(`^\d{4} ?\d{4} ?\d{4} ?\d{4}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidateName requires at least one non-space character.
func ValidateName(v string) Result {
	if strings.TrimSpace(v) == "" {
		return fail("Name cannot be empty.")
	}
	return ok()
}

// ValidatePhone accepts a 10-digit Indian mobile number starting 6-9.
func ValidatePhone(v string) Result {
	if !phonePattern.MatchString(v) {
		return fail("Please enter a valid 10-digit Indian phone number.")
	}
	return ok()
}

// ValidateAddress requires at least ten characters after trimming.
func ValidateAddress(v string) Result {
	if utf8.RuneCountInString(strings.TrimSpace(v)) < minAddressLength {
		return fail("Please enter a complete address.")
	}
	return ok()
}

// ValidatePincode accepts only ServiceablePincodes.
func ValidatePincode(v string) Result {
	if !ServiceablePincodes[v] {
		return fail("Sorry, we do not deliver to this pincode yet.")
	}
	return ok()
}

// ValidateCardNumber accepts 16 digits, optionally grouped by single spaces.
func ValidateCardNumber(v string) Result {
	if !cardPattern.MatchString(strings.TrimSpace(v)) {
		return fail("Please enter a valid 16-digit card number.")
	}
	return ok()
}

// ValidateExpiry accepts MM/YY whose first day of month (local midnight)
// is not before now. The current month therefore already counts as expired.
func ValidateExpiry(v string, now time.Time) Result {
	const msg = "Please enter a valid, future expiry date (MM/YY)."

	m := expiryPattern.FindStringSubmatch(v)
	if m == nil {
		return fail(msg)
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])

	expires := time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	if expires.Before(now) {
		return fail(msg)
	}
	return ok()
}

// ValidateCVV accepts 3 or 4 digits.
func ValidateCVV(v string) Result {
	if !cvvPattern.MatchString(v) {
		return fail("Please enter a valid 3 or 4 digit CVV.")
	}
	return ok()
}

// ValidateField runs the check registered for a field. Unknown fields pass.
func ValidateField(field, value string, now time.Time) Result {
	switch field {
	case FieldName:
		return ValidateName(value)
	case FieldPhone:
		return ValidatePhone(value)
	case FieldAddress:
		return ValidateAddress(value)
	case FieldPincode:
		return ValidatePincode(value)
	case FieldCardNumber:
		return ValidateCardNumber(value)
	case FieldExpiry:
		return ValidateExpiry(value, now)
	case FieldCVV:
		return ValidateCVV(value)
	}
	return ok()
}

// ValidateStep checks every field of the step independently and collects all
// failures; it never stops at the first one.
func ValidateStep(step int, form Form, now time.Time) Errors {
	errs := Errors{}
	for _, f := range stepFields[step] {
		if r := ValidateField(f, form[f], now); !r.Valid {
			errs[f] = r.Message
		}
	}
	return errs
}
