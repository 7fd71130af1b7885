package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationResult collects the outcome of a single field validation.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	phoneRegex    = regexp.MustCompile(`^[0-9+\-\s()]+$`)
	digitsRegex   = regexp.MustCompile(`^[0-9]+$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
	cardStripRegex = regexp.MustCompile(`[\s\-]`)

	scriptRegex    = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	iframeRegex    = regexp.MustCompile(`(?is)<iframe\b.*?</iframe>`)
	jsProtoRegex   = regexp.MustCompile(`(?i)javascript:`)
	eventAttrRegex = regexp.MustCompile(`(?i)on\w+\s*=`)
)

func invalid(errors ...string) ValidationResult {
	return ValidationResult{Valid: false, Errors: errors}
}

func result(errors []string) ValidationResult {
	return ValidationResult{Valid: len(errors) == 0, Errors: errors}
}

// ValidateEmail checks email format and length.
func ValidateEmail(email string) ValidationResult {
	if strings.TrimSpace(email) == "" {
		return invalid("Email is required")
	}
	var errors []string
	if !emailRegex.MatchString(email) {
		errors = append(errors, "Invalid email format")
	}
	if len(email) > 255 {
		errors = append(errors, "Email must not exceed 255 characters")
	}
	return result(errors)
}

// ValidateUsername checks the 3-50 character alphanumeric/underscore/hyphen rule.
func ValidateUsername(username string) ValidationResult {
	if strings.TrimSpace(username) == "" {
		return invalid("Username is required")
	}
	var errors []string
	if len(username) < 3 {
		errors = append(errors, "Username must be at least 3 characters long")
	}
	if len(username) > 50 {
		errors = append(errors, "Username must not exceed 50 characters")
	}
	if !usernameRegex.MatchString(username) {
		errors = append(errors, "Username can only contain letters, numbers, hyphens, and underscores")
	}
	return result(errors)
}

// ValidatePassword enforces the password policy:
// 6-10 characters, begins with a letter, at least one uppercase letter,
// three lowercase letters, one digit and one special character.
func ValidatePassword(password string) ValidationResult {
	if password == "" {
		return invalid("Password is required")
	}
	var errors []string

	if len(password) < 6 {
		errors = append(errors, "Password must be at least 6 characters long")
	}
	if len(password) > 10 {
		errors = append(errors, "Password must not exceed 10 characters")
	}

	first := password[0]
	if !(first >= 'a' && first <= 'z') && !(first >= 'A' && first <= 'Z') {
		errors = append(errors, "Password must begin with a letter")
	}

	var upper, lower, digit, special int
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		case r >= '0' && r <= '9':
			digit++
		case strings.ContainsRune("!@#$%^&*()_+-=[]{};':\"\\|,.<>/?", r):
			special++
		}
	}
	if upper < 1 {
		errors = append(errors, "Password must contain at least one uppercase letter")
	}
	if lower < 3 {
		errors = append(errors, "Password must contain at least three lowercase letters")
	}
	if digit < 1 {
		errors = append(errors, "Password must contain at least one digit")
	}
	if special < 1 {
		errors = append(errors, "Password must contain at least one special character")
	}
	return result(errors)
}

// ValidatePhone checks the allowed characters and the 7-15 digit count.
func ValidatePhone(phone string) ValidationResult {
	if strings.TrimSpace(phone) == "" {
		return invalid("Phone number is required")
	}
	var errors []string
	if !phoneRegex.MatchString(phone) {
		errors = append(errors, "Phone number contains invalid characters")
	}
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if len(digits) < 7 || len(digits) > 15 {
		errors = append(errors, "Phone number must contain between 7 and 15 digits")
	}
	return result(errors)
}

// ValidateRequiredString checks presence and length bounds of a free-form field.
func ValidateRequiredString(value, fieldName string, minLength, maxLength int) ValidationResult {
	if strings.TrimSpace(value) == "" {
		return invalid(fmt.Sprintf("%s is required", fieldName))
	}
	var errors []string
	if len(value) < minLength {
		errors = append(errors, fmt.Sprintf("%s must be at least %d characters long", fieldName, minLength))
	}
	if len(value) > maxLength {
		errors = append(errors, fmt.Sprintf("%s must not exceed %d characters", fieldName, maxLength))
	}
	return result(errors)
}

var dinersPrefixes = []string{"300", "301", "302", "303", "36", "38"}
var mastercardPrefixes = []string{"51", "52", "53", "54", "55"}
var visaPrefixes = []string{"4539", "4556", "4916", "4532", "4929", "4485", "4716"}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// StripCardNumber removes spaces and hyphens from a card number.
func StripCardNumber(cardNumber string) string {
	return cardStripRegex.ReplaceAllString(cardNumber, "")
}

// ValidateCreditCard matches the card against the supported issuer tables:
// Diners (15 digits, prefix 300-303/36/38), MasterCard (16 digits, prefix
// 51-55) and Visa (16 digits, a fixed prefix set).
func ValidateCreditCard(cardNumber string) ValidationResult {
	if strings.TrimSpace(cardNumber) == "" {
		return invalid("Credit card number is required")
	}
	cleaned := StripCardNumber(cardNumber)
	if !digitsRegex.MatchString(cleaned) {
		return invalid("Credit card number must contain only digits")
	}
	if DetectCardType(cardNumber) == "" {
		return invalid("Invalid credit card. Must be Diners (15 digits, starts with 300-303/36/38), MasterCard (16 digits, starts with 51-55), or Visa (16 digits, starts with 4539/4556/4916/4532/4929/4485/4716)")
	}
	return ValidationResult{Valid: true}
}

// DetectCardType returns "diners", "mastercard", "visa" or "" when unknown.
func DetectCardType(cardNumber string) string {
	cleaned := StripCardNumber(cardNumber)
	if !digitsRegex.MatchString(cleaned) {
		return ""
	}
	if len(cleaned) == 15 && hasAnyPrefix(cleaned, dinersPrefixes) {
		return "diners"
	}
	if len(cleaned) == 16 {
		if hasAnyPrefix(cleaned, mastercardPrefixes) {
			return "mastercard"
		}
		if hasAnyPrefix(cleaned, visaPrefixes) {
			return "visa"
		}
	}
	return ""
}

// ValidateGender accepts M, F, male or female.
func ValidateGender(gender string) ValidationResult {
	if strings.TrimSpace(gender) == "" {
		return invalid("Gender is required")
	}
	switch gender {
	case "M", "F", "male", "female":
		return ValidationResult{Valid: true}
	}
	return invalid("Gender must be M, F, male, or female")
}

// ValidateRole accepts the tourist, owner and admin roles.
func ValidateRole(role string) ValidationResult {
	if strings.TrimSpace(role) == "" {
		return invalid("User type is required")
	}
	switch role {
	case "tourist", "owner", "admin":
		return ValidationResult{Valid: true}
	}
	return invalid("User type must be tourist, owner, or admin")
}

// CombineValidationResults merges field results into one.
func CombineValidationResults(results ...ValidationResult) ValidationResult {
	var all []string
	for _, r := range results {
		all = append(all, r.Errors...)
	}
	return result(all)
}

// SanitizeString strips script/iframe tags, javascript: URIs and inline event
// handlers from user input.
func SanitizeString(input string) string {
	if input == "" {
		return ""
	}
	s := strings.TrimSpace(input)
	s = scriptRegex.ReplaceAllString(s, "")
	s = iframeRegex.ReplaceAllString(s, "")
	s = jsProtoRegex.ReplaceAllString(s, "")
	s = eventAttrRegex.ReplaceAllString(s, "")
	return s
}
