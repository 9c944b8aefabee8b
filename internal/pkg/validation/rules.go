package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Phone number pattern - 7 to 15 digits, optional leading +
	PhonePattern = `^\+?\d{7,15}$`

	// Course code pattern - 2 to 10 uppercase letters and digits
	CourseCodePattern = `^[A-Z0-9]{2,10}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	Phone      *regexp.Regexp
	CourseCode *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	Phone:      regexp.MustCompile(PhonePattern),
	CourseCode: regexp.MustCompile(CourseCodePattern),
}

// IsValidEmail reports whether the value matches the email pattern.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidPhone reports whether the value matches the phone pattern.
func IsValidPhone(value string) bool {
	return CompiledPatterns.Phone.MatchString(value)
}

// IsValidCourseCode reports whether the value matches the course code pattern.
func IsValidCourseCode(value string) bool {
	return CompiledPatterns.CourseCode.MatchString(value)
}

// IsValidYearRange reports whether a start/end year pair is plausible.
// The end year must follow the start year by at most five years.
func IsValidYearRange(start, end int) bool {
	if start < 1900 || start > 2200 {
		return false
	}
	return end > start && end-start <= 5
}
