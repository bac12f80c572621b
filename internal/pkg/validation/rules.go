package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Username pattern - letters, digits, dots and underscores
	UsernamePattern = `^[a-zA-Z0-9._]{3,64}$`

	// Password min length
	PasswordMinLength = 8

	// Review stars bounds
	StarsMin = 1
	StarsMax = 5
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email    *regexp.Regexp
	Username *regexp.Regexp
}{
	Email:    regexp.MustCompile(EmailPattern),
	Username: regexp.MustCompile(UsernamePattern),
}

// ReviewFeatures is the closed set of features a review may target.
var ReviewFeatures = []string{"Chatbot", "Trend Report", "Review System", "General"}

// IsValidFeature reports whether feature is one of the allowed review targets.
func IsValidFeature(feature string) bool {
	for _, f := range ReviewFeatures {
		if f == feature {
			return true
		}
	}
	return false
}

// IsValidStars reports whether stars is within the accepted 1-5 range.
// The range is enforced here at the input boundary, not by the store.
func IsValidStars(stars int) bool {
	return stars >= StarsMin && stars <= StarsMax
}
