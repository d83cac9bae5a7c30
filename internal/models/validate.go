package models

import "regexp"

var (
	clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	emailRe = regexp.MustCompile(`.+@.+\..+`)
)

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

var genders = map[string]bool{
	"Male": true, "Female": true, "Other": true,
}

// ValidClockTime reports whether s is a 24h "HH:MM" wall-clock string.
func ValidClockTime(s string) bool {
	return clockRe.MatchString(s)
}

func ValidWeekday(s string) bool {
	return weekdays[s]
}

func ValidGender(s string) bool {
	return genders[s]
}

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidPassword enforces the staff password policy: at least 8 characters
// with at least one letter and one digit.
func ValidPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		}
	}
	return hasLetter && hasDigit
}
