package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:00", "13:45", "23:59"}
	for _, s := range valid {
		assert.True(t, ValidClockTime(s), s)
	}

	invalid := []string{"", "9:00", "24:00", "12:60", "09:00:00", "noon", "09-00"}
	for _, s := range invalid {
		assert.False(t, ValidClockTime(s), s)
	}
}

func TestValidWeekday(t *testing.T) {
	for _, s := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		assert.True(t, ValidWeekday(s), s)
	}
	for _, s := range []string{"", "monday", "Mon", "Funday"} {
		assert.False(t, ValidWeekday(s), s)
	}
}

func TestValidGender(t *testing.T) {
	for _, s := range []string{"Male", "Female", "Other"} {
		assert.True(t, ValidGender(s), s)
	}
	for _, s := range []string{"", "male", "M", "unknown"} {
		assert.False(t, ValidGender(s), s)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("reception@hospital.example.com"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@domain"))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("passw0rd"))
	assert.True(t, ValidPassword("A1bcdefgh"))

	assert.False(t, ValidPassword("short1"), "under 8 characters")
	assert.False(t, ValidPassword("onlyletters"), "no digit")
	assert.False(t, ValidPassword("12345678"), "no letter")
}
