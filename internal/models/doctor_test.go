package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorAvailableOn(t *testing.T) {
	d := &Doctor{
		AvailabilityDays: []string{"Monday", "Wednesday"},
		AvailabilityTime: AvailabilityTime{Start: "09:00", End: "17:00"},
	}

	assert.True(t, d.AvailableOn(time.Monday, "09:00"), "window start is inclusive")
	assert.True(t, d.AvailableOn(time.Monday, "17:00"), "window end is inclusive")
	assert.True(t, d.AvailableOn(time.Wednesday, "12:30"))

	assert.False(t, d.AvailableOn(time.Tuesday, "12:30"), "weekday not in set")
	assert.False(t, d.AvailableOn(time.Monday, "08:59"))
	assert.False(t, d.AvailableOn(time.Monday, "17:01"))
}

func TestDoctorAvailabilityDaysRoundTrip(t *testing.T) {
	d := Doctor{
		FirstName:        "Ayesha",
		LastName:         "Khan",
		AvailabilityDays: []string{"Monday", "Wednesday"},
		AvailabilityTime: AvailabilityTime{Start: "09:00", End: "17:00"},
	}

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var got Doctor
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.ElementsMatch(t, []string{"Monday", "Wednesday"}, got.AvailabilityDays)
	assert.Equal(t, d.AvailabilityTime, got.AvailabilityTime)
}

func TestDoctorPasswordNeverSerialized(t *testing.T) {
	d := Doctor{FirstName: "Ayesha", Password: "$2a$10$hash"}
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
}
