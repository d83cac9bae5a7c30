package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AvailabilityTime is a wall-clock window, both ends "HH:MM". The strings
// compare lexicographically, which matches chronological order for this
// format.
type AvailabilityTime struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

type Doctor struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName        string             `bson:"firstName" json:"firstName"`
	LastName         string             `bson:"lastName" json:"lastName"`
	DOB              time.Time          `bson:"dob" json:"dob"`
	Gender           string             `bson:"gender" json:"gender"`
	Phone            string             `bson:"phone" json:"phone"`
	Email            string             `bson:"email,omitempty" json:"email,omitempty"`
	Qualification    string             `bson:"qualification" json:"qualification"`
	Experience       string             `bson:"experience,omitempty" json:"experience,omitempty"`
	Address          string             `bson:"address,omitempty" json:"address,omitempty"`
	Password         string             `bson:"password" json:"-"`
	AvailabilityDays []string           `bson:"availabilityDays" json:"availabilityDays"`
	AvailabilityTime AvailabilityTime   `bson:"availabilityTime" json:"availabilityTime"`
	Fee              float64            `bson:"fee" json:"fee"`
	DepartmentID     primitive.ObjectID `bson:"departmentId" json:"departmentId"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DoctorRef is the display-friendly form of a doctor reference.
type DoctorRef struct {
	ID        primitive.ObjectID `json:"id"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
}

// DoctorDetail is a doctor record with its department resolved.
type DoctorDetail struct {
	Doctor
	Department *DepartmentRef `json:"department,omitempty"`
}

// AvailableOn reports whether the doctor works the given weekday and the
// "HH:MM" time falls inside the declared window, both ends inclusive.
func (d *Doctor) AvailableOn(weekday time.Weekday, clock string) bool {
	day := weekday.String()
	found := false
	for _, w := range d.AvailabilityDays {
		if w == day {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	return clock >= d.AvailabilityTime.Start && clock <= d.AvailabilityTime.End
}
