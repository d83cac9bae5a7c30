package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient is an appointment record: the patient's demographics plus the
// booked slot. AppointmentDate holds the merged date+time timestamp;
// AppointmentTime keeps the submitted "HH:MM" string for display.
type Patient struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName         string             `bson:"firstName" json:"firstName"`
	LastName          string             `bson:"lastName" json:"lastName"`
	DOB               time.Time          `bson:"dob" json:"dob"`
	Gender            string             `bson:"gender" json:"gender"`
	Phone             string             `bson:"phone" json:"phone"`
	Email             string             `bson:"email,omitempty" json:"email,omitempty"`
	Address           string             `bson:"address,omitempty" json:"address,omitempty"`
	MaritalStatus     string             `bson:"maritalStatus,omitempty" json:"maritalStatus,omitempty"`
	EmergencyContact  string             `bson:"emergencyContact,omitempty" json:"emergencyContact,omitempty"`
	BloodGroup        string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	InsuranceProvider string             `bson:"insuranceProvider,omitempty" json:"insuranceProvider,omitempty"`
	InsuranceNumber   string             `bson:"insuranceNumber,omitempty" json:"insuranceNumber,omitempty"`
	Allergies         string             `bson:"allergies,omitempty" json:"allergies,omitempty"`
	MedicalHistory    string             `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
	Height            float64            `bson:"height,omitempty" json:"height,omitempty"`
	Weight            float64            `bson:"weight,omitempty" json:"weight,omitempty"`
	Disease           string             `bson:"disease,omitempty" json:"disease,omitempty"`
	AppointmentDate   time.Time          `bson:"appointmentDate" json:"appointmentDate"`
	AppointmentTime   string             `bson:"appointmentTime,omitempty" json:"appointmentTime,omitempty"`
	DepartmentID      primitive.ObjectID `bson:"departmentId" json:"departmentId"`
	DoctorID          primitive.ObjectID `bson:"doctorId" json:"doctorId"`
	Checked           bool               `bson:"checked" json:"checked"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PatientDetail is a patient record with its department and doctor
// references resolved to display fields.
type PatientDetail struct {
	Patient
	Department *DepartmentRef `json:"department,omitempty"`
	Doctor     *DoctorRef     `json:"doctor,omitempty"`
}
