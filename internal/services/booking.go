package services

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AbubakarJ545/hospital-management-system/internal/apperr"
	"github.com/AbubakarJ545/hospital-management-system/internal/models"
)

// SlotWindow is the exclusion radius around a booked appointment. Every
// existing booking E owns the half-open window [E-SlotWindow, E+SlotWindow);
// a proposed time inside any such window for the same (department, doctor)
// is rejected. The half-open shape makes a slot exactly SlotWindow after an
// existing booking the first bookable one.
const SlotWindow = 30 * time.Minute

// BookingStore is the persistence surface the booking flow needs.
type BookingStore interface {
	GetDepartment(ctx context.Context, id primitive.ObjectID) (*models.Department, error)
	GetDoctor(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error)
	// InsertIfSlotFree persists the record unless an appointment for the
	// same department and doctor has appointmentDate in (from, to] —
	// equivalent to the proposed time falling inside some existing
	// booking's own half-open window. The check and the insert are atomic.
	InsertIfSlotFree(ctx context.Context, p *models.Patient, from, to time.Time) error
}

// BookingRequest is the full patient payload plus the scheduling inputs as
// submitted: a calendar date and a wall-clock time.
type BookingRequest struct {
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	DOB               string  `json:"dob"`
	Gender            string  `json:"gender"`
	Phone             string  `json:"phone"`
	Email             string  `json:"email"`
	Address           string  `json:"address"`
	MaritalStatus     string  `json:"maritalStatus"`
	EmergencyContact  string  `json:"emergencyContact"`
	BloodGroup        string  `json:"bloodGroup"`
	InsuranceProvider string  `json:"insuranceProvider"`
	InsuranceNumber   string  `json:"insuranceNumber"`
	Allergies         string  `json:"allergies"`
	MedicalHistory    string  `json:"medicalHistory"`
	Height            float64 `json:"height"`
	Weight            float64 `json:"weight"`
	Disease           string  `json:"disease"`
	DepartmentID      string  `json:"departmentId"`
	DoctorID          string  `json:"doctorId"`
	AppointmentDate   string  `json:"appointmentDate"`
	AppointmentTime   string  `json:"appointmentTime"`
}

type BookingService struct {
	store  BookingStore
	notify *NotificationService
	log    *slog.Logger
}

func NewBookingService(store BookingStore, notify *NotificationService, log *slog.Logger) *BookingService {
	return &BookingService{store: store, notify: notify, log: log}
}

// MergeDateTime combines a "2006-01-02" date and a "15:04" time into one
// absolute timestamp.
func MergeDateTime(date, clock string) (time.Time, error) {
	return time.Parse("2006-01-02T15:04", date+"T"+clock)
}

// Book runs the appointment booking flow: validate the scheduling inputs,
// merge date and time, enforce the doctor's declared availability, then
// persist unless the slot's exclusion window is already occupied.
func (s *BookingService) Book(ctx context.Context, req *BookingRequest) (*models.PatientDetail, error) {
	if req.DepartmentID == "" || req.DoctorID == "" || req.AppointmentDate == "" || req.AppointmentTime == "" {
		return nil, apperr.Validation("All required fields must be provided.")
	}
	if !models.ValidClockTime(req.AppointmentTime) {
		return nil, apperr.Validation("appointmentTime must be a 24h HH:MM value")
	}

	at, err := MergeDateTime(req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, apperr.Validation("appointmentDate and appointmentTime do not form a valid timestamp")
	}

	departmentID, err := primitive.ObjectIDFromHex(req.DepartmentID)
	if err != nil {
		return nil, apperr.Validation("invalid departmentId")
	}
	doctorID, err := primitive.ObjectIDFromHex(req.DoctorID)
	if err != nil {
		return nil, apperr.Validation("invalid doctorId")
	}

	department, err := s.store.GetDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	doctor, err := s.store.GetDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	if !doctor.AvailableOn(at.Weekday(), req.AppointmentTime) {
		return nil, apperr.Validation("Doctor is not available at the requested day or time.")
	}

	var dob time.Time
	if req.DOB != "" {
		dob, err = time.Parse("2006-01-02", req.DOB)
		if err != nil {
			return nil, apperr.Validation("dob is not a valid date")
		}
	}

	now := time.Now()
	patient := &models.Patient{
		ID:                primitive.NewObjectID(),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		DOB:               dob,
		Gender:            req.Gender,
		Phone:             req.Phone,
		Email:             req.Email,
		Address:           req.Address,
		MaritalStatus:     req.MaritalStatus,
		EmergencyContact:  req.EmergencyContact,
		BloodGroup:        req.BloodGroup,
		InsuranceProvider: req.InsuranceProvider,
		InsuranceNumber:   req.InsuranceNumber,
		Allergies:         req.Allergies,
		MedicalHistory:    req.MedicalHistory,
		Height:            req.Height,
		Weight:            req.Weight,
		Disease:           req.Disease,
		AppointmentDate:   at,
		AppointmentTime:   req.AppointmentTime,
		DepartmentID:      departmentID,
		DoctorID:          doctorID,
		Checked:           false,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.store.InsertIfSlotFree(ctx, patient, at.Add(-SlotWindow), at.Add(SlotWindow)); err != nil {
		return nil, err
	}

	s.log.Info("appointment booked",
		"patientId", patient.ID.Hex(),
		"doctorId", doctorID.Hex(),
		"departmentId", departmentID.Hex(),
		"appointmentDate", at,
	)

	if s.notify != nil {
		s.notify.SendBookingConfirmationSMS(patient, doctor)
	}

	return &models.PatientDetail{
		Patient:    *patient,
		Department: &models.DepartmentRef{ID: department.ID, Name: department.Name},
		Doctor:     &models.DoctorRef{ID: doctor.ID, FirstName: doctor.FirstName, LastName: doctor.LastName},
	}, nil
}
