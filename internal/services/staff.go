package services

import (
	"context"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AbubakarJ545/hospital-management-system/internal/apperr"
	"github.com/AbubakarJ545/hospital-management-system/internal/models"
)

// StaffStore covers the directory lookups the login and doctor
// administration flows need.
type StaffStore interface {
	// EmployeeByEmail returns the employee stored under the given email,
	// or a NotFound error. Callers pass the email already normalized.
	EmployeeByEmail(ctx context.Context, email string) (*models.Employee, error)
	// CountDoctorPatients reports how many patient appointment records
	// reference the doctor.
	CountDoctorPatients(ctx context.Context, doctorID primitive.ObjectID) (int64, error)
	// RemoveDoctor deletes the doctor record and reports how many
	// documents matched.
	RemoveDoctor(ctx context.Context, doctorID primitive.ObjectID) (int64, error)
}

type StaffService struct {
	store StaffStore
	log   *slog.Logger
}

func NewStaffService(store StaffStore, log *slog.Logger) *StaffService {
	return &StaffService{store: store, log: log}
}

// FindEmployee resolves a login email against the directory. Employee
// emails are stored lowercased at registration, so the lookup lowercases
// the submitted address too.
func (s *StaffService) FindEmployee(ctx context.Context, email string) (*models.Employee, error) {
	return s.store.EmployeeByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// DeleteDoctor removes a doctor unless patient appointment records still
// reference them, so no dangling references are left behind.
func (s *StaffService) DeleteDoctor(ctx context.Context, doctorID primitive.ObjectID) error {
	referencing, err := s.store.CountDoctorPatients(ctx, doctorID)
	if err != nil {
		return apperr.Internal("failed to check patient references", err)
	}
	if referencing > 0 {
		return apperr.Conflict("Doctor has existing patient appointments and cannot be deleted")
	}

	deleted, err := s.store.RemoveDoctor(ctx, doctorID)
	if err != nil {
		return apperr.Internal("failed to delete doctor", err)
	}
	if deleted == 0 {
		return apperr.NotFound("Doctor not found")
	}

	s.log.Info("doctor deleted", "doctorId", doctorID.Hex())
	return nil
}
