package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AbubakarJ545/hospital-management-system/internal/apperr"
	"github.com/AbubakarJ545/hospital-management-system/internal/models"
)

// MongoBookingStore backs the booking flow with the shared Mongo database.
type MongoBookingStore struct {
	db *mongo.Database
}

func NewMongoBookingStore(db *mongo.Database) *MongoBookingStore {
	return &MongoBookingStore{db: db}
}

func (s *MongoBookingStore) GetDepartment(ctx context.Context, id primitive.ObjectID) (*models.Department, error) {
	var department models.Department
	err := s.db.Collection("departments").FindOne(ctx, bson.M{"_id": id}).Decode(&department)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Department not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to load department", err)
	}
	return &department, nil
}

func (s *MongoBookingStore) GetDoctor(ctx context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	var doctor models.Doctor
	err := s.db.Collection("doctors").FindOne(ctx, bson.M{"_id": id}).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Doctor not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to load doctor", err)
	}
	return &doctor, nil
}

// InsertIfSlotFree runs the window check and the insert inside one Mongo
// transaction, so two racing bookings for overlapping slots cannot both
// land. Requires a replica-set deployment.
func (s *MongoBookingStore) InsertIfSlotFree(ctx context.Context, p *models.Patient, from, to time.Time) error {
	session, err := s.db.Client().StartSession()
	if err != nil {
		return apperr.Internal("failed to start session", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		patients := s.db.Collection("patients")
		// (from, to] around the proposed time: an existing booking at
		// exactly from is 30 minutes earlier and its own window has
		// closed, so it does not block.
		count, err := patients.CountDocuments(sc, bson.M{
			"departmentId":    p.DepartmentID,
			"doctorId":        p.DoctorID,
			"appointmentDate": bson.M{"$gt": from, "$lte": to},
		})
		if err != nil {
			return nil, apperr.Internal("failed to check for conflicting appointments", err)
		}
		if count > 0 {
			return nil, apperr.Conflict("This time slot or next 30 mins is already booked.")
		}
		if _, err := patients.InsertOne(sc, p); err != nil {
			return nil, apperr.Internal("failed to create appointment", err)
		}
		return nil, nil
	})
	if err != nil {
		var e *apperr.Error
		if errors.As(err, &e) {
			return e
		}
		return apperr.Internal("booking transaction failed", err)
	}
	return nil
}
