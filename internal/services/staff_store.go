package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AbubakarJ545/hospital-management-system/internal/apperr"
	"github.com/AbubakarJ545/hospital-management-system/internal/models"
)

// MongoStaffStore backs the staff directory with the shared Mongo database.
type MongoStaffStore struct {
	db *mongo.Database
}

func NewMongoStaffStore(db *mongo.Database) *MongoStaffStore {
	return &MongoStaffStore{db: db}
}

func (s *MongoStaffStore) EmployeeByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	err := s.db.Collection("employees").FindOne(ctx, bson.M{"email": email}).Decode(&employee)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Employee not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to look up employee", err)
	}
	return &employee, nil
}

func (s *MongoStaffStore) CountDoctorPatients(ctx context.Context, doctorID primitive.ObjectID) (int64, error) {
	return s.db.Collection("patients").CountDocuments(ctx, bson.M{"doctorId": doctorID})
}

func (s *MongoStaffStore) RemoveDoctor(ctx context.Context, doctorID primitive.ObjectID) (int64, error) {
	result, err := s.db.Collection("doctors").DeleteOne(ctx, bson.M{"_id": doctorID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
