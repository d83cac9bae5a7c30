package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AbubakarJ545/hospital-management-system/internal/models"
)

// departmentRefMap loads every department as a display reference, keyed by
// id, for resolving references on list responses.
func (h *Handler) departmentRefMap(ctx context.Context) (map[primitive.ObjectID]*models.DepartmentRef, error) {
	cursor, err := h.DB.Collection("departments").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var departments []models.Department
	if err := cursor.All(ctx, &departments); err != nil {
		return nil, err
	}

	refs := make(map[primitive.ObjectID]*models.DepartmentRef, len(departments))
	for _, d := range departments {
		refs[d.ID] = &models.DepartmentRef{ID: d.ID, Name: d.Name}
	}
	return refs, nil
}

func (h *Handler) doctorRefMap(ctx context.Context) (map[primitive.ObjectID]*models.DoctorRef, error) {
	cursor, err := h.DB.Collection("doctors").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}

	refs := make(map[primitive.ObjectID]*models.DoctorRef, len(doctors))
	for _, d := range doctors {
		refs[d.ID] = &models.DoctorRef{ID: d.ID, FirstName: d.FirstName, LastName: d.LastName}
	}
	return refs, nil
}
