package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AbubakarJ545/hospital-management-system/internal/apperr"
	"github.com/AbubakarJ545/hospital-management-system/internal/models"
)

type createDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateDepartment adds a department to the catalog. Admin only.
func (h *Handler) CreateDepartment(c *gin.Context) {
	var req createDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("Department name is required"))
		return
	}

	now := time.Now()
	department := models.Department{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := h.DB.Collection("departments").InsertOne(c.Request.Context(), department); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, apperr.Conflict("A department with this name already exists"))
			return
		}
		respondError(c, apperr.Internal("failed to create department", err))
		return
	}

	respondCreated(c, department)
}

// ListDepartments returns the whole catalog.
func (h *Handler) ListDepartments(c *gin.Context) {
	ctx := c.Request.Context()
	cursor, err := h.DB.Collection("departments").Find(ctx, bson.M{})
	if err != nil {
		respondError(c, apperr.Internal("failed to retrieve departments", err))
		return
	}
	defer cursor.Close(ctx)

	departments := make([]models.Department, 0)
	if err := cursor.All(ctx, &departments); err != nil {
		respondError(c, apperr.Internal("failed to decode departments", err))
		return
	}

	respondOK(c, departments)
}

// GetDepartmentDoctors returns the doctors belonging to a department, with
// the department reference resolved.
func (h *Handler) GetDepartmentDoctors(c *gin.Context) {
	departmentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperr.Validation("Invalid department ID"))
		return
	}

	ctx := c.Request.Context()
	var department models.Department
	err = h.DB.Collection("departments").FindOne(ctx, bson.M{"_id": departmentID}).Decode(&department)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(c, apperr.NotFound("Department not found"))
		return
	}
	if err != nil {
		respondError(c, apperr.Internal("failed to load department", err))
		return
	}

	cursor, err := h.DB.Collection("doctors").Find(ctx, bson.M{"departmentId": departmentID})
	if err != nil {
		respondError(c, apperr.Internal("failed to retrieve doctors", err))
		return
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		respondError(c, apperr.Internal("failed to decode doctors", err))
		return
	}

	ref := &models.DepartmentRef{ID: department.ID, Name: department.Name}
	detailed := make([]models.DoctorDetail, 0, len(doctors))
	for _, d := range doctors {
		detailed = append(detailed, models.DoctorDetail{Doctor: d, Department: ref})
	}

	respondOK(c, detailed)
}
