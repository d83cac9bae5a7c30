package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AbubakarJ545/hospital-management-system/internal/apperr"
	"github.com/AbubakarJ545/hospital-management-system/internal/models"
	"github.com/AbubakarJ545/hospital-management-system/internal/utils"
)

type availabilityTimeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type createDoctorRequest struct {
	FirstName        string                  `json:"firstName"`
	LastName         string                  `json:"lastName"`
	DOB              string                  `json:"dob"`
	Gender           string                  `json:"gender"`
	Phone            string                  `json:"phone"`
	Email            string                  `json:"email"`
	Qualification    string                  `json:"qualification"`
	Experience       string                  `json:"experience"`
	Address          string                  `json:"address"`
	Password         string                  `json:"password"`
	AvailabilityDays []string                `json:"availabilityDays"`
	AvailabilityTime availabilityTimeRequest `json:"availabilityTime"`
	Fee              *float64                `json:"fee"`
	DepartmentID     string                  `json:"departmentId"`
}

// CreateDoctor registers a doctor under a department. Admin only.
func (h *Handler) CreateDoctor(c *gin.Context) {
	var req createDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("Invalid request body"))
		return
	}

	var invalid []string
	require := func(name, value string) {
		if value == "" {
			invalid = append(invalid, name)
		}
	}
	require("firstName", req.FirstName)
	require("lastName", req.LastName)
	require("password", req.Password)
	require("departmentId", req.DepartmentID)
	require("dob", req.DOB)
	require("phone", req.Phone)
	require("qualification", req.Qualification)

	if req.Gender == "" || !models.ValidGender(req.Gender) {
		invalid = append(invalid, "gender")
	}
	if len(req.AvailabilityDays) == 0 {
		invalid = append(invalid, "availabilityDays")
	}
	for _, day := range req.AvailabilityDays {
		if !models.ValidWeekday(day) {
			invalid = append(invalid, fmt.Sprintf("availabilityDays (%s)", day))
		}
	}
	if !models.ValidClockTime(req.AvailabilityTime.Start) {
		invalid = append(invalid, "availabilityTime.start")
	}
	if !models.ValidClockTime(req.AvailabilityTime.End) {
		invalid = append(invalid, "availabilityTime.end")
	}
	if req.Fee == nil || *req.Fee < 0 {
		invalid = append(invalid, "fee")
	}

	var dob time.Time
	if req.DOB != "" {
		var err error
		dob, err = time.Parse("2006-01-02", req.DOB)
		if err != nil {
			invalid = append(invalid, "dob (invalid date)")
		}
	}

	var departmentID primitive.ObjectID
	if req.DepartmentID != "" {
		var err error
		departmentID, err = primitive.ObjectIDFromHex(req.DepartmentID)
		if err != nil {
			invalid = append(invalid, "departmentId (invalid)")
		}
	}

	if len(invalid) > 0 {
		respondError(c, apperr.Validation("Missing or invalid fields: "+strings.Join(invalid, ", ")))
		return
	}

	ctx := c.Request.Context()
	var department models.Department
	err := h.DB.Collection("departments").FindOne(ctx, bson.M{"_id": departmentID}).Decode(&department)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(c, apperr.NotFound("Department not found"))
		return
	}
	if err != nil {
		respondError(c, apperr.Internal("failed to load department", err))
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, apperr.Internal("failed to hash password", err))
		return
	}

	now := time.Now()
	doctor := models.Doctor{
		ID:               primitive.NewObjectID(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		DOB:              dob,
		Gender:           req.Gender,
		Phone:            req.Phone,
		Email:            req.Email,
		Qualification:    req.Qualification,
		Experience:       req.Experience,
		Address:          req.Address,
		Password:         hashed,
		AvailabilityDays: req.AvailabilityDays,
		AvailabilityTime: models.AvailabilityTime{Start: req.AvailabilityTime.Start, End: req.AvailabilityTime.End},
		Fee:              *req.Fee,
		DepartmentID:     departmentID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := h.DB.Collection("doctors").InsertOne(ctx, doctor); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, apperr.Conflict("A doctor with this email already exists"))
			return
		}
		respondError(c, apperr.Internal("failed to create doctor", err))
		return
	}

	respondCreated(c, models.DoctorDetail{
		Doctor:     doctor,
		Department: &models.DepartmentRef{ID: department.ID, Name: department.Name},
	})
}

// ListDoctors supports an optional department filter and a
// case-insensitive search over name and qualification.
func (h *Handler) ListDoctors(c *gin.Context) {
	filter := bson.M{}
	if departmentID := c.Query("departmentId"); departmentID != "" {
		id, err := primitive.ObjectIDFromHex(departmentID)
		if err != nil {
			respondError(c, apperr.Validation("Invalid departmentId"))
			return
		}
		filter["departmentId"] = id
	}
	if search := c.Query("search"); search != "" {
		regex := bson.M{"$regex": search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"firstName": regex},
			bson.M{"lastName": regex},
			bson.M{"qualification": regex},
		}
	}

	ctx := c.Request.Context()
	cursor, err := h.DB.Collection("doctors").Find(ctx, filter)
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

	refs, err := h.departmentRefMap(ctx)
	if err != nil {
		respondError(c, apperr.Internal("failed to resolve departments", err))
		return
	}

	detailed := make([]models.DoctorDetail, 0, len(doctors))
	for _, d := range doctors {
		detailed = append(detailed, models.DoctorDetail{Doctor: d, Department: refs[d.DepartmentID]})
	}

	respondOK(c, detailed)
}

// DeleteDoctor removes a doctor. Admin only. The staff service refuses
// the delete while patient appointment records still reference the doctor.
func (h *Handler) DeleteDoctor(c *gin.Context) {
	doctorID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperr.Validation("Invalid doctor ID"))
		return
	}

	if err := h.Staff.DeleteDoctor(c.Request.Context(), doctorID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Doctor deleted successfully"})
}
