package handlers

import (
	"errors"
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

type createEmployeeRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Gender       string   `json:"gender"`
	Phone        string   `json:"phone"`
	Position     string   `json:"position"`
	Role         string   `json:"role"`
	Permissions  []string `json:"permissions"`
	DepartmentID string   `json:"department"`
}

// CreateEmployee registers a staff account. Admin only. Doctors are never
// created here; they go through the doctors API so the two entity sets
// stay disjoint.
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req createEmployeeRequest
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
	require("name", req.Name)
	require("email", req.Email)
	require("password", req.Password)
	require("gender", req.Gender)
	require("phone", req.Phone)
	require("position", req.Position)
	require("department", req.DepartmentID)

	if req.Email != "" && !models.ValidEmail(req.Email) {
		invalid = append(invalid, "email (invalid)")
	}
	if req.Gender != "" && !models.ValidGender(req.Gender) {
		invalid = append(invalid, "gender (invalid)")
	}
	if req.Password != "" && !models.ValidPassword(req.Password) {
		invalid = append(invalid, "password (min 8, letter and number required)")
	}

	var departmentID primitive.ObjectID
	if req.DepartmentID != "" {
		var err error
		departmentID, err = primitive.ObjectIDFromHex(req.DepartmentID)
		if err != nil {
			invalid = append(invalid, "department (invalid)")
		}
	}

	if len(invalid) > 0 {
		respondError(c, apperr.Validation("Missing or invalid fields: "+strings.Join(invalid, ", ")))
		return
	}

	roleName := req.Role
	if roleName == "" {
		roleName = string(models.RoleEmployee)
	}
	role, err := models.ParseRole(roleName)
	if err != nil {
		respondError(c, apperr.Validation("Invalid role: "+roleName))
		return
	}
	if role == models.RoleDoctor {
		respondError(c, apperr.Validation("Use doctors API to create doctors, not employees"))
		return
	}
	if required, ok := models.RequiredPosition(role); ok {
		if strings.ToLower(strings.TrimSpace(req.Position)) != required {
			respondError(c, apperr.Validation("Position must be '"+required+"' for role '"+string(role)+"'"))
			return
		}
	}

	ctx := c.Request.Context()
	email := strings.ToLower(req.Email)
	err = h.DB.Collection("employees").FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		respondError(c, apperr.Conflict("Employee with this email already exists"))
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		respondError(c, apperr.Internal("failed to check for existing employee", err))
		return
	}

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

	permissions := req.Permissions
	if len(permissions) == 0 {
		permissions = models.DefaultPermissions(role)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, apperr.Internal("failed to hash password", err))
		return
	}

	now := time.Now()
	employee := models.Employee{
		ID:           primitive.NewObjectID(),
		Name:         req.Name,
		Email:        email,
		Password:     hashed,
		Gender:       req.Gender,
		Phone:        req.Phone,
		Position:     req.Position,
		Role:         role,
		Permissions:  permissions,
		DepartmentID: departmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := h.DB.Collection("employees").InsertOne(ctx, employee); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, apperr.Conflict("Employee with this email already exists"))
			return
		}
		respondError(c, apperr.Internal("failed to create employee", err))
		return
	}

	respondCreated(c, models.EmployeeDetail{
		Employee:   employee,
		Department: &models.DepartmentRef{ID: department.ID, Name: department.Name},
	})
}

// ListEmployees supports an optional department filter and a name search.
func (h *Handler) ListEmployees(c *gin.Context) {
	filter := bson.M{}
	if departmentID := c.Query("department"); departmentID != "" {
		id, err := primitive.ObjectIDFromHex(departmentID)
		if err != nil {
			respondError(c, apperr.Validation("Invalid department"))
			return
		}
		filter["departmentId"] = id
	}
	if search := c.Query("search"); search != "" {
		filter["name"] = bson.M{"$regex": search, "$options": "i"}
	}

	ctx := c.Request.Context()
	cursor, err := h.DB.Collection("employees").Find(ctx, filter)
	if err != nil {
		respondError(c, apperr.Internal("failed to retrieve employees", err))
		return
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		respondError(c, apperr.Internal("failed to decode employees", err))
		return
	}

	refs, err := h.departmentRefMap(ctx)
	if err != nil {
		respondError(c, apperr.Internal("failed to resolve departments", err))
		return
	}

	detailed := make([]models.EmployeeDetail, 0, len(employees))
	for _, e := range employees {
		detailed = append(detailed, models.EmployeeDetail{Employee: e, Department: refs[e.DepartmentID]})
	}

	respondOK(c, detailed)
}
