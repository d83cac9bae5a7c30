package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AbubakarJ545/hospital-management-system/internal/apperr"
	"github.com/AbubakarJ545/hospital-management-system/internal/middleware"
	"github.com/AbubakarJ545/hospital-management-system/internal/models"
	"github.com/AbubakarJ545/hospital-management-system/internal/utils"
)

const tokenMaxAge = 86400 // seconds, matches the 24h token expiry

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, tokenMaxAge, "/", "", false, true)
}

func clearTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", "", -1, "/", "", false, true)
}

// AdminLogin matches the static admin credential from configuration.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("Invalid request body"))
		return
	}

	if h.Cfg.AdminEmail == "" || h.Cfg.AdminPassword == "" {
		h.Log.Error("admin credentials are not configured")
		respondError(c, apperr.Configuration("Admin login is not configured"))
		return
	}

	if req.Email != h.Cfg.AdminEmail || req.Password != h.Cfg.AdminPassword {
		respondError(c, apperr.Unauthorized("Invalid credentials"))
		return
	}

	token, err := utils.GenerateJWT("admin", string(models.RoleAdmin), req.Email, "", nil)
	if err != nil {
		respondError(c, apperr.Internal("Could not generate token", err))
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"admin":   gin.H{"email": req.Email},
		"token":   token,
	})
}

// DoctorLogin authenticates against the doctors collection.
func (h *Handler) DoctorLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		respondError(c, apperr.Validation("Email and password are required"))
		return
	}

	var doctor models.Doctor
	err := h.DB.Collection("doctors").FindOne(c.Request.Context(), bson.M{"email": req.Email}).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(c, apperr.NotFound("Doctor not found"))
		return
	}
	if err != nil {
		respondError(c, apperr.Internal("failed to look up doctor", err))
		return
	}

	if !utils.CheckPasswordHash(req.Password, doctor.Password) {
		respondError(c, apperr.Unauthorized("Incorrect password"))
		return
	}

	name := doctor.FirstName + " " + doctor.LastName
	token, err := utils.GenerateJWT(doctor.ID.Hex(), string(models.RoleDoctor), doctor.Email, name, nil)
	if err != nil {
		respondError(c, apperr.Internal("Could not generate token", err))
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"doctor": gin.H{
			"id":        doctor.ID,
			"email":     doctor.Email,
			"firstName": doctor.FirstName,
			"lastName":  doctor.LastName,
			"fee":       doctor.Fee,
		},
		"token": token,
	})
}

// EmployeeLogin authenticates against the employees collection. The issued
// token carries the employee's role and permission list.
func (h *Handler) EmployeeLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		respondError(c, apperr.Validation("Email and password are required"))
		return
	}

	employee, err := h.Staff.FindEmployee(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	if !utils.CheckPasswordHash(req.Password, employee.Password) {
		respondError(c, apperr.Unauthorized("Incorrect password"))
		return
	}

	role := employee.Role
	if role == "" {
		role = models.RoleEmployee
	}
	token, err := utils.GenerateJWT(employee.ID.Hex(), string(role), employee.Email, employee.Name, employee.Permissions)
	if err != nil {
		respondError(c, apperr.Internal("Could not generate token", err))
		return
	}

	setTokenCookie(c, token)
	permissions := employee.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"employee": gin.H{
			"id":          employee.ID,
			"email":       employee.Email,
			"name":        employee.Name,
			"position":    employee.Position,
			"role":        role,
			"permissions": permissions,
		},
		"token": token,
	})
}

// Logout clears the credential cookie.
func (h *Handler) Logout(c *gin.Context) {
	clearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me reports the identity behind the presented credential. Always 200;
// unauthenticated callers just get authenticated=false.
func (h *Handler) Me(c *gin.Context) {
	claims := middleware.ClaimsFromRequest(c)
	if claims == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	permissions := claims.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":          claims.Subject,
			"role":        claims.Role,
			"email":       claims.Email,
			"name":        claims.Name,
			"permissions": permissions,
		},
	})
}
