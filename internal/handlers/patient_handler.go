package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AbubakarJ545/hospital-management-system/internal/apperr"
	"github.com/AbubakarJ545/hospital-management-system/internal/models"
	"github.com/AbubakarJ545/hospital-management-system/internal/services"
)

// CreatePatient books an appointment: the full patient payload plus the
// requested slot goes through the conflict-checking booking service.
func (h *Handler) CreatePatient(c *gin.Context) {
	var req services.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("Invalid request body"))
		return
	}

	detail, err := h.Bookings.Book(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, detail)
}

// ListPatients returns appointment records, optionally filtered by doctor,
// ordered by appointment time, with department and doctor references
// resolved to display names.
func (h *Handler) ListPatients(c *gin.Context) {
	filter := bson.M{}
	if doctorID := c.Query("doctorId"); doctorID != "" {
		id, err := primitive.ObjectIDFromHex(doctorID)
		if err != nil {
			respondError(c, apperr.Validation("Invalid doctorId"))
			return
		}
		filter["doctorId"] = id
	}

	ctx := c.Request.Context()
	findOptions := options.Find().SetSort(bson.D{{Key: "appointmentDate", Value: 1}})
	cursor, err := h.DB.Collection("patients").Find(ctx, filter, findOptions)
	if err != nil {
		respondError(c, apperr.Internal("failed to retrieve patients", err))
		return
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		respondError(c, apperr.Internal("failed to decode patients", err))
		return
	}

	departmentRefs, err := h.departmentRefMap(ctx)
	if err != nil {
		respondError(c, apperr.Internal("failed to resolve departments", err))
		return
	}
	doctorRefs, err := h.doctorRefMap(ctx)
	if err != nil {
		respondError(c, apperr.Internal("failed to resolve doctors", err))
		return
	}

	detailed := make([]models.PatientDetail, 0, len(patients))
	for _, p := range patients {
		detailed = append(detailed, models.PatientDetail{
			Patient:    p,
			Department: departmentRefs[p.DepartmentID],
			Doctor:     doctorRefs[p.DoctorID],
		})
	}

	respondOK(c, detailed)
}

// CheckPatient marks an appointment record as seen by the doctor. The flag
// only ever moves false to true.
func (h *Handler) CheckPatient(c *gin.Context) {
	patientID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperr.Validation("Invalid patient ID"))
		return
	}

	ctx := c.Request.Context()
	update := bson.M{"$set": bson.M{"checked": true}, "$currentDate": bson.M{"updatedAt": true}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var patient models.Patient
	err = h.DB.Collection("patients").FindOneAndUpdate(ctx, bson.M{"_id": patientID}, update, opts).Decode(&patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		respondError(c, apperr.NotFound("Patient not found"))
		return
	}
	if err != nil {
		respondError(c, apperr.Internal("failed to update patient", err))
		return
	}

	respondOK(c, patient)
}
