package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AbubakarJ545/hospital-management-system/internal/apperr"
	"github.com/AbubakarJ545/hospital-management-system/internal/models"
	"github.com/AbubakarJ545/hospital-management-system/internal/services"
)

// fakeStaffStore stands in for the Mongo staff directory so the login and
// doctor delete endpoints can be exercised without a database.
type fakeStaffStore struct {
	employees     map[string]*models.Employee
	patientCounts map[primitive.ObjectID]int64
	doctors       map[primitive.ObjectID]bool
}

func (f *fakeStaffStore) EmployeeByEmail(_ context.Context, email string) (*models.Employee, error) {
	e, ok := f.employees[email]
	if !ok {
		return nil, apperr.NotFound("Employee not found")
	}
	return e, nil
}

func (f *fakeStaffStore) CountDoctorPatients(_ context.Context, doctorID primitive.ObjectID) (int64, error) {
	return f.patientCounts[doctorID], nil
}

func (f *fakeStaffStore) RemoveDoctor(_ context.Context, doctorID primitive.ObjectID) (int64, error) {
	if !f.doctors[doctorID] {
		return 0, nil
	}
	delete(f.doctors, doctorID)
	return 1, nil
}

func newFakeStaffStore() *fakeStaffStore {
	return &fakeStaffStore{
		employees:     map[string]*models.Employee{},
		patientCounts: map[primitive.ObjectID]int64{},
		doctors:       map[primitive.ObjectID]bool{},
	}
}

func newStaffHandler(store *fakeStaffStore) *Handler {
	log := slog.New(slog.DiscardHandler)
	return NewHandler(nil, nil, nil, services.NewStaffService(store, log), log)
}

// Field validation in CreateDoctor runs before any database access.
func newDoctorRouter() *gin.Engine {
	h := NewHandler(nil, nil, nil, nil, slog.New(slog.DiscardHandler))
	r := gin.New()
	r.POST("/doctors", h.CreateDoctor)
	return r
}

func TestCreateDoctorReportsMissingFields(t *testing.T) {
	r := newDoctorRouter()

	w := postJSON(t, r, "/doctors", `{"firstName":"Ayesha"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Missing or invalid fields")
	assert.Contains(t, body, "lastName")
	assert.Contains(t, body, "availabilityDays")
	assert.Contains(t, body, "fee")
}

func TestCreateDoctorValidatesAvailability(t *testing.T) {
	r := newDoctorRouter()

	w := postJSON(t, r, "/doctors", `{
		"firstName": "Ayesha",
		"lastName": "Khan",
		"dob": "1985-06-01",
		"gender": "Female",
		"phone": "03001234567",
		"qualification": "MBBS",
		"password": "passw0rd1",
		"departmentId": "507f1f77bcf86cd799439011",
		"availabilityDays": ["Funday"],
		"availabilityTime": {"start": "9am", "end": "17:00"},
		"fee": 1500
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "availabilityDays (Funday)")
	assert.Contains(t, body, "availabilityTime.start")
}

func TestCreateDoctorRejectsNegativeFee(t *testing.T) {
	r := newDoctorRouter()

	w := postJSON(t, r, "/doctors", `{
		"firstName": "Ayesha",
		"lastName": "Khan",
		"dob": "1985-06-01",
		"gender": "Female",
		"phone": "03001234567",
		"qualification": "MBBS",
		"password": "passw0rd1",
		"departmentId": "507f1f77bcf86cd799439011",
		"availabilityDays": ["Monday"],
		"availabilityTime": {"start": "09:00", "end": "17:00"},
		"fee": -10
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fee")
}

func newDeleteDoctorRouter(store *fakeStaffStore) *gin.Engine {
	r := gin.New()
	r.DELETE("/doctors/:id", newStaffHandler(store).DeleteDoctor)
	return r
}

func deleteRequest(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDeleteDoctorRejectsInvalidID(t *testing.T) {
	r := newDeleteDoctorRouter(newFakeStaffStore())

	w := deleteRequest(t, r, "/doctors/not-a-hex-id")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid doctor ID")
}

func TestDeleteDoctorRefusedWhilePatientsReferenceIt(t *testing.T) {
	store := newFakeStaffStore()
	doctorID := primitive.NewObjectID()
	store.doctors[doctorID] = true
	store.patientCounts[doctorID] = 2
	r := newDeleteDoctorRouter(store)

	w := deleteRequest(t, r, "/doctors/"+doctorID.Hex())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "existing patient appointments")
	assert.True(t, store.doctors[doctorID], "doctor record must survive a refused delete")
}

func TestDeleteDoctorWithoutReferencesSucceeds(t *testing.T) {
	store := newFakeStaffStore()
	doctorID := primitive.NewObjectID()
	store.doctors[doctorID] = true
	r := newDeleteDoctorRouter(store)

	w := deleteRequest(t, r, "/doctors/"+doctorID.Hex())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Doctor deleted successfully")
	assert.False(t, store.doctors[doctorID])
}

func TestDeleteDoctorUnknownIDIsNotFound(t *testing.T) {
	r := newDeleteDoctorRouter(newFakeStaffStore())

	w := deleteRequest(t, r, "/doctors/"+primitive.NewObjectID().Hex())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Doctor not found")
}
