package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/AbubakarJ545/hospital-management-system/internal/models"
)

// NotificationService sends SMS confirmations through the Textbelt API.
type NotificationService struct {
	log *slog.Logger
}

func NewNotificationService(log *slog.Logger) *NotificationService {
	return &NotificationService{log: log}
}

// SendBookingConfirmationSMS confirms a booked appointment to the patient.
// Dispatched in a goroutine so it never blocks the API response; delivery
// failure is logged, not surfaced.
func (s *NotificationService) SendBookingConfirmationSMS(patient *models.Patient, doctor *models.Doctor) {
	if patient.Phone == "" {
		s.log.Info("SMS skipped: patient has no phone number", "patientId", patient.ID.Hex())
		return
	}

	body := fmt.Sprintf(
		"Appointment confirmed: Dr. %s %s on %s.",
		doctor.FirstName,
		doctor.LastName,
		patient.AppointmentDate.Format("Jan 2 at 3:04 PM"),
	)

	go s.sendSMS(patient.Phone, body)
}

func (s *NotificationService) sendSMS(phone, message string) {
	postBody, _ := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     os.Getenv("TEXTBELT_API_KEY"),
	})

	resp, err := http.Post("https://textbelt.com/text", "application/json", bytes.NewBuffer(postBody))
	if err != nil {
		s.log.Error("textbelt request failed", "phone", phone, "error", err)
		return
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)

	if success, _ := result["success"].(bool); !success {
		reason, _ := result["error"].(string)
		s.log.Error("textbelt rejected SMS", "phone", phone, "reason", reason)
		return
	}
	s.log.Info("SMS sent", "phone", phone)
}
