package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
)

const textbeltURL = "https://textbelt.com/text"

// Notifier tells patients about changes to their appointments. Delivery is
// best effort and never affects the outcome of the calling operation.
type Notifier interface {
	AppointmentBooked(patient models.Patient, apt models.Appointment)
	AppointmentCancelled(patient models.Patient, apt models.Appointment)
}

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) AppointmentBooked(models.Patient, models.Appointment)    {}
func (NopNotifier) AppointmentCancelled(models.Patient, models.Appointment) {}

// SMSNotifier sends notifications as text messages through Textbelt.
type SMSNotifier struct {
	key      string
	endpoint string
	client   *http.Client
	log      zerolog.Logger
}

// NewNotifier returns an SMSNotifier when a Textbelt key is configured and a
// NopNotifier otherwise.
func NewNotifier(textbeltKey string, log zerolog.Logger) Notifier {
	if textbeltKey == "" {
		log.Info().Msg("TEXTBELT_API_KEY not set, SMS notifications disabled")
		return NopNotifier{}
	}
	return &SMSNotifier{
		key:      textbeltKey,
		endpoint: textbeltURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

func (s *SMSNotifier) AppointmentBooked(patient models.Patient, apt models.Appointment) {
	s.notify(patient, fmt.Sprintf("Appointment confirmed for %s on %s %s.",
		patient.FullName(), apt.AppointmentDate.Format("Jan 2"), apt.Time))
}

func (s *SMSNotifier) AppointmentCancelled(patient models.Patient, apt models.Appointment) {
	s.notify(patient, fmt.Sprintf("Appointment for %s on %s %s has been cancelled.",
		patient.FullName(), apt.AppointmentDate.Format("Jan 2"), apt.Time))
}

func (s *SMSNotifier) notify(patient models.Patient, message string) {
	if patient.Phone == "" || patient.Phone == placeholderPhone {
		s.log.Debug().Str("patient", patient.ID.Hex()).Msg("SMS not sent: patient has no phone number")
		return
	}
	// Send in a goroutine so it doesn't block the API response.
	go s.send(patient.Phone, message)
}

func (s *SMSNotifier) send(phone, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	body, _ := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.key,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		s.log.Error().Err(err).Msg("build textbelt request")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error().Err(err).Str("phone", phone).Msg("textbelt request failed")
		return
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		s.log.Error().Err(err).Str("phone", phone).Msg("decode textbelt response")
		return
	}
	if !result.Success {
		s.log.Warn().Str("phone", phone).Str("reason", result.Error).Msg("SMS rejected by textbelt")
		return
	}
	s.log.Info().Str("phone", phone).Msg("SMS sent")
}
