package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/utils"
)

// BookingRequest is the public booking form. It has no status field: new
// bookings are always Scheduled.
type BookingRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Department string `json:"department"`
	Reason     string `json:"reason"`
}

type AppointmentService struct {
	repos       Repositories
	departments *DepartmentService
	notifier    Notifier
}

func NewAppointmentService(repos Repositories, departments *DepartmentService, notifier Notifier) *AppointmentService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &AppointmentService{repos: repos, departments: departments, notifier: notifier}
}

func (s *AppointmentService) List(ctx context.Context, f models.AppointmentFilter) ([]models.AppointmentDetail, error) {
	apts, err := s.repos.Appointments.List(ctx, f)
	if err != nil {
		return nil, translate("appointment", "list appointments", err)
	}
	return expandAppointments(ctx, s.repos, apts)
}

func (s *AppointmentService) Get(ctx context.Context, id primitive.ObjectID) (*models.AppointmentDetail, error) {
	a, err := s.repos.Appointments.Get(ctx, id)
	if err != nil {
		return nil, translate("appointment", "get appointment", err)
	}
	out, err := expandAppointments(ctx, s.repos, []models.Appointment{*a})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *AppointmentService) ByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.AppointmentDetail, error) {
	return s.List(ctx, models.AppointmentFilter{Patient: &patientID})
}

func (s *AppointmentService) ByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.AppointmentDetail, error) {
	return s.List(ctx, models.AppointmentFilter{Doctor: &doctorID})
}

// Book finds the patient by email, creating one from the contact fields if
// none exists, resolves the department by name and stores a Scheduled
// appointment. The find-or-create is not atomic: two concurrent bookings
// for a new email can both reach the create, and the loser fails on the
// unique email index.
func (s *AppointmentService) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	patient, err := s.findOrCreatePatient(ctx, req)
	if err != nil {
		return nil, err
	}

	departmentID, err := s.departments.Resolve(ctx, req.Department)
	if err != nil {
		return nil, err
	}

	apt := &models.Appointment{
		Patient:         patient.ID,
		Department:      departmentID,
		AppointmentDate: date,
		Time:            req.Time,
		Reason:          req.Reason,
		Status:          models.StatusScheduled,
	}
	apt.ApplyDefaults()
	if err := check(apt); err != nil {
		return nil, err
	}
	if err := s.repos.Appointments.Create(ctx, apt); err != nil {
		return nil, translate("appointment", "create appointment", err)
	}

	s.notifier.AppointmentBooked(*patient, *apt)
	return apt, nil
}

func (s *AppointmentService) findOrCreatePatient(ctx context.Context, req BookingRequest) (*models.Patient, error) {
	email := utils.NormalizeEmail(req.Email)
	if email == "" {
		return nil, invalid("email is required")
	}
	p, err := s.repos.Patients.FindByEmail(ctx, email)
	if err == nil {
		return p, nil
	}
	if !isNotFound(err) {
		return nil, translate("patient", "find patient", err)
	}

	p = &models.Patient{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
	}
	p.ApplyDefaults()
	if err := check(p); err != nil {
		return nil, err
	}
	if err := s.repos.Patients.Create(ctx, p); err != nil {
		return nil, translate("patient", "create patient", err)
	}
	return p, nil
}

func (s *AppointmentService) Update(ctx context.Context, id primitive.ObjectID, patch models.AppointmentPatch) (*models.Appointment, error) {
	if patch.Patient != nil && patch.Patient.IsZero() {
		return nil, invalid("patient is required")
	}
	if err := check(patch); err != nil {
		return nil, err
	}
	a, err := s.repos.Appointments.Update(ctx, id, patch)
	return a, translate("appointment", "update appointment", err)
}

// Cancel sets the status to Cancelled and changes nothing else.
func (s *AppointmentService) Cancel(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	status := models.StatusCancelled
	a, err := s.repos.Appointments.Update(ctx, id, models.AppointmentPatch{Status: &status})
	if err != nil {
		return nil, translate("appointment", "cancel appointment", err)
	}
	if p, err := s.repos.Patients.Get(ctx, a.Patient); err == nil {
		s.notifier.AppointmentCancelled(*p, *a)
	}
	return a, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return translate("appointment", "delete appointment", s.repos.Appointments.Delete(ctx, id))
}

// Stats runs one count per figure. The counts are not read from a common
// snapshot, and No-show appointments only appear in Total.
func (s *AppointmentService) Stats(ctx context.Context) (*models.AppointmentStats, error) {
	var stats models.AppointmentStats
	var err error
	if stats.Total, err = s.repos.Appointments.CountAll(ctx); err != nil {
		return nil, translate("appointment", "count appointments", err)
	}
	counts := []struct {
		status models.AppointmentStatus
		dst    *int64
	}{
		{models.StatusCompleted, &stats.Completed},
		{models.StatusScheduled, &stats.Scheduled},
		{models.StatusCancelled, &stats.Cancelled},
	}
	for _, c := range counts {
		if *c.dst, err = s.repos.Appointments.CountByStatus(ctx, c.status); err != nil {
			return nil, translate("appointment", "count appointments", err)
		}
	}
	return &stats, nil
}

// ParseDate accepts an RFC 3339 timestamp or a plain YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, invalid("date is required")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	return time.Time{}, invalid("date must be YYYY-MM-DD or RFC 3339, got %q", value)
}
