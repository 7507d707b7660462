package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/services"
)

// Each stub returns its canned values and records the last input it saw.

type stubPatients struct {
	patients []models.Patient
	err      error
	created  *models.Patient
	query    string
}

func (s *stubPatients) List(context.Context) ([]models.Patient, error) { return s.patients, s.err }
func (s *stubPatients) Get(_ context.Context, id primitive.ObjectID) (*models.Patient, error) {
	if s.err != nil {
		return nil, s.err
	}
	p := s.patients[0]
	p.ID = id
	return &p, nil
}
func (s *stubPatients) Create(_ context.Context, p *models.Patient) error {
	s.created = p
	if s.err != nil {
		return s.err
	}
	p.ID = primitive.NewObjectID()
	return nil
}
func (s *stubPatients) Update(_ context.Context, id primitive.ObjectID, patch models.PatientPatch) (*models.Patient, error) {
	if s.err != nil {
		return nil, s.err
	}
	p := s.patients[0]
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	return &p, nil
}
func (s *stubPatients) Delete(context.Context, primitive.ObjectID) error { return s.err }
func (s *stubPatients) Search(_ context.Context, q string) ([]models.Patient, error) {
	s.query = q
	return s.patients, s.err
}

type stubDoctors struct {
	doctors []models.DoctorDetail
	err     error
	dept    primitive.ObjectID
}

func (s *stubDoctors) List(context.Context) ([]models.DoctorDetail, error) { return s.doctors, s.err }
func (s *stubDoctors) Get(context.Context, primitive.ObjectID) (*models.DoctorDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.doctors[0], nil
}
func (s *stubDoctors) ByDepartment(_ context.Context, id primitive.ObjectID) ([]models.DoctorDetail, error) {
	s.dept = id
	return s.doctors, s.err
}
func (s *stubDoctors) Create(context.Context, *models.Doctor) error { return s.err }
func (s *stubDoctors) Update(context.Context, primitive.ObjectID, models.DoctorPatch) (*models.Doctor, error) {
	return &s.doctors[0].Doctor, s.err
}
func (s *stubDoctors) Delete(context.Context, primitive.ObjectID) error { return s.err }
func (s *stubDoctors) Search(context.Context, string) ([]models.DoctorDetail, error) {
	return s.doctors, s.err
}

type stubDepartments struct {
	err error
}

func (s *stubDepartments) List(context.Context) ([]models.DepartmentDetail, error) {
	return []models.DepartmentDetail{}, s.err
}
func (s *stubDepartments) Get(context.Context, primitive.ObjectID) (*models.DepartmentDetail, error) {
	return nil, s.err
}
func (s *stubDepartments) Create(context.Context, *models.Department) error { return s.err }
func (s *stubDepartments) Update(context.Context, primitive.ObjectID, models.DepartmentPatch) (*models.Department, error) {
	return nil, s.err
}
func (s *stubDepartments) Delete(context.Context, primitive.ObjectID) error { return s.err }

type stubAppointments struct {
	apts    []models.AppointmentDetail
	err     error
	filter  models.AppointmentFilter
	booking services.BookingRequest
	stats   models.AppointmentStats
}

func (s *stubAppointments) List(_ context.Context, f models.AppointmentFilter) ([]models.AppointmentDetail, error) {
	s.filter = f
	return s.apts, s.err
}
func (s *stubAppointments) Get(context.Context, primitive.ObjectID) (*models.AppointmentDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.apts[0], nil
}
func (s *stubAppointments) ByPatient(_ context.Context, id primitive.ObjectID) ([]models.AppointmentDetail, error) {
	s.filter = models.AppointmentFilter{Patient: &id}
	return s.apts, s.err
}
func (s *stubAppointments) ByDoctor(_ context.Context, id primitive.ObjectID) ([]models.AppointmentDetail, error) {
	s.filter = models.AppointmentFilter{Doctor: &id}
	return s.apts, s.err
}
func (s *stubAppointments) Book(_ context.Context, req services.BookingRequest) (*models.Appointment, error) {
	s.booking = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.Appointment{Status: models.StatusScheduled, Time: req.Time}, nil
}
func (s *stubAppointments) Update(context.Context, primitive.ObjectID, models.AppointmentPatch) (*models.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.apts[0].Appointment, nil
}
func (s *stubAppointments) Cancel(context.Context, primitive.ObjectID) (*models.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Appointment{Status: models.StatusCancelled}, nil
}
func (s *stubAppointments) Delete(context.Context, primitive.ObjectID) error { return s.err }
func (s *stubAppointments) Stats(context.Context) (*models.AppointmentStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.stats, nil
}

type stubAuth struct {
	session services.Session
	profile services.Profile
	err     error
	userID  primitive.ObjectID
}

func (s *stubAuth) Login(context.Context, string, string) (*services.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.session, nil
}
func (s *stubAuth) Register(context.Context, services.RegisterRequest) (*services.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.profile, nil
}
func (s *stubAuth) Profile(_ context.Context, id primitive.ObjectID) (*services.Profile, error) {
	s.userID = id
	if s.err != nil {
		return nil, s.err
	}
	return &s.profile, nil
}

type stubDashboard struct {
	dashboard services.Dashboard
	err       error
}

func (s *stubDashboard) Summary(context.Context) (*services.Dashboard, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.dashboard, nil
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }
