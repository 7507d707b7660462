package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
)

const (
	recentAppointmentsLimit = 5
	unknownPatient          = "Unknown Patient"
	noDoctorAssigned        = "No Doctor Assigned"
)

type Overview struct {
	TotalPatients int64 `json:"totalPatients"`
	TotalDoctors  int64 `json:"totalDoctors"`
	Appointments  int64 `json:"appointments"`
	Departments   int64 `json:"departments"`
}

type RecentAppointment struct {
	ID      primitive.ObjectID       `json:"id"`
	Patient string                   `json:"patient"`
	Doctor  string                   `json:"doctor"`
	Time    string                   `json:"time"`
	Status  models.AppointmentStatus `json:"status"`
}

type Dashboard struct {
	Overview           Overview            `json:"overview"`
	RecentAppointments []RecentAppointment `json:"recentAppointments"`
}

type DashboardService struct {
	repos Repositories
}

func NewDashboardService(repos Repositories) *DashboardService {
	return &DashboardService{repos: repos}
}

// Summary composes the entity totals and the latest bookings. Each figure
// is an independent read.
func (s *DashboardService) Summary(ctx context.Context) (*Dashboard, error) {
	var (
		d   Dashboard
		err error
	)
	if d.Overview.TotalPatients, err = s.repos.Patients.CountAll(ctx); err != nil {
		return nil, translate("patient", "count patients", err)
	}
	if d.Overview.TotalDoctors, err = s.repos.Doctors.CountAll(ctx); err != nil {
		return nil, translate("doctor", "count doctors", err)
	}
	if d.Overview.Appointments, err = s.repos.Appointments.CountAll(ctx); err != nil {
		return nil, translate("appointment", "count appointments", err)
	}
	if d.Overview.Departments, err = s.repos.Departments.CountAll(ctx); err != nil {
		return nil, translate("department", "count departments", err)
	}

	recent, err := s.repos.Appointments.Recent(ctx, recentAppointmentsLimit)
	if err != nil {
		return nil, translate("appointment", "recent appointments", err)
	}
	details, err := expandAppointments(ctx, s.repos, recent)
	if err != nil {
		return nil, err
	}

	d.RecentAppointments = make([]RecentAppointment, len(details))
	for i, a := range details {
		item := RecentAppointment{
			ID:      a.ID,
			Patient: unknownPatient,
			Doctor:  noDoctorAssigned,
			Time:    a.Time,
			Status:  a.Status,
		}
		if p, ok := a.Patient.Resolved(); ok {
			item.Patient = p.FullName()
		}
		if doc, ok := a.Doctor.Resolved(); ok {
			item.Doctor = doc.DisplayName()
		}
		d.RecentAppointments[i] = item
	}
	return &d, nil
}
