package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
)

func newTestAppointmentService(st *fakeStore, n Notifier) *AppointmentService {
	repos := st.repos()
	return NewAppointmentService(repos, NewDepartmentService(repos), n)
}

func seedDepartment(t *testing.T, st *fakeStore, name string) models.Department {
	t.Helper()
	d := &models.Department{Name: name, Status: models.StatusActive}
	if err := st.departments.create(d); err != nil {
		t.Fatalf("seed department: %v", err)
	}
	return *d
}

func booking(email string) BookingRequest {
	return BookingRequest{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      email,
		Phone:      "555-0100",
		Date:       "2026-11-03",
		Time:       "10:30 AM",
		Department: "Cardiology",
		Reason:     "Checkup",
	}
}

func TestBook_NewEmailCreatesPatient(t *testing.T) {
	st := newFakeStore()
	dept := seedDepartment(t, st, "Cardiology")
	n := &recordingNotifier{}
	svc := newTestAppointmentService(st, n)

	apt, err := svc.Book(context.Background(), booking("Jane@Example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(st.patients.docs) != 1 || len(st.appointments.docs) != 1 {
		t.Fatalf("expected 1 patient and 1 appointment, got %d and %d", len(st.patients.docs), len(st.appointments.docs))
	}
	p := st.patients.docs[0]
	if p.Email != "jane@example.com" || p.FirstName != "Jane" || p.Status != models.StatusActive {
		t.Errorf("unexpected patient: %+v", p)
	}
	if apt.Patient != p.ID {
		t.Errorf("appointment patient = %s, want %s", apt.Patient.Hex(), p.ID.Hex())
	}
	if apt.Department == nil || *apt.Department != dept.ID {
		t.Errorf("expected department %s, got %v", dept.ID.Hex(), apt.Department)
	}
	if apt.Status != models.StatusScheduled || apt.Duration != models.DefaultDuration {
		t.Errorf("unexpected defaults: status=%s duration=%d", apt.Status, apt.Duration)
	}
	want := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)
	if !apt.AppointmentDate.Equal(want) {
		t.Errorf("date = %v, want %v", apt.AppointmentDate, want)
	}
	if len(n.booked) != 1 {
		t.Errorf("expected one booking notification, got %d", len(n.booked))
	}

	detail, err := svc.Get(context.Background(), apt.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got, ok := detail.Patient.Resolved(); !ok || got.ID != p.ID {
		t.Errorf("patient reference did not resolve to the new patient")
	}
}

func TestBook_ExistingEmailReusesPatient(t *testing.T) {
	st := newFakeStore()
	existing := &models.Patient{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Phone: "1"}
	existing.ApplyDefaults()
	st.patients.create(existing)
	svc := newTestAppointmentService(st, nil)

	req := booking("  JANE@example.com ")
	req.FirstName = "Someone"
	apt, err := svc.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.patients.docs) != 1 {
		t.Errorf("expected no new patient, have %d", len(st.patients.docs))
	}
	if apt.Patient != existing.ID {
		t.Errorf("appointment not linked to the existing patient")
	}
	if st.patients.docs[0].FirstName != "Jane" {
		t.Error("existing patient was modified")
	}
}

func TestBook_DepartmentResolution(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		resolved bool
	}{
		{"lower case", "cardiology", true},
		{"exact", "Cardiology", true},
		{"upper case", "CARDIOLOGY", true},
		{"substring", "Cardio", false},
		{"metacharacters", "Card.*", false},
		{"blank", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			st := newFakeStore()
			dept := seedDepartment(t, st, "Cardiology")
			svc := newTestAppointmentService(st, nil)

			req := booking("p@example.com")
			req.Department = c.input
			apt, err := svc.Book(context.Background(), req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.resolved {
				if apt.Department == nil || *apt.Department != dept.ID {
					t.Errorf("expected department to resolve")
				}
			} else if apt.Department != nil {
				t.Errorf("expected null department, got %s", apt.Department.Hex())
			}
		})
	}
}

func TestBook_InvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BookingRequest)
	}{
		{"missing date", func(r *BookingRequest) { r.Date = "" }},
		{"bad date", func(r *BookingRequest) { r.Date = "next tuesday" }},
		{"missing email", func(r *BookingRequest) { r.Email = " " }},
		{"new patient without phone", func(r *BookingRequest) { r.Phone = "" }},
		{"new patient without last name", func(r *BookingRequest) { r.LastName = "" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			st := newFakeStore()
			svc := newTestAppointmentService(st, nil)
			req := booking("p@example.com")
			c.mutate(&req)

			_, err := svc.Book(context.Background(), req)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(st.appointments.docs) != 0 {
				t.Error("appointment created despite invalid input")
			}
		})
	}
}

func TestBook_RFC3339Date(t *testing.T) {
	st := newFakeStore()
	svc := newTestAppointmentService(st, nil)
	req := booking("p@example.com")
	req.Date = "2026-11-03T09:00:00Z"

	apt, err := svc.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if apt.AppointmentDate.Hour() != 9 {
		t.Errorf("unexpected date %v", apt.AppointmentDate)
	}
}

func TestCancel_OnlyChangesStatus(t *testing.T) {
	st := newFakeStore()
	n := &recordingNotifier{}
	svc := newTestAppointmentService(st, n)
	apt, err := svc.Book(context.Background(), booking("p@example.com"))
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	before := st.appointments.docs[0]

	got, err := svc.Cancel(context.Background(), apt.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != models.StatusCancelled {
		t.Errorf("status = %s", got.Status)
	}
	after := st.appointments.docs[0]
	after.Status = before.Status
	if after.Reason != before.Reason || after.Time != before.Time || after.Patient != before.Patient ||
		!after.AppointmentDate.Equal(before.AppointmentDate) || after.Duration != before.Duration ||
		after.Notes != before.Notes {
		t.Errorf("cancel changed more than status:\nbefore %+v\nafter  %+v", before, after)
	}
	if len(n.cancelled) != 1 {
		t.Errorf("expected cancellation notification")
	}
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestAppointmentService(newFakeStore(), nil)
	_, err := svc.Cancel(context.Background(), primitive.NewObjectID())
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestUpdate_RejectsUnknownStatus(t *testing.T) {
	st := newFakeStore()
	svc := newTestAppointmentService(st, nil)
	apt, _ := svc.Book(context.Background(), booking("p@example.com"))

	bogus := models.AppointmentStatus("Postponed")
	_, err := svc.Update(context.Background(), apt.ID, models.AppointmentPatch{Status: &bogus})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	notes := "Follow up in two weeks"
	done := models.StatusCompleted
	got, err := svc.Update(context.Background(), apt.ID, models.AppointmentPatch{Status: &done, Notes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != models.StatusCompleted || got.Notes != notes || got.Reason != "Checkup" {
		t.Errorf("unexpected appointment after update: %+v", got)
	}
}

func TestUpdate_RejectsZeroPatient(t *testing.T) {
	st := newFakeStore()
	svc := newTestAppointmentService(st, nil)
	apt, err := svc.Book(context.Background(), booking("p@example.com"))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	zero := primitive.NilObjectID
	_, err = svc.Update(context.Background(), apt.ID, models.AppointmentPatch{Patient: &zero})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if st.appointments.docs[0].Patient != apt.Patient {
		t.Error("patient reference changed")
	}
}

func TestStats(t *testing.T) {
	st := newFakeStore()
	patient := primitive.NewObjectID()
	for _, s := range []models.AppointmentStatus{
		models.StatusScheduled, models.StatusScheduled, models.StatusCompleted,
		models.StatusCancelled, models.StatusNoShow, models.StatusNoShow,
	} {
		st.appointments.create(&models.Appointment{Patient: patient, Status: s, AppointmentDate: time.Now()})
	}
	svc := newTestAppointmentService(st, nil)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := models.AppointmentStats{Total: 6, Completed: 1, Scheduled: 2, Cancelled: 1}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}
	if stats.Completed+stats.Scheduled+stats.Cancelled > stats.Total {
		t.Error("sub-counts exceed total")
	}
}

func TestStats_StoreFailure(t *testing.T) {
	st := newFakeStore()
	st.appointments.fail = errors.New("connection reset")
	svc := newTestAppointmentService(st, nil)

	_, err := svc.Stats(context.Background())
	var serr *StoreError
	if !errors.As(err, &serr) {
		t.Errorf("expected StoreError, got %v", err)
	}
}

func TestList_DanglingReferencesDegradeToUnresolved(t *testing.T) {
	st := newFakeStore()
	gone := primitive.NewObjectID()
	st.appointments.create(&models.Appointment{
		Patient:         primitive.NewObjectID(),
		Doctor:          &gone,
		AppointmentDate: time.Now(),
		Status:          models.StatusScheduled,
	})
	svc := newTestAppointmentService(st, nil)

	list, err := svc.List(context.Background(), models.AppointmentFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(list))
	}
	if _, ok := list[0].Patient.Resolved(); ok {
		t.Error("expected unresolved patient")
	}
	if _, ok := list[0].Doctor.Resolved(); ok {
		t.Error("expected unresolved doctor")
	}
	if list[0].Doctor.ID() != gone {
		t.Error("unresolved ref lost its id")
	}
}

func TestByPatientAndDoctor(t *testing.T) {
	st := newFakeStore()
	p1, p2 := primitive.NewObjectID(), primitive.NewObjectID()
	doc := primitive.NewObjectID()
	st.appointments.create(&models.Appointment{Patient: p1, Doctor: &doc, AppointmentDate: time.Now(), Status: models.StatusScheduled})
	st.appointments.create(&models.Appointment{Patient: p2, AppointmentDate: time.Now(), Status: models.StatusScheduled})
	svc := newTestAppointmentService(st, nil)

	byPatient, _ := svc.ByPatient(context.Background(), p2)
	if len(byPatient) != 1 || byPatient[0].Appointment.Patient != p2 {
		t.Errorf("unexpected by-patient result: %+v", byPatient)
	}
	byDoctor, _ := svc.ByDoctor(context.Background(), doc)
	if len(byDoctor) != 1 || byDoctor[0].Appointment.Patient != p1 {
		t.Errorf("unexpected by-doctor result: %+v", byDoctor)
	}
}
