package services

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/store"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/utils"
)

// fakeColl is an in-memory collection. key, when set, names the unique field
// of a document and mirrors the unique indexes of the real store. fail breaks
// every call; failWrites breaks only create and update.
type fakeColl[T store.Document] struct {
	docs       []T
	key        func(T) string
	clock      time.Time
	fail       error
	failWrites error
	calls      int
}

func newFakeColl[T store.Document](key func(T) string) *fakeColl[T] {
	return &fakeColl[T]{key: key, clock: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
}

func (f *fakeColl[T]) all() ([]T, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	return append([]T{}, f.docs...), nil
}

func (f *fakeColl[T]) where(match func(T) bool) ([]T, error) {
	docs, err := f.all()
	if err != nil {
		return nil, err
	}
	out := []T{}
	for _, d := range docs {
		if match(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeColl[T]) first(match func(T) bool) (*T, error) {
	docs, err := f.where(match)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, store.ErrNotFound
	}
	return &docs[0], nil
}

func (f *fakeColl[T]) get(id primitive.ObjectID) (*T, error) {
	return f.first(func(d T) bool { return d.GetID() == id })
}

func (f *fakeColl[T]) getMany(ids []primitive.ObjectID) (map[primitive.ObjectID]T, error) {
	out := map[primitive.ObjectID]T{}
	for _, id := range ids {
		d, err := f.get(id)
		if err == store.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		out[id] = *d
	}
	return out, nil
}

func (f *fakeColl[T]) create(doc *T) error {
	f.calls++
	if f.fail != nil {
		return f.fail
	}
	if f.failWrites != nil {
		return f.failWrites
	}
	if f.key != nil {
		for _, d := range f.docs {
			if f.key(d) == f.key(*doc) {
				return store.ErrDuplicate
			}
		}
	}
	f.clock = f.clock.Add(time.Second)
	if s, ok := any(doc).(interface{ Stamp(time.Time) }); ok {
		s.Stamp(f.clock)
	}
	f.docs = append(f.docs, *doc)
	return nil
}

// update overlays the non-nil patch fields through a bson round trip, the
// same way the store builds its $set document.
func (f *fakeColl[T]) update(id primitive.ObjectID, patch any) (*T, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	if f.failWrites != nil {
		return nil, f.failWrites
	}
	for i, d := range f.docs {
		if d.GetID() != id {
			continue
		}
		merged := bson.M{}
		mustRoundTrip(d, &merged)
		set := bson.M{}
		mustRoundTrip(patch, &set)
		for k, v := range set {
			merged[k] = v
		}
		var out T
		mustRoundTrip(merged, &out)
		f.docs[i] = out
		return &out, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeColl[T]) remove(id primitive.ObjectID) error {
	f.calls++
	if f.fail != nil {
		return f.fail
	}
	for i, d := range f.docs {
		if d.GetID() == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeColl[T]) count(match func(T) bool) (int64, error) {
	docs, err := f.where(match)
	return int64(len(docs)), err
}

func mustRoundTrip(in, out any) {
	raw, err := bson.Marshal(in)
	if err != nil {
		panic(err)
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		panic(err)
	}
}

func containsFold(text string, fields ...string) bool {
	re := regexp.MustCompile("(?i)" + utils.ContainsPattern(text))
	for _, f := range fields {
		if re.MatchString(f) {
			return true
		}
	}
	return false
}

func matchAll[T any](T) bool { return true }

// -- users --

type fakeUsers struct{ *fakeColl[models.User] }

func (f fakeUsers) Get(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	return f.get(id)
}
func (f fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return f.first(func(u models.User) bool { return u.Email == email })
}
func (f fakeUsers) Create(_ context.Context, u *models.User) error { return f.create(u) }
func (f fakeUsers) Update(_ context.Context, id primitive.ObjectID, p models.UserPatch) (*models.User, error) {
	return f.update(id, p)
}

// -- patients --

type fakePatients struct{ *fakeColl[models.Patient] }

func (f fakePatients) List(context.Context) ([]models.Patient, error) { return f.all() }
func (f fakePatients) Get(_ context.Context, id primitive.ObjectID) (*models.Patient, error) {
	return f.get(id)
}
func (f fakePatients) GetMany(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Patient, error) {
	return f.getMany(ids)
}
func (f fakePatients) FindByEmail(_ context.Context, email string) (*models.Patient, error) {
	return f.first(func(p models.Patient) bool { return p.Email == email })
}
func (f fakePatients) Search(_ context.Context, text string) ([]models.Patient, error) {
	return f.where(func(p models.Patient) bool { return containsFold(text, p.FirstName, p.LastName, p.Email) })
}
func (f fakePatients) Create(_ context.Context, p *models.Patient) error { return f.create(p) }
func (f fakePatients) Update(_ context.Context, id primitive.ObjectID, p models.PatientPatch) (*models.Patient, error) {
	return f.update(id, p)
}
func (f fakePatients) Delete(_ context.Context, id primitive.ObjectID) error { return f.remove(id) }
func (f fakePatients) CountAll(context.Context) (int64, error) {
	return f.count(matchAll[models.Patient])
}

// -- doctors --

type fakeDoctors struct{ *fakeColl[models.Doctor] }

func (f fakeDoctors) List(context.Context) ([]models.Doctor, error) { return f.all() }
func (f fakeDoctors) ListByDepartment(_ context.Context, id primitive.ObjectID) ([]models.Doctor, error) {
	return f.where(func(d models.Doctor) bool { return d.Department != nil && *d.Department == id })
}
func (f fakeDoctors) Get(_ context.Context, id primitive.ObjectID) (*models.Doctor, error) {
	return f.get(id)
}
func (f fakeDoctors) GetMany(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Doctor, error) {
	return f.getMany(ids)
}
func (f fakeDoctors) FindByEmail(_ context.Context, email string) (*models.Doctor, error) {
	return f.first(func(d models.Doctor) bool { return d.Email == email })
}
func (f fakeDoctors) Search(_ context.Context, text string) ([]models.Doctor, error) {
	return f.where(func(d models.Doctor) bool {
		return containsFold(text, d.FirstName, d.LastName, d.Specialization)
	})
}
func (f fakeDoctors) Create(_ context.Context, d *models.Doctor) error { return f.create(d) }
func (f fakeDoctors) Update(_ context.Context, id primitive.ObjectID, p models.DoctorPatch) (*models.Doctor, error) {
	return f.update(id, p)
}
func (f fakeDoctors) Delete(_ context.Context, id primitive.ObjectID) error { return f.remove(id) }
func (f fakeDoctors) CountAll(context.Context) (int64, error) {
	return f.count(matchAll[models.Doctor])
}

// -- departments --

type fakeDepartments struct{ *fakeColl[models.Department] }

func (f fakeDepartments) List(context.Context) ([]models.Department, error) { return f.all() }
func (f fakeDepartments) Get(_ context.Context, id primitive.ObjectID) (*models.Department, error) {
	return f.get(id)
}
func (f fakeDepartments) GetMany(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Department, error) {
	return f.getMany(ids)
}
func (f fakeDepartments) FindByName(_ context.Context, name string) (*models.Department, error) {
	re := regexp.MustCompile("(?i)" + utils.ExactPattern(name))
	return f.first(func(d models.Department) bool { return re.MatchString(d.Name) })
}
func (f fakeDepartments) Create(_ context.Context, d *models.Department) error { return f.create(d) }
func (f fakeDepartments) Update(_ context.Context, id primitive.ObjectID, p models.DepartmentPatch) (*models.Department, error) {
	return f.update(id, p)
}
func (f fakeDepartments) Delete(_ context.Context, id primitive.ObjectID) error { return f.remove(id) }
func (f fakeDepartments) CountAll(context.Context) (int64, error) {
	return f.count(matchAll[models.Department])
}

// -- appointments --

type fakeAppointments struct{ *fakeColl[models.Appointment] }

func (f fakeAppointments) List(_ context.Context, flt models.AppointmentFilter) ([]models.Appointment, error) {
	out, err := f.where(func(a models.Appointment) bool {
		switch {
		case flt.Status != "" && a.Status != flt.Status:
			return false
		case flt.Patient != nil && a.Patient != *flt.Patient:
			return false
		case flt.Doctor != nil && (a.Doctor == nil || *a.Doctor != *flt.Doctor):
			return false
		case flt.From != nil && a.AppointmentDate.Before(*flt.From):
			return false
		case flt.To != nil && a.AppointmentDate.After(*flt.To):
			return false
		}
		return true
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].AppointmentDate.Before(out[j].AppointmentDate) })
	return out, err
}
func (f fakeAppointments) Recent(_ context.Context, n int) ([]models.Appointment, error) {
	out, err := f.all()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}
func (f fakeAppointments) Get(_ context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	return f.get(id)
}
func (f fakeAppointments) Create(_ context.Context, a *models.Appointment) error { return f.create(a) }
func (f fakeAppointments) Update(_ context.Context, id primitive.ObjectID, p models.AppointmentPatch) (*models.Appointment, error) {
	return f.update(id, p)
}
func (f fakeAppointments) Delete(_ context.Context, id primitive.ObjectID) error { return f.remove(id) }
func (f fakeAppointments) CountAll(context.Context) (int64, error) {
	return f.count(matchAll[models.Appointment])
}
func (f fakeAppointments) CountByStatus(_ context.Context, s models.AppointmentStatus) (int64, error) {
	return f.count(func(a models.Appointment) bool { return a.Status == s })
}

// fakeStore groups the fakes so tests can seed and inspect them directly.
type fakeStore struct {
	users        fakeUsers
	patients     fakePatients
	doctors      fakeDoctors
	departments  fakeDepartments
	appointments fakeAppointments
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        fakeUsers{newFakeColl(func(u models.User) string { return u.Email })},
		patients:     fakePatients{newFakeColl(func(p models.Patient) string { return p.Email })},
		doctors:      fakeDoctors{newFakeColl(func(d models.Doctor) string { return d.Email })},
		departments:  fakeDepartments{newFakeColl(func(d models.Department) string { return strings.ToLower(d.Name) })},
		appointments: fakeAppointments{newFakeColl[models.Appointment](nil)},
	}
}

func (s *fakeStore) repos() Repositories {
	return Repositories{
		Users:        s.users,
		Patients:     s.patients,
		Doctors:      s.doctors,
		Departments:  s.departments,
		Appointments: s.appointments,
	}
}

type recordingNotifier struct {
	booked    []models.Appointment
	cancelled []models.Appointment
}

func (n *recordingNotifier) AppointmentBooked(_ models.Patient, a models.Appointment) {
	n.booked = append(n.booked, a)
}
func (n *recordingNotifier) AppointmentCancelled(_ models.Patient, a models.Appointment) {
	n.cancelled = append(n.cancelled, a)
}
