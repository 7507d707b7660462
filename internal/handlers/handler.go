package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/middleware"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/services"
)

type PatientService interface {
	List(ctx context.Context) ([]models.Patient, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Patient, error)
	Create(ctx context.Context, p *models.Patient) error
	Update(ctx context.Context, id primitive.ObjectID, patch models.PatientPatch) (*models.Patient, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Search(ctx context.Context, query string) ([]models.Patient, error)
}

type DoctorService interface {
	List(ctx context.Context) ([]models.DoctorDetail, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.DoctorDetail, error)
	ByDepartment(ctx context.Context, departmentID primitive.ObjectID) ([]models.DoctorDetail, error)
	Create(ctx context.Context, d *models.Doctor) error
	Update(ctx context.Context, id primitive.ObjectID, patch models.DoctorPatch) (*models.Doctor, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Search(ctx context.Context, query string) ([]models.DoctorDetail, error)
}

type DepartmentService interface {
	List(ctx context.Context) ([]models.DepartmentDetail, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.DepartmentDetail, error)
	Create(ctx context.Context, d *models.Department) error
	Update(ctx context.Context, id primitive.ObjectID, patch models.DepartmentPatch) (*models.Department, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type AppointmentService interface {
	List(ctx context.Context, f models.AppointmentFilter) ([]models.AppointmentDetail, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.AppointmentDetail, error)
	ByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.AppointmentDetail, error)
	ByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.AppointmentDetail, error)
	Book(ctx context.Context, req services.BookingRequest) (*models.Appointment, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.AppointmentPatch) (*models.Appointment, error)
	Cancel(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Stats(ctx context.Context) (*models.AppointmentStats, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*services.Session, error)
	Register(ctx context.Context, req services.RegisterRequest) (*services.Profile, error)
	Profile(ctx context.Context, userID primitive.ObjectID) (*services.Profile, error)
}

type DashboardService interface {
	Summary(ctx context.Context) (*services.Dashboard, error)
}

// Pinger reports whether the entity store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services is the set of domain services the handlers call into.
type Services struct {
	Patients     PatientService
	Doctors      DoctorService
	Departments  DepartmentService
	Appointments AppointmentService
	Auth         AuthService
	Dashboard    DashboardService
}

type Handler struct {
	svc Services
	db  Pinger
	log zerolog.Logger
	now func() time.Time
}

func NewHandler(svc Services, db Pinger, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, db: db, log: log, now: time.Now}
}

// fail writes the error envelope for err. Store failures are logged and
// answered with a generic message.
func (h *Handler) fail(c *gin.Context, err error) {
	var (
		verr *services.ValidationError
		aerr *services.AuthenticationError
		nerr *services.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.As(err, &aerr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": aerr.Error()})
	case errors.As(err, &nerr):
		c.JSON(http.StatusNotFound, gin.H{"error": nerr.Error()})
	default:
		_ = c.Error(err)
		h.log.Error().Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	return true
}

func deleted(c *gin.Context, entity string) {
	c.JSON(http.StatusOK, gin.H{"message": entity + " deleted"})
}
