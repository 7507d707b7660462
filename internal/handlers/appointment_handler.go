package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/services"
)

// appointmentFilter reads ?status=&startDate=&endDate= (YYYY-MM-DD). The end
// date is inclusive of the whole day.
func appointmentFilter(c *gin.Context) (models.AppointmentFilter, bool) {
	f := models.AppointmentFilter{Status: models.AppointmentStatus(c.Query("status"))}
	if s := c.Query("startDate"); s != "" {
		start, err := time.Parse(time.DateOnly, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be YYYY-MM-DD"})
			return f, false
		}
		f.From = &start
	}
	if s := c.Query("endDate"); s != "" {
		end, err := time.Parse(time.DateOnly, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be YYYY-MM-DD"})
			return f, false
		}
		end = end.Add(24*time.Hour - time.Millisecond)
		f.To = &end
	}
	return f, true
}

func (h *Handler) ListAppointments(c *gin.Context) {
	f, ok := appointmentFilter(c)
	if !ok {
		return
	}
	apts, err := h.svc.Appointments.List(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apts)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.Appointments.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) PatientAppointments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	apts, err := h.svc.Appointments.ByPatient(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apts)
}

func (h *Handler) DoctorAppointments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	apts, err := h.svc.Appointments.ByDoctor(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apts)
}

// BookAppointment takes the public booking form. The patient is matched by
// email or created on the fly.
func (h *Handler) BookAppointment(c *gin.Context) {
	var req services.BookingRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.svc.Appointments.Book(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var patch models.AppointmentPatch
	if !bindJSON(c, &patch) {
		return
	}
	a, err := h.svc.Appointments.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.Appointments.Cancel(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Appointments.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "Appointment")
}

func (h *Handler) AppointmentStats(c *gin.Context) {
	stats, err := h.svc.Appointments.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
