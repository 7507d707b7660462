package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/export"
)

func (h *Handler) ExportPatients(c *gin.Context) {
	patients, err := h.svc.Patients.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	buf, err := export.Patients(patients)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.attachment(c, "patients", buf)
}

// ExportAppointments honours the same filters as ListAppointments.
func (h *Handler) ExportAppointments(c *gin.Context) {
	f, ok := appointmentFilter(c)
	if !ok {
		return
	}
	apts, err := h.svc.Appointments.List(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	buf, err := export.Appointments(apts)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.attachment(c, "appointments", buf)
}

func (h *Handler) attachment(c *gin.Context, name string, buf *bytes.Buffer) {
	filename := fmt.Sprintf("%s-%s.xlsx", name, h.now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
