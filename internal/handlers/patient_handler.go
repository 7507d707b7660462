package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
)

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.svc.Patients.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.Patients.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var p models.Patient
	if !bindJSON(c, &p) {
		return
	}
	p.Base = models.Base{}
	if err := h.svc.Patients.Create(c.Request.Context(), &p); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var patch models.PatientPatch
	if !bindJSON(c, &patch) {
		return
	}
	p, err := h.svc.Patients.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Patients.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "Patient")
}

// SearchPatients matches ?query= against names and email.
func (h *Handler) SearchPatients(c *gin.Context) {
	patients, err := h.svc.Patients.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}
