package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
)

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.svc.Doctors.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	d, err := h.svc.Doctors.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) DoctorsByDepartment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	doctors, err := h.svc.Doctors.ByDepartment(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var d models.Doctor
	if !bindJSON(c, &d) {
		return
	}
	d.Base = models.Base{}
	if err := h.svc.Doctors.Create(c.Request.Context(), &d); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var patch models.DoctorPatch
	if !bindJSON(c, &patch) {
		return
	}
	d, err := h.svc.Doctors.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Doctors.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "Doctor")
}

// SearchDoctors matches ?query= against names and specialization.
func (h *Handler) SearchDoctors(c *gin.Context) {
	doctors, err := h.svc.Doctors.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}
