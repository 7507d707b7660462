package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
)

func (h *Handler) ListDepartments(c *gin.Context) {
	depts, err := h.svc.Departments.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, depts)
}

func (h *Handler) GetDepartment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	d, err := h.svc.Departments.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) CreateDepartment(c *gin.Context) {
	var d models.Department
	if !bindJSON(c, &d) {
		return
	}
	d.Base = models.Base{}
	if err := h.svc.Departments.Create(c.Request.Context(), &d); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *Handler) UpdateDepartment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var patch models.DepartmentPatch
	if !bindJSON(c, &patch) {
		return
	}
	d, err := h.svc.Departments.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDepartment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Departments.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	deleted(c, "Department")
}
