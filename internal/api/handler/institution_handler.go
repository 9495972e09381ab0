package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yash113gadia/AttendEase-Web/internal/dto"
	"github.com/yash113gadia/AttendEase-Web/internal/service"
	"github.com/yash113gadia/AttendEase-Web/pkg/response"
)

// InstitutionHandler serves institution CRUD.
type InstitutionHandler struct {
	dirSvc service.DirectoryService
}

// NewInstitutionHandler creates an InstitutionHandler.
func NewInstitutionHandler(dirSvc service.DirectoryService) *InstitutionHandler {
	return &InstitutionHandler{dirSvc: dirSvc}
}

// Create registers a new institution.
// POST /api/v1/institutions
func (h *InstitutionHandler) Create(c *gin.Context) {
	var req dto.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	inst, err := h.dirSvc.CreateInstitution(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, inst)
}

// List returns all institutions.
// GET /api/v1/institutions
func (h *InstitutionHandler) List(c *gin.Context) {
	insts, err := h.dirSvc.ListInstitutions(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, insts)
}

// Get returns one institution.
// GET /api/v1/institutions/:id
func (h *InstitutionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	inst, err := h.dirSvc.GetInstitution(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20004, "institution not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, inst)
}

// Delete removes an institution.
// DELETE /api/v1/institutions/:id
func (h *InstitutionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.dirSvc.DeleteInstitution(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20004, "institution not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}
