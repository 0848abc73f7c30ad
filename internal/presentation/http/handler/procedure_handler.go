package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/application/service"
	"github.com/pveldman/studioadmin/internal/presentation/http/dto/response"
)

// ProcedureHandler handles price-list HTTP requests
type ProcedureHandler struct {
	procedureService *service.ProcedureService
}

// NewProcedureHandler creates a new procedure handler
func NewProcedureHandler(procedureService *service.ProcedureService) *ProcedureHandler {
	return &ProcedureHandler{procedureService: procedureService}
}

// List handles listing the price list
func (h *ProcedureHandler) List(c *gin.Context) {
	procedures, err := h.procedureService.ListProcedures(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Procedures retrieved successfully", procedures)
}

// Create handles creating a price-list entry
func (h *ProcedureHandler) Create(c *gin.Context) {
	var req struct {
		Name  string  `json:"name" binding:"required"`
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	procedure, err := h.procedureService.CreateProcedure(c.Request.Context(), &service.CreateProcedureInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Procedure created successfully", procedure)
}

// Update handles updating a price-list entry
func (h *ProcedureHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid procedure ID")
		return
	}

	var req struct {
		Name  *string  `json:"name"`
		Price *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	procedure, err := h.procedureService.UpdateProcedure(c.Request.Context(), &service.UpdateProcedureInput{
		ID:    id,
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Procedure updated successfully", procedure)
}

// Delete handles deleting a price-list entry
func (h *ProcedureHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid procedure ID")
		return
	}

	if err := h.procedureService.DeleteProcedure(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Procedure deleted successfully", nil)
}
