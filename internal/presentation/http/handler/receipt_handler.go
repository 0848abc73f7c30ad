package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/application/service"
	"github.com/pveldman/studioadmin/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt HTTP requests
type ReceiptHandler struct {
	receiptService  *service.ReceiptService
	documentService *service.DocumentService
	mailService     *service.MailService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(
	receiptService *service.ReceiptService,
	documentService *service.DocumentService,
	mailService *service.MailService,
) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService:  receiptService,
		documentService: documentService,
		mailService:     mailService,
	}
}

// Create handles creating a receipt from item selections
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req struct {
		ClientID *uuid.UUID `json:"client_id"`
		Items    []struct {
			ProcedureID uuid.UUID `json:"procedure_id" binding:"required"`
			Quantity    int       `json:"quantity"`
		} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.ItemSelection, 0, len(req.Items))
	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		items = append(items, service.ItemSelection{
			ProcedureID: item.ProcedureID,
			Quantity:    quantity,
		})
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), &service.CreateReceiptInput{
		ClientID: req.ClientID,
		Items:    items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", receipt)
}

// Get handles getting a single receipt with its items
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// List handles listing receipts in a date range, optionally per client
func (h *ReceiptHandler) List(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	clientID, err := parseOptionalClientID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	receipts, err := h.receiptService.ListReceiptsInRange(c.Request.Context(), start, end, clientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipts retrieved successfully", receipts)
}

// Document handles rendering and downloading the receipt document
func (h *ReceiptHandler) Document(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	artifact, err := h.documentService.RenderReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	sendArtifact(c, artifact, "text/plain; charset=utf-8")
}

// Email handles sending the receipt document to the client
func (h *ReceiptHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.mailService.EmailReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt emailed successfully", nil)
}
