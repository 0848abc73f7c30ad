package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pveldman/studioadmin/internal/application/service"
	"github.com/pveldman/studioadmin/internal/presentation/http/dto/response"
)

// AppointmentHandler handles agenda HTTP requests
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// List handles listing appointments in a date range. Without range
// parameters the current week is shown.
func (h *AppointmentHandler) List(c *gin.Context) {
	var start, end time.Time
	var err error
	if c.Query("period") == "" && c.Query("start") == "" && c.Query("end") == "" {
		start, end, err = service.PeriodRange("week", time.Now())
	} else {
		start, end, err = parseDateRange(c)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	appointments, err := h.appointmentService.ListAppointmentsInRange(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointments retrieved successfully", appointments)
}

// Create handles booking an appointment
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req struct {
		ClientID    *uuid.UUID `json:"client_id"`
		Date        string     `json:"date" binding:"required"`
		Time        string     `json:"time" binding:"required"`
		DurationMin int        `json:"duration_min"`
		Notes       *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		response.BadRequest(c, "Date must be in YYYY-MM-DD format")
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), &service.CreateAppointmentInput{
		ClientID:    req.ClientID,
		Date:        date,
		Time:        req.Time,
		DurationMin: req.DurationMin,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Appointment created successfully", appointment)
}

// Delete handles cancelling an appointment
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment deleted successfully", nil)
}
