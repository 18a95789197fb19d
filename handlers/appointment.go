package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"barberflow/models"
	"barberflow/services/booking"
	"barberflow/utils"
)

// AppointmentHandler fronts the dashboard appointment API.
type AppointmentHandler struct {
	Svc *booking.DefaultAppointmentService
}

// NewAppointmentHandler returns a handler over the appointment service.
func NewAppointmentHandler(svc *booking.DefaultAppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc}
}

// statusFromBookingError maps coded booking errors onto HTTP statuses.
func statusFromBookingError(err error) int {
	switch booking.CodeOf(err) {
	case booking.CodeAppointmentNotFound, booking.CodeBarberNotFound,
		booking.CodeServiceNotFound, booking.CodeConversationNotFound:
		return http.StatusNotFound
	case booking.CodeSlotUnavailable:
		return http.StatusConflict
	case booking.CodeValidation, booking.CodeInvalidTransition:
		return http.StatusBadRequest
	case "":
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// ListAppointmentsHandler handles GET /api/appointments with optional
// date (YYYY-MM-DD), barberId and status query filters.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	filter := models.AppointmentFilter{
		BarberID: c.Query("barberId"),
		Status:   models.AppointmentStatus(c.Query("status")),
	}
	if day := c.Query("date"); day != "" {
		parsed, err := time.Parse("2006-01-02", day)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date filter", "expected YYYY-MM-DD")
			return
		}
		filter.Day = &parsed
	}

	appts, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, statusFromBookingError(err), "Failed to fetch appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}

type updateStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required"`
}

// UpdateStatusHandler handles PATCH /api/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status update", err.Error())
		return
	}

	appt, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.JSONError(c, statusFromBookingError(err), "Failed to update status", err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}

type rescheduleRequest struct {
	StartsAt  *time.Time `json:"startsAt,omitempty"`
	ServiceID string     `json:"serviceId,omitempty"`
}

// RescheduleHandler handles PATCH /api/appointments/:id.
func (h *AppointmentHandler) RescheduleHandler(c *gin.Context) {
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reschedule request", err.Error())
		return
	}
	if req.StartsAt == nil && req.ServiceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reschedule request", "startsAt or serviceId is required")
		return
	}

	appt, err := h.Svc.Reschedule(c.Request.Context(), c.Param("id"), req.StartsAt, req.ServiceID)
	if err != nil {
		utils.JSONError(c, statusFromBookingError(err), "Failed to reschedule appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DeleteAppointmentHandler handles DELETE /api/appointments/:id (hard delete).
func (h *AppointmentHandler) DeleteAppointmentHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, statusFromBookingError(err), "Failed to delete appointment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
