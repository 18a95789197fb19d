package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle collects the wired handlers for route registration.
type HandlerBundle struct {
	// Agent endpoints.
	ChatHandler gin.HandlerFunc

	// Appointment dashboard endpoints.
	ListAppointmentsHandler  gin.HandlerFunc
	GetAppointmentHandler    gin.HandlerFunc
	UpdateStatusHandler      gin.HandlerFunc
	RescheduleHandler        gin.HandlerFunc
	DeleteAppointmentHandler gin.HandlerFunc

	// Catalog endpoints.
	ListServicesHandler gin.HandlerFunc
	ListBarbersHandler  gin.HandlerFunc
}
