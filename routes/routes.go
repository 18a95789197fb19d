package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"barberflow/handlers"
)

// RegisterRoutes wires all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	agent := r.Group("/api/agent")
	{
		agent.POST("/chat", hb.ChatHandler)
	}

	appointments := r.Group("/api/appointments")
	{
		appointments.GET("", hb.ListAppointmentsHandler)
		appointments.GET("/:id", hb.GetAppointmentHandler)
		appointments.PATCH("/:id", hb.RescheduleHandler)
		appointments.PATCH("/:id/status", hb.UpdateStatusHandler)
		appointments.DELETE("/:id", hb.DeleteAppointmentHandler)
	}

	catalog := r.Group("/api/catalog")
	{
		catalog.GET("/services", hb.ListServicesHandler)
		catalog.GET("/barbers", hb.ListBarbersHandler)
	}
}
