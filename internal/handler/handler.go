package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medical-booking-api/internal/config"
	"medical-booking-api/internal/middleware"
	"medical-booking-api/internal/store"
)

type Handler struct {
	users        store.UserStore
	appointments store.AppointmentStore
	cfg          *config.Config
}

func New(users store.UserStore, appointments store.AppointmentStore, cfg *config.Config) *Handler {
	return &Handler{users: users, appointments: appointments, cfg: cfg}
}

// Routes wires the API surface. The rate limiter guards only the credential
// endpoints; everything under /api/appointments sits behind the token gate.
func (h *Handler) Routes(r *gin.Engine, rl *middleware.RateLimiter) {
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Server is running!"})
	})

	authGroup := api.Group("/auth", middleware.RateLimit(rl))
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)

	api.GET("/doctors", h.ListDoctors)

	appts := api.Group("/appointments", middleware.Auth(h.cfg.JWTSecret))
	appts.GET("", h.ListAppointments)
	appts.POST("", h.CreateAppointment)
	appts.PATCH("/:id/status", h.UpdateAppointmentStatus)
}

// every handler is a terminal boundary: unexpected failures are reported
// once, with the underlying message, and nothing is retried
func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
}
