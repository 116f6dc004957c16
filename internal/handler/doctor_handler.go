package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medical-booking-api/internal/model"
)

// ListDoctors backs the booking form: every doctor account, credentials
// stripped.
func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.users.ListDoctors(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}

	out := make([]model.PublicUser, 0, len(doctors))
	for i := range doctors {
		out = append(out, doctors[i].Public())
	}
	c.JSON(http.StatusOK, out)
}
