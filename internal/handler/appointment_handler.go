package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"medical-booking-api/internal/middleware"
	"medical-booking-api/internal/model"
	"medical-booking-api/internal/policy"
	"medical-booking-api/internal/store"
)

// ListAppointments returns the caller's bookings: a patient sees the ones
// they made, a doctor the ones assigned to them. Newest first.
func (h *Handler) ListAppointments(c *gin.Context) {
	caller := middleware.Caller(c)
	callerID, err := primitive.ObjectIDFromHex(caller.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
		return
	}

	ctx := c.Request.Context()
	var appts []model.Appointment
	if caller.Role == model.RoleDoctor {
		appts, err = h.appointments.ListByDoctor(ctx, callerID)
	} else {
		appts, err = h.appointments.ListByPatient(ctx, callerID)
	}
	if err != nil {
		serverError(c, err)
		return
	}

	views := make([]model.AppointmentView, 0, len(appts))
	cache := map[primitive.ObjectID]*model.User{}
	for i := range appts {
		patient, err := h.userCached(ctx, cache, appts[i].PatientID)
		if err != nil {
			serverError(c, err)
			return
		}
		doctor, err := h.userCached(ctx, cache, appts[i].DoctorID)
		if err != nil {
			serverError(c, err)
			return
		}
		views = append(views, appts[i].View(patient, doctor))
	}

	c.JSON(http.StatusOK, views)
}

// userCached resolves a user reference once per request. Dangling references
// (the stored doctor id is never verified on create) come back as a bare id
// rather than failing the whole listing.
func (h *Handler) userCached(ctx context.Context, cache map[primitive.ObjectID]*model.User, id primitive.ObjectID) (*model.User, error) {
	if u, ok := cache[id]; ok {
		return u, nil
	}
	u, err := h.users.UserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		u = &model.User{ID: id}
	} else if err != nil {
		return nil, err
	}
	cache[id] = u
	return u, nil
}

type createAppointmentRequest struct {
	DoctorID string `json:"doctorId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Reason   string `json:"reason"`
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	caller := middleware.Caller(c)
	patientID, err := primitive.ObjectIDFromHex(caller.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
		return
	}

	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	// name the first missing field so the client can fix it
	required := []struct{ field, value string }{
		{"doctorId", req.DoctorID},
		{"date", req.Date},
		{"time", req.Time},
		{"reason", req.Reason},
	}
	for _, f := range required {
		if f.value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("%s is required", f.field)})
			return
		}
	}

	doctorID, err := primitive.ObjectIDFromHex(req.DoctorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "doctorId is not a valid id"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format"})
		return
	}

	// no availability check: double-booking the same slot is allowed here
	apt := &model.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Time:      req.Time,
		Reason:    req.Reason,
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
	}

	if err := h.appointments.CreateAppointment(c.Request.Context(), apt); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment created successfully",
		"appointment": apt.Record(),
	})
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateAppointmentStatus(c *gin.Context) {
	caller := middleware.Caller(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	next, ok := model.ParseStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	ctx := c.Request.Context()
	apt, err := h.appointments.AppointmentByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	if !policy.CanUpdateStatus(caller, apt) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}

	if !apt.Status.CanTransitionTo(next) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("Cannot change status from %s to %s", apt.Status, next),
		})
		return
	}

	now := time.Now()
	if err := h.appointments.SetStatus(ctx, id, next, now); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Appointment not found"})
			return
		}
		serverError(c, err)
		return
	}

	apt.Status = next
	apt.UpdatedAt = now
	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment status updated",
		"appointment": apt.Record(),
	})
}
