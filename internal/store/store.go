package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"medical-booking-api/internal/model"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByEmailRole(ctx context.Context, email, role string) (*model.User, error)
	UserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	ListDoctors(ctx context.Context) ([]model.User, error)
}

type AppointmentStore interface {
	CreateAppointment(ctx context.Context, a *model.Appointment) error
	AppointmentByID(ctx context.Context, id primitive.ObjectID) (*model.Appointment, error)
	ListByPatient(ctx context.Context, patientID primitive.ObjectID) ([]model.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]model.Appointment, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status model.Status, at time.Time) error
}

// Mongo implements both stores over a single database.
type Mongo struct {
	users        *mongo.Collection
	appointments *mongo.Collection
}

func New(db *mongo.Database) *Mongo {
	return &Mongo{
		users:        db.Collection("users"),
		appointments: db.Collection("appointments"),
	}
}
