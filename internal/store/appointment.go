package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medical-booking-api/internal/model"
)

func (s *Mongo) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	res, err := s.appointments.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *Mongo) AppointmentByID(ctx context.Context, id primitive.ObjectID) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := s.appointments.FindOne(ctx, bson.M{"_id": id}).Decode(a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Mongo) ListByPatient(ctx context.Context, patientID primitive.ObjectID) ([]model.Appointment, error) {
	return s.list(ctx, bson.M{"patientId": patientID})
}

func (s *Mongo) ListByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]model.Appointment, error) {
	return s.list(ctx, bson.M{"doctorId": doctorID})
}

// newest bookings first
func (s *Mongo) list(ctx context.Context, filter bson.M) ([]model.Appointment, error) {
	cur, err := s.appointments.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.Appointment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetStatus is last-write-wins: there is no version check, so two concurrent
// updates on the same appointment race and the later one sticks.
func (s *Mongo) SetStatus(ctx context.Context, id primitive.ObjectID, status model.Status, at time.Time) error {
	res, err := s.appointments.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": at}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
