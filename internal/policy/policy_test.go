package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"medical-booking-api/internal/auth"
	"medical-booking-api/internal/model"
)

func TestCanUpdateStatus(t *testing.T) {
	doctorID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	apt := &model.Appointment{PatientID: patientID, DoctorID: doctorID}

	assigned := &auth.Claims{UserID: doctorID.Hex(), Role: model.RoleDoctor}
	assert.True(t, CanUpdateStatus(assigned, apt))

	otherDoctor := &auth.Claims{UserID: primitive.NewObjectID().Hex(), Role: model.RoleDoctor}
	assert.False(t, CanUpdateStatus(otherDoctor, apt))

	// the patient on the record is still not allowed to move its status
	patient := &auth.Claims{UserID: patientID.Hex(), Role: model.RolePatient}
	assert.False(t, CanUpdateStatus(patient, apt))

	// a patient asserting the doctor's id but not the role
	impostor := &auth.Claims{UserID: doctorID.Hex(), Role: model.RolePatient}
	assert.False(t, CanUpdateStatus(impostor, apt))
}

func TestCanView(t *testing.T) {
	doctorID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	apt := &model.Appointment{PatientID: patientID, DoctorID: doctorID}

	assert.True(t, CanView(&auth.Claims{UserID: patientID.Hex(), Role: model.RolePatient}, apt))
	assert.True(t, CanView(&auth.Claims{UserID: doctorID.Hex(), Role: model.RoleDoctor}, apt))
	assert.False(t, CanView(&auth.Claims{UserID: primitive.NewObjectID().Hex(), Role: model.RolePatient}, apt))
	assert.False(t, CanView(&auth.Claims{UserID: patientID.Hex(), Role: "admin"}, apt))
}
