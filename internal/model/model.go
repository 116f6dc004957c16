package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

func ValidRole(r string) bool {
	return r == RolePatient || r == RoleDoctor
}

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	PasswordHash   string             `bson:"password"`
	Role           string             `bson:"role"`
	Phone          string             `bson:"phone,omitempty"`
	Specialization string             `bson:"specialization,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
}

// PublicUser is the only user shape that leaves the API. The password hash
// has no field here, so it cannot be serialized by accident.
type PublicUser struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Phone          string    `json:"phone,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID.Hex(),
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Phone:          u.Phone,
		Specialization: u.Specialization,
		CreatedAt:      u.CreatedAt,
	}
}

type Appointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PatientID primitive.ObjectID `bson:"patientId"`
	DoctorID  primitive.ObjectID `bson:"doctorId"`
	Date      time.Time          `bson:"date"`
	Time      string             `bson:"time"`
	Reason    string             `bson:"reason"`
	Status    Status             `bson:"status"`
	Notes     string             `bson:"notes,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty"`
}

// AppointmentRecord is the unexpanded outward shape: user references stay
// as ids. Returned by the mutation endpoints.
type AppointmentRecord struct {
	ID        string     `json:"id"`
	PatientID string     `json:"patientId"`
	DoctorID  string     `json:"doctorId"`
	Date      time.Time  `json:"date"`
	Time      string     `json:"time"`
	Reason    string     `json:"reason"`
	Status    Status     `json:"status"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (a *Appointment) Record() AppointmentRecord {
	r := AppointmentRecord{
		ID:        a.ID.Hex(),
		PatientID: a.PatientID.Hex(),
		DoctorID:  a.DoctorID.Hex(),
		Date:      a.Date,
		Time:      a.Time,
		Reason:    a.Reason,
		Status:    a.Status,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
	}
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		r.UpdatedAt = &t
	}
	return r
}

// AppointmentView is an appointment with its user references expanded, the
// shape returned by the list endpoint.
type AppointmentView struct {
	ID        string     `json:"id"`
	Patient   PublicUser `json:"patient"`
	Doctor    PublicUser `json:"doctor"`
	Date      time.Time  `json:"date"`
	Time      string     `json:"time"`
	Reason    string     `json:"reason"`
	Status    Status     `json:"status"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (a *Appointment) View(patient, doctor *User) AppointmentView {
	v := AppointmentView{
		ID:        a.ID.Hex(),
		Patient:   patient.Public(),
		Doctor:    doctor.Public(),
		Date:      a.Date,
		Time:      a.Time,
		Reason:    a.Reason,
		Status:    a.Status,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
	}
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		v.UpdatedAt = &t
	}
	return v
}
