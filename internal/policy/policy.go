// Package policy holds the capability checks the handlers consult before
// touching a resource. Each check is a pure function of the caller's claims
// and the resource, so the rules stay in one place instead of being inlined
// per route.
package policy

import (
	"medical-booking-api/internal/auth"
	"medical-booking-api/internal/model"
)

// CanUpdateStatus allows only the doctor assigned to the appointment to
// change its status.
func CanUpdateStatus(caller *auth.Claims, a *model.Appointment) bool {
	return caller.Role == model.RoleDoctor && a.DoctorID.Hex() == caller.UserID
}

// CanView allows either party on the record to read it.
func CanView(caller *auth.Claims, a *model.Appointment) bool {
	switch caller.Role {
	case model.RolePatient:
		return a.PatientID.Hex() == caller.UserID
	case model.RoleDoctor:
		return a.DoctorID.Hex() == caller.UserID
	}
	return false
}
