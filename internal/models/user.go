package models

import "time"

// User is a personnel account as delivered by the backend. The identifier is
// server-assigned and opaque; records are immutable on the client except
// through explicit mutation calls followed by a full refetch.
type User struct {
	ID            string    `json:"_id"`
	FullName      string    `json:"fullName"`
	OfficerSVC    string    `json:"officerSVC"`
	OfficerRank   string    `json:"officerRank"`
	PoliceStation string    `json:"policeStation"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"createdAt"`
}
