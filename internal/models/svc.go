package models

import (
	"fmt"
	"regexp"
	"time"
)

// Svc is a service-credential record for an officer, distinct from the
// officer's user account.
type Svc struct {
	ID            string    `json:"_id"`
	OfficerSVC    string    `json:"officerSVC"`
	OfficerRank   string    `json:"officerRank"`
	PoliceStation string    `json:"policeStation"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SvcInput carries the user-editable fields of an SVC record for create,
// update, and bulk-create calls. The active flag and timestamps are owned by
// the server.
type SvcInput struct {
	OfficerSVC    string `json:"officerSVC"`
	OfficerRank   string `json:"officerRank"`
	PoliceStation string `json:"policeStation"`
}

// Ranks is the fixed set of officer grades an SVC record may carry.
var Ranks = []string{
	"Constable",
	"Sergeant",
	"Sub Inspector",
	"Inspector",
	"Chief Inspector",
	"Superintendent",
	"Assistant Superintendent",
	"Deputy Inspector General",
	"Inspector General",
}

// Stations is the fixed set of assignment locations.
var Stations = []string{
	"Colombo Central",
	"Kandy Central",
	"Galle Central",
	"Matara Central",
	"Kurunegala Central",
	"Anuradhapura Central",
	"Ratnapura Central",
	"Badulla Central",
}

// svcNumberRe matches a credential number: the literal prefix "SVC" followed
// by 3 to 6 digits.
var svcNumberRe = regexp.MustCompile(`^SVC\d{3,6}$`)

var (
	ErrInvalidSvcNumber = fmt.Errorf("SVC number must be \"SVC\" followed by 3-6 digits")
	ErrUnknownRank      = fmt.Errorf("unknown officer rank")
	ErrUnknownStation   = fmt.Errorf("unknown police station")
)

// ValidSvcNumber reports whether s is a well-formed credential number.
// Uniqueness is assumed, not checked here.
func ValidSvcNumber(s string) bool {
	return svcNumberRe.MatchString(s)
}

// ValidRank reports whether r is one of the fixed officer ranks.
func ValidRank(r string) bool {
	return contains(Ranks, r)
}

// ValidStation reports whether s is one of the fixed stations.
func ValidStation(s string) bool {
	return contains(Stations, s)
}

// Validate checks the input against entry-time rules: credential number
// format and enum membership of rank and station. The server does not
// re-validate; this is the only gate.
func (in SvcInput) Validate() error {
	if !ValidSvcNumber(in.OfficerSVC) {
		return fmt.Errorf("%q: %w", in.OfficerSVC, ErrInvalidSvcNumber)
	}
	if !ValidRank(in.OfficerRank) {
		return fmt.Errorf("%q: %w", in.OfficerRank, ErrUnknownRank)
	}
	if !ValidStation(in.PoliceStation) {
		return fmt.Errorf("%q: %w", in.PoliceStation, ErrUnknownStation)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
