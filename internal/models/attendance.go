package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// Attendance is one student's record for one calendar day. Slots maps a
// slot id such as "9-11" to StatusPresent or StatusAbsent.
type Attendance struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	USN   string             `bson:"usn" json:"usn"`
	Date  string             `bson:"date" json:"date"`
	Slots map[string]string  `bson:"slots" json:"slots"`
}

func StatusFor(present bool) string {
	if present {
		return StatusPresent
	}
	return StatusAbsent
}
