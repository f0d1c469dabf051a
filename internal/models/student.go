package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names match the columns of the bulk student import.
const (
	StudentFieldUSN   = "Student USN"
	StudentFieldName  = "Student Name"
	StudentFieldPhone = "Student Phone Number"
	StudentFieldEmail = "Student Email Address"
)

type Student struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	USN   string             `bson:"Student USN" json:"usn"`
	Name  string             `bson:"Student Name" json:"name"`
	Phone string             `bson:"Student Phone Number,omitempty" json:"phone,omitempty"`
	Email string             `bson:"Student Email Address,omitempty" json:"email,omitempty"`
}

type StudentSummary struct {
	USN  string `bson:"Student USN" json:"usn"`
	Name string `bson:"Student Name" json:"name"`
}
