package models

import "time"

// MarkEvent describes one successful attendance mark.
type MarkEvent struct {
	USN      string    `json:"usn"`
	Date     string    `json:"date"`
	Slot     string    `json:"slot"`
	Status   string    `json:"status"`
	MarkedAt time.Time `json:"markedAt"`
}
