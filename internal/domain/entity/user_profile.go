package entity

import "time"

// UserProfile holds free-form contact fields, independent of UserRecord.
// Every field is last-write-wins via a merge write.
type UserProfile struct {
	Username           string    `json:"username"`
	FirstName          string    `json:"firstName,omitempty"`
	LastName           string    `json:"lastName,omitempty"`
	Email              string    `json:"email,omitempty"`
	PhoneNumber        string    `json:"phoneNumber,omitempty"`
	TechnologyInterest string    `json:"technologyInterest,omitempty"`
	UpdatedAt          time.Time `json:"-"`
}
