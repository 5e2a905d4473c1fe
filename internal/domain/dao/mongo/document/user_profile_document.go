package document

import "time"

// UserProfileDocument represents a contact profile in MongoDB, keyed by
// username with a lifecycle independent of the user record.
type UserProfileDocument struct {
	Username           string    `bson:"_id"`
	FirstName          string    `bson:"first_name,omitempty"`
	LastName           string    `bson:"last_name,omitempty"`
	Email              string    `bson:"email,omitempty"`
	PhoneNumber        string    `bson:"phone_number,omitempty"`
	TechnologyInterest string    `bson:"technology_interest,omitempty"`
	UpdatedAt          time.Time `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for profiles.
func (UserProfileDocument) CollectionName() string {
	return "user_profiles"
}
