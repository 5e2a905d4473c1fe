package request

// UserProfileRequest carries registration-form fields. Only the username is
// required; everything else is merged into the stored profile when present.
type UserProfileRequest struct {
	Username           string `json:"username" binding:"required"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	PhoneNumber        string `json:"phoneNumber"`
	TechnologyInterest string `json:"technologyInterest"`
}
