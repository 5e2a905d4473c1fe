package response

// ConfigResponse exposes the public client configuration the browser needs
// to start the Google sign-in flow.
type ConfigResponse struct {
	ClientID string `json:"clientId"`
}

// StoreTestResponse reports the result of the store diagnostic round trip.
type StoreTestResponse struct {
	Connected   bool   `json:"connected"`
	RoundTrip   bool   `json:"roundTrip"`
	Environment string `json:"environment"`
	Database    string `json:"database"`
	Error       string `json:"error,omitempty"`
}
