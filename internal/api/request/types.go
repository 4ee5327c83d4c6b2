package request

// SetMaintenanceRequest is the request body for toggling maintenance mode
type SetMaintenanceRequest struct {
	Enabled bool `json:"enabled"`
}

// SetBanRequest is the request body for banning or unbanning a user
type SetBanRequest struct {
	Banned bool `json:"banned"`
}
