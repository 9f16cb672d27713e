package responses

// ServiceInfo is the bare status payload returned when the reservation
// beacon endpoint is hit without a recognized action.
type ServiceInfo struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Usage   string `json:"usage"`
}
