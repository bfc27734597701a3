package health

// Response represents the health check response
type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type PingResponse struct {
	Message string `json:"message"`
}

const StatusHealthy = "healthy"
