package system

// HealthResponse GET /health 응답
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
