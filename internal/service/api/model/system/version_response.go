package system

// VersionResponse GET /v1 응답
type VersionResponse struct {
	// Version API 버전
	Version string `json:"version" example:"1.0.0"`

	// Description API 설명
	Description string `json:"description" example:"aca cloud engineering deep dive api"`
}
