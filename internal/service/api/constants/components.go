package constants

// 로그의 component 필드 값입니다.
const (
	ComponentService      = "api.service"
	ComponentHandler      = "api.handler"
	ComponentMiddleware   = "api.middleware"
	ComponentErrorHandler = "api.error_handler"
)
