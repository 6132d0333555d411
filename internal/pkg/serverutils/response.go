package serverutils

// APIResponse is the uniform success envelope returned by every endpoint.
type APIResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// APIMessageResponse is used by endpoints that confirm an action without a payload.
type APIMessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// APIErrorResponse is the failure envelope written by the error handler middleware.
type APIErrorResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

func SuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Data:    data,
	}
}

func MessageResponse(message string) APIMessageResponse {
	return APIMessageResponse{
		Success: true,
		Message: message,
	}
}

func ErrorResponse(detail string) APIErrorResponse {
	return APIErrorResponse{
		Success: false,
		Detail:  detail,
	}
}
