package models

// APIResponse is the only body shape the intake endpoint returns.
type APIResponse struct {
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
}

func Success(message string) APIResponse {
	return APIResponse{IsSuccess: true, Message: message}
}

func Failure(message string) APIResponse {
	return APIResponse{IsSuccess: false, Message: message}
}
