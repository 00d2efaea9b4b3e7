package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createAnnouncementRequest struct {
	Title   string `json:"title"   validate:"required"`
	Message string `json:"message" validate:"required"`
}

type deletedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
