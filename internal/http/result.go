package httpapi

// Error responses carry the storage engine's message verbatim; there is no
// finer-grained error taxonomy at this layer.
type errorResponse struct {
	Error string `json:"error"`
}

// Mutations that return no record acknowledge with {"success": true}.
// Zero-row updates and deletes acknowledge the same way.
type successResponse struct {
	Success bool `json:"success"`
}

func fail(message string) errorResponse {
	return errorResponse{Error: message}
}

func ok() successResponse {
	return successResponse{Success: true}
}
