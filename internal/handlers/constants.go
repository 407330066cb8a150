package handlers

// Common error message constants shared across handlers
const (
	ErrMsgInvalidRequestBody = "Invalid request body"
	ErrMsgInvalidJobID       = "Invalid job opening ID"
	ErrMsgJobNotFound        = "Job opening not found"
	ErrMsgUserNotFound       = "User not found"
	ErrMsgUnauthorized       = "Unauthorized"
	ErrMsgPermissionDenied   = "Insufficient permissions"
)
