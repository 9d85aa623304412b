package api

const (
	codeInvalidRequest   = "invalid_request"
	codeInvalidItems     = "invalid_items"
	codeRequestTooLarge  = "request_too_large"
	codeNotFound         = "not_found"
	codeMethodNotAllowed = "method_not_allowed"
	codeRateLimited      = "rate_limited"
	codeInternal         = "internal_error"
)
