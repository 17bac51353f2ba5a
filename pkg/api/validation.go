package api

import "strings"

// ValidateQueryRequest checks a QueryRequest for validity. It returns an
// *APIError describing the first validation failure, or nil if the request
// is valid. Only the shape is checked: the question must be present and
// non-blank. The context, when supplied, is opaque and never validated.
func ValidateQueryRequest(req *QueryRequest) *APIError {
	if strings.TrimSpace(req.Question) == "" {
		return NewInvalidRequestError("question", "question is required")
	}
	return nil
}
