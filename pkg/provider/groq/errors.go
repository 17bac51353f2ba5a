package groq

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Macmac87/ragfin1/pkg/api"
)

// mapHTTPError converts a non-2xx backend response into an APIError.
// Every upstream failure surfaces to the caller as a server error carrying
// the backend's message; the code records that the backend, not this
// service, failed.
func mapHTTPError(resp *http.Response) *api.APIError {
	message := extractErrorMessage(resp.Body)
	if message == "" {
		message = fmt.Sprintf("backend error (HTTP %d)", resp.StatusCode)
	}
	return api.NewProviderError(api.ErrorCodeUpstream, message)
}

// mapNetworkError converts a network-level error (connection refused,
// timeout, DNS resolution failure) into an APIError.
func mapNetworkError(err error) *api.APIError {
	return api.NewProviderError(api.ErrorCodeNetwork,
		fmt.Sprintf("backend connection error: %s", err.Error()))
}

// extractErrorMessage tries to parse the response body as a chatErrorResponse
// and returns the error message if found.
func extractErrorMessage(body io.Reader) string {
	if body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var errResp chatErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}

	return ""
}
