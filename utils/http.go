package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ParseJSONResponse decodes the body of an HTTP response into a generic map.
// Responses with a 4xx/5xx status are returned as errors carrying the
// decoded body for diagnostics.
func ParseJSONResponse(res *http.Response) (map[string]interface{}, error) {
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	defer res.Body.Close()

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("API error (%d): %v", res.StatusCode, data)
	}

	return data, nil
}
