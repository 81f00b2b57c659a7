package utils

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-openlibrary/pkg/openlibrary"
)

func missing(key string) error {
	return &openlibrary.ValidationError{Field: key, Reason: "is required"}
}

// GetStringParam safely extracts a string parameter from the request
func GetStringParam(req mcp.CallToolRequest, key string, required bool) (string, error) {
	val, exists := req.GetArguments()[key]
	if !exists || val == nil {
		if required {
			return "", missing(key)
		}
		return "", nil
	}

	str, ok := val.(string)
	if !ok {
		return "", &openlibrary.ValidationError{Field: key, Reason: "must be a string"}
	}

	return str, nil
}

// GetRequiredStringParam is a shorthand for GetStringParam with required=true
func GetRequiredStringParam(req mcp.CallToolRequest, key string) (string, error) {
	return GetStringParam(req, key, true)
}

// GetStringParamOrDefault returns fallback when the parameter is absent
func GetStringParamOrDefault(req mcp.CallToolRequest, key string, fallback string) (string, error) {
	if !HasParam(req, key) {
		return fallback, nil
	}
	return GetStringParam(req, key, false)
}

// GetIntParamOrDefault extracts a whole number parameter, returning fallback
// when it is absent. Fractional numbers are rejected rather than truncated.
func GetIntParamOrDefault(req mcp.CallToolRequest, key string, fallback int) (int, error) {
	if !HasParam(req, key) {
		return fallback, nil
	}

	var f float64
	switch v := req.GetArguments()[key].(type) {
	case float64:
		f = v
	case int:
		return v, nil
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, &openlibrary.ValidationError{Field: key, Reason: "must be a number"}
		}
		f = parsed
	default:
		return 0, &openlibrary.ValidationError{Field: key, Reason: "must be a number"}
	}

	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, &openlibrary.ValidationError{Field: key, Reason: fmt.Sprintf("must be a whole number, got %v", f)}
	}

	return int(f), nil
}

// HasParam reports whether the parameter was supplied with a non-null value
func HasParam(req mcp.CallToolRequest, key string) bool {
	val, exists := req.GetArguments()[key]
	return exists && val != nil
}

// HandleParameterError returns a properly formatted error response for parameter validation errors
func HandleParameterError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}
