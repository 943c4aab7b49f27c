package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"gitlab.com/tozd/go/errors"
)

// decode unmarshals MCP request arguments into a typed struct.
// Avoids unsafe type assertions and handles JSON decoding safely.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var result T
	b, err := json.Marshal(req.GetArguments())
	if err != nil {
		return result, errors.Errorf("marshal args: %w", err)
	}
	if err := json.Unmarshal(b, &result); err != nil {
		return result, errors.Errorf("unmarshal args: %w", err)
	}
	return result, nil
}
