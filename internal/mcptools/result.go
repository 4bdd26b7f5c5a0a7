package mcptools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vthunder/reminders-mcp/internal/reminders"
)

// jsonResult wraps a successful payload as an MCP text result.
func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s: marshal payload: %v", reminders.KindExecution, err))
	}
	return mcp.NewToolResultText(string(b))
}

// errorResult maps a backend error to an MCP error result. Recognized
// kinds already carry their name in the message; anything else is
// coerced to ExecutionError.
func errorResult(err error) *mcp.CallToolResult {
	var re *reminders.Error
	if errors.As(err, &re) {
		return mcp.NewToolResultError(re.Error())
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", reminders.KindExecution, err))
}

// validationResult reports a malformed tool request. Produced before any
// backend is reached.
func validationResult(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %s", reminders.KindValidation, msg))
}
