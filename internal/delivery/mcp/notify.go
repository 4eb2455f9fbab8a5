package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// sessionNotifier adapts an MCP session into a Notifier. Notices become
// logging notifications on the session. Send failures are ignored; a notice
// is best effort and must not fail the tool call.
func sessionNotifier(ss *mcp.ServerSession) Notifier {
	if ss == nil {
		return nil
	}
	return func(ctx context.Context, level, message string) {
		_ = ss.Log(ctx, &mcp.LoggingMessageParams{
			Level:  mcp.LoggingLevel(level),
			Logger: "sessionize",
			Data:   message,
		})
	}
}
