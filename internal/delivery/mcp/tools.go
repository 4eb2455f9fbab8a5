package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EventParams carries the one argument shared by every tool. The eventId is
// optional whenever a default event is configured.
type EventParams struct {
	EventID string `json:"eventId,omitempty" jsonschema:"Sessionize event ID. Optional if SESSIONIZE_EVENT_ID is set."`
}

// FindSpeakerParams are the arguments of the findSpeaker tool.
type FindSpeakerParams struct {
	Name    string `json:"name" jsonschema:"Speaker name to search for"`
	EventID string `json:"eventId,omitempty" jsonschema:"Sessionize event ID. Optional if SESSIONIZE_EVENT_ID is set."`
}

// SpeakerSessionsParams are the arguments of the getSessionsBySpeaker tool.
type SpeakerSessionsParams struct {
	SpeakerName string `json:"speakerName" jsonschema:"Speaker name to search for"`
	EventID     string `json:"eventId,omitempty" jsonschema:"Sessionize event ID. Optional if SESSIONIZE_EVENT_ID is set."`
}

// FindSessionParams are the arguments of the findSession tool.
type FindSessionParams struct {
	Query   string `json:"query" jsonschema:"Text to search in session titles and descriptions"`
	EventID string `json:"eventId,omitempty" jsonschema:"Sessionize event ID. Optional if SESSIONIZE_EVENT_ID is set."`
}

// toCallResult converts a dispatcher Result into a tool call result with a
// single text content block.
func toCallResult(res Result) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: res.Text}},
		IsError: res.IsError,
	}
}

// AddTools registers the six Sessionize tools on the server, backed by d.
func AddTools(server *mcp.Server, d *Dispatcher) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "getSpeakers",
		Description: "List all speakers for a Sessionize event. " +
			"Returns speaker names, bios, taglines, and social links. " +
			"If eventId is not provided, uses the configured default event. " +
			"Use this when the user asks 'who are the speakers?' or 'show me all speakers'.",
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[EventParams]) (*mcp.CallToolResultFor[any], error) {
		return toCallResult(d.GetSpeakers(ctx, params.Arguments.EventID, sessionNotifier(ss))), nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name: "findSpeaker",
		Description: "Search for a speaker by name in a Sessionize event. " +
			"Returns matching speakers with full details including bio and social links. " +
			"Use this when the user asks about a specific speaker like 'find speaker John Doe' or 'tell me about speaker X'.",
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[FindSpeakerParams]) (*mcp.CallToolResultFor[any], error) {
		return toCallResult(d.FindSpeaker(ctx, params.Arguments.Name, params.Arguments.EventID, sessionNotifier(ss))), nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name: "getSessionsBySpeaker",
		Description: "Get all sessions for a specific speaker. " +
			"Returns the list of sessions the speaker is presenting. " +
			"Use this when the user asks 'what sessions does X have?' or 'what is speaker Y presenting?'.",
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[SpeakerSessionsParams]) (*mcp.CallToolResultFor[any], error) {
		return toCallResult(d.GetSessionsBySpeaker(ctx, params.Arguments.SpeakerName, params.Arguments.EventID, sessionNotifier(ss))), nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name: "getSessions",
		Description: "List all sessions for a Sessionize event. " +
			"Returns session titles, descriptions, speakers, and schedule information. " +
			"Use this when the user asks 'what sessions are available?' or 'show me all talks'.",
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[EventParams]) (*mcp.CallToolResultFor[any], error) {
		return toCallResult(d.GetSessions(ctx, params.Arguments.EventID, sessionNotifier(ss))), nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name: "findSession",
		Description: "Search sessions by title or description. " +
			"Returns matching sessions with full details. " +
			"Use this when the user asks to find sessions about a topic like 'find sessions about Kubernetes' or 'sessions on AI'.",
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[FindSessionParams]) (*mcp.CallToolResultFor[any], error) {
		return toCallResult(d.FindSession(ctx, params.Arguments.Query, params.Arguments.EventID, sessionNotifier(ss))), nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name: "getSchedule",
		Description: "Get the event schedule/agenda from Sessionize. " +
			"Returns the schedule organized by day and time slot. " +
			"Note: Schedule may be empty if the event hasn't configured session times. " +
			"Use this when the user asks 'what's the schedule?' or 'show me the agenda'.",
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[EventParams]) (*mcp.CallToolResultFor[any], error) {
		return toCallResult(d.GetSchedule(ctx, params.Arguments.EventID, sessionNotifier(ss))), nil
	})
}
