package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// userPrompt wraps text in a single user-role prompt message.
func userPrompt(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: text}},
		},
	}
}

// AddPrompts registers prompt templates that guide agents and users through
// common event questions.
func AddPrompts(server *mcp.Server) {
	server.AddPrompt(&mcp.Prompt{
		Name:        "event_overview",
		Description: "Get an overview of a conference event including speakers and sessions count",
		Arguments: []*mcp.PromptArgument{
			{Name: "eventId", Description: "Sessionize event ID (optional if default is configured)"},
		},
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.GetPromptParams) (*mcp.GetPromptResult, error) {
		eventID := params.Arguments["eventId"]
		if isBlank(eventID) {
			return userPrompt("Event overview",
				"Give me an overview of the conference. List how many speakers and sessions there are, and highlight any notable topics."), nil
		}
		return userPrompt("Event overview",
			fmt.Sprintf("Give me an overview of the conference with event ID '%s'. List how many speakers and sessions there are, and highlight any notable topics.", eventID)), nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "find_speaker_info",
		Description: "Find detailed information about a specific speaker",
		Arguments: []*mcp.PromptArgument{
			{Name: "speakerName", Description: "Name of the speaker to search for", Required: true},
		},
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.GetPromptParams) (*mcp.GetPromptResult, error) {
		return userPrompt("Speaker details",
			fmt.Sprintf("Find information about the speaker '%s'. Include their bio, tagline, social links, and what sessions they are presenting.", params.Arguments["speakerName"])), nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "sessions_by_topic",
		Description: "Find all sessions related to a specific topic or technology",
		Arguments: []*mcp.PromptArgument{
			{Name: "topic", Description: "Topic or technology to search for (e.g., Kubernetes, AI, Java)", Required: true},
		},
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.GetPromptParams) (*mcp.GetPromptResult, error) {
		return userPrompt("Sessions by topic",
			fmt.Sprintf("Find all sessions about '%s'. For each session, show the title, speakers, time, and a brief description.", params.Arguments["topic"])), nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "conference_schedule",
		Description: "Get the full conference schedule organized by day and time",
		Arguments: []*mcp.PromptArgument{
			{Name: "day", Description: "Specific day to filter (optional, leave empty for full schedule)"},
		},
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.GetPromptParams) (*mcp.GetPromptResult, error) {
		day := params.Arguments["day"]
		if isBlank(day) {
			return userPrompt("Conference schedule",
				"Show me the full conference schedule organized by day and time slot. Include room information and session titles."), nil
		}
		return userPrompt("Conference schedule",
			fmt.Sprintf("Show me the conference schedule for %s. Include room information, time slots, and session titles.", day)), nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "speaker_sessions",
		Description: "List all sessions being presented by a specific speaker",
		Arguments: []*mcp.PromptArgument{
			{Name: "speakerName", Description: "Name of the speaker", Required: true},
		},
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.GetPromptParams) (*mcp.GetPromptResult, error) {
		return userPrompt("Sessions by speaker",
			fmt.Sprintf("What sessions is '%s' presenting at the conference? Include the session titles, times, and rooms.", params.Arguments["speakerName"])), nil
	})

	server.AddPrompt(&mcp.Prompt{
		Name:        "recommend_sessions",
		Description: "Get session recommendations based on interests",
		Arguments: []*mcp.PromptArgument{
			{Name: "interests", Description: "Your interests or technologies (e.g., 'cloud native, security, DevOps')", Required: true},
		},
	}, func(ctx context.Context, ss *mcp.ServerSession, params *mcp.GetPromptParams) (*mcp.GetPromptResult, error) {
		return userPrompt("Session recommendations",
			fmt.Sprintf("Based on my interests in %s, recommend sessions I should attend at this conference. Explain why each session would be relevant.", params.Arguments["interests"])), nil
	})
}
