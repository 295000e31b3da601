// Package agent implements the interactive AI assistant over a portfolio
// analysis report.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Analyst represents a chat with the portfolio analyst.
//
// The analyst is grounded on the rendered analysis report, passed as part of
// its system instruction, so every answer refers to the user's actual
// holdings rather than generic advice.
type Analyst struct {
	ModelName string                       `json:"model_name"`
	Config    *genai.GenerateContentConfig `json:"config"`
	chat      *genai.Chat
}

// NewAnalyst creates the analyst for the given markdown report.
func NewAnalyst(report string) *Analyst {
	return &Analyst{
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a mutual fund portfolio analyst. The user's full portfolio
			analysis report is included below. Answer questions about their
			holdings, allocation, benchmark comparison, consolidation plan and
			health score using ONLY the figures in the report.

			Be direct and concrete, quote the relevant numbers, and say so when
			the report does not contain the answer. Never invent holdings or
			figures that are not in the report.

			--- PORTFOLIO ANALYSIS REPORT ---

			` + report}}},
		},
	}
}

func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.ModelName, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send to make it simpler for callers.
func (a *Analyst) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content, nil
}
