package service

import (
	"context"
	"errors"
	"log"

	"folio/internal/domain"
	"folio/internal/port"
	"folio/internal/prompt"
	"folio/internal/structured"
)

// ChatApology is the fixed reply for any chat failure. The conversational
// endpoints never surface raw errors to the frontend.
const ChatApology = "Sorry, something went wrong while generating a response. Please try again."

// ChatService covers the conversational flows: bulk interview-answer drafting
// and the coach/docent chat personas.
type ChatService interface {
	// GenerateAnswers drafts the twelve interview answers from the portfolio
	// context. It returns the backfilled answer object, or a tagged map with
	// an "error" key (plus "raw_content" when the model replied but no JSON
	// could be read from it).
	GenerateAnswers(ctx context.Context, portfolioContext string) map[string]any

	// Chat answers one free-form message. isShared selects the persona:
	// false is the owner-facing coach, true the recruiter-facing docent.
	// Any failure yields the fixed apology reply, never an error.
	Chat(ctx context.Context, message, portfolioContext string, isShared bool) string
}

type chatService struct {
	model port.ChatModel
	usage UsageRecorder
}

// NewChatService creates a ChatService.
func NewChatService(model port.ChatModel, usage UsageRecorder) ChatService {
	return &chatService{model: model, usage: usage}
}

func (s *chatService) GenerateAnswers(ctx context.Context, portfolioContext string) map[string]any {
	s.usage.Record(ctx, domain.PromptTypeChatAnswers)

	resp, err := s.model.Invoke(ctx, prompt.ChatAnswers(portfolioContext))
	if err != nil {
		log.Printf("chatService.GenerateAnswers: model invocation failed: %v", err)
		return map[string]any{"error": invocationMessage(err)}
	}

	text := structured.NormalizeToText(resp.Content)
	obj, err := structured.ExtractObject(text)
	if err != nil {
		log.Printf("chatService.GenerateAnswers: %v", err)
		result := map[string]any{"error": "Could not read structured answers from the AI response."}
		var pf *structured.ParseFailure
		if errors.As(err, &pf) {
			result["raw_content"] = pf.RawText
		}
		return result
	}

	return structured.BackfillAnswers(obj)
}

func (s *chatService) Chat(ctx context.Context, message, portfolioContext string, isShared bool) string {
	var payload domain.PromptPayload
	if isShared {
		s.usage.Record(ctx, domain.PromptTypeDocent)
		payload = prompt.Docent(message, portfolioContext)
	} else {
		s.usage.Record(ctx, domain.PromptTypeCoach)
		payload = prompt.Coach(message, portfolioContext)
	}

	resp, err := s.model.Invoke(ctx, payload)
	if err != nil {
		log.Printf("chatService.Chat: model invocation failed (shared=%t): %v", isShared, err)
		return ChatApology
	}

	reply := structured.NormalizeToText(resp.Content)
	if reply == "" {
		log.Printf("chatService.Chat: empty reply from model (shared=%t)", isShared)
		return ChatApology
	}
	return reply
}
