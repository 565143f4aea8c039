package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"customer-support-chatbot/internal/chatbot"
	"customer-support-chatbot/internal/intent"
	"customer-support-chatbot/internal/model"
)

const (
	emptyInputIntent   = "empty_input"
	emptyInputResponse = "Please enter a message so I can help you!"

	errorIntent   = "error"
	errorResponse = "I'm sorry, I encountered an error. Please try again."
)

// Resolve answers one user message. Stages are tried in order and each at
// most once: generative, corpus-enhanced, keyword, generic pool. Every
// outcome is recorded; an internal panic degrades to an apologetic reply
// instead of propagating to the delivery layer.
func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, input chatbot.ResolveInput) (out chatbot.ResolveOutput, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "chatbot.Resolve: recovered: %v", r)
			uc.recorder.RecordFailure()
			out = chatbot.ResolveOutput{
				Text:         errorResponse,
				Intent:       errorIntent,
				Source:       model.SourceGenericFallback,
				ResponseTime: time.Since(start),
			}
			err = nil
		}
	}()

	if strings.TrimSpace(input.Text) == "" {
		uc.recorder.RecordEmptyInput()
		out = chatbot.ResolveOutput{
			Text:         emptyInputResponse,
			Intent:       emptyInputIntent,
			Source:       model.SourceGenericFallback,
			ResponseTime: time.Since(start),
		}
		return out, nil
	}

	name, confidence := uc.classifier.Classify(input.Text)

	if input.PreferGenerative && uc.responder.Enabled() {
		hint := ""
		if name != intent.FallbackIntent {
			hint = name
		}
		if reply, replyErr := uc.responder.Reply(ctx, sc.Session(), input.Text, hint); replyErr == nil {
			out = chatbot.ResolveOutput{
				Text:         reply.Text,
				Intent:       fmt.Sprintf("%s_response", uc.responder.Provider()),
				Confidence:   reply.Confidence,
				Source:       model.SourceGenerative,
				Model:        uc.responder.Provider(),
				ResponseTime: time.Since(start),
			}
			uc.record(sc, input.Text, out)
			return out, nil
		}
		// Fall through; the responder already logged the cause.
	}

	if match, ok := uc.matcher.Match(input.Text); ok {
		out = chatbot.ResolveOutput{
			Text:         match.Response,
			Intent:       match.Intent,
			Confidence:   match.Confidence,
			Source:       model.SourceCorpusEnhanced,
			ResponseTime: time.Since(start),
		}
		uc.record(sc, input.Text, out)
		return out, nil
	}

	responses := uc.catalog.Responses(name)
	source := model.SourceKeyword
	if name == intent.FallbackIntent {
		responses = intent.FallbackResponses
		source = model.SourceGenericFallback
	}

	out = chatbot.ResolveOutput{
		Text:         responses[uc.pick(len(responses))],
		Intent:       name,
		Confidence:   confidence,
		Source:       source,
		ResponseTime: time.Since(start),
	}
	uc.record(sc, input.Text, out)
	return out, nil
}

func (uc *implUseCase) record(sc model.Scope, userInput string, out chatbot.ResolveOutput) {
	uc.recorder.Record(model.ConversationRecord{
		ID:           uuid.NewString(),
		Timestamp:    time.Now(),
		SessionID:    sc.Session(),
		Username:     sc.Username,
		UserInput:    userInput,
		Intent:       out.Intent,
		Response:     out.Text,
		Confidence:   out.Confidence,
		ResponseTime: out.ResponseTime,
		Source:       out.Source,
	})
}
