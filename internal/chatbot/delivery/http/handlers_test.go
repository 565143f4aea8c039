package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"customer-support-chatbot/internal/analytics"
	"customer-support-chatbot/internal/chatbot"
	chatbotHTTP "customer-support-chatbot/internal/chatbot/delivery/http"
	"customer-support-chatbot/internal/model"
	"customer-support-chatbot/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	resolveOutput   chatbot.ResolveOutput
	resolveErr      error
	snapshot        analytics.Snapshot
	resetCalls      int
	exportPath      string
	exportErr       error
	sentimentOutput chatbot.SentimentOutput
	sentimentErr    error
	summaryOutput   chatbot.SummaryOutput
	summaryErr      error

	lastScope model.Scope
	lastInput chatbot.ResolveInput
}

func (m *mockUseCase) Resolve(ctx context.Context, sc model.Scope, input chatbot.ResolveInput) (chatbot.ResolveOutput, error) {
	m.lastScope = sc
	m.lastInput = input
	return m.resolveOutput, m.resolveErr
}

func (m *mockUseCase) Analytics(ctx context.Context) analytics.Snapshot { return m.snapshot }

func (m *mockUseCase) ResetAnalytics(ctx context.Context) { m.resetCalls++ }

func (m *mockUseCase) ExportConversations(ctx context.Context) (string, error) {
	return m.exportPath, m.exportErr
}

func (m *mockUseCase) ClearHistory(ctx context.Context) {}

func (m *mockUseCase) Sentiment(ctx context.Context, input chatbot.SentimentInput) (chatbot.SentimentOutput, error) {
	return m.sentimentOutput, m.sentimentErr
}

func (m *mockUseCase) Summary(ctx context.Context) (chatbot.SummaryOutput, error) {
	return m.summaryOutput, m.summaryErr
}

func newTestRouter(muc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := chatbotHTTP.New(&mockLogger{}, muc)
	chatbotHTTP.RegisterRoutes(engine.Group("/api/v1"), h)
	return engine
}

func doJSON(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBufferString(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResp(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not a valid envelope: %v", err)
	}
	return resp
}

func TestChat(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		muc := &mockUseCase{
			resolveOutput: chatbot.ResolveOutput{
				Text:         "Hi! Welcome to our customer support. How can I help you today?",
				Intent:       "greeting",
				Confidence:   0.33,
				Source:       model.SourceKeyword,
				ResponseTime: 20 * time.Millisecond,
			},
		}
		engine := newTestRouter(muc)

		w := doJSON(engine, http.MethodPost, "/api/v1/chat", `{"text": "hi", "session_id": "web_9"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		resp := decodeResp(t, w)
		data := resp.Data.(map[string]interface{})
		if data["text"] != muc.resolveOutput.Text {
			t.Errorf("unexpected text: %v", data["text"])
		}
		if data["intent"] != "greeting" || data["source"] != "keyword" {
			t.Errorf("unexpected provenance: %v", data)
		}
		if muc.lastScope.SessionID != "web_9" {
			t.Errorf("session not forwarded: %q", muc.lastScope.SessionID)
		}
		if !muc.lastInput.PreferGenerative {
			t.Error("prefer_generative should default to true")
		}
	})

	t.Run("Prefer Generative Opt Out", func(t *testing.T) {
		muc := &mockUseCase{}
		engine := newTestRouter(muc)

		doJSON(engine, http.MethodPost, "/api/v1/chat", `{"text": "hi", "prefer_generative": false}`)
		if muc.lastInput.PreferGenerative {
			t.Error("prefer_generative=false not honored")
		}
	})

	t.Run("Blank Text Reaches The Use Case", func(t *testing.T) {
		muc := &mockUseCase{
			resolveOutput: chatbot.ResolveOutput{
				Text:   "Please enter a message so I can help you!",
				Intent: "empty_input",
				Source: model.SourceGenericFallback,
			},
		}
		engine := newTestRouter(muc)

		w := doJSON(engine, http.MethodPost, "/api/v1/chat", `{"text": ""}`)
		if w.Code != http.StatusOK {
			t.Fatalf("blank text must not be a binding error, got %d", w.Code)
		}
	})

	t.Run("Malformed Body", func(t *testing.T) {
		engine := newTestRouter(&mockUseCase{})
		w := doJSON(engine, http.MethodPost, "/api/v1/chat", `{bad json`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Internal Error Is Masked", func(t *testing.T) {
		muc := &mockUseCase{resolveErr: errors.New("secret detail")}
		engine := newTestRouter(muc)

		w := doJSON(engine, http.MethodPost, "/api/v1/chat", `{"text": "hi"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "secret detail") {
			t.Error("internal error detail leaked to the client")
		}
	})
}

func TestAnalyticsEndpoints(t *testing.T) {
	t.Run("Snapshot", func(t *testing.T) {
		muc := &mockUseCase{snapshot: analytics.Snapshot{TotalRequests: 5, SuccessRate: 80}}
		engine := newTestRouter(muc)

		w := doJSON(engine, http.MethodGet, "/api/v1/analytics", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		resp := decodeResp(t, w)
		data := resp.Data.(map[string]interface{})
		if data["total_requests"].(float64) != 5 {
			t.Errorf("unexpected snapshot payload: %v", data)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		muc := &mockUseCase{}
		engine := newTestRouter(muc)

		w := doJSON(engine, http.MethodPost, "/api/v1/analytics/reset", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if muc.resetCalls != 1 {
			t.Errorf("expected 1 reset call, got %d", muc.resetCalls)
		}
	})

	t.Run("Export Success", func(t *testing.T) {
		muc := &mockUseCase{exportPath: "/data/conversations_20260827_101500.json"}
		engine := newTestRouter(muc)

		w := doJSON(engine, http.MethodPost, "/api/v1/analytics/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "conversations_20260827_101500.json") {
			t.Errorf("export path missing from response: %s", w.Body.String())
		}
	})

	t.Run("Export Failure", func(t *testing.T) {
		muc := &mockUseCase{exportErr: errors.New("disk full")}
		engine := newTestRouter(muc)

		w := doJSON(engine, http.MethodPost, "/api/v1/analytics/export", "")
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestSentimentEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		muc := &mockUseCase{sentimentOutput: chatbot.SentimentOutput{Sentiment: "positive", Confidence: 0.8}}
		engine := newTestRouter(muc)

		w := doJSON(engine, http.MethodPost, "/api/v1/sentiment", `{"text": "great service"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		resp := decodeResp(t, w)
		data := resp.Data.(map[string]interface{})
		if data["sentiment"] != "positive" {
			t.Errorf("unexpected payload: %v", data)
		}
	})

	t.Run("Missing Text", func(t *testing.T) {
		engine := newTestRouter(&mockUseCase{})
		w := doJSON(engine, http.MethodPost, "/api/v1/sentiment", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("No Provider", func(t *testing.T) {
		muc := &mockUseCase{sentimentErr: chatbot.ErrGenerativeDisabled}
		engine := newTestRouter(muc)

		w := doJSON(engine, http.MethodPost, "/api/v1/sentiment", `{"text": "great"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "generative provider") {
			t.Errorf("expected provider hint in message: %s", w.Body.String())
		}
	})
}

func TestSummaryEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		muc := &mockUseCase{summaryOutput: chatbot.SummaryOutput{Summary: "Customer asked about returns."}}
		engine := newTestRouter(muc)

		w := doJSON(engine, http.MethodGet, "/api/v1/summary", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Customer asked about returns.") {
			t.Errorf("summary missing: %s", w.Body.String())
		}
	})

	t.Run("No Provider", func(t *testing.T) {
		muc := &mockUseCase{summaryErr: chatbot.ErrGenerativeDisabled}
		engine := newTestRouter(muc)

		w := doJSON(engine, http.MethodGet, "/api/v1/summary", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
