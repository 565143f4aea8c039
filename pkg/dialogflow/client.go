package dialogflow

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	dialogflow "google.golang.org/api/dialogflow/v2"
	"google.golang.org/api/option"
)

// Client wraps the Dialogflow ES agent sessions API.
type Client struct {
	service   *dialogflow.Service
	projectID string
}

// NewClientFromCredentialsFile creates a Dialogflow client from a Service
// Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, projectID, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, projectID, data)
}

// NewClientFromCredentialsJSON creates a Dialogflow client from raw Service
// Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, projectID string, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, dialogflow.DialogflowScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	svc, err := dialogflow.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create dialogflow service: %w", err)
	}
	return &Client{service: svc, projectID: projectID}, nil
}

// NewClientFromHTTP creates a Dialogflow client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, projectID string, httpClient *http.Client) (*Client, error) {
	svc, err := dialogflow.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create dialogflow service: %w", err)
	}
	return &Client{service: svc, projectID: projectID}, nil
}

// DetectIntent sends one text turn to the agent and returns the matched
// intent with the agent's fulfillment text.
func (c *Client) DetectIntent(ctx context.Context, req DetectIntentRequest) (*IntentResult, error) {
	lang := req.LanguageCode
	if lang == "" {
		lang = DefaultLanguageCode
	}

	session := fmt.Sprintf("projects/%s/agent/sessions/%s", c.projectID, req.SessionID)
	dfReq := &dialogflow.GoogleCloudDialogflowV2DetectIntentRequest{
		QueryInput: &dialogflow.GoogleCloudDialogflowV2QueryInput{
			Text: &dialogflow.GoogleCloudDialogflowV2TextInput{
				Text:         req.Text,
				LanguageCode: lang,
			},
		},
	}

	resp, err := c.service.Projects.Agent.Sessions.DetectIntent(session, dfReq).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to detect intent: %w", err)
	}

	result := &IntentResult{}
	if qr := resp.QueryResult; qr != nil {
		result.Confidence = qr.IntentDetectionConfidence
		result.FulfillmentText = qr.FulfillmentText
		if qr.Intent != nil {
			result.Intent = qr.Intent.DisplayName
			result.IsFallback = qr.Intent.IsFallback
		}
	}
	return result, nil
}
