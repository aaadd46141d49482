package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/healthify/healthify-api/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-diagnostic health telemetry assistant.

You receive aggregated vital-sign analytics for a single patient: a 30-day
trend window and a 7-day recent window. Each window may contain heart rate,
blood pressure, blood oxygen, sleep, hydration and step summaries; metrics
without data in a window are absent. Base your conclusions only on the
provided data.

Your goals:
- Summarize the patient's recent physiological state in clear, neutral language.
- Highlight values trending toward or away from healthy ranges.
- Compare the recent window against the longer trend window.
- Give practical lifestyle guidance grounded in the numbers.

Rules:
- Do NOT diagnose conditions or name diseases.
- Do NOT recommend medication or dosage changes.
- Flag concerning values as reasons to consult the assigned clinician.
- If data is sparse or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing overall state and notable changes.",
  "recommendations": ["3-5 concrete, non-medical lifestyle suggestions tied to the numbers."],
  "risk_factors": ["0-4 observed values or patterns that warrant clinician attention."],
  "trends": ["2-5 comparisons between the recent window and the longer trend window."]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this patient's analytics.

- "trend" covers roughly the last 30 days.
- "recent" covers roughly the last 7 days.
- Each metric block has daily aggregates plus an overall {min, max, avg}
  computed over every individual sample in the window.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM generates structured health insights from analytics windows.
type InsightsLLM interface {
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.HealthInsights, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates an OpenAI client. Returns nil when no API key is
// configured; callers treat a nil client as "insights unavailable".
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to generate health insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.HealthInsights, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.HealthInsights
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
