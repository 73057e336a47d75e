package flows

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/core/analytics"
	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/shared/validation"
)

const InsightsFlowName = "dashboard-insights"

const (
	maxTabTitleLen = 120
	maxQuestionLen = 500
	maxInsightKPIs = 20
	maxSummaryLen  = 2000
	maxHighlights  = 5
)

type InsightsInput struct {
	TabTitle string          `json:"tabTitle"`
	KPIs     []analytics.KPI `json:"kpis"`
	Question string          `json:"question,omitempty"`
}

type InsightsOutput struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

const insightsSystemPrompt = `You are a marketing analyst reviewing a dashboard tab.
Reply with JSON only, shaped as {"summary": string, "highlights": [string]}.
Keep highlights to at most 5 short sentences.`

// NewInsightsFlow summarises a set of KPIs into a short narrative
func NewInsightsFlow(model Model) Flow {
	return &definition[InsightsInput, InsightsOutput]{
		name:          InsightsFlowName,
		description:   "Summarise the KPIs of a dashboard tab into a short narrative with highlights",
		validateInput: validateInsightsInput,
		run: func(ctx context.Context, in InsightsInput) (InsightsOutput, error) {
			reply, err := model.GenerateResponse(ctx, insightsSystemPrompt, insightsPrompt(in))
			if err != nil {
				return InsightsOutput{}, err
			}
			return parseInsightsReply(reply)
		},
		validateOutput: validateInsightsOutput,
	}
}

func validateInsightsInput(in InsightsInput) []validation.FieldError {
	var c validation.Checker
	if c.Required("tabTitle", in.TabTitle) {
		c.Length("tabTitle", in.TabTitle, 1, maxTabTitleLen)
	}
	c.Count("kpis", len(in.KPIs), 1, maxInsightKPIs)
	for i, kpi := range in.KPIs {
		c.Required(fmt.Sprintf("kpis[%d].name", i), kpi.Name)
		c.Required(fmt.Sprintf("kpis[%d].value", i), kpi.Value)
	}
	c.Length("question", in.Question, 0, maxQuestionLen)
	return c.Errors()
}

func validateInsightsOutput(out InsightsOutput) []validation.FieldError {
	var c validation.Checker
	if c.Required("summary", out.Summary) {
		c.Length("summary", out.Summary, 1, maxSummaryLen)
	}
	c.Count("highlights", len(out.Highlights), 0, maxHighlights)
	for i, h := range out.Highlights {
		c.Required(fmt.Sprintf("highlights[%d]", i), h)
	}
	return c.Errors()
}

func insightsPrompt(in InsightsInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dashboard tab: %s\n", in.TabTitle)
	sb.WriteString("KPIs:\n")
	for _, kpi := range in.KPIs {
		fmt.Fprintf(&sb, "- %s: %s (trend %s)\n", kpi.Name, kpi.Value, kpi.Trend)
	}
	if q := strings.TrimSpace(in.Question); q != "" {
		fmt.Fprintf(&sb, "Question: %s\n", q)
	}
	return sb.String()
}

// parseInsightsReply accepts a bare JSON object or one wrapped in a markdown code fence
func parseInsightsReply(reply string) (InsightsOutput, error) {
	body := strings.TrimSpace(reply)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")

	var out InsightsOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(body)), &out); err != nil {
		return InsightsOutput{}, &OutputError{Flow: InsightsFlowName, Fields: []validation.FieldError{{
			Field:   "reply",
			Message: "model reply is not valid JSON",
		}}}
	}
	if out.Highlights == nil {
		out.Highlights = []string{}
	}
	return out, nil
}
