package missions

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/sedrickwall/AlignedAI-sub000/internal/llm"
)

const defaultWeight = 5

// ClassifyOutcome reports whether the remote strategy produced a usable
// analysis. Unavailable is the expected case (no credential, transport
// failure, garbage reply) and is never an error.
type ClassifyOutcome struct {
	Analysis TaskAnalysis
	OK       bool
	Reason   string
}

func unavailable(reason string) ClassifyOutcome {
	return ClassifyOutcome{Reason: reason}
}

// ClassifyRemote asks the LLM to classify the task and coerces whatever comes
// back into a valid TaskAnalysis. No untyped payload escapes this boundary:
// every field is defaulted or clamped before the outcome is returned.
func ClassifyRemote(ctx context.Context, client llm.Client, taskText string) ClassifyOutcome {
	if client == nil {
		return unavailable("no client")
	}

	raw, err := client.ClassifyTask(ctx, taskText)
	if err != nil {
		return unavailable(err.Error())
	}

	obj, ok := extractJSONObject(string(raw))
	if !ok {
		return unavailable("no JSON object in reply")
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(obj), &fields); err != nil {
		return unavailable("reply JSON malformed: " + err.Error())
	}

	return ClassifyOutcome{
		Analysis: coerceAnalysis(fields, taskText),
		OK:       true,
	}
}

// extractJSONObject returns the first balanced {...} object found in text.
// Models wrap JSON in prose often enough that a plain unmarshal is not safe.
func extractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

func coerceAnalysis(fields map[string]any, taskText string) TaskAnalysis {
	return TaskAnalysis{
		Type:            normalizeCategory(stringField(fields, "type")),
		Urgency:         normalizeUrgency(stringField(fields, "urgency")),
		EmotionalWeight: clampWeight(numberField(fields, "emotional_weight")),
		StrategicValue:  clampWeight(numberField(fields, "strategic_value")),
		ShortSummary:    fallbackString(stringField(fields, "short_summary"), taskText),
	}
}

func normalizeCategory(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case CategoryErrand, CategoryAdmin, CategoryRelationship, CategoryMoney,
		CategoryHealth, CategorySpiritual, CategoryDistraction,
		CategoryMaintenance, CategoryOpportunity:
		return strings.ToLower(strings.TrimSpace(value))
	default:
		return CategoryOther
	}
}

func normalizeUrgency(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case UrgencyLow, UrgencyHigh:
		return strings.ToLower(strings.TrimSpace(value))
	default:
		return UrgencyMedium
	}
}

func clampWeight(value int) int {
	if value < 1 {
		return 1
	}
	if value > 10 {
		return 10
	}
	return value
}

func stringField(fields map[string]any, key string) string {
	if s, ok := fields[key].(string); ok {
		return s
	}
	return ""
}

// numberField reads a numeric field, accepting JSON numbers and numeric
// strings. Anything else falls back to the default weight.
func numberField(fields map[string]any, key string) int {
	switch raw := fields[key].(type) {
	case float64:
		return int(raw)
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return int(parsed)
		}
		return defaultWeight
	default:
		return defaultWeight
	}
}

func fallbackString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
