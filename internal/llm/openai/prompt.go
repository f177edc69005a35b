package openai

import "fmt"

const systemPrompt = "You classify personal tasks. Respond with a single JSON object and nothing else."

// BuildClassifyPrompt renders the user message asking the model to classify
// one task into the fixed category/urgency scheme.
func BuildClassifyPrompt(taskText string) string {
	return fmt.Sprintf(`Classify the following task.

Task: %q

Return exactly one JSON object with these fields:
- "short_summary": short description of the task
- "type": one of "errand", "admin", "relationship", "money", "health", "spiritual", "distraction", "maintenance", "opportunity", "other"
- "urgency": one of "low", "medium", "high"
- "emotional_weight": integer 1-10, how emotionally heavy the task feels
- "strategic_value": integer 1-10, how much the task advances long-term goals`, taskText)
}
