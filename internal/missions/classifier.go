package missions

import "strings"

// categoryKeywords maps a category to representative keywords. Slice order is
// load-bearing: the first category with a substring hit wins, so a task
// mentioning both prayer and the gym classifies as spiritual.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategorySpiritual, []string{"pray", "bible", "church", "worship", "devotion", "fast", "scripture", "sermon"}},
	{CategoryRelationship, []string{"call", "meet", "visit", "family", "wife", "husband", "friend", "kids", "dinner with", "date"}},
	{CategoryHealth, []string{"gym", "workout", "run", "doctor", "dentist", "exercise", "walk", "sleep"}},
	{CategoryMoney, []string{"pay", "invoice", "budget", "bank", "invest", "tax", "bill", "salary"}},
	{CategoryAdmin, []string{"email", "form", "paperwork", "schedule", "register", "renew", "file", "print"}},
	{CategoryErrand, []string{"buy", "pick up", "grocery", "store", "drop off", "shopping", "return"}},
	{CategoryOpportunity, []string{"pitch", "interview", "apply", "proposal", "network", "launch", "partnership"}},
	{CategoryDistraction, []string{"scroll", "social media", "youtube", "netflix", "game", "browse", "tiktok", "instagram"}},
	{CategoryMaintenance, []string{"clean", "fix", "repair", "organize", "laundry", "mow", "wash"}},
}

var urgentKeywords = []string{"urgent", "asap", "now", "today", "deadline", "emergency", "immediately", "critical"}

var lowUrgencyKeywords = []string{"someday", "whenever", "maybe", "eventually", "later"}

// strategicValueByCategory is the fixed strategic-value lookup table.
var strategicValueByCategory = map[string]int{
	CategorySpiritual:    9,
	CategoryRelationship: 8,
	CategoryOpportunity:  8,
	CategoryHealth:       7,
	CategoryMoney:        6,
	CategoryAdmin:        5,
	CategoryErrand:       4,
	CategoryMaintenance:  4,
	CategoryDistraction:  2,
	CategoryOther:        5,
}

// ClassifyLocal derives a TaskAnalysis from keyword rules alone. It is total
// over all inputs and fully deterministic; the pipeline uses it whenever the
// remote classifier is unavailable.
func ClassifyLocal(taskText string) TaskAnalysis {
	lowered := strings.ToLower(taskText)

	category := CategoryOther
	for _, entry := range categoryKeywords {
		if containsAny(lowered, entry.keywords) {
			category = entry.category
			break
		}
	}

	urgency := UrgencyMedium
	switch {
	case containsAny(lowered, urgentKeywords):
		urgency = UrgencyHigh
	case containsAny(lowered, lowUrgencyKeywords):
		urgency = UrgencyLow
	}

	return TaskAnalysis{
		Type:            category,
		Urgency:         urgency,
		EmotionalWeight: emotionalWeightFor(category),
		StrategicValue:  strategicValueByCategory[category],
		ShortSummary:    taskText,
	}
}

func emotionalWeightFor(category string) int {
	switch category {
	case CategoryDistraction:
		return 8
	case CategoryRelationship, CategorySpiritual, CategoryHealth:
		return 7
	default:
		return 4
	}
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
