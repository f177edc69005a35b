package missions

import "strings"

// Fixed per-severity texts and citations.
var severityTexts = map[string]struct {
	reason         string
	recommendation string
	scriptureRefs  []string
}{
	SeverityRed: {
		reason:         "This task significantly pulls you away from today's assignment and likely reduces Kingdom impact.",
		recommendation: "Defer, delegate, or drop this. Protect your mission and focus on your Big 3.",
		scriptureRefs:  []string{"Luke 10:38-42", "Ephesians 5:15-16"},
	},
	SeverityYellow: {
		reason:         "This task could be good, but may compete with your main assignment. Use discernment.",
		recommendation: "Consider doing this only after your Big 3 are complete, or shrinking its scope.",
		scriptureRefs:  []string{"1 Corinthians 10:23", "Proverbs 4:25-27"},
	},
	SeverityGreen: {
		reason:         "This task aligns well with your mission or has manageable cost.",
		recommendation: "Proceed with peace. Schedule it in a realistic slot.",
		scriptureRefs:  []string{"Colossians 3:23"},
	},
}

// Score computes the Mission-Killer Index for an analysis against the
// mission context. Pure and deterministic: identical inputs always yield
// identical output. Inputs are assumed already clamped by the classifier.
func Score(analysis TaskAnalysis, mission MissionContext) MissionEvaluation {
	urgencyScore := urgencyScoreFor(analysis.Urgency)

	alignmentScore := float64(analysis.StrategicValue)
	if alignedWithBigThree(analysis.ShortSummary, mission.BigThree) {
		alignmentScore = 9
	}

	var delayCostBase float64
	switch analysis.Type {
	case CategoryDistraction:
		delayCostBase = 9
	case CategoryOpportunity:
		delayCostBase = 4
	default:
		delayCostBase = 6 - float64(analysis.StrategicValue)/2
	}
	delayCost := delayCostBase + urgencyScore*0.3

	drain := float64(analysis.EmotionalWeight)
	if analysis.EmotionalWeight < 7 {
		drain = float64(analysis.EmotionalWeight) * 0.7
	}

	oppLoss := float64(mission.ImpactLevel) * (1 - float64(analysis.StrategicValue)/10)

	mki := delayCost + drain + oppLoss - (alignmentScore + float64(analysis.StrategicValue))

	severity := SeverityGreen
	switch {
	case mki >= 8:
		severity = SeverityRed
	case mki >= 4:
		severity = SeverityYellow
	}

	texts := severityTexts[severity]
	return MissionEvaluation{
		MKI:            mki,
		MissionKiller:  mki >= 4,
		Severity:       severity,
		Reason:         texts.reason,
		Recommendation: texts.recommendation,
		ScriptureRefs:  texts.scriptureRefs,
	}
}

func urgencyScoreFor(urgency string) float64 {
	switch urgency {
	case UrgencyHigh:
		return 7
	case UrgencyLow:
		return 2
	default:
		return 4
	}
}

// alignedWithBigThree does a loose bidirectional substring check between the
// summary and each priority. Intentionally loose: a fuzzier or token-level
// match would change scored outcomes.
func alignedWithBigThree(summary string, bigThree []string) bool {
	loweredSummary := strings.ToLower(summary)
	for _, entry := range bigThree {
		loweredEntry := strings.ToLower(entry)
		if strings.Contains(loweredSummary, loweredEntry) || strings.Contains(loweredEntry, loweredSummary) {
			return true
		}
	}
	return false
}
