package missions

import (
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreSpiritualTaskIsGreen(t *testing.T) {
	analysis := ClassifyLocal("pray for guidance")
	mission := MissionContext{DayMission: "x", BigThree: []string{}, ImpactLevel: 5, TimeBudgetMinutes: 480}

	got := Score(analysis, mission)

	// delayCost = (6 - 9/2) + 4*0.3 = 2.7; drain = 7; oppLoss = 5*(1-0.9) = 0.5;
	// alignment = strategic value = 9; MKI = 2.7 + 7 + 0.5 - (9 + 9) = -7.8.
	if !almostEqual(got.MKI, -7.8) {
		t.Fatalf("MKI = %v, want -7.8", got.MKI)
	}
	if got.Severity != SeverityGreen {
		t.Fatalf("Severity = %q, want green", got.Severity)
	}
	if got.MissionKiller {
		t.Fatalf("MissionKiller = true, want false")
	}
	if len(got.ScriptureRefs) != 1 || got.ScriptureRefs[0] != "Colossians 3:23" {
		t.Fatalf("ScriptureRefs = %v", got.ScriptureRefs)
	}
}

func TestScoreDistractionIsRed(t *testing.T) {
	analysis := ClassifyLocal("scroll social media")
	mission := MissionContext{DayMission: "x", BigThree: []string{}, ImpactLevel: 5, TimeBudgetMinutes: 480}

	got := Score(analysis, mission)

	// delayCost = 9 + 1.2 = 10.2; drain = 8; oppLoss = 5*0.8 = 4;
	// MKI = 10.2 + 8 + 4 - (2 + 2) = 18.2.
	if !almostEqual(got.MKI, 18.2) {
		t.Fatalf("MKI = %v, want 18.2", got.MKI)
	}
	if got.Severity != SeverityRed {
		t.Fatalf("Severity = %q, want red", got.Severity)
	}
	if !got.MissionKiller {
		t.Fatalf("MissionKiller = false, want true")
	}
	if len(got.ScriptureRefs) != 2 {
		t.Fatalf("ScriptureRefs = %v, want 2 refs", got.ScriptureRefs)
	}
}

func TestScoreBigThreeAlignment(t *testing.T) {
	analysis := TaskAnalysis{
		Type:            CategoryAdmin,
		Urgency:         UrgencyMedium,
		EmotionalWeight: 4,
		StrategicValue:  5,
		ShortSummary:    "finish report",
	}
	mission := MissionContext{BigThree: []string{"finish report"}, ImpactLevel: 5}

	aligned := Score(analysis, mission)
	unaligned := Score(analysis, MissionContext{BigThree: []string{"ship the release"}, ImpactLevel: 5})

	// Alignment bumps alignmentScore from strategic value (5) to 9, lowering
	// MKI by exactly 4.
	if !almostEqual(unaligned.MKI-aligned.MKI, 4) {
		t.Fatalf("alignment delta = %v, want 4", unaligned.MKI-aligned.MKI)
	}
}

func TestAlignedWithBigThree(t *testing.T) {
	tests := []struct {
		name     string
		summary  string
		bigThree []string
		want     bool
	}{
		{name: "exact match", summary: "finish report", bigThree: []string{"finish report"}, want: true},
		{name: "summary contains entry", summary: "finish report for q3", bigThree: []string{"report"}, want: true},
		{name: "entry contains summary", summary: "report", bigThree: []string{"finish the quarterly report"}, want: true},
		{name: "case insensitive", summary: "Finish Report", bigThree: []string{"FINISH REPORT"}, want: true},
		{name: "no match", summary: "water the plants", bigThree: []string{"finish report"}, want: false},
		{name: "empty big three", summary: "finish report", bigThree: nil, want: false},
		{name: "later entry matches", summary: "call investors", bigThree: []string{"ship release", "call investors"}, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := alignedWithBigThree(tt.summary, tt.bigThree); got != tt.want {
				t.Fatalf("alignedWithBigThree(%q, %v) = %v, want %v", tt.summary, tt.bigThree, got, tt.want)
			}
		})
	}
}

func TestScoreSeverityThresholds(t *testing.T) {
	// Sweep analyses/contexts and assert the tier invariants hold for every
	// computed MKI.
	categories := []string{CategorySpiritual, CategoryAdmin, CategoryDistraction, CategoryOpportunity, CategoryOther}
	urgencies := []string{UrgencyLow, UrgencyMedium, UrgencyHigh}
	for _, category := range categories {
		for _, urgency := range urgencies {
			for weight := 1; weight <= 10; weight += 3 {
				for value := 1; value <= 10; value += 3 {
					for impact := 1; impact <= 10; impact += 3 {
						analysis := TaskAnalysis{
							Type:            category,
							Urgency:         urgency,
							EmotionalWeight: weight,
							StrategicValue:  value,
							ShortSummary:    "sweep",
						}
						got := Score(analysis, MissionContext{ImpactLevel: impact})

						wantKiller := got.MKI >= 4
						if got.MissionKiller != wantKiller {
							t.Fatalf("MissionKiller = %v for MKI %v", got.MissionKiller, got.MKI)
						}
						var wantSeverity string
						switch {
						case got.MKI >= 8:
							wantSeverity = SeverityRed
						case got.MKI >= 4:
							wantSeverity = SeverityYellow
						default:
							wantSeverity = SeverityGreen
						}
						if got.Severity != wantSeverity {
							t.Fatalf("Severity = %q for MKI %v, want %q", got.Severity, got.MKI, wantSeverity)
						}
						if got.Reason == "" || got.Recommendation == "" || len(got.ScriptureRefs) == 0 {
							t.Fatalf("missing tier text for severity %q", got.Severity)
						}
					}
				}
			}
		}
	}
}

func TestScoreIsPure(t *testing.T) {
	analysis := TaskAnalysis{
		Type:            CategoryOpportunity,
		Urgency:         UrgencyHigh,
		EmotionalWeight: 6,
		StrategicValue:  8,
		ShortSummary:    "prepare the pitch",
	}
	mission := MissionContext{
		DayMission:        "close the round",
		BigThree:          []string{"prepare the pitch", "call investors"},
		ImpactLevel:       9,
		TimeBudgetMinutes: 300,
	}

	first := Score(analysis, mission)
	second := Score(analysis, mission)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Score not pure: %+v vs %+v", first, second)
	}
}

func TestScoreIgnoresTimeBudget(t *testing.T) {
	analysis := ClassifyLocal("pay invoice")
	base := Score(analysis, MissionContext{ImpactLevel: 5, TimeBudgetMinutes: 0})
	other := Score(analysis, MissionContext{ImpactLevel: 5, TimeBudgetMinutes: 480})
	if !reflect.DeepEqual(base, other) {
		t.Fatalf("TimeBudgetMinutes affected scoring: %+v vs %+v", base, other)
	}
}
