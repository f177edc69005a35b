package missions

// Task categories produced by classification. The set is closed; anything
// unrecognized maps to CategoryOther.
const (
	CategoryErrand       = "errand"
	CategoryAdmin        = "admin"
	CategoryRelationship = "relationship"
	CategoryMoney        = "money"
	CategoryHealth       = "health"
	CategorySpiritual    = "spiritual"
	CategoryDistraction  = "distraction"
	CategoryMaintenance  = "maintenance"
	CategoryOpportunity  = "opportunity"
	CategoryOther        = "other"
)

// Urgency levels.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Severity tiers derived from the Mission-Killer Index.
const (
	SeverityGreen  = "green"
	SeverityYellow = "yellow"
	SeverityRed    = "red"
)

// Classifier sources, recorded for observability only.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// TaskAnalysis is the structured view of a raw task description. Weights are
// always clamped to [1,10] before an analysis leaves the classifier boundary.
type TaskAnalysis struct {
	Type            string `json:"type"`
	Urgency         string `json:"urgency"`
	EmotionalWeight int    `json:"emotional_weight"`
	StrategicValue  int    `json:"strategic_value"`
	ShortSummary    string `json:"short_summary"`
}

// MissionContext describes the caller's current assignment for the day.
// TimeBudgetMinutes is carried but not consulted by scoring.
type MissionContext struct {
	DayMission        string   `json:"dayMission"`
	BigThree          []string `json:"bigThree"`
	ImpactLevel       int      `json:"impactLevel"`
	TimeBudgetMinutes int      `json:"timeBudgetMinutes"`
}

// MissionEvaluation is the scorer's judgment of a task against the mission.
type MissionEvaluation struct {
	MKI            float64  `json:"MKI"`
	MissionKiller  bool     `json:"missionKiller"`
	Severity       string   `json:"severity"`
	Reason         string   `json:"reason"`
	Recommendation string   `json:"recommendation"`
	ScriptureRefs  []string `json:"scriptureRefs"`
}

// TaskEvaluationResponse pairs the analysis with its evaluation. It is the
// sole externally visible result of the engine, built fresh per request.
type TaskEvaluationResponse struct {
	TaskAnalysis      TaskAnalysis      `json:"taskAnalysis"`
	MissionEvaluation MissionEvaluation `json:"missionEvaluation"`
}
