package evaluations

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an evaluation record does not exist.
var ErrNotFound = errors.New("evaluation not found")

// Record is one persisted evaluation outcome.
type Record struct {
	ID               string    `json:"evaluationId"`
	UserID           string    `json:"-"`
	TaskText         string    `json:"taskText"`
	Category         string    `json:"category"`
	Urgency          string    `json:"urgency"`
	EmotionalWeight  int       `json:"emotionalWeight"`
	StrategicValue   int       `json:"strategicValue"`
	MKI              float64   `json:"mki"`
	Severity         string    `json:"severity"`
	MissionKiller    bool      `json:"missionKiller"`
	ClassifierSource string    `json:"classifierSource"`
	CreatedAt        time.Time `json:"createdAt"`
}
