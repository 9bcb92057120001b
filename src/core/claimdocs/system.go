package claimdocs

import (
	"context"
)

type ComponentStatus string

const (
	StatusUp   ComponentStatus = "up"
	StatusDown ComponentStatus = "down"
)

// HealthStatus reports the state of every external dependency.
type HealthStatus struct {
	Status     string `json:"status"`
	Components struct {
		Database    ComponentStatus `json:"database"`
		ClauseIndex ComponentStatus `json:"clause_index"`
		ObjectStore ComponentStatus `json:"object_store"`
		LLM         ComponentStatus `json:"llm"`
	} `json:"components"`
}

// Pinger checks reachability of one dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ModelLister is satisfied by the LLM client.
type ModelLister interface {
	Models(ctx context.Context) ([]string, error)
}

type SystemService struct {
	database    Pinger
	clauseIndex ClauseIndex
	objectStore Pinger
	llm         ModelLister
}

func NewSystemService(database Pinger, clauseIndex ClauseIndex, objectStore Pinger, llm ModelLister) *SystemService {
	return &SystemService{
		database:    database,
		clauseIndex: clauseIndex,
		objectStore: objectStore,
		llm:         llm,
	}
}

func (s *SystemService) CheckHealth(ctx context.Context) (*HealthStatus, error) {
	status := &HealthStatus{Status: "healthy"}
	status.Components.Database = StatusDown
	status.Components.ClauseIndex = StatusDown
	status.Components.ObjectStore = StatusDown
	status.Components.LLM = StatusDown

	if err := s.database.Ping(ctx); err == nil {
		status.Components.Database = StatusUp
	}
	if err := s.clauseIndex.Ping(ctx); err == nil {
		status.Components.ClauseIndex = StatusUp
	}
	if err := s.objectStore.Ping(ctx); err == nil {
		status.Components.ObjectStore = StatusUp
	}
	if _, err := s.llm.Models(ctx); err == nil {
		status.Components.LLM = StatusUp
	}

	if status.Components.Database == StatusDown ||
		status.Components.ClauseIndex == StatusDown ||
		status.Components.ObjectStore == StatusDown ||
		status.Components.LLM == StatusDown {
		status.Status = "unhealthy"
	}

	return status, nil
}
