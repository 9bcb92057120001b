// Package jobctrl wires background task handlers to the job queue.
package jobctrl

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"claimsight/src/core/claimdocs"
	"claimsight/src/infrastructure/job"
)

const TaskTypeIngestion = "document_ingestion"

type IngestionPayload struct {
	DocumentID string `json:"document_id"`
}

// IngestionTask processes uploaded policy documents from the job queue.
type IngestionTask struct {
	ingestService *claimdocs.IngestService
}

func NewIngestionTask(ingestService *claimdocs.IngestService) *IngestionTask {
	return &IngestionTask{
		ingestService: ingestService,
	}
}

func (t *IngestionTask) TaskType() string {
	return TaskTypeIngestion
}

func (t *IngestionTask) Handle(ctx context.Context, payload json.RawMessage) error {
	var ingestionPayload IngestionPayload
	if err := json.Unmarshal(payload, &ingestionPayload); err != nil {
		return fmt.Errorf("failed to unmarshal ingestion payload: %w", err)
	}
	if ingestionPayload.DocumentID == "" {
		return fmt.Errorf("ingestion payload missing document_id")
	}

	return t.ingestService.ProcessDocument(ctx, ingestionPayload.DocumentID)
}

// IngestionEnqueuer publishes ingestion jobs for uploaded documents.
type IngestionEnqueuer struct {
	jobs *job.JobService
}

func NewIngestionEnqueuer(jobs *job.JobService) *IngestionEnqueuer {
	return &IngestionEnqueuer{jobs: jobs}
}

func (e *IngestionEnqueuer) EnqueueIngestion(ctx context.Context, documentID string) (string, error) {
	payload, err := json.Marshal(IngestionPayload{DocumentID: documentID})
	if err != nil {
		return "", fmt.Errorf("failed to marshal ingestion payload: %w", err)
	}

	enqueued, err := e.jobs.EnqueueJob(ctx, TaskTypeIngestion, payload)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(enqueued.ID), nil
}
