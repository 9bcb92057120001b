package claimsdb

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GenerateOptions controls synthetic dataset generation.
type GenerateOptions struct {
	InsuredCount int
	ClaimCount   int
	// Progress is called after each generated insured person and claim.
	Progress func(n int)
}

const generateBatchSize = 500

var generateConditionNames = []string{
	"Diabetes Type 2", "Hypertension", "Asthma", "Heart Disease", "Arthritis",
	"Thyroid Disorder", "Multiple sclerosis", "Chronic Kidney Disease", "Liver Cirrhosis",
}

var generateClaimDescriptions = []string{
	"Treatment for %s", "Hospitalization due to %s", "Emergency care for %s",
	"Surgical procedure: %s", "Post-operative care for %s",
}

var generateAssessmentRemarks = []string{
	"Claim meets all policy criteria.", "Approved as per policy terms.",
	"Rejected due to exclusion clause.", "Pending further medical reports from hospital.",
	"Under review for medical necessity.", "Documentation incomplete, rejection advised.",
}

// Generate fills the claims schema with a large synthetic dataset. The
// definitional tables must be seeded first so generated rows can reference
// real policies, coverages and documents.
func Generate(ctx context.Context, db *gorm.DB, opts GenerateOptions) error {
	if opts.InsuredCount <= 0 {
		opts.InsuredCount = 2000
	}
	if opts.ClaimCount <= 0 {
		opts.ClaimCount = 3000
	}
	progress := opts.Progress
	if progress == nil {
		progress = func(int) {}
	}

	policyIDs, err := columnValues(ctx, db, "POLICIES", "policy_id")
	if err != nil {
		return err
	}
	coverageIDs, err := columnValues(ctx, db, "COVERAGE_TYPES", "coverage_id")
	if err != nil {
		return err
	}
	documentIDs, err := columnValues(ctx, db, "REQUIRED_DOCUMENTS", "document_id")
	if err != nil {
		return err
	}
	procedureNames, err := columnValues(ctx, db, "MEDICAL_PROCEDURES", "procedure_name")
	if err != nil {
		return err
	}
	if len(policyIDs) == 0 || len(coverageIDs) == 0 || len(documentIDs) == 0 || len(procedureNames) == 0 {
		return fmt.Errorf("definitional tables are empty, seed the database first")
	}

	assessorIDs := make([]string, 50)
	for i := range assessorIDs {
		assessorIDs[i] = fmt.Sprintf("ASR_%03d", i+1)
	}

	type insuredSpan struct {
		id    string
		poly  string
		start time.Time
		end   time.Time
	}

	today := time.Now()
	spans := make([]insuredSpan, 0, opts.InsuredCount)
	persons := make([]InsuredPerson, 0, opts.InsuredCount)
	for i := 1; i <= opts.InsuredCount; i++ {
		gender := "Male"
		if rand.Intn(2) == 0 {
			gender = "Female"
		}
		start := gofakeit.DateRange(today.AddDate(-3, 0, 0), today)
		end := start.AddDate(0, 0, 365)
		status := "ACTIVE"
		if end.Before(today) {
			status = "INACTIVE"
		}
		span := insuredSpan{
			id:    fmt.Sprintf("INS_GEN_%04d", i),
			poly:  policyIDs[rand.Intn(len(policyIDs))],
			start: start,
			end:   end,
		}
		spans = append(spans, span)
		persons = append(persons, InsuredPerson{
			InsuredID:       span.id,
			Name:            gofakeit.Name(),
			DateOfBirth:     gofakeit.DateRange(today.AddDate(-70, 0, 0), today.AddDate(-18, 0, 0)).Format("2006-01-02"),
			Gender:          gender,
			City:            gofakeit.City(),
			State:           gofakeit.State(),
			PolicyID:        span.poly,
			PolicyStartDate: start.Format("2006-01-02"),
			PolicyEndDate:   end.Format("2006-01-02"),
			Status:          status,
		})
		progress(1)
	}
	if err := createInBatches(ctx, db, persons); err != nil {
		return fmt.Errorf("failed to insert generated insured persons: %v", err)
	}

	conditions := make([]PreexistingCondition, 0, opts.InsuredCount/3)
	for i := 0; i < opts.InsuredCount*3/10; i++ {
		span := spans[rand.Intn(len(spans))]
		conditions = append(conditions, PreexistingCondition{
			ConditionID:      fmt.Sprintf("COND_GEN_%04d", i+1),
			InsuredID:        span.id,
			ConditionName:    generateConditionNames[rand.Intn(len(generateConditionNames))],
			DiagnosedDate:    gofakeit.DateRange(today.AddDate(-10, 0, 0), today.AddDate(-3, 0, 0)).Format("2006-01-02"),
			Severity:         []string{"MILD", "MODERATE", "SEVERE"}[rand.Intn(3)],
			IsDisclosed:      rand.Intn(2) == 0,
			TreatmentHistory: "Under regular medication",
		})
	}
	if err := createInBatches(ctx, db, conditions); err != nil {
		return fmt.Errorf("failed to insert generated conditions: %v", err)
	}

	claims := make([]Claim, 0, opts.ClaimCount)
	assessments := make([]ClaimAssessment, 0, opts.ClaimCount)
	histories := make([]ClaimHistory, 0, opts.ClaimCount*2)
	claimDocs := make([]ClaimDocument, 0, opts.ClaimCount*3)
	statuses := []string{"APPROVED", "REJECTED", "UNDER_REVIEW", "SUBMITTED", "SETTLED"}

	for i := 1; i <= opts.ClaimCount; i++ {
		span := spans[rand.Intn(len(spans))]
		incident := gofakeit.DateRange(span.start, span.end)
		claimDate := incident.AddDate(0, 0, 1+rand.Intn(15))

		status := statuses[rand.Intn(len(statuses))]
		claimAmount := float64(int(gofakeit.Float64Range(2000, 250000)*100)) / 100
		var approvedAmount float64
		if status == "APPROVED" || status == "SETTLED" {
			approvedAmount = float64(int(claimAmount*gofakeit.Float64Range(0.70, 1.0)*100)) / 100
		}

		claimID := fmt.Sprintf("CLM_GEN_%05d", i)
		procName := procedureNames[rand.Intn(len(procedureNames))]
		claims = append(claims, Claim{
			ClaimID:          claimID,
			PolicyID:         span.poly,
			InsuredID:        span.id,
			CoverageID:       coverageIDs[rand.Intn(len(coverageIDs))],
			Status:           status,
			ClaimDate:        claimDate.Format("2006-01-02"),
			ClaimAmount:      claimAmount,
			ApprovedAmount:   approvedAmount,
			Description:      fmt.Sprintf(generateClaimDescriptions[rand.Intn(len(generateClaimDescriptions))], procName),
			IncidentDate:     incident.Format("2006-01-02"),
			IncidentLocation: fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.State()),
		})

		assessor := assessorIDs[rand.Intn(len(assessorIDs))]
		histories = append(histories, ClaimHistory{
			ClaimID:    claimID,
			StatusFrom: "SUBMITTED",
			StatusTo:   "UNDER_REVIEW",
			ChangedBy:  assessor,
			ChangeDate: claimDate.Add(time.Duration(1+rand.Intn(24)) * time.Hour).Format("2006-01-02 15:04:05"),
			Remarks:    "Initial review",
		})
		if status != "SUBMITTED" {
			histories = append(histories, ClaimHistory{
				ClaimID:    claimID,
				StatusFrom: "UNDER_REVIEW",
				StatusTo:   status,
				ChangedBy:  assessorIDs[rand.Intn(len(assessorIDs))],
				ChangeDate: claimDate.AddDate(0, 0, 1+rand.Intn(5)).Format("2006-01-02 15:04:05"),
				Remarks:    "Final decision",
			})
		}

		if status == "APPROVED" || status == "REJECTED" || status == "SETTLED" {
			assessmentStatus := status
			if status == "SETTLED" {
				assessmentStatus = "APPROVED"
			}
			assessments = append(assessments, ClaimAssessment{
				AssessmentID:      fmt.Sprintf("ASMT_GEN_%05d", i),
				ClaimID:           claimID,
				AssessorID:        assessorIDs[rand.Intn(len(assessorIDs))],
				AssessmentDate:    claimDate.AddDate(0, 0, 2+rand.Intn(9)).Format("2006-01-02"),
				Status:            assessmentStatus,
				RecommendedAmount: claimAmount,
				ApprovedAmount:    approvedAmount,
				Remarks:           generateAssessmentRemarks[rand.Intn(len(generateAssessmentRemarks))],
			})
		}

		seen := make(map[string]bool)
		for d := 0; d < 2+rand.Intn(4); d++ {
			docID := documentIDs[rand.Intn(len(documentIDs))]
			if seen[docID] {
				continue
			}
			seen[docID] = true
			claimDocs = append(claimDocs, ClaimDocument{
				ClaimID:        claimID,
				DocumentID:     docID,
				SubmissionDate: claimDate.Format("2006-01-02"),
				Status:         []string{"SUBMITTED", "VERIFIED", "PENDING", "INCOMPLETE"}[rand.Intn(4)],
				Notes:          "Auto-generated document entry",
			})
		}
		progress(1)
	}

	if err := createInBatches(ctx, db, claims); err != nil {
		return fmt.Errorf("failed to insert generated claims: %v", err)
	}
	if err := createInBatches(ctx, db, assessments); err != nil {
		return fmt.Errorf("failed to insert generated assessments: %v", err)
	}
	if err := createInBatches(ctx, db, histories); err != nil {
		return fmt.Errorf("failed to insert generated claim history: %v", err)
	}
	if err := createInBatches(ctx, db, claimDocs); err != nil {
		return fmt.Errorf("failed to insert generated claim documents: %v", err)
	}

	return nil
}

func createInBatches[T any](ctx context.Context, db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, generateBatchSize).Error
}

func columnValues(ctx context.Context, db *gorm.DB, table, column string) ([]string, error) {
	var values []string
	err := db.WithContext(ctx).Table(table).Pluck(column, &values).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read %s.%s: %v", table, column, err)
	}
	return values, nil
}
