package claimsdb

import "time"

// The claims schema keeps the table and column names of the insurer dataset
// so that generated SQL can be executed without any mapping layer. Date
// columns are stored as ISO strings, matching how SQLite stores DATE text.

type Policy struct {
	PolicyID         string    `gorm:"column:policy_id;primaryKey" json:"policy_id"`
	PolicyType       string    `gorm:"column:policy_type;not null" json:"policy_type"`
	PolicyName       string    `gorm:"column:policy_name;not null" json:"policy_name"`
	BaseSumInsured   float64   `gorm:"column:base_sum_insured;default:0" json:"base_sum_insured"`
	PolicyPeriodDays int       `gorm:"column:policy_period_days;default:365" json:"policy_period_days"`
	Territory        string    `gorm:"column:territory;default:India" json:"territory"`
	CreatedDate      time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
	Status           string    `gorm:"column:status;default:ACTIVE" json:"status"`
}

func (Policy) TableName() string { return "POLICIES" }

type CoverageType struct {
	CoverageID         string `gorm:"column:coverage_id;primaryKey" json:"coverage_id"`
	CoverageName       string `gorm:"column:coverage_name;not null" json:"coverage_name"`
	CoverageType       string `gorm:"column:coverage_type;not null" json:"coverage_type"`
	Description        string `gorm:"column:description" json:"description"`
	MinAge             int    `gorm:"column:min_age;default:0" json:"min_age"`
	MaxAge             int    `gorm:"column:max_age;default:99" json:"max_age"`
	WaitingPeriodDays  int    `gorm:"column:waiting_period_days;default:0" json:"waiting_period_days"`
	PolicyTenureMonths int    `gorm:"column:policy_tenure_months;default:12" json:"policy_tenure_months"`
}

func (CoverageType) TableName() string { return "COVERAGE_TYPES" }

type InsuredPerson struct {
	InsuredID       string    `gorm:"column:insured_id;primaryKey" json:"insured_id"`
	Name            string    `gorm:"column:name;not null" json:"name"`
	DateOfBirth     string    `gorm:"column:date_of_birth" json:"date_of_birth"`
	Gender          string    `gorm:"column:gender" json:"gender"`
	City            string    `gorm:"column:city" json:"city"`
	State           string    `gorm:"column:state" json:"state"`
	PolicyID        string    `gorm:"column:policy_id;index:idx_insured_policy" json:"policy_id"`
	PolicyStartDate string    `gorm:"column:policy_start_date" json:"policy_start_date"`
	PolicyEndDate   string    `gorm:"column:policy_end_date" json:"policy_end_date"`
	Status          string    `gorm:"column:status;default:ACTIVE" json:"status"`
	CreatedDate     time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (InsuredPerson) TableName() string { return "INSURED_PERSONS" }

type Claim struct {
	ClaimID          string    `gorm:"column:claim_id;primaryKey" json:"claim_id"`
	PolicyID         string    `gorm:"column:policy_id;not null;index:idx_claims_policy" json:"policy_id"`
	InsuredID        string    `gorm:"column:insured_id;not null;index:idx_claims_insured" json:"insured_id"`
	CoverageID       string    `gorm:"column:coverage_id;not null" json:"coverage_id"`
	Status           string    `gorm:"column:status;default:SUBMITTED;index:idx_claims_status" json:"status"`
	ClaimDate        string    `gorm:"column:claim_date;not null" json:"claim_date"`
	ClaimAmount      float64   `gorm:"column:claim_amount;not null" json:"claim_amount"`
	ApprovedAmount   float64   `gorm:"column:approved_amount;default:0" json:"approved_amount"`
	Description      string    `gorm:"column:description" json:"description"`
	IncidentDate     string    `gorm:"column:incident_date" json:"incident_date"`
	IncidentLocation string    `gorm:"column:incident_location" json:"incident_location"`
	CreatedDate      time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
	UpdatedDate      time.Time `gorm:"column:updated_date;autoUpdateTime" json:"updated_date"`
}

func (Claim) TableName() string { return "CLAIMS" }

type MedicalProcedure struct {
	ProcedureID       string    `gorm:"column:procedure_id;primaryKey" json:"procedure_id"`
	ProcedureName     string    `gorm:"column:procedure_name;not null" json:"procedure_name"`
	Category          string    `gorm:"column:category" json:"category"`
	ProcedureType     string    `gorm:"column:procedure_type" json:"procedure_type"`
	IsCovered         bool      `gorm:"column:is_covered;default:true" json:"is_covered"`
	WaitingPeriodDays int       `gorm:"column:waiting_period_days;default:0" json:"waiting_period_days"`
	Notes             string    `gorm:"column:notes" json:"notes"`
	CreatedDate       time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (MedicalProcedure) TableName() string { return "MEDICAL_PROCEDURES" }

type Exclusion struct {
	ExclusionID        string    `gorm:"column:exclusion_id;primaryKey" json:"exclusion_id"`
	ExclusionName      string    `gorm:"column:exclusion_name;not null" json:"exclusion_name"`
	ExclusionType      string    `gorm:"column:exclusion_type" json:"exclusion_type"`
	Description        string    `gorm:"column:description" json:"description"`
	ApplicableCoverage string    `gorm:"column:applicable_coverage" json:"applicable_coverage"`
	Severity           string    `gorm:"column:severity;default:MEDIUM" json:"severity"`
	CreatedDate        time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (Exclusion) TableName() string { return "EXCLUSIONS" }

type PolicyRule struct {
	RuleID        string    `gorm:"column:rule_id;primaryKey" json:"rule_id"`
	RuleName      string    `gorm:"column:rule_name;not null" json:"rule_name"`
	RuleType      string    `gorm:"column:rule_type" json:"rule_type"`
	CoverageID    string    `gorm:"column:coverage_id" json:"coverage_id"`
	RuleCondition string    `gorm:"column:rule_condition" json:"rule_condition"`
	RuleResult    string    `gorm:"column:rule_result" json:"rule_result"`
	Priority      int       `gorm:"column:priority;default:1" json:"priority"`
	IsActive      bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedDate   time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (PolicyRule) TableName() string { return "POLICY_RULES" }

type RequiredDocument struct {
	DocumentID   string    `gorm:"column:document_id;primaryKey" json:"document_id"`
	CoverageID   string    `gorm:"column:coverage_id" json:"coverage_id"`
	DocumentName string    `gorm:"column:document_name;not null" json:"document_name"`
	IsMandatory  bool      `gorm:"column:is_mandatory;default:true" json:"is_mandatory"`
	Description  string    `gorm:"column:description" json:"description"`
	CreatedDate  time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (RequiredDocument) TableName() string { return "REQUIRED_DOCUMENTS" }

type ClaimDocument struct {
	ClaimID        string    `gorm:"column:claim_id;primaryKey" json:"claim_id"`
	DocumentID     string    `gorm:"column:document_id;primaryKey" json:"document_id"`
	SubmissionDate string    `gorm:"column:submission_date" json:"submission_date"`
	Status         string    `gorm:"column:status;default:PENDING" json:"status"`
	Notes          string    `gorm:"column:notes" json:"notes"`
	CreatedDate    time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (ClaimDocument) TableName() string { return "CLAIM_DOCUMENTS" }

type MedicalProvider struct {
	ProviderID  string    `gorm:"column:provider_id;primaryKey" json:"provider_id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Type        string    `gorm:"column:type" json:"type"`
	City        string    `gorm:"column:city" json:"city"`
	State       string    `gorm:"column:state" json:"state"`
	IsNetwork   string    `gorm:"column:is_network;default:No" json:"is_network"`
	Rating      string    `gorm:"column:rating" json:"rating"`
	ContactInfo string    `gorm:"column:contact_info" json:"contact_info"`
	CreatedDate time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (MedicalProvider) TableName() string { return "MEDICAL_PROVIDERS" }

type ClaimAssessment struct {
	AssessmentID      string    `gorm:"column:assessment_id;primaryKey" json:"assessment_id"`
	ClaimID           string    `gorm:"column:claim_id;index:idx_assessments_claim" json:"claim_id"`
	AssessorID        string    `gorm:"column:assessor_id" json:"assessor_id"`
	AssessmentDate    string    `gorm:"column:assessment_date" json:"assessment_date"`
	Status            string    `gorm:"column:status" json:"status"`
	RecommendedAmount float64   `gorm:"column:recommended_amount" json:"recommended_amount"`
	ApprovedAmount    float64   `gorm:"column:approved_amount" json:"approved_amount"`
	Remarks           string    `gorm:"column:remarks" json:"remarks"`
	CreatedDate       time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (ClaimAssessment) TableName() string { return "CLAIM_ASSESSMENTS" }

type ClaimHistory struct {
	HistoryID  int64  `gorm:"column:history_id;primaryKey;autoIncrement" json:"history_id"`
	ClaimID    string `gorm:"column:claim_id;index:idx_history_claim" json:"claim_id"`
	StatusFrom string `gorm:"column:status_from" json:"status_from"`
	StatusTo   string `gorm:"column:status_to" json:"status_to"`
	ChangedBy  string `gorm:"column:changed_by" json:"changed_by"`
	ChangeDate string `gorm:"column:change_date" json:"change_date"`
	Remarks    string `gorm:"column:remarks" json:"remarks"`
}

func (ClaimHistory) TableName() string { return "CLAIM_HISTORY" }

type PreexistingCondition struct {
	ConditionID      string    `gorm:"column:condition_id;primaryKey" json:"condition_id"`
	InsuredID        string    `gorm:"column:insured_id" json:"insured_id"`
	ConditionName    string    `gorm:"column:condition_name;not null" json:"condition_name"`
	DiagnosedDate    string    `gorm:"column:diagnosed_date" json:"diagnosed_date"`
	Severity         string    `gorm:"column:severity;default:MILD" json:"severity"`
	IsDisclosed      bool      `gorm:"column:is_disclosed;default:false" json:"is_disclosed"`
	TreatmentHistory string    `gorm:"column:treatment_history" json:"treatment_history"`
	CreatedDate      time.Time `gorm:"column:created_date;autoCreateTime" json:"created_date"`
}

func (PreexistingCondition) TableName() string { return "PREEXISTING_CONDITIONS" }

// Tables lists every claims table in migration order.
var Tables = []string{
	"POLICIES", "COVERAGE_TYPES", "INSURED_PERSONS", "CLAIMS",
	"MEDICAL_PROCEDURES", "EXCLUSIONS", "POLICY_RULES", "REQUIRED_DOCUMENTS",
	"CLAIM_DOCUMENTS", "MEDICAL_PROVIDERS", "CLAIM_ASSESSMENTS",
	"CLAIM_HISTORY", "PREEXISTING_CONDITIONS",
}
