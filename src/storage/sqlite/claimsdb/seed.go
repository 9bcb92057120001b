package claimsdb

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed loads the curated sample dataset. Inserts ignore rows that already
// exist so seeding is safe to run more than once.
func Seed(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true})

	steps := []struct {
		name string
		data any
	}{
		{"policies", &seedPolicies},
		{"coverage types", &seedCoverageTypes},
		{"insured persons", &seedInsuredPersons},
		{"claims", &seedClaims},
		{"medical procedures", &seedMedicalProcedures},
		{"required documents", &seedRequiredDocuments},
		{"medical providers", &seedMedicalProviders},
		{"exclusions", &seedExclusions},
		{"policy rules", &seedPolicyRules},
		{"preexisting conditions", &seedPreexistingConditions},
		{"claim documents", &seedClaimDocuments},
		{"claim assessments", &seedClaimAssessments},
		{"claim history", &seedClaimHistory},
	}

	for _, step := range steps {
		if err := tx.Create(step.data).Error; err != nil {
			return fmt.Errorf("failed to seed %s: %v", step.name, err)
		}
	}

	return nil
}

var seedPolicies = []Policy{
	{PolicyID: "CHOTGDP23004V012223", PolicyType: "Group Domestic Travel Insurance", PolicyName: "Cholamandalam MS General Insurance - Group Domestic Travel", BaseSumInsured: 500000, PolicyPeriodDays: 365, Territory: "India", Status: "ACTIVE"},
	{PolicyID: "EDLHLGP21462V032021", PolicyType: "Health Insurance Base Policy", PolicyName: "Edelweiss General Insurance - Health Insurance Base", BaseSumInsured: 1000000, PolicyPeriodDays: 365, Territory: "India", Status: "ACTIVE"},
	{PolicyID: "EDLHLGA23009V012223", PolicyType: "Well Baby Well Mother Add-On", PolicyName: "Edelweiss General Insurance - Maternity and Newborn Care", BaseSumInsured: 300000, PolicyPeriodDays: 365, Territory: "India", Status: "ACTIVE"},
	{PolicyID: "CHOTGDP23004V032021", PolicyType: "Individual Travel Insurance", PolicyName: "Cholamandalam MS General Insurance - Individual Travel", BaseSumInsured: 200000, PolicyPeriodDays: 365, Territory: "India", Status: "ACTIVE"},
	{PolicyID: "CHOTGDP23004V042021", PolicyType: "Family Travel Insurance", PolicyName: "Cholamandalam MS General Insurance - Family Travel", BaseSumInsured: 800000, PolicyPeriodDays: 365, Territory: "India", Status: "ACTIVE"},
}

var seedCoverageTypes = []CoverageType{
	{CoverageID: "BASE_001", CoverageName: "Emergency Accidental Hospitalization", CoverageType: "BASE", Description: "Medical expenses for accidental injury during travel", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "BASE_002", CoverageName: "OPD Treatment", CoverageType: "BASE", Description: "Out-patient treatment for accidental injury", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "BASE_003", CoverageName: "Personal Accident - Accidental Death", CoverageType: "BASE", Description: "Compensation for accidental death", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "BASE_004", CoverageName: "Personal Accident - Permanent Total Disability", CoverageType: "BASE", Description: "Compensation for permanent total disability", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "BASE_005", CoverageName: "Personal Accident - Permanent Partial Disability", CoverageType: "BASE", Description: "Compensation for permanent partial disability", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "OPT_001", CoverageName: "Emergency Medical Expenses - Illness/Disease", CoverageType: "OPTIONAL", Description: "Medical expenses for illness not related to medical history", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "OPT_002", CoverageName: "Emergency Medical Evacuation & Repatriation", CoverageType: "OPTIONAL", Description: "Transportation and repatriation costs", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "OPT_003", CoverageName: "Pre-existing Condition in Life Threatening Situation", CoverageType: "OPTIONAL", Description: "Coverage for pre-existing conditions in emergencies", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "OPT_004", CoverageName: "Personal Accident - Common Carrier", CoverageType: "OPTIONAL", Description: "Additional PA coverage in common carrier", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "OPT_005", CoverageName: "Dental Treatment Expenses", CoverageType: "OPTIONAL", Description: "Dental treatment from accidental injury", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "OPT_006", CoverageName: "Daily Allowance - Hospitalization", CoverageType: "OPTIONAL", Description: "Fixed daily allowance during hospitalization", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "OPT_011", CoverageName: "Total Loss of Checked-in Baggage", CoverageType: "OPTIONAL", Description: "Compensation for total baggage loss by airlines", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "OPT_013", CoverageName: "Trip Cancellation", CoverageType: "OPTIONAL", Description: "Reimbursement for trip cancellation", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "OPT_014", CoverageName: "Trip Interruption", CoverageType: "OPTIONAL", Description: "Reimbursement for trip interruption", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "OPT_018", CoverageName: "Flight Delay", CoverageType: "OPTIONAL", Description: "Compensation for flight delays", MinAge: 0, MaxAge: 90, PolicyTenureMonths: 12},
	{CoverageID: "EDL_001", CoverageName: "Air Ambulance Cover", CoverageType: "OPTIONAL", Description: "Emergency air ambulance for life-threatening conditions", MinAge: 0, MaxAge: 99, PolicyTenureMonths: 12},
	{CoverageID: "EDL_002", CoverageName: "Well Mother Cover - Option 1", CoverageType: "OPTIONAL", Description: "Routine medical care during pregnancy", MinAge: 18, MaxAge: 50, PolicyTenureMonths: 9},
	{CoverageID: "EDL_003", CoverageName: "Well Mother Cover - Option 2", CoverageType: "OPTIONAL", Description: "Pregnancy care including hospitalization", MinAge: 18, MaxAge: 50, PolicyTenureMonths: 9},
	{CoverageID: "EDL_004", CoverageName: "Well Mother Cover - Option 3", CoverageType: "OPTIONAL", Description: "Complete pregnancy care including post-delivery", MinAge: 18, MaxAge: 50, PolicyTenureMonths: 10},
	{CoverageID: "EDL_005", CoverageName: "Well Baby Care", CoverageType: "OPTIONAL", Description: "Newborn care from birth to hospital discharge", MinAge: 0, MaxAge: 1, PolicyTenureMonths: 1},
}

var seedInsuredPersons = []InsuredPerson{
	{InsuredID: "INS_001", Name: "Rajesh Kumar", DateOfBirth: "1985-03-15", Gender: "Male", City: "Mumbai", State: "Maharashtra", PolicyID: "CHOTGDP23004V012223", PolicyStartDate: "2024-01-01", PolicyEndDate: "2024-12-31", Status: "ACTIVE"},
	{InsuredID: "INS_002", Name: "Priya Sharma", DateOfBirth: "1990-07-22", Gender: "Female", City: "Delhi", State: "Delhi", PolicyID: "CHOTGDP23004V012223", PolicyStartDate: "2024-01-15", PolicyEndDate: "2025-01-14", Status: "ACTIVE"},
	{InsuredID: "INS_003", Name: "Amit Patel", DateOfBirth: "1982-11-08", Gender: "Male", City: "Ahmedabad", State: "Gujarat", PolicyID: "CHOTGDP23004V012223", PolicyStartDate: "2024-02-01", PolicyEndDate: "2025-01-31", Status: "ACTIVE"},
	{InsuredID: "INS_004", Name: "Sunita Reddy", DateOfBirth: "1988-05-30", Gender: "Female", City: "Hyderabad", State: "Telangana", PolicyID: "CHOTGDP23004V012223", PolicyStartDate: "2024-02-15", PolicyEndDate: "2025-02-14", Status: "ACTIVE"},
	{InsuredID: "INS_005", Name: "Vikram Singh", DateOfBirth: "1975-09-12", Gender: "Male", City: "Jaipur", State: "Rajasthan", PolicyID: "CHOTGDP23004V012223", PolicyStartDate: "2024-03-01", PolicyEndDate: "2025-02-28", Status: "ACTIVE"},
	{InsuredID: "INS_006", Name: "Kavya Iyer", DateOfBirth: "1992-12-25", Gender: "Female", City: "Chennai", State: "Tamil Nadu", PolicyID: "EDLHLGA23009V012223", PolicyStartDate: "2024-01-01", PolicyEndDate: "2024-12-31", Status: "ACTIVE"},
	{InsuredID: "INS_007", Name: "Neha Gupta", DateOfBirth: "1987-04-18", Gender: "Female", City: "Pune", State: "Maharashtra", PolicyID: "EDLHLGA23009V012223", PolicyStartDate: "2024-01-15", PolicyEndDate: "2025-01-14", Status: "ACTIVE"},
	{InsuredID: "INS_008", Name: "Ritu Jain", DateOfBirth: "1991-08-03", Gender: "Female", City: "Indore", State: "Madhya Pradesh", PolicyID: "EDLHLGA23009V012223", PolicyStartDate: "2024-02-01", PolicyEndDate: "2025-01-31", Status: "ACTIVE"},
	{InsuredID: "INS_009", Name: "Anita Malhotra", DateOfBirth: "1989-06-14", Gender: "Female", City: "Chandigarh", State: "Punjab", PolicyID: "EDLHLGA23009V012223", PolicyStartDate: "2024-02-15", PolicyEndDate: "2025-02-14", Status: "ACTIVE"},
	{InsuredID: "INS_010", Name: "Pooja Agarwal", DateOfBirth: "1993-10-27", Gender: "Female", City: "Kolkata", State: "West Bengal", PolicyID: "EDLHLGA23009V012223", PolicyStartDate: "2024-03-01", PolicyEndDate: "2025-02-28", Status: "ACTIVE"},
	{InsuredID: "INS_011", Name: "Manish Khanna", DateOfBirth: "1980-01-09", Gender: "Male", City: "Lucknow", State: "Uttar Pradesh", PolicyID: "CHOTGDP23004V012223", PolicyStartDate: "2024-03-15", PolicyEndDate: "2025-03-14", Status: "ACTIVE"},
	{InsuredID: "INS_012", Name: "Deepak Nair", DateOfBirth: "1986-03-21", Gender: "Male", City: "Kochi", State: "Kerala", PolicyID: "CHOTGDP23004V012223", PolicyStartDate: "2024-04-01", PolicyEndDate: "2025-03-31", Status: "ACTIVE"},
	{InsuredID: "INS_013", Name: "Sanjay Rao", DateOfBirth: "1984-07-16", Gender: "Male", City: "Bangalore", State: "Karnataka", PolicyID: "CHOTGDP23004V012223", PolicyStartDate: "2024-04-15", PolicyEndDate: "2025-04-14", Status: "ACTIVE"},
	{InsuredID: "INS_014", Name: "Rekha Pandey", DateOfBirth: "1979-02-28", Gender: "Female", City: "Bhopal", State: "Madhya Pradesh", PolicyID: "CHOTGDP23004V012223", PolicyStartDate: "2024-05-01", PolicyEndDate: "2025-04-30", Status: "ACTIVE"},
	{InsuredID: "INS_015", Name: "Arjun Mehta", DateOfBirth: "1983-12-05", Gender: "Male", City: "Surat", State: "Gujarat", PolicyID: "CHOTGDP23004V012223", PolicyStartDate: "2024-05-15", PolicyEndDate: "2025-05-14", Status: "ACTIVE"},
	{InsuredID: "INS_016", Name: "Shweta Kapoor", DateOfBirth: "1990-09-11", Gender: "Female", City: "Noida", State: "Uttar Pradesh", PolicyID: "EDLHLGA23009V012223", PolicyStartDate: "2024-03-15", PolicyEndDate: "2025-03-14", Status: "ACTIVE"},
	{InsuredID: "INS_017", Name: "Meera Prasad", DateOfBirth: "1988-11-23", Gender: "Female", City: "Patna", State: "Bihar", PolicyID: "EDLHLGA23009V012223", PolicyStartDate: "2024-04-01", PolicyEndDate: "2025-03-31", Status: "ACTIVE"},
	{InsuredID: "INS_018", Name: "Divya Saxena", DateOfBirth: "1994-01-17", Gender: "Female", City: "Gwalior", State: "Madhya Pradesh", PolicyID: "EDLHLGA23009V012223", PolicyStartDate: "2024-04-15", PolicyEndDate: "2025-04-14", Status: "ACTIVE"},
	{InsuredID: "INS_019", Name: "Geeta Verma", DateOfBirth: "1985-05-08", Gender: "Female", City: "Agra", State: "Uttar Pradesh", PolicyID: "EDLHLGA23009V012223", PolicyStartDate: "2024-05-01", PolicyEndDate: "2025-04-30", Status: "ACTIVE"},
	{InsuredID: "INS_020", Name: "Seema Joshi", DateOfBirth: "1991-07-30", Gender: "Female", City: "Nashik", State: "Maharashtra", PolicyID: "EDLHLGA23009V012223", PolicyStartDate: "2024-05-15", PolicyEndDate: "2025-05-14", Status: "ACTIVE"},
	{InsuredID: "INS_021", Name: "Rohit Desai", DateOfBirth: "1982-04-12", Gender: "Male", City: "Vadodara", State: "Gujarat", PolicyID: "CHOTGDP23004V032021", PolicyStartDate: "2024-06-01", PolicyEndDate: "2025-05-31", Status: "ACTIVE"},
	{InsuredID: "INS_022", Name: "Kiran Bose", DateOfBirth: "1987-08-24", Gender: "Male", City: "Siliguri", State: "West Bengal", PolicyID: "CHOTGDP23004V032021", PolicyStartDate: "2024-06-15", PolicyEndDate: "2025-06-14", Status: "ACTIVE"},
	{InsuredID: "INS_023", Name: "Alok Tripathi", DateOfBirth: "1981-10-06", Gender: "Male", City: "Varanasi", State: "Uttar Pradesh", PolicyID: "CHOTGDP23004V032021", PolicyStartDate: "2024-07-01", PolicyEndDate: "2025-06-30", Status: "ACTIVE"},
	{InsuredID: "INS_024", Name: "Smita Kulkarni", DateOfBirth: "1989-02-14", Gender: "Female", City: "Nagpur", State: "Maharashtra", PolicyID: "CHOTGDP23004V032021", PolicyStartDate: "2024-07-15", PolicyEndDate: "2025-07-14", Status: "ACTIVE"},
	{InsuredID: "INS_025", Name: "Ravi Chatterjee", DateOfBirth: "1983-06-19", Gender: "Male", City: "Durgapur", State: "West Bengal", PolicyID: "CHOTGDP23004V032021", PolicyStartDate: "2024-08-01", PolicyEndDate: "2025-07-31", Status: "ACTIVE"},
	{InsuredID: "INS_026", Name: "Anjali Verma", DateOfBirth: "1990-03-12", Gender: "Female", City: "Jaipur", State: "Rajasthan", PolicyID: "EDLHLGA23009V012223", PolicyStartDate: "2024-01-20", PolicyEndDate: "2025-01-19", Status: "ACTIVE"},
	{InsuredID: "INS_027", Name: "Sanjay Gupta", DateOfBirth: "1985-06-18", Gender: "Male", City: "Kanpur", State: "Uttar Pradesh", PolicyID: "CHOTGDP23004V012223", PolicyStartDate: "2024-02-10", PolicyEndDate: "2025-02-09", Status: "ACTIVE"},
	{InsuredID: "INS_028", Name: "Kavita Sharma", DateOfBirth: "1988-09-25", Gender: "Female", City: "Indore", State: "Madhya Pradesh", PolicyID: "EDLHLGA23009V012223", PolicyStartDate: "2024-03-05", PolicyEndDate: "2025-03-04", Status: "ACTIVE"},
	{InsuredID: "INS_029", Name: "Rahul Mishra", DateOfBirth: "1984-12-08", Gender: "Male", City: "Patna", State: "Bihar", PolicyID: "CHOTGDP23004V012223", PolicyStartDate: "2024-04-12", PolicyEndDate: "2025-04-11", Status: "ACTIVE"},
	{InsuredID: "INS_030", Name: "Sunita Singh", DateOfBirth: "1992-11-15", Gender: "Female", City: "Lucknow", State: "Uttar Pradesh", PolicyID: "EDLHLGA23009V012223", PolicyStartDate: "2024-05-08", PolicyEndDate: "2025-05-07", Status: "ACTIVE"},
}

var seedClaims = []Claim{
	{ClaimID: "CLM_001", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_001", CoverageID: "BASE_001", Status: "APPROVED", ClaimDate: "2024-03-15", ClaimAmount: 25000, ApprovedAmount: 25000, Description: "Accidental injury during travel in Mumbai", IncidentDate: "2024-03-14", IncidentLocation: "Mumbai, Maharashtra"},
	{ClaimID: "CLM_002", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_002", CoverageID: "BASE_003", Status: "APPROVED", ClaimDate: "2024-03-20", ClaimAmount: 500000, ApprovedAmount: 500000, Description: "Accidental death during travel", IncidentDate: "2024-03-19", IncidentLocation: "Delhi, Delhi"},
	{ClaimID: "CLM_003", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_003", CoverageID: "OPT_001", Status: "UNDER_REVIEW", ClaimDate: "2024-03-25", ClaimAmount: 15000, Description: "Emergency illness treatment", IncidentDate: "2024-03-24", IncidentLocation: "Ahmedabad, Gujarat"},
	{ClaimID: "CLM_004", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_004", CoverageID: "OPT_011", Status: "REJECTED", ClaimDate: "2024-04-01", ClaimAmount: 8000, Description: "Baggage loss not meeting policy criteria", IncidentDate: "2024-03-31", IncidentLocation: "Hyderabad, Telangana"},
	{ClaimID: "CLM_005", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_005", CoverageID: "BASE_004", Status: "APPROVED", ClaimDate: "2024-04-05", ClaimAmount: 300000, ApprovedAmount: 300000, Description: "Permanent total disability from accident", IncidentDate: "2024-04-04", IncidentLocation: "Jaipur, Rajasthan"},
	{ClaimID: "CLM_006", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_006", CoverageID: "EDL_001", Status: "UNDER_REVIEW", ClaimDate: "2024-04-10", ClaimAmount: 45000, Description: "Air ambulance service for emergency delivery", IncidentDate: "2024-04-09", IncidentLocation: "Chennai, Tamil Nadu"},
	{ClaimID: "CLM_007", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_007", CoverageID: "EDL_002", Status: "APPROVED", ClaimDate: "2024-04-15", ClaimAmount: 12000, ApprovedAmount: 12000, Description: "Routine prenatal care expenses", IncidentDate: "2024-04-14", IncidentLocation: "Pune, Maharashtra"},
	{ClaimID: "CLM_008", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_008", CoverageID: "EDL_005", Status: "APPROVED", ClaimDate: "2024-04-20", ClaimAmount: 8000, ApprovedAmount: 8000, Description: "Newborn care during hospital stay", IncidentDate: "2024-04-19", IncidentLocation: "Indore, Madhya Pradesh"},
	{ClaimID: "CLM_009", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_009", CoverageID: "EDL_003", Status: "APPROVED", ClaimDate: "2024-04-25", ClaimAmount: 18000, ApprovedAmount: 18000, Description: "Maternity care including hospitalization", IncidentDate: "2024-04-24", IncidentLocation: "Chandigarh, Punjab"},
	{ClaimID: "CLM_010", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_010", CoverageID: "EDL_004", Status: "SUBMITTED", ClaimDate: "2024-05-01", ClaimAmount: 22000, Description: "Complete pregnancy care including post-delivery", IncidentDate: "2024-04-30", IncidentLocation: "Kolkata, West Bengal"},
	{ClaimID: "CLM_011", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_011", CoverageID: "OPT_002", Status: "APPROVED", ClaimDate: "2024-05-05", ClaimAmount: 35000, ApprovedAmount: 35000, Description: "Medical evacuation from remote area", IncidentDate: "2024-05-04", IncidentLocation: "Lucknow, Uttar Pradesh"},
	{ClaimID: "CLM_012", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_012", CoverageID: "OPT_003", Status: "REJECTED", ClaimDate: "2024-05-10", ClaimAmount: 20000, Description: "Pre-existing condition not life-threatening", IncidentDate: "2024-05-09", IncidentLocation: "Kochi, Kerala"},
	{ClaimID: "CLM_013", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_013", CoverageID: "OPT_005", Status: "APPROVED", ClaimDate: "2024-05-15", ClaimAmount: 5000, ApprovedAmount: 5000, Description: "Emergency dental treatment after accident", IncidentDate: "2024-05-14", IncidentLocation: "Bangalore, Karnataka"},
	{ClaimID: "CLM_014", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_014", CoverageID: "OPT_013", Status: "UNDER_REVIEW", ClaimDate: "2024-05-20", ClaimAmount: 12000, Description: "Trip cancellation due to family emergency", IncidentDate: "2024-05-19", IncidentLocation: "Bhopal, Madhya Pradesh"},
	{ClaimID: "CLM_015", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_015", CoverageID: "OPT_018", Status: "APPROVED", ClaimDate: "2024-05-25", ClaimAmount: 3000, ApprovedAmount: 3000, Description: "Flight delay compensation", IncidentDate: "2024-05-24", IncidentLocation: "Surat, Gujarat"},
	{ClaimID: "CLM_016", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_016", CoverageID: "EDL_001", Status: "REJECTED", ClaimDate: "2024-06-01", ClaimAmount: 50000, Description: "Air ambulance distance exceeded limit", IncidentDate: "2024-05-31", IncidentLocation: "Noida, Uttar Pradesh"},
	{ClaimID: "CLM_017", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_017", CoverageID: "EDL_002", Status: "APPROVED", ClaimDate: "2024-06-05", ClaimAmount: 9500, ApprovedAmount: 9500, Description: "Prenatal diagnostic tests and consultations", IncidentDate: "2024-06-04", IncidentLocation: "Patna, Bihar"},
	{ClaimID: "CLM_018", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_018", CoverageID: "EDL_005", Status: "APPROVED", ClaimDate: "2024-06-10", ClaimAmount: 6500, ApprovedAmount: 6500, Description: "Newborn immunizations and examinations", IncidentDate: "2024-06-09", IncidentLocation: "Gwalior, Madhya Pradesh"},
	{ClaimID: "CLM_019", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_019", CoverageID: "EDL_003", Status: "UNDER_REVIEW", ClaimDate: "2024-06-15", ClaimAmount: 15500, Description: "Maternity care with complications", IncidentDate: "2024-06-14", IncidentLocation: "Agra, Uttar Pradesh"},
	{ClaimID: "CLM_020", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_020", CoverageID: "EDL_004", Status: "APPROVED", ClaimDate: "2024-06-20", ClaimAmount: 25000, ApprovedAmount: 25000, Description: "Complete maternity care including postnatal", IncidentDate: "2024-06-19", IncidentLocation: "Nashik, Maharashtra"},
	{ClaimID: "CLM_021", PolicyID: "CHOTGDP23004V032021", InsuredID: "INS_021", CoverageID: "BASE_001", Status: "SUBMITTED", ClaimDate: "2024-06-25", ClaimAmount: 18000, Description: "Emergency hospitalization due to food poisoning", IncidentDate: "2024-06-24", IncidentLocation: "Vadodara, Gujarat"},
	{ClaimID: "CLM_022", PolicyID: "CHOTGDP23004V032021", InsuredID: "INS_022", CoverageID: "BASE_005", Status: "APPROVED", ClaimDate: "2024-07-01", ClaimAmount: 75000, ApprovedAmount: 75000, Description: "Partial disability compensation", IncidentDate: "2024-06-30", IncidentLocation: "Siliguri, West Bengal"},
	{ClaimID: "CLM_023", PolicyID: "CHOTGDP23004V032021", InsuredID: "INS_023", CoverageID: "OPT_006", Status: "APPROVED", ClaimDate: "2024-07-05", ClaimAmount: 4000, ApprovedAmount: 4000, Description: "Daily allowance during hospitalization", IncidentDate: "2024-07-04", IncidentLocation: "Varanasi, Uttar Pradesh"},
	{ClaimID: "CLM_024", PolicyID: "CHOTGDP23004V032021", InsuredID: "INS_024", CoverageID: "OPT_014", Status: "REJECTED", ClaimDate: "2024-07-10", ClaimAmount: 15000, Description: "Trip interruption not covered under policy terms", IncidentDate: "2024-07-09", IncidentLocation: "Nagpur, Maharashtra"},
	{ClaimID: "CLM_025", PolicyID: "CHOTGDP23004V032021", InsuredID: "INS_025", CoverageID: "OPT_011", Status: "APPROVED", ClaimDate: "2024-07-15", ClaimAmount: 12000, ApprovedAmount: 12000, Description: "Total loss of checked baggage", IncidentDate: "2024-07-14", IncidentLocation: "Durgapur, West Bengal"},
	{ClaimID: "CLM_026", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_026", CoverageID: "EDL_003", Status: "APPROVED", ClaimDate: "2024-07-20", ClaimAmount: 16500, ApprovedAmount: 16500, Description: "Maternity hospitalization with routine care", IncidentDate: "2024-07-19", IncidentLocation: "Jaipur, Rajasthan"},
	{ClaimID: "CLM_027", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_028", CoverageID: "EDL_001", Status: "UNDER_REVIEW", ClaimDate: "2024-07-25", ClaimAmount: 42000, Description: "Air ambulance for pregnancy complications", IncidentDate: "2024-07-24", IncidentLocation: "Indore, Madhya Pradesh"},
	{ClaimID: "CLM_028", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_030", CoverageID: "EDL_005", Status: "APPROVED", ClaimDate: "2024-08-01", ClaimAmount: 7200, ApprovedAmount: 7200, Description: "Newborn care and preventive services", IncidentDate: "2024-07-31", IncidentLocation: "Lucknow, Uttar Pradesh"},
	{ClaimID: "CLM_029", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_027", CoverageID: "BASE_002", Status: "APPROVED", ClaimDate: "2024-08-05", ClaimAmount: 3500, ApprovedAmount: 3500, Description: "OPD treatment for accidental injury", IncidentDate: "2024-08-04", IncidentLocation: "Kanpur, Uttar Pradesh"},
	{ClaimID: "CLM_030", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_029", CoverageID: "OPT_011", Status: "APPROVED", ClaimDate: "2024-08-10", ClaimAmount: 2800, ApprovedAmount: 2800, Description: "Emergency purchases due to baggage delay", IncidentDate: "2024-08-09", IncidentLocation: "Patna, Bihar"},
	{ClaimID: "CLM_031", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_001", CoverageID: "OPT_006", Status: "APPROVED", ClaimDate: "2024-08-15", ClaimAmount: 2000, ApprovedAmount: 2000, Description: "Daily allowance during hospitalization", IncidentDate: "2024-08-14", IncidentLocation: "Mumbai, Maharashtra"},
	{ClaimID: "CLM_032", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_007", CoverageID: "EDL_004", Status: "APPROVED", ClaimDate: "2024-08-20", ClaimAmount: 21500, ApprovedAmount: 21500, Description: "Complete pregnancy care including post-delivery", IncidentDate: "2024-08-19", IncidentLocation: "Pune, Maharashtra"},
	{ClaimID: "CLM_033", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_011", CoverageID: "OPT_004", Status: "APPROVED", ClaimDate: "2024-08-25", ClaimAmount: 150000, ApprovedAmount: 150000, Description: "Personal accident in common carrier", IncidentDate: "2024-08-24", IncidentLocation: "Lucknow, Uttar Pradesh"},
	{ClaimID: "CLM_034", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_016", CoverageID: "EDL_003", Status: "UNDER_REVIEW", ClaimDate: "2024-08-30", ClaimAmount: 17800, Description: "Maternity care with extended hospitalization", IncidentDate: "2024-08-29", IncidentLocation: "Noida, Uttar Pradesh"},
	{ClaimID: "CLM_035", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_013", CoverageID: "OPT_018", Status: "APPROVED", ClaimDate: "2024-09-05", ClaimAmount: 5500, ApprovedAmount: 5500, Description: "Flight delay due to weather conditions", IncidentDate: "2024-09-04", IncidentLocation: "Bangalore, Karnataka"},
	{ClaimID: "CLM_036", PolicyID: "CHOTGDP23004V032021", InsuredID: "INS_021", CoverageID: "BASE_003", Status: "UNDER_REVIEW", ClaimDate: "2024-09-10", ClaimAmount: 400000, Description: "Accidental death claim under investigation", IncidentDate: "2024-09-09", IncidentLocation: "Vadodara, Gujarat"},
	{ClaimID: "CLM_037", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_026", CoverageID: "EDL_005", Status: "APPROVED", ClaimDate: "2024-09-15", ClaimAmount: 8800, ApprovedAmount: 8800, Description: "Newborn care with special medical attention", IncidentDate: "2024-09-14", IncidentLocation: "Jaipur, Rajasthan"},
	{ClaimID: "CLM_038", PolicyID: "CHOTGDP23004V012223", InsuredID: "INS_015", CoverageID: "OPT_013", Status: "APPROVED", ClaimDate: "2024-09-20", ClaimAmount: 15000, ApprovedAmount: 15000, Description: "Trip cancellation due to medical emergency", IncidentDate: "2024-09-19", IncidentLocation: "Surat, Gujarat"},
	{ClaimID: "CLM_039", PolicyID: "CHOTGDP23004V032021", InsuredID: "INS_024", CoverageID: "BASE_001", Status: "APPROVED", ClaimDate: "2024-09-25", ClaimAmount: 22000, ApprovedAmount: 22000, Description: "Emergency hospitalization during travel", IncidentDate: "2024-09-24", IncidentLocation: "Nagpur, Maharashtra"},
	{ClaimID: "CLM_040", PolicyID: "EDLHLGA23009V012223", InsuredID: "INS_028", CoverageID: "EDL_002", Status: "SUBMITTED", ClaimDate: "2024-09-30", ClaimAmount: 13500, Description: "Prenatal care during second trimester", IncidentDate: "2024-09-29", IncidentLocation: "Indore, Madhya Pradesh"},
}

var seedMedicalProcedures = []MedicalProcedure{
	{ProcedureID: "PROC_001", ProcedureName: "Knee Surgery", Category: "Orthopedic", ProcedureType: "Accidental", IsCovered: true, Notes: "Covered only if due to accident"},
	{ProcedureID: "PROC_002", ProcedureName: "Heart Surgery", Category: "Cardiac", ProcedureType: "Medical", IsCovered: true, Notes: "Emergency only"},
	{ProcedureID: "PROC_003", ProcedureName: "Dental Treatment", Category: "Dental", ProcedureType: "Accidental", IsCovered: true, Notes: "Only for accidental injury"},
	{ProcedureID: "PROC_004", ProcedureName: "Cosmetic Surgery", Category: "Cosmetic", ProcedureType: "Elective", IsCovered: false, Notes: "Not covered unless medically necessary"},
	{ProcedureID: "PROC_005", ProcedureName: "Physiotherapy", Category: "Rehabilitation", ProcedureType: "Medical", IsCovered: true, Notes: "Covered during hospitalization"},
	{ProcedureID: "PROC_006", ProcedureName: "X-Ray", Category: "Diagnostic", ProcedureType: "Medical", IsCovered: true, Notes: "Covered during hospitalization"},
	{ProcedureID: "PROC_007", ProcedureName: "Emergency Root Canal", Category: "Dental", ProcedureType: "Emergency", IsCovered: true, Notes: "Covered as OPD treatment"},
	{ProcedureID: "PROC_008", ProcedureName: "MRI Scan", Category: "Diagnostic", ProcedureType: "Medical", IsCovered: true, Notes: "Covered for accident-related injuries"},
	{ProcedureID: "PROC_009", ProcedureName: "CT Scan", Category: "Diagnostic", ProcedureType: "Medical", IsCovered: true, Notes: "Covered for accident-related injuries"},
	{ProcedureID: "PROC_010", ProcedureName: "Blood Tests", Category: "Diagnostic", ProcedureType: "Medical", IsCovered: true, Notes: "Covered during treatment"},
	{ProcedureID: "PROC_011", ProcedureName: "Air Ambulance Transport", Category: "Emergency Transport", ProcedureType: "Emergency", IsCovered: true, Notes: "Maximum 150km distance"},
	{ProcedureID: "PROC_012", ProcedureName: "Prenatal Care", Category: "Maternity", ProcedureType: "Routine", IsCovered: true, Notes: "Routine medical care during pregnancy"},
	{ProcedureID: "PROC_013", ProcedureName: "Maternity Hospitalization", Category: "Maternity", ProcedureType: "Medical", IsCovered: true, Notes: "Care during maternity stay"},
	{ProcedureID: "PROC_014", ProcedureName: "Postnatal Care", Category: "Maternity", ProcedureType: "Routine", IsCovered: true, Notes: "Up to 30 days post-delivery"},
	{ProcedureID: "PROC_015", ProcedureName: "Newborn Examination", Category: "Pediatric", ProcedureType: "Routine", IsCovered: true, Notes: "Routine newborn examinations"},
	{ProcedureID: "PROC_016", ProcedureName: "Newborn Immunizations", Category: "Pediatric", ProcedureType: "Preventive", IsCovered: true, Notes: "Routine immunizations"},
	{ProcedureID: "PROC_017", ProcedureName: "Prenatal Diagnostics", Category: "Maternity", ProcedureType: "Diagnostic", IsCovered: true, Notes: "Diagnostic tests during pregnancy"},
	{ProcedureID: "PROC_018", ProcedureName: "Infertility Treatment", Category: "Reproductive", ProcedureType: "Elective", IsCovered: false, Notes: "Not covered under maternity policy"},
	{ProcedureID: "PROC_019", ProcedureName: "Pregnancy Pharmacy", Category: "Maternity", ProcedureType: "Medical", IsCovered: true, Notes: "Prescribed medications during pregnancy"},
	{ProcedureID: "PROC_020", ProcedureName: "Doctor Consultations - Maternity", Category: "Maternity", ProcedureType: "Medical", IsCovered: true, Notes: "Routine doctor visits"},
}

var seedRequiredDocuments = []RequiredDocument{
	{DocumentID: "DOC_001", CoverageID: "ALL", DocumentName: "Identity Proof", IsMandatory: true, Description: "Valid government issued identity document"},
	{DocumentID: "DOC_002", CoverageID: "ALL", DocumentName: "Address Proof", IsMandatory: true, Description: "Valid address verification document"},
	{DocumentID: "DOC_003", CoverageID: "ALL", DocumentName: "Policy Certificate Copy", IsMandatory: true, Description: "Copy of insurance policy certificate"},
	{DocumentID: "DOC_004", CoverageID: "ALL", DocumentName: "Claim Form", IsMandatory: true, Description: "Duly filled and signed claim form"},
	{DocumentID: "DOC_005", CoverageID: "ALL", DocumentName: "Bank Account Details", IsMandatory: true, Description: "Bank account information for claim settlement"},
	{DocumentID: "DOC_006", CoverageID: "BASE_001", DocumentName: "Medical Reports", IsMandatory: true, Description: "Hospital reports with diagnosis and treatment"},
	{DocumentID: "DOC_007", CoverageID: "BASE_001", DocumentName: "Hospital Bills", IsMandatory: true, Description: "Original bills with service descriptions"},
	{DocumentID: "DOC_008", CoverageID: "BASE_001", DocumentName: "FIR/MLC Copy", IsMandatory: true, Description: "Police report for accidents in public places"},
	{DocumentID: "DOC_009", CoverageID: "BASE_003", DocumentName: "Death Certificate", IsMandatory: true, Description: "Certificate clearly stating reason of death"},
	{DocumentID: "DOC_010", CoverageID: "BASE_003", DocumentName: "Post Mortem Report", IsMandatory: true, Description: "Required in case of accidental death"},
	{DocumentID: "DOC_011", CoverageID: "BASE_004,BASE_005", DocumentName: "Disability Certificate", IsMandatory: true, Description: "Certificate from civil surgeon"},
	{DocumentID: "DOC_012", CoverageID: "OPT_011", DocumentName: "Property Irregularity Report", IsMandatory: true, Description: "PIR from airline for baggage loss"},
	{DocumentID: "DOC_013", CoverageID: "OPT_005", DocumentName: "Dental Records", IsMandatory: true, Description: "Diagnosis and treatment details from dentist"},
	{DocumentID: "DOC_014", CoverageID: "ALL", DocumentName: "Travel Tickets", IsMandatory: true, Description: "Proof of travel during policy period"},
	{DocumentID: "DOC_015", CoverageID: "EDL_001", DocumentName: "Medical Practitioner Certificate", IsMandatory: true, Description: "Certification of life-threatening condition"},
	{DocumentID: "DOC_016", CoverageID: "EDL_001", DocumentName: "Air Ambulance License", IsMandatory: true, Description: "Proof of air ambulance provider license"},
	{DocumentID: "DOC_017", CoverageID: "EDL_001", DocumentName: "Distance Travel Proof", IsMandatory: true, Description: "Documentation showing actual distance"},
	{DocumentID: "DOC_018", CoverageID: "EDL_002,EDL_003,EDL_004", DocumentName: "Pregnancy Confirmation", IsMandatory: true, Description: "Medical confirmation of pregnancy"},
	{DocumentID: "DOC_019", CoverageID: "EDL_002,EDL_003,EDL_004", DocumentName: "Doctor Consultation Bills", IsMandatory: true, Description: "Bills for routine consultations"},
	{DocumentID: "DOC_020", CoverageID: "EDL_005", DocumentName: "Birth Certificate", IsMandatory: true, Description: "Official birth certificate of newborn"},
	{DocumentID: "DOC_021", CoverageID: "EDL_005", DocumentName: "Newborn Medical Records", IsMandatory: true, Description: "Medical records for newborn care"},
	{DocumentID: "DOC_022", CoverageID: "OPT_013,OPT_014", DocumentName: "Trip Booking Confirmation", IsMandatory: true, Description: "Original booking confirmation"},
	{DocumentID: "DOC_023", CoverageID: "OPT_018", DocumentName: "Flight Delay Certificate", IsMandatory: true, Description: "Official delay certificate from airline"},
	{DocumentID: "DOC_024", CoverageID: "OPT_002", DocumentName: "Medical Evacuation Authorization", IsMandatory: true, Description: "Pre-authorization for evacuation"},
	{DocumentID: "DOC_025", CoverageID: "OPT_006", DocumentName: "Hospitalization Certificate", IsMandatory: true, Description: "Certificate confirming hospitalization period"},
}

var seedMedicalProviders = []MedicalProvider{
	{ProviderID: "PROV_001", Name: "Apollo Hospital", Type: "HOSPITAL", City: "Mumbai", State: "Maharashtra", IsNetwork: "Yes", Rating: "A+", ContactInfo: "+91-22-26926666"},
	{ProviderID: "PROV_002", Name: "Fortis Healthcare", Type: "HOSPITAL", City: "Delhi", State: "Delhi", IsNetwork: "Yes", Rating: "A+", ContactInfo: "+91-11-47135000"},
	{ProviderID: "PROV_003", Name: "Manipal Hospital", Type: "HOSPITAL", City: "Bangalore", State: "Karnataka", IsNetwork: "Yes", Rating: "A", ContactInfo: "+91-80-25022000"},
	{ProviderID: "PROV_004", Name: "Max Healthcare", Type: "HOSPITAL", City: "Gurgaon", State: "Haryana", IsNetwork: "Yes", Rating: "A+", ContactInfo: "+91-124-4511111"},
	{ProviderID: "PROV_005", Name: "AIIMS", Type: "HOSPITAL", City: "Delhi", State: "Delhi", IsNetwork: "No", Rating: "A+", ContactInfo: "+91-11-26588500"},
	{ProviderID: "PROV_006", Name: "Air Rescue Services", Type: "AIR_AMBULANCE", City: "Mumbai", State: "Maharashtra", IsNetwork: "Yes", Rating: "A+", ContactInfo: "+91-22-28370000"},
	{ProviderID: "PROV_007", Name: "Sky Ambulance India", Type: "AIR_AMBULANCE", City: "Delhi", State: "Delhi", IsNetwork: "Yes", Rating: "A+", ContactInfo: "+91-11-41111111"},
	{ProviderID: "PROV_008", Name: "Dr. Rajesh Kumar", Type: "DOCTOR", City: "Mumbai", State: "Maharashtra", IsNetwork: "Yes", Rating: "A", ContactInfo: "+91-22-26567001"},
	{ProviderID: "PROV_009", Name: "Dr. Priya Sharma", Type: "DOCTOR", City: "Delhi", State: "Delhi", IsNetwork: "Yes", Rating: "A", ContactInfo: "+91-11-26567002"},
	{ProviderID: "PROV_010", Name: "Dr. Amit Patel", Type: "DOCTOR", City: "Ahmedabad", State: "Gujarat", IsNetwork: "Yes", Rating: "A", ContactInfo: "+91-79-26567003"},
	{ProviderID: "PROV_011", Name: "Ruby Hall Clinic", Type: "HOSPITAL", City: "Pune", State: "Maharashtra", IsNetwork: "Yes", Rating: "A", ContactInfo: "+91-20-26127777"},
	{ProviderID: "PROV_012", Name: "Medanta Hospital", Type: "HOSPITAL", City: "Gurgaon", State: "Haryana", IsNetwork: "Yes", Rating: "A+", ContactInfo: "+91-124-4141414"},
	{ProviderID: "PROV_013", Name: "Lilavati Hospital", Type: "HOSPITAL", City: "Mumbai", State: "Maharashtra", IsNetwork: "Yes", Rating: "A", ContactInfo: "+91-22-26567777"},
	{ProviderID: "PROV_014", Name: "CMC Vellore", Type: "HOSPITAL", City: "Vellore", State: "Tamil Nadu", IsNetwork: "Yes", Rating: "A+", ContactInfo: "+91-416-2281000"},
	{ProviderID: "PROV_015", Name: "Narayana Health", Type: "HOSPITAL", City: "Bangalore", State: "Karnataka", IsNetwork: "Yes", Rating: "A", ContactInfo: "+91-80-22222200"},
}

var seedExclusions = []Exclusion{
	{ExclusionID: "EXC_001", ExclusionName: "Pre-existing Disease", ExclusionType: "Medical", Description: "Any condition diagnosed within 48 months prior", ApplicableCoverage: "ALL", Severity: "HIGH"},
	{ExclusionID: "EXC_002", ExclusionName: "War and War-like Operations", ExclusionType: "General", Description: "War, invasion, civil war, rebellion", ApplicableCoverage: "ALL", Severity: "HIGH"},
	{ExclusionID: "EXC_003", ExclusionName: "Adventure Sports", ExclusionType: "Activity", Description: "Skydiving, bungee jumping, mountaineering", ApplicableCoverage: "BASE_001,BASE_003", Severity: "HIGH"},
	{ExclusionID: "EXC_004", ExclusionName: "Pregnancy and Childbirth", ExclusionType: "Medical", Description: "Pregnancy costs in travel insurance", ApplicableCoverage: "BASE_001,OPT_001", Severity: "HIGH"},
	{ExclusionID: "EXC_005", ExclusionName: "Intoxication", ExclusionType: "Behavioral", Description: "Under influence of alcohol or drugs", ApplicableCoverage: "ALL", Severity: "HIGH"},
	{ExclusionID: "EXC_006", ExclusionName: "Cosmetic Treatment", ExclusionType: "Medical", Description: "Cosmetic surgery unless medically required", ApplicableCoverage: "BASE_001,OPT_001", Severity: "MEDIUM"},
	{ExclusionID: "EXC_007", ExclusionName: "Terrorism", ExclusionType: "Security", Description: "Acts of terrorism except specific covers", ApplicableCoverage: "ALL", Severity: "HIGH"},
	{ExclusionID: "EXC_008", ExclusionName: "Air Ambulance Distance Limit", ExclusionType: "Geographic", Description: "Proportionate payment over 150km", ApplicableCoverage: "EDL_001", Severity: "MEDIUM"},
	{ExclusionID: "EXC_009", ExclusionName: "Infertility Treatment", ExclusionType: "Medical", Description: "Not covered under maternity policy", ApplicableCoverage: "EDL_002,EDL_003,EDL_004", Severity: "HIGH"},
	{ExclusionID: "EXC_010", ExclusionName: "Criminal Activities", ExclusionType: "Legal", Description: "Injuries during criminal activities", ApplicableCoverage: "ALL", Severity: "HIGH"},
	{ExclusionID: "EXC_011", ExclusionName: "Nuclear Risks", ExclusionType: "Environmental", Description: "Ionizing radiation or contamination", ApplicableCoverage: "ALL", Severity: "HIGH"},
	{ExclusionID: "EXC_012", ExclusionName: "Congenital Diseases", ExclusionType: "Medical", Description: "Congenital external diseases and defects", ApplicableCoverage: "ALL", Severity: "HIGH"},
	{ExclusionID: "EXC_013", ExclusionName: "Mental Health Disorders", ExclusionType: "Medical", Description: "Psychiatric illnesses and mental disorders", ApplicableCoverage: "BASE_001,OPT_001", Severity: "HIGH"},
	{ExclusionID: "EXC_014", ExclusionName: "Experimental Treatments", ExclusionType: "Medical", Description: "Treatments not based on established practice", ApplicableCoverage: "ALL", Severity: "HIGH"},
	{ExclusionID: "EXC_015", ExclusionName: "Hazardous Occupations", ExclusionType: "Occupational", Description: "Injuries during hazardous work", ApplicableCoverage: "BASE_003,BASE_004,BASE_005", Severity: "HIGH"},
}

var seedPolicyRules = []PolicyRule{
	{RuleID: "RULE_001", RuleName: "Age Eligibility", RuleType: "ELIGIBILITY", CoverageID: "BASE_001", RuleCondition: "age >= 0.25 AND age <= 90", RuleResult: "ELIGIBLE", Priority: 1, IsActive: true},
	{RuleID: "RULE_002", RuleName: "Trip Duration Limit", RuleType: "DURATION", CoverageID: "ALL", RuleCondition: "trip_duration <= 365", RuleResult: "ELIGIBLE", Priority: 1, IsActive: true},
	{RuleID: "RULE_003", RuleName: "India Territory Only", RuleType: "GEOGRAPHIC", CoverageID: "ALL", RuleCondition: "incident_location IN India", RuleResult: "ELIGIBLE", Priority: 1, IsActive: true},
	{RuleID: "RULE_004", RuleName: "Hospitalization Minimum", RuleType: "DURATION", CoverageID: "BASE_001", RuleCondition: "hospitalization_hours >= 24", RuleResult: "ELIGIBLE", Priority: 2, IsActive: true},
	{RuleID: "RULE_005", RuleName: "Air Ambulance Distance", RuleType: "GEOGRAPHIC", CoverageID: "EDL_001", RuleCondition: "distance_km <= 150", RuleResult: "ELIGIBLE", Priority: 1, IsActive: true},
	{RuleID: "RULE_006", RuleName: "Well Mother Age", RuleType: "ELIGIBILITY", CoverageID: "EDL_002,EDL_003,EDL_004", RuleCondition: "age >= 18 AND age <= 50", RuleResult: "ELIGIBLE", Priority: 1, IsActive: true},
	{RuleID: "RULE_007", RuleName: "Newborn Age Limit", RuleType: "ELIGIBILITY", CoverageID: "EDL_005", RuleCondition: "age_days <= 30", RuleResult: "ELIGIBLE", Priority: 1, IsActive: true},
	{RuleID: "RULE_008", RuleName: "Policy Validity", RuleType: "ADMINISTRATIVE", CoverageID: "ALL", RuleCondition: "incident_date BETWEEN start_date AND end_date", RuleResult: "ELIGIBLE", Priority: 1, IsActive: true},
	{RuleID: "RULE_009", RuleName: "Sum Insured Limit", RuleType: "FINANCIAL", CoverageID: "ALL", RuleCondition: "claim_amount <= sum_insured", RuleResult: "ELIGIBLE", Priority: 1, IsActive: true},
	{RuleID: "RULE_010", RuleName: "Claim Notification Time", RuleType: "ADMINISTRATIVE", CoverageID: "ALL", RuleCondition: "notification_days <= 30", RuleResult: "ELIGIBLE", Priority: 1, IsActive: true},
	{RuleID: "RULE_011", RuleName: "Pre-existing Condition Check", RuleType: "MEDICAL", CoverageID: "BASE_001", RuleCondition: "has_pre_existing = True AND not_life_threatening = True", RuleResult: "EXCLUDED", Priority: 1, IsActive: true},
	{RuleID: "RULE_012", RuleName: "Dental - Accidental Only", RuleType: "MEDICAL", CoverageID: "OPT_005", RuleCondition: "dental_cause != \"ACCIDENT\"", RuleResult: "EXCLUDED", Priority: 1, IsActive: true},
	{RuleID: "RULE_013", RuleName: "Baggage - Airways Only", RuleType: "TRANSPORT", CoverageID: "OPT_011", RuleCondition: "transport_mode != \"AIRWAYS\"", RuleResult: "EXCLUDED", Priority: 1, IsActive: true},
	{RuleID: "RULE_014", RuleName: "Medical Practitioner Validity", RuleType: "REGULATORY", CoverageID: "ALL", RuleCondition: "medical_practitioner_licensed = True", RuleResult: "ELIGIBLE", Priority: 1, IsActive: true},
	{RuleID: "RULE_015", RuleName: "Treatment Delay Assessment", RuleType: "MEDICAL", CoverageID: "BASE_001,OPT_001", RuleCondition: "treatment_can_be_delayed = True", RuleResult: "EXCLUDED", Priority: 2, IsActive: true},
}

var seedPreexistingConditions = []PreexistingCondition{
	{ConditionID: "COND_001", InsuredID: "INS_005", ConditionName: "Diabetes Type 2", DiagnosedDate: "2020-03-15", Severity: "MODERATE", IsDisclosed: true, TreatmentHistory: "Under medication control"},
	{ConditionID: "COND_002", InsuredID: "INS_012", ConditionName: "Hypertension", DiagnosedDate: "2019-08-20", Severity: "MILD", IsDisclosed: true, TreatmentHistory: "Regular medication"},
	{ConditionID: "COND_003", InsuredID: "INS_014", ConditionName: "Asthma", DiagnosedDate: "2018-12-10", Severity: "MODERATE", IsDisclosed: true, TreatmentHistory: "Inhaler treatment"},
	{ConditionID: "COND_004", InsuredID: "INS_003", ConditionName: "Heart Disease", DiagnosedDate: "2021-01-25", Severity: "SEVERE", IsDisclosed: true, TreatmentHistory: "Cardiac medication"},
	{ConditionID: "COND_005", InsuredID: "INS_023", ConditionName: "Arthritis", DiagnosedDate: "2020-09-12", Severity: "MODERATE", IsDisclosed: true, TreatmentHistory: "Anti-inflammatory treatment"},
	{ConditionID: "COND_006", InsuredID: "INS_008", ConditionName: "Thyroid Disorder", DiagnosedDate: "2020-06-18", Severity: "MILD", IsDisclosed: true, TreatmentHistory: "Hormone replacement therapy"},
	{ConditionID: "COND_007", InsuredID: "INS_019", ConditionName: "High Cholesterol", DiagnosedDate: "2019-11-30", Severity: "MODERATE", IsDisclosed: true, TreatmentHistory: "Statin medication"},
	{ConditionID: "COND_008", InsuredID: "INS_015", ConditionName: "Migraine", DiagnosedDate: "2018-05-07", Severity: "MILD", IsDisclosed: true, TreatmentHistory: "Preventive medication"},
	{ConditionID: "COND_009", InsuredID: "INS_027", ConditionName: "Sleep Apnea", DiagnosedDate: "2021-03-22", Severity: "MODERATE", IsDisclosed: true, TreatmentHistory: "CPAP therapy"},
	{ConditionID: "COND_010", InsuredID: "INS_011", ConditionName: "Kidney Stones", DiagnosedDate: "2019-07-14", Severity: "MILD", IsDisclosed: true, TreatmentHistory: "Dietary management"},
}

var seedClaimDocuments = []ClaimDocument{
	{ClaimID: "CLM_001", DocumentID: "DOC_001", SubmissionDate: "2024-03-16", Status: "SUBMITTED", Notes: "Identity verified"},
	{ClaimID: "CLM_001", DocumentID: "DOC_006", SubmissionDate: "2024-03-16", Status: "SUBMITTED", Notes: "Medical reports complete"},
	{ClaimID: "CLM_001", DocumentID: "DOC_007", SubmissionDate: "2024-03-16", Status: "VERIFIED", Notes: "Bills verified"},
	{ClaimID: "CLM_001", DocumentID: "DOC_014", SubmissionDate: "2024-03-16", Status: "VERIFIED", Notes: "Travel tickets verified"},
	{ClaimID: "CLM_002", DocumentID: "DOC_009", SubmissionDate: "2024-03-21", Status: "SUBMITTED", Notes: "Death certificate submitted"},
	{ClaimID: "CLM_002", DocumentID: "DOC_010", SubmissionDate: "2024-03-22", Status: "VERIFIED", Notes: "Post mortem report verified"},
	{ClaimID: "CLM_002", DocumentID: "DOC_014", SubmissionDate: "2024-03-21", Status: "VERIFIED", Notes: "Travel proof verified"},
	{ClaimID: "CLM_003", DocumentID: "DOC_006", SubmissionDate: "2024-03-26", Status: "SUBMITTED", Notes: "Medical reports pending review"},
	{ClaimID: "CLM_003", DocumentID: "DOC_007", SubmissionDate: "2024-03-26", Status: "SUBMITTED", Notes: "Bills under verification"},
	{ClaimID: "CLM_004", DocumentID: "DOC_012", SubmissionDate: "2024-04-02", Status: "INCOMPLETE", Notes: "PIR missing details"},
	{ClaimID: "CLM_004", DocumentID: "DOC_014", SubmissionDate: "2024-04-02", Status: "SUBMITTED", Notes: "Travel documents submitted"},
	{ClaimID: "CLM_005", DocumentID: "DOC_011", SubmissionDate: "2024-04-06", Status: "VERIFIED", Notes: "Disability certificate verified"},
	{ClaimID: "CLM_005", DocumentID: "DOC_008", SubmissionDate: "2024-04-06", Status: "VERIFIED", Notes: "FIR copy verified"},
	{ClaimID: "CLM_006", DocumentID: "DOC_015", SubmissionDate: "2024-04-11", Status: "SUBMITTED", Notes: "Medical certificate submitted"},
	{ClaimID: "CLM_006", DocumentID: "DOC_016", SubmissionDate: "2024-04-11", Status: "PENDING", Notes: "Air ambulance license pending"},
	{ClaimID: "CLM_006", DocumentID: "DOC_017", SubmissionDate: "2024-04-11", Status: "SUBMITTED", Notes: "Distance proof submitted"},
	{ClaimID: "CLM_007", DocumentID: "DOC_018", SubmissionDate: "2024-04-16", Status: "VERIFIED", Notes: "Pregnancy confirmation verified"},
	{ClaimID: "CLM_007", DocumentID: "DOC_019", SubmissionDate: "2024-04-16", Status: "VERIFIED", Notes: "Consultation bills verified"},
	{ClaimID: "CLM_008", DocumentID: "DOC_020", SubmissionDate: "2024-04-21", Status: "VERIFIED", Notes: "Birth certificate verified"},
	{ClaimID: "CLM_008", DocumentID: "DOC_021", SubmissionDate: "2024-04-21", Status: "VERIFIED", Notes: "Newborn records verified"},
	{ClaimID: "CLM_009", DocumentID: "DOC_018", SubmissionDate: "2024-04-26", Status: "VERIFIED", Notes: "Pregnancy documents verified"},
	{ClaimID: "CLM_009", DocumentID: "DOC_019", SubmissionDate: "2024-04-26", Status: "VERIFIED", Notes: "Bills verified"},
	{ClaimID: "CLM_010", DocumentID: "DOC_018", SubmissionDate: "2024-05-02", Status: "SUBMITTED", Notes: "Pregnancy confirmation submitted"},
	{ClaimID: "CLM_011", DocumentID: "DOC_024", SubmissionDate: "2024-05-06", Status: "VERIFIED", Notes: "Evacuation authorization verified"},
	{ClaimID: "CLM_013", DocumentID: "DOC_013", SubmissionDate: "2024-05-16", Status: "VERIFIED", Notes: "Dental records verified"},
	{ClaimID: "CLM_013", DocumentID: "DOC_008", SubmissionDate: "2024-05-16", Status: "VERIFIED", Notes: "Accident report verified"},
	{ClaimID: "CLM_015", DocumentID: "DOC_023", SubmissionDate: "2024-05-26", Status: "VERIFIED", Notes: "Flight delay certificate verified"},
	{ClaimID: "CLM_015", DocumentID: "DOC_014", SubmissionDate: "2024-05-26", Status: "VERIFIED", Notes: "Travel documents verified"},
}

var seedClaimAssessments = []ClaimAssessment{
	{AssessmentID: "ASMT_001", ClaimID: "CLM_001", AssessorID: "ASR_001", AssessmentDate: "2024-03-18", Status: "APPROVED", RecommendedAmount: 25000, ApprovedAmount: 25000, Remarks: "Claim meets all policy criteria"},
	{AssessmentID: "ASMT_002", ClaimID: "CLM_002", AssessorID: "ASR_002", AssessmentDate: "2024-03-23", Status: "APPROVED", RecommendedAmount: 500000, ApprovedAmount: 500000, Remarks: "Valid accidental death claim"},
	{AssessmentID: "ASMT_003", ClaimID: "CLM_003", AssessorID: "ASR_001", AssessmentDate: "2024-03-28", Status: "UNDER_REVIEW", RecommendedAmount: 15000, Remarks: "Reviewing medical necessity"},
	{AssessmentID: "ASMT_004", ClaimID: "CLM_004", AssessorID: "ASR_003", AssessmentDate: "2024-04-05", Status: "REJECTED", RecommendedAmount: 8000, Remarks: "Insufficient documentation"},
	{AssessmentID: "ASMT_005", ClaimID: "CLM_005", AssessorID: "ASR_002", AssessmentDate: "2024-04-08", Status: "APPROVED", RecommendedAmount: 300000, ApprovedAmount: 300000, Remarks: "Permanent disability confirmed"},
	{AssessmentID: "ASMT_006", ClaimID: "CLM_006", AssessorID: "ASR_004", AssessmentDate: "2024-04-13", Status: "UNDER_REVIEW", RecommendedAmount: 45000, Remarks: "Verifying distance and necessity"},
	{AssessmentID: "ASMT_007", ClaimID: "CLM_007", AssessorID: "ASR_005", AssessmentDate: "2024-04-18", Status: "APPROVED", RecommendedAmount: 12000, ApprovedAmount: 12000, Remarks: "Prenatal care approved"},
	{AssessmentID: "ASMT_008", ClaimID: "CLM_008", AssessorID: "ASR_005", AssessmentDate: "2024-04-23", Status: "APPROVED", RecommendedAmount: 8000, ApprovedAmount: 8000, Remarks: "Newborn care approved"},
	{AssessmentID: "ASMT_009", ClaimID: "CLM_009", AssessorID: "ASR_005", AssessmentDate: "2024-04-28", Status: "APPROVED", RecommendedAmount: 18000, ApprovedAmount: 18000, Remarks: "Maternity care approved"},
	{AssessmentID: "ASMT_010", ClaimID: "CLM_011", AssessorID: "ASR_001", AssessmentDate: "2024-05-08", Status: "APPROVED", RecommendedAmount: 35000, ApprovedAmount: 35000, Remarks: "Medical evacuation justified"},
	{AssessmentID: "ASMT_011", ClaimID: "CLM_012", AssessorID: "ASR_003", AssessmentDate: "2024-05-13", Status: "REJECTED", RecommendedAmount: 20000, Remarks: "Condition not life-threatening"},
	{AssessmentID: "ASMT_012", ClaimID: "CLM_013", AssessorID: "ASR_001", AssessmentDate: "2024-05-18", Status: "APPROVED", RecommendedAmount: 5000, ApprovedAmount: 5000, Remarks: "Emergency dental valid"},
	{AssessmentID: "ASMT_013", ClaimID: "CLM_015", AssessorID: "ASR_001", AssessmentDate: "2024-05-28", Status: "APPROVED", RecommendedAmount: 3000, ApprovedAmount: 3000, Remarks: "Flight delay approved"},
	{AssessmentID: "ASMT_014", ClaimID: "CLM_017", AssessorID: "ASR_005", AssessmentDate: "2024-06-08", Status: "APPROVED", RecommendedAmount: 9500, ApprovedAmount: 9500, Remarks: "Prenatal diagnostics approved"},
	{AssessmentID: "ASMT_015", ClaimID: "CLM_018", AssessorID: "ASR_005", AssessmentDate: "2024-06-13", Status: "APPROVED", RecommendedAmount: 6500, ApprovedAmount: 6500, Remarks: "Newborn immunizations approved"},
	{AssessmentID: "ASMT_016", ClaimID: "CLM_020", AssessorID: "ASR_005", AssessmentDate: "2024-06-23", Status: "APPROVED", RecommendedAmount: 25000, ApprovedAmount: 25000, Remarks: "Complete maternity care approved"},
	{AssessmentID: "ASMT_017", ClaimID: "CLM_022", AssessorID: "ASR_002", AssessmentDate: "2024-07-03", Status: "APPROVED", RecommendedAmount: 75000, ApprovedAmount: 75000, Remarks: "Partial disability compensation approved"},
	{AssessmentID: "ASMT_018", ClaimID: "CLM_023", AssessorID: "ASR_001", AssessmentDate: "2024-07-08", Status: "APPROVED", RecommendedAmount: 4000, ApprovedAmount: 4000, Remarks: "Daily allowance approved"},
	{AssessmentID: "ASMT_019", ClaimID: "CLM_025", AssessorID: "ASR_003", AssessmentDate: "2024-07-18", Status: "APPROVED", RecommendedAmount: 12000, ApprovedAmount: 12000, Remarks: "Baggage loss approved"},
	{AssessmentID: "ASMT_020", ClaimID: "CLM_026", AssessorID: "ASR_005", AssessmentDate: "2024-07-23", Status: "APPROVED", RecommendedAmount: 16500, ApprovedAmount: 16500, Remarks: "Maternity care approved"},
}

var seedClaimHistory = []ClaimHistory{
	{ClaimID: "CLM_001", StatusFrom: "SUBMITTED", StatusTo: "UNDER_REVIEW", ChangedBy: "ASR_001", ChangeDate: "2024-03-16 10:00:00", Remarks: "Initial review started"},
	{ClaimID: "CLM_001", StatusFrom: "UNDER_REVIEW", StatusTo: "APPROVED", ChangedBy: "ASR_001", ChangeDate: "2024-03-18 14:30:00", Remarks: "All documents verified"},
	{ClaimID: "CLM_002", StatusFrom: "SUBMITTED", StatusTo: "UNDER_REVIEW", ChangedBy: "ASR_002", ChangeDate: "2024-03-21 09:15:00", Remarks: "Death claim investigation"},
	{ClaimID: "CLM_002", StatusFrom: "UNDER_REVIEW", StatusTo: "APPROVED", ChangedBy: "ASR_002", ChangeDate: "2024-03-23 16:45:00", Remarks: "Investigation complete"},
	{ClaimID: "CLM_003", StatusFrom: "SUBMITTED", StatusTo: "UNDER_REVIEW", ChangedBy: "ASR_001", ChangeDate: "2024-03-26 11:20:00", Remarks: "Medical review required"},
	{ClaimID: "CLM_004", StatusFrom: "SUBMITTED", StatusTo: "UNDER_REVIEW", ChangedBy: "ASR_003", ChangeDate: "2024-04-02 08:30:00", Remarks: "Document verification"},
	{ClaimID: "CLM_004", StatusFrom: "UNDER_REVIEW", StatusTo: "REJECTED", ChangedBy: "ASR_003", ChangeDate: "2024-04-05 15:00:00", Remarks: "Insufficient documentation"},
	{ClaimID: "CLM_005", StatusFrom: "SUBMITTED", StatusTo: "APPROVED", ChangedBy: "ASR_002", ChangeDate: "2024-04-08 12:00:00", Remarks: "Disability confirmed"},
	{ClaimID: "CLM_006", StatusFrom: "SUBMITTED", StatusTo: "UNDER_REVIEW", ChangedBy: "ASR_004", ChangeDate: "2024-04-11 09:45:00", Remarks: "Distance verification needed"},
	{ClaimID: "CLM_007", StatusFrom: "SUBMITTED", StatusTo: "APPROVED", ChangedBy: "ASR_005", ChangeDate: "2024-04-18 13:30:00", Remarks: "Prenatal care approved"},
	{ClaimID: "CLM_008", StatusFrom: "SUBMITTED", StatusTo: "APPROVED", ChangedBy: "ASR_005", ChangeDate: "2024-04-23 10:15:00", Remarks: "Newborn care approved"},
	{ClaimID: "CLM_009", StatusFrom: "SUBMITTED", StatusTo: "APPROVED", ChangedBy: "ASR_005", ChangeDate: "2024-04-28 14:00:00", Remarks: "Maternity approved"},
	{ClaimID: "CLM_011", StatusFrom: "SUBMITTED", StatusTo: "APPROVED", ChangedBy: "ASR_001", ChangeDate: "2024-05-08 11:30:00", Remarks: "Evacuation justified"},
	{ClaimID: "CLM_012", StatusFrom: "SUBMITTED", StatusTo: "REJECTED", ChangedBy: "ASR_003", ChangeDate: "2024-05-13 16:15:00", Remarks: "Not life-threatening"},
	{ClaimID: "CLM_013", StatusFrom: "SUBMITTED", StatusTo: "APPROVED", ChangedBy: "ASR_001", ChangeDate: "2024-05-18 12:45:00", Remarks: "Emergency dental valid"},
}
