package constants

// ScanAction is the action recorded in a scan_log row.
type ScanAction string

// Stable values (store these exact strings in DB).
const (
	ActionScan            ScanAction = "scan"
	ActionReviewGenerated ScanAction = "review_generated"
	ActionReviewSubmitted ScanAction = "review_submitted"
)

// ScanActions lists every valid action, for schema validation.
var ScanActions = []string{
	string(ActionScan),
	string(ActionReviewGenerated),
	string(ActionReviewSubmitted),
}

// ReviewSourceGenerated marks a permanent review as machine-assisted.
const ReviewSourceGenerated = "auto-generated"
