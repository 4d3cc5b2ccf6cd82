package constants

// ReceiptStatus is the canonical status for rows in receipts.
type ReceiptStatus string

// Stable values (store these exact strings in DB).
const (
	ReceiptStatusUploaded ReceiptStatus = "UPLOADED" // stored, not yet parsed
	ReceiptStatusParsed   ReceiptStatus = "PARSED"   // extraction pipeline completed
	ReceiptStatusReview   ReceiptStatus = "REVIEW"   // parsed but vendor or card unresolved
	ReceiptStatusFailed   ReceiptStatus = "FAILED"   // input bytes unreadable
)

// JobStatus is the status of a client job (work site).
type JobStatus string

const (
	JobStatusActive    JobStatus = "ACTIVE"
	JobStatusCompleted JobStatus = "COMPLETED"
	JobStatusArchived  JobStatus = "ARCHIVED"
)
