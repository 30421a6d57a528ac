package domain

// JobStatus is the lifecycle state reported for an analysis operation.
type JobStatus string

const (
	JobStatusNotStarted JobStatus = "notStarted"
	JobStatusRunning    JobStatus = "running"
	JobStatusSucceeded  JobStatus = "succeeded"
	JobStatusFailed     JobStatus = "failed"
	JobStatusCanceled   JobStatus = "canceled"
)

// IsTerminal reports whether no further polling is needed.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusSucceeded, JobStatusFailed, JobStatusCanceled:
		return true
	default:
		return false
	}
}

// ValueSlot names one of the typed containers a recognized field can carry
// its value in.
type ValueSlot string

const (
	SlotString        ValueSlot = "valueString"
	SlotDate          ValueSlot = "valueDate"
	SlotNumber        ValueSlot = "valueNumber"
	SlotCountryRegion ValueSlot = "valueCountryRegion"
	SlotGeneric       ValueSlot = "value"
)

// SlotPriority is the order in which value slots are consulted when
// resolving a field to a single scalar.
var SlotPriority = []ValueSlot{
	SlotString,
	SlotDate,
	SlotNumber,
	SlotCountryRegion,
	SlotGeneric,
}

// Well-known field names produced by the prebuilt identity document model.
const (
	FieldFirstName        = "FirstName"
	FieldLastName         = "LastName"
	FieldFullName         = "FullName"
	FieldDocumentNumber   = "DocumentNumber"
	FieldIdentityNumber   = "IdentityNumber"
	FieldDateOfBirth      = "DateOfBirth"
	FieldNationality      = "Nationality"
	FieldDateOfExpiration = "DateOfExpiration"
)
