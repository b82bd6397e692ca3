package model

// CaseStatus is the lifecycle state of a case record.
type CaseStatus string

const (
	CaseStatusOpen       CaseStatus = "open"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusOnHold     CaseStatus = "on_hold"
	CaseStatusResolved   CaseStatus = "resolved"
	CaseStatusClosed     CaseStatus = "closed"
)

func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusOpen, CaseStatusInProgress, CaseStatusOnHold, CaseStatusResolved, CaseStatusClosed:
		return true
	}
	return false
}

// Complexity grades the effort a case is expected to need.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

func (c Complexity) IsValid() bool {
	switch c {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		return true
	}
	return false
}

// TodoStatus is the lifecycle state of a todo record.
type TodoStatus string

const (
	TodoStatusPending    TodoStatus = "pending"
	TodoStatusInProgress TodoStatus = "in_progress"
	TodoStatusDone       TodoStatus = "done"
	TodoStatusCancelled  TodoStatus = "cancelled"
)

func (s TodoStatus) IsValid() bool {
	switch s {
	case TodoStatusPending, TodoStatusInProgress, TodoStatusDone, TodoStatusCancelled:
		return true
	}
	return false
}

// AuditOperation is the kind of access an audit entry records.
type AuditOperation string

const (
	OperationInsert AuditOperation = "INSERT"
	OperationUpdate AuditOperation = "UPDATE"
	OperationDelete AuditOperation = "DELETE"
	OperationSelect AuditOperation = "SELECT"
)

func (o AuditOperation) IsValid() bool {
	switch o {
	case OperationInsert, OperationUpdate, OperationDelete, OperationSelect:
		return true
	}
	return false
}

// ParentType identifies what a time entry is booked against.
type ParentType string

const (
	ParentCase ParentType = "case"
	ParentTodo ParentType = "todo"
)
