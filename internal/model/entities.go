package model

import (
	"time"

	"github.com/google/uuid"
)

// Actor is an authenticated operator of the system.
type Actor struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	RoleID       uuid.UUID `db:"role_id" json:"role_id"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Role groups permissions. Admin roles resolve to an unrestricted scope.
type Role struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	IsAdmin     bool      `db:"is_admin" json:"is_admin"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Permission grants a role one action on one module.
type Permission struct {
	ID        uuid.UUID `db:"id" json:"id"`
	RoleID    uuid.UUID `db:"role_id" json:"role_id"`
	Module    string    `db:"module" json:"module"`
	Action    string    `db:"action" json:"action"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CatalogItem is a row of one of the reference catalogs
// (applications, origins, priorities).
type CatalogItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	Rank        int       `db:"rank" json:"rank"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CaseRecord is a tracked case.
type CaseRecord struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	CaseNumber          string     `db:"case_number" json:"case_number"`
	Title               string     `db:"title" json:"title"`
	Description         *string    `db:"description" json:"description,omitempty"`
	OwnerActorID        uuid.UUID  `db:"owner_actor_id" json:"owner_actor_id"`
	AssignedToActorID   *uuid.UUID `db:"assigned_to_actor_id" json:"assigned_to_actor_id,omitempty"`
	ApplicationID       uuid.UUID  `db:"application_id" json:"application_id"`
	OriginID            uuid.UUID  `db:"origin_id" json:"origin_id"`
	PriorityID          uuid.UUID  `db:"priority_id" json:"priority_id"`
	Status              CaseStatus `db:"status" json:"status"`
	Complexity          Complexity `db:"complexity" json:"complexity"`
	ClassificationScore float64    `db:"classification_score" json:"classification_score"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`
}

// TodoRecord is a unit of work, optionally attached to a case.
type TodoRecord struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	Title             string     `db:"title" json:"title"`
	Description       *string    `db:"description" json:"description,omitempty"`
	PriorityID        uuid.UUID  `db:"priority_id" json:"priority_id"`
	AssignedToActorID uuid.UUID  `db:"assigned_to_actor_id" json:"assigned_to_actor_id"`
	CreatedByActorID  uuid.UUID  `db:"created_by_actor_id" json:"created_by_actor_id"`
	CaseID            *uuid.UUID `db:"case_id" json:"case_id,omitempty"`
	Status            TodoStatus `db:"status" json:"status"`
	DueAt             *time.Time `db:"due_at" json:"due_at,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// TimeEntry is time booked by an actor against exactly one case or todo.
// A nil EndTime means the timer is still running.
type TimeEntry struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	OwnerActorID    uuid.UUID  `db:"owner_actor_id" json:"owner_actor_id"`
	CaseID          *uuid.UUID `db:"case_id" json:"case_id,omitempty"`
	TodoID          *uuid.UUID `db:"todo_id" json:"todo_id,omitempty"`
	StartTime       time.Time  `db:"start_time" json:"start_time"`
	EndTime         *time.Time `db:"end_time" json:"end_time,omitempty"`
	DurationSeconds int64      `db:"duration_seconds" json:"duration_seconds"`
	Note            *string    `db:"note" json:"note,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// Parent returns the parent type and id. ok is false unless exactly one
// parent column is set.
func (t TimeEntry) Parent() (ParentType, uuid.UUID, bool) {
	switch {
	case t.CaseID != nil && t.TodoID == nil:
		return ParentCase, *t.CaseID, true
	case t.TodoID != nil && t.CaseID == nil:
		return ParentTodo, *t.TodoID, true
	}
	return "", uuid.Nil, false
}

// AuditEntry is an immutable record of one access to a table.
type AuditEntry struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	TableName   string         `db:"table_name" json:"table_name"`
	Operation   AuditOperation `db:"operation" json:"operation"`
	RecordID    *uuid.UUID     `db:"record_id" json:"record_id,omitempty"`
	ActorID     *uuid.UUID     `db:"actor_id" json:"actor_id,omitempty"`
	Before      JSON           `db:"before_snapshot" json:"before,omitempty"`
	After       JSON           `db:"after_snapshot" json:"after,omitempty"`
	Description string         `db:"description" json:"description"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}
