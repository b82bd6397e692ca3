package schema

// ---------------------------------------------------------------------------
// roles / permissions / actors
// ---------------------------------------------------------------------------

type rolesTable struct {
	Name        Table
	ID          Column
	RoleName    Column
	Description Column
	IsAdmin     Column
	IsActive    Column
	CreatedAt   Column
	UpdatedAt   Column
}

func (t rolesTable) Columns() []string {
	return qualified(t.ID, t.RoleName, t.Description, t.IsAdmin, t.IsActive, t.CreatedAt, t.UpdatedAt)
}

func (t rolesTable) InsertColumns() []string {
	return bare(t.RoleName, t.Description, t.IsAdmin, t.IsActive)
}

var Roles = rolesTable{
	Name:        "roles",
	ID:          Column{"roles", "id"},
	RoleName:    Column{"roles", "name"},
	Description: Column{"roles", "description"},
	IsAdmin:     Column{"roles", "is_admin"},
	IsActive:    Column{"roles", "is_active"},
	CreatedAt:   Column{"roles", "created_at"},
	UpdatedAt:   Column{"roles", "updated_at"},
}

type permissionsTable struct {
	Name      Table
	ID        Column
	RoleID    Column
	Module    Column
	Action    Column
	CreatedAt Column
}

func (t permissionsTable) Columns() []string {
	return qualified(t.ID, t.RoleID, t.Module, t.Action, t.CreatedAt)
}

func (t permissionsTable) InsertColumns() []string {
	return bare(t.RoleID, t.Module, t.Action)
}

var Permissions = permissionsTable{
	Name:      "permissions",
	ID:        Column{"permissions", "id"},
	RoleID:    Column{"permissions", "role_id"},
	Module:    Column{"permissions", "module"},
	Action:    Column{"permissions", "action"},
	CreatedAt: Column{"permissions", "created_at"},
}

type actorsTable struct {
	Name         Table
	ID           Column
	Email        Column
	DisplayName  Column
	PasswordHash Column
	RoleID       Column
	IsActive     Column
	CreatedAt    Column
	UpdatedAt    Column
}

func (t actorsTable) Columns() []string {
	return qualified(t.ID, t.Email, t.DisplayName, t.PasswordHash, t.RoleID, t.IsActive, t.CreatedAt, t.UpdatedAt)
}

func (t actorsTable) InsertColumns() []string {
	return bare(t.Email, t.DisplayName, t.PasswordHash, t.RoleID, t.IsActive)
}

var Actors = actorsTable{
	Name:         "actors",
	ID:           Column{"actors", "id"},
	Email:        Column{"actors", "email"},
	DisplayName:  Column{"actors", "display_name"},
	PasswordHash: Column{"actors", "password_hash"},
	RoleID:       Column{"actors", "role_id"},
	IsActive:     Column{"actors", "is_active"},
	CreatedAt:    Column{"actors", "created_at"},
	UpdatedAt:    Column{"actors", "updated_at"},
}

// ---------------------------------------------------------------------------
// catalogs
// ---------------------------------------------------------------------------

// CatalogTable describes one of the reference catalogs. All three share a shape.
type CatalogTable struct {
	Name        Table
	ID          Column
	ItemName    Column
	Description Column
	Rank        Column
	IsActive    Column
	CreatedAt   Column
	UpdatedAt   Column
}

func (t CatalogTable) Columns() []string {
	return qualified(t.ID, t.ItemName, t.Description, t.Rank, t.IsActive, t.CreatedAt, t.UpdatedAt)
}

func (t CatalogTable) InsertColumns() []string {
	return bare(t.ItemName, t.Description, t.Rank, t.IsActive)
}

func catalog(name Table) CatalogTable {
	return CatalogTable{
		Name:        name,
		ID:          Column{name, "id"},
		ItemName:    Column{name, "name"},
		Description: Column{name, "description"},
		Rank:        Column{name, "rank"},
		IsActive:    Column{name, "is_active"},
		CreatedAt:   Column{name, "created_at"},
		UpdatedAt:   Column{name, "updated_at"},
	}
}

var (
	Applications = catalog("applications")
	Origins      = catalog("origins")
	Priorities   = catalog("priorities")
)

// ---------------------------------------------------------------------------
// case_records / todo_records / time_entries
// ---------------------------------------------------------------------------

type caseRecordsTable struct {
	Name                Table
	ID                  Column
	CaseNumber          Column
	Title               Column
	Description         Column
	OwnerActorID        Column
	AssignedToActorID   Column
	ApplicationID       Column
	OriginID            Column
	PriorityID          Column
	Status              Column
	Complexity          Column
	ClassificationScore Column
	CreatedAt           Column
	UpdatedAt           Column
}

func (t caseRecordsTable) Columns() []string {
	return qualified(t.ID, t.CaseNumber, t.Title, t.Description, t.OwnerActorID, t.AssignedToActorID,
		t.ApplicationID, t.OriginID, t.PriorityID, t.Status, t.Complexity, t.ClassificationScore,
		t.CreatedAt, t.UpdatedAt)
}

func (t caseRecordsTable) InsertColumns() []string {
	return bare(t.CaseNumber, t.Title, t.Description, t.OwnerActorID, t.AssignedToActorID,
		t.ApplicationID, t.OriginID, t.PriorityID, t.Status, t.Complexity, t.ClassificationScore)
}

var CaseRecords = caseRecordsTable{
	Name:                "case_records",
	ID:                  Column{"case_records", "id"},
	CaseNumber:          Column{"case_records", "case_number"},
	Title:               Column{"case_records", "title"},
	Description:         Column{"case_records", "description"},
	OwnerActorID:        Column{"case_records", "owner_actor_id"},
	AssignedToActorID:   Column{"case_records", "assigned_to_actor_id"},
	ApplicationID:       Column{"case_records", "application_id"},
	OriginID:            Column{"case_records", "origin_id"},
	PriorityID:          Column{"case_records", "priority_id"},
	Status:              Column{"case_records", "status"},
	Complexity:          Column{"case_records", "complexity"},
	ClassificationScore: Column{"case_records", "classification_score"},
	CreatedAt:           Column{"case_records", "created_at"},
	UpdatedAt:           Column{"case_records", "updated_at"},
}

type todoRecordsTable struct {
	Name              Table
	ID                Column
	Title             Column
	Description       Column
	PriorityID        Column
	AssignedToActorID Column
	CreatedByActorID  Column
	CaseID            Column
	Status            Column
	DueAt             Column
	CreatedAt         Column
	UpdatedAt         Column
}

func (t todoRecordsTable) Columns() []string {
	return qualified(t.ID, t.Title, t.Description, t.PriorityID, t.AssignedToActorID, t.CreatedByActorID,
		t.CaseID, t.Status, t.DueAt, t.CreatedAt, t.UpdatedAt)
}

func (t todoRecordsTable) InsertColumns() []string {
	return bare(t.Title, t.Description, t.PriorityID, t.AssignedToActorID, t.CreatedByActorID,
		t.CaseID, t.Status, t.DueAt)
}

var TodoRecords = todoRecordsTable{
	Name:              "todo_records",
	ID:                Column{"todo_records", "id"},
	Title:             Column{"todo_records", "title"},
	Description:       Column{"todo_records", "description"},
	PriorityID:        Column{"todo_records", "priority_id"},
	AssignedToActorID: Column{"todo_records", "assigned_to_actor_id"},
	CreatedByActorID:  Column{"todo_records", "created_by_actor_id"},
	CaseID:            Column{"todo_records", "case_id"},
	Status:            Column{"todo_records", "status"},
	DueAt:             Column{"todo_records", "due_at"},
	CreatedAt:         Column{"todo_records", "created_at"},
	UpdatedAt:         Column{"todo_records", "updated_at"},
}

type timeEntriesTable struct {
	Name            Table
	ID              Column
	OwnerActorID    Column
	CaseID          Column
	TodoID          Column
	StartTime       Column
	EndTime         Column
	DurationSeconds Column
	Note            Column
	CreatedAt       Column
}

func (t timeEntriesTable) Columns() []string {
	return qualified(t.ID, t.OwnerActorID, t.CaseID, t.TodoID, t.StartTime, t.EndTime,
		t.DurationSeconds, t.Note, t.CreatedAt)
}

func (t timeEntriesTable) InsertColumns() []string {
	return bare(t.OwnerActorID, t.CaseID, t.TodoID, t.StartTime, t.EndTime, t.DurationSeconds, t.Note)
}

var TimeEntries = timeEntriesTable{
	Name:            "time_entries",
	ID:              Column{"time_entries", "id"},
	OwnerActorID:    Column{"time_entries", "owner_actor_id"},
	CaseID:          Column{"time_entries", "case_id"},
	TodoID:          Column{"time_entries", "todo_id"},
	StartTime:       Column{"time_entries", "start_time"},
	EndTime:         Column{"time_entries", "end_time"},
	DurationSeconds: Column{"time_entries", "duration_seconds"},
	Note:            Column{"time_entries", "note"},
	CreatedAt:       Column{"time_entries", "created_at"},
}

// ---------------------------------------------------------------------------
// audit_log
// ---------------------------------------------------------------------------

type auditLogTable struct {
	Name        Table
	ID          Column
	TableName   Column
	Operation   Column
	RecordID    Column
	ActorID     Column
	Before      Column
	After       Column
	Description Column
	CreatedAt   Column
}

func (t auditLogTable) Columns() []string {
	return qualified(t.ID, t.TableName, t.Operation, t.RecordID, t.ActorID, t.Before, t.After,
		t.Description, t.CreatedAt)
}

func (t auditLogTable) InsertColumns() []string {
	return bare(t.TableName, t.Operation, t.RecordID, t.ActorID, t.Before, t.After, t.Description)
}

var AuditLog = auditLogTable{
	Name:        "audit_log",
	ID:          Column{"audit_log", "id"},
	TableName:   Column{"audit_log", "table_name"},
	Operation:   Column{"audit_log", "operation"},
	RecordID:    Column{"audit_log", "record_id"},
	ActorID:     Column{"audit_log", "actor_id"},
	Before:      Column{"audit_log", "before_snapshot"},
	After:       Column{"audit_log", "after_snapshot"},
	Description: Column{"audit_log", "description"},
	CreatedAt:   Column{"audit_log", "created_at"},
}
