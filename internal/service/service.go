package service

import (
	"errors"
	"log/slog"

	"github.com/heartmarshall/casedesk/internal/audit"
	"github.com/heartmarshall/casedesk/internal/database"
	"github.com/heartmarshall/casedesk/internal/database/repository/actors"
	"github.com/heartmarshall/casedesk/internal/database/repository/caserecords"
	"github.com/heartmarshall/casedesk/internal/database/repository/catalogs"
	"github.com/heartmarshall/casedesk/internal/database/repository/roles"
	"github.com/heartmarshall/casedesk/internal/database/repository/timeentries"
	"github.com/heartmarshall/casedesk/internal/database/repository/todos"
	"github.com/heartmarshall/casedesk/internal/database/schema"
	"github.com/heartmarshall/casedesk/internal/guard"
	"github.com/heartmarshall/casedesk/internal/service/actor"
	"github.com/heartmarshall/casedesk/internal/service/archive"
	"github.com/heartmarshall/casedesk/internal/service/caserecord"
	"github.com/heartmarshall/casedesk/internal/service/catalog"
	"github.com/heartmarshall/casedesk/internal/service/role"
	"github.com/heartmarshall/casedesk/internal/service/timeentry"
	"github.com/heartmarshall/casedesk/internal/service/todo"
)

// Services groups the entity services behind one handle.
type Services struct {
	Actors       *actor.Service
	Roles        *role.Service
	Applications *catalog.Service
	Origins      *catalog.Service
	Priorities   *catalog.Service
	Cases        *caserecord.Service
	Todos        *todo.Service
	TimeEntries  *timeentry.Service
	Archive      *archive.Service
}

// Deps holds what the services share.
type Deps struct {
	Querier       database.Querier
	Recorder      *audit.Recorder
	Logger        *slog.Logger
	ExportMaxRows int
}

// NewServices builds every repository and service over one querier and one
// integrity guard.
func NewServices(deps Deps) (*Services, error) {
	if deps.Querier == nil {
		return nil, errors.New("querier cannot be nil")
	}
	if deps.Recorder == nil {
		return nil, errors.New("audit recorder cannot be nil")
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	q := deps.Querier
	g := guard.New(q)

	return &Services{
		Actors:       actor.NewService(log, actors.NewActorRepository(q), g, deps.Recorder),
		Roles:        role.NewService(log, roles.NewRoleRepository(q), g, deps.Recorder),
		Applications: catalog.NewService(log, catalogs.NewCatalogRepository(q, schema.Applications), g, deps.Recorder),
		Origins:      catalog.NewService(log, catalogs.NewCatalogRepository(q, schema.Origins), g, deps.Recorder),
		Priorities:   catalog.NewService(log, catalogs.NewCatalogRepository(q, schema.Priorities), g, deps.Recorder),
		Cases:        caserecord.NewService(log, caserecords.NewCaseRepository(q), g, deps.Recorder, deps.ExportMaxRows),
		Todos:        todo.NewService(log, todos.NewTodoRepository(q), g, deps.Recorder),
		TimeEntries:  timeentry.NewService(log, timeentries.NewTimeEntryRepository(q), g, deps.Recorder),
		Archive:      archive.NewService(log, database.NewProcedures(q), deps.Recorder),
	}, nil
}
