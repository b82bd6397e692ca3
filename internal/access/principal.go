package access

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/casedesk/internal/model"
)

// Wildcard grants every action on a module.
const Wildcard = "*"

// Capability is one (module, action) grant.
type Capability struct {
	Module string
	Action string
}

// Principal is a validated actor with its effective capability set.
type Principal struct {
	Actor        model.Actor
	RoleName     string
	IsAdmin      bool
	Capabilities map[Capability]struct{}
}

// NewPrincipal resolves an actor's role and permissions into a Principal.
func NewPrincipal(actor model.Actor, role model.Role, perms []model.Permission) Principal {
	caps := make(map[Capability]struct{}, len(perms))
	for _, p := range perms {
		caps[Capability{Module: p.Module, Action: p.Action}] = struct{}{}
	}
	return Principal{
		Actor:        actor,
		RoleName:     role.Name,
		IsAdmin:      role.IsAdmin,
		Capabilities: caps,
	}
}

// ActorID returns the principal's actor id.
func (p Principal) ActorID() uuid.UUID { return p.Actor.ID }

// Scope returns the principal's visibility scope.
func (p Principal) Scope() Scope { return Resolve(p.Actor.ID, p.IsAdmin) }

// Can reports whether the principal may perform action on module.
// Admins can do everything.
func (p Principal) Can(module, action string) bool {
	if p.IsAdmin {
		return true
	}
	if _, ok := p.Capabilities[Capability{Module: module, Action: action}]; ok {
		return true
	}
	_, ok := p.Capabilities[Capability{Module: module, Action: Wildcard}]
	return ok
}
