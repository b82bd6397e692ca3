package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/casedesk/internal/model"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedRole inserts an active role.
func SeedRole(t *testing.T, pool *pgxpool.Pool, isAdmin bool) model.Role {
	t.Helper()

	role := model.Role{ID: uuid.New(), Name: "role-" + uniqueSuffix(), IsAdmin: isAdmin, IsActive: true}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO roles (id, name, is_admin, is_active) VALUES ($1, $2, $3, $4)`,
		role.ID, role.Name, role.IsAdmin, role.IsActive,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRole: %v", err)
	}
	return role
}

// SeedActor inserts an active actor with the given role. The password hash is
// a placeholder; login tests hash their own.
func SeedActor(t *testing.T, pool *pgxpool.Pool, roleID uuid.UUID, name string) model.Actor {
	t.Helper()

	actor := model.Actor{
		ID:          uuid.New(),
		Email:       name + "-" + uniqueSuffix() + "@example.com",
		DisplayName: name,
		RoleID:      roleID,
		IsActive:    true,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO actors (id, email, display_name, password_hash, role_id, is_active)
		 VALUES ($1, $2, $3, 'x', $4, $5)`,
		actor.ID, actor.Email, actor.DisplayName, actor.RoleID, actor.IsActive,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActor: %v", err)
	}
	return actor
}

// SeedCatalogItem inserts a row into applications, origins or priorities.
func SeedCatalogItem(t *testing.T, pool *pgxpool.Pool, table string, active bool) model.CatalogItem {
	t.Helper()

	item := model.CatalogItem{ID: uuid.New(), Name: table + "-" + uniqueSuffix(), IsActive: active}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO `+table+` (id, name, is_active) VALUES ($1, $2, $3)`,
		item.ID, item.Name, item.IsActive,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCatalogItem %s: %v", table, err)
	}
	return item
}
