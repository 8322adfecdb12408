package impl

import (
	"context"
	"testing"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionResolver_Resolve(t *testing.T) {
	role := &entity.Role{
		ID:     uuid.New(),
		Name:   entity.RoleHR,
		Active: true,
		Permissions: []*entity.Permission{
			{ID: uuid.New(), Name: "List companies", APIPath: "/companies", Method: "GET", Module: "COMPANIES"},
			{ID: uuid.New(), Name: "Create company", APIPath: "/companies", Method: "POST", Module: "COMPANIES"},
		},
	}
	resolver := NewPermissionResolver(newFakeRoleRepo(role), newDiscardLogger())
	ctx := context.Background()

	permissions, err := resolver.Resolve(ctx, role.ID)
	require.NoError(t, err)
	assert.Len(t, permissions, 2)

	// Unknown role is an empty set, not an error.
	permissions, err = resolver.Resolve(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, permissions)
}

func TestPermissionResolver_Resolve_InactiveRole(t *testing.T) {
	role := &entity.Role{
		ID:     uuid.New(),
		Name:   entity.RoleHR,
		Active: false,
		Permissions: []*entity.Permission{
			{ID: uuid.New(), Name: "List companies", APIPath: "/companies", Method: "GET", Module: "COMPANIES"},
		},
	}
	resolver := NewPermissionResolver(newFakeRoleRepo(role), newDiscardLogger())

	permissions, err := resolver.Resolve(context.Background(), role.ID)

	require.NoError(t, err)
	assert.Empty(t, permissions)
}

func TestPermissionResolver_Grants(t *testing.T) {
	role := &entity.Role{
		ID:     uuid.New(),
		Name:   entity.RoleHR,
		Active: true,
		Permissions: []*entity.Permission{
			{ID: uuid.New(), Name: "Create company", APIPath: "/companies", Method: "POST", Module: "COMPANIES"},
		},
	}
	resolver := NewPermissionResolver(newFakeRoleRepo(role), newDiscardLogger())
	ctx := context.Background()

	granted, err := resolver.Grants(ctx, role.ID, "/companies", "POST")
	require.NoError(t, err)
	assert.True(t, granted)

	granted, err = resolver.Grants(ctx, role.ID, "/companies", "DELETE")
	require.NoError(t, err)
	assert.False(t, granted)

	granted, err = resolver.Grants(ctx, uuid.New(), "/companies", "POST")
	require.NoError(t, err)
	assert.False(t, granted)
}
