package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokestore/order-bot/internal/infra/storage"
)

var guildRoles = []Role{
	{ID: "r-ceo", Name: "CEO"},
	{ID: "r-staff", Name: "Staff"},
	{ID: "r-member", Name: "Miembro"},
}

func TestAuthorizeWithAllowList(t *testing.T) {
	svc := NewPolicyService([]string{"r-staff", "r-ceo"}, "", storage.NewMemoryStore())

	assert.True(t, svc.Authorize([]string{"r-member", "r-staff"}, guildRoles))
	assert.False(t, svc.Authorize([]string{"r-member"}, guildRoles))
	assert.False(t, svc.Authorize(nil, guildRoles))

	// con allow-list configurada el rol CEO por nombre NO alcanza si su id
	// no está en la lista
	svc = NewPolicyService([]string{"r-staff"}, "", storage.NewMemoryStore())
	assert.False(t, svc.Authorize([]string{"r-ceo"}, guildRoles))
}

func TestAuthorizeFallbackCEOByName(t *testing.T) {
	svc := NewPolicyService(nil, "", storage.NewMemoryStore())

	assert.True(t, svc.Authorize([]string{"r-ceo"}, guildRoles))
	assert.False(t, svc.Authorize([]string{"r-staff", "r-member"}, guildRoles))
}

func TestAllowedRoleNames(t *testing.T) {
	svc := NewPolicyService([]string{"r-staff", "r-desconocido"}, "", storage.NewMemoryStore())
	assert.Equal(t, []string{"Staff"}, svc.AllowedRoleNames(guildRoles))

	svc = NewPolicyService(nil, "", storage.NewMemoryStore())
	assert.Nil(t, svc.AllowedRoleNames(guildRoles))
}

func TestEnsureDefaultConfig(t *testing.T) {
	mem := storage.NewMemoryStore()
	svc := NewPolicyService(nil, "", mem)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaultConfig(ctx, "g1", "chan-sell"))
	cfg, err := mem.GetServerConfig(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "chan-sell", cfg.OrderChannelID)

	// la segunda vez no pisa lo que ya hay
	require.NoError(t, svc.EnsureDefaultConfig(ctx, "g1", "otro-canal"))
	cfg, err = mem.GetServerConfig(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "chan-sell", cfg.OrderChannelID)
}

func TestNotifyChannelsPrecedence(t *testing.T) {
	ctx := context.Background()

	// env configurado: gana, y el canal del guild queda de fallback
	mem := storage.NewMemoryStore()
	svc := NewPolicyService(nil, "chan-env", mem)
	require.NoError(t, svc.EnsureDefaultConfig(ctx, "g1", "chan-sell"))

	primary, fallback := svc.NotifyChannels(ctx, "g1")
	assert.Equal(t, "chan-env", primary)
	assert.Equal(t, "chan-sell", fallback)

	// sin env: el canal del guild es el primario y no hay fallback
	svc = NewPolicyService(nil, "", mem)
	primary, fallback = svc.NotifyChannels(ctx, "g1")
	assert.Equal(t, "chan-sell", primary)
	assert.Empty(t, fallback)

	// env y guild iguales: no se duplica el destino
	svc = NewPolicyService(nil, "chan-sell", mem)
	primary, fallback = svc.NotifyChannels(ctx, "g1")
	assert.Equal(t, "chan-sell", primary)
	assert.Empty(t, fallback)

	// nada configurado
	svc = NewPolicyService(nil, "", storage.NewMemoryStore())
	primary, fallback = svc.NotifyChannels(ctx, "g-sin-config")
	assert.Empty(t, primary)
	assert.Empty(t, fallback)
}
