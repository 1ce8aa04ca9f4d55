package http_test

import (
	"testing"

	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionUser(t *testing.T, username string) *account.User {
	t.Helper()

	user, err := account.RestoreUser(
		kernel.ID(1), username, "$2a$12$digest", account.RoleCustomer,
		"Session User", kernel.Phone{}, kernel.Email{}, kernel.ID(0),
	)
	require.NoError(t, err)
	return user
}

func TestSessionStore_AddAndGet(t *testing.T) {
	store := httpadapter.NewSessionStore()
	user := sessionUser(t, "alice_w")

	token := store.Add(user)

	require.NotEmpty(t, token)
	assert.Same(t, user, store.Get(token))
}

func TestSessionStore_ConcurrentSessionsAreIndependent(t *testing.T) {
	store := httpadapter.NewSessionStore()
	first := sessionUser(t, "alice_w")
	second := sessionUser(t, "bob_b")

	firstToken := store.Add(first)
	secondToken := store.Add(second)

	require.NotEqual(t, firstToken, secondToken)
	assert.Same(t, first, store.Get(firstToken))
	assert.Same(t, second, store.Get(secondToken))

	store.Remove(firstToken)
	assert.Nil(t, store.Get(firstToken))
	assert.Same(t, second, store.Get(secondToken))
}

func TestSessionStore_UnknownToken(t *testing.T) {
	store := httpadapter.NewSessionStore()

	assert.Nil(t, store.Get("no-such-token"))
	store.Remove("no-such-token")
}
