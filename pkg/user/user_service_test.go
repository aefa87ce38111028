package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUser_AssignsUidAndDefaults(t *testing.T) {
	// given
	service := NewUserService(NewStubUserRepo())
	ctx := context.Background()

	// when
	created, err := service.CreateUser(ctx, User{
		Username:    "alice",
		DisplayName: "Alice",
	})

	// then
	assert.NoError(t, err)
	assert.NotZero(t, created.Id)
	assert.NotEmpty(t, created.Uid)
	assert.Equal(t, "UTC", created.Settings.Timezone)
	assert.Equal(t, "EUR", created.Settings.Currency)
}

func TestCreateUser_RejectsBlankNames(t *testing.T) {
	service := NewUserService(NewStubUserRepo())
	ctx := context.Background()

	_, err := service.CreateUser(ctx, User{Username: "  ", DisplayName: "Alice"})
	assert.ErrorIs(t, err, ErrUserDataInvalid)

	_, err = service.CreateUser(ctx, User{Username: "alice", DisplayName: ""})
	assert.ErrorIs(t, err, ErrUserDataInvalid)
}

func TestUpdateUser_UpdatesCurrentUserOnly(t *testing.T) {
	// given
	service := NewUserService(NewStubUserRepo())
	ctx := context.Background()
	created, err := service.CreateUser(ctx, User{Username: "alice", DisplayName: "Alice"})
	assert.NoError(t, err)
	ctx = WithUser(ctx, created)

	// when
	updated, err := service.UpdateUser(ctx, User{
		DisplayName: "Alice B.",
		Settings:    Settings{Timezone: "Europe/Warsaw", Currency: "PLN"},
	})

	// then
	assert.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, created.Uid, updated.Uid)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "Alice B.", updated.DisplayName)
	assert.Equal(t, "Europe/Warsaw", updated.Settings.Timezone)
}

func TestUpdateUser_RequiresUserInContext(t *testing.T) {
	service := NewUserService(NewStubUserRepo())

	_, err := service.UpdateUser(context.Background(), User{DisplayName: "Nobody"})

	assert.ErrorIs(t, err, ErrNoUser)
}

func TestDeleteUser_ByUid(t *testing.T) {
	// given
	service := NewUserService(NewStubUserRepo())
	ctx := context.Background()
	created, err := service.CreateUser(ctx, User{Username: "alice", DisplayName: "Alice"})
	assert.NoError(t, err)

	// when
	err = service.DeleteUser(ctx, created.Uid)

	// then
	assert.NoError(t, err)
	_, err = service.GetUserByUid(ctx, created.Uid)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestIsUsernameAvailable(t *testing.T) {
	// given
	service := NewUserService(NewStubUserRepo())
	ctx := context.Background()
	_, err := service.CreateUser(ctx, User{Username: "alice", DisplayName: "Alice"})
	assert.NoError(t, err)

	// when / then
	available, err := service.IsUsernameAvailable(ctx, "alice")
	assert.NoError(t, err)
	assert.False(t, available)

	available, err = service.IsUsernameAvailable(ctx, "bob")
	assert.NoError(t, err)
	assert.True(t, available)

	_, err = service.IsUsernameAvailable(ctx, "   ")
	assert.ErrorIs(t, err, ErrUserDataInvalid)
}
