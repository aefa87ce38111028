package user_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spendwell/spendwell/internal/test_utils"
	"github.com/spendwell/spendwell/pkg/user"
	"github.com/stretchr/testify/assert"
)

var db *pgxpool.Pool

func TestMain(m *testing.M) {
	container, openDB := test_utils.TestWithDB()
	db = openDB()
	code := m.Run()
	db.Close()
	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func testUser() user.User {
	return user.User{
		Uid:         uuid.NewString(),
		Username:    "user_" + uuid.NewString()[:8],
		DisplayName: "Test User",
		Settings: user.Settings{
			Timezone: "Europe/Warsaw",
			Currency: "EUR",
		},
	}
}

func TestUserRepoImpl_CreateAndGetUser(t *testing.T) {
	// given
	ctx := context.Background()
	repo := user.NewUserRepo(db)
	u := testUser()

	// when
	id, err := repo.CreateUser(ctx, u)
	assert.NoError(t, err)

	// then
	stored, err := repo.GetUser(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, u.Uid, stored.Uid)
	assert.Equal(t, u.Username, stored.Username)
	assert.Equal(t, u.DisplayName, stored.DisplayName)
	assert.Equal(t, "Europe/Warsaw", stored.Settings.Timezone)
	assert.Equal(t, "EUR", stored.Settings.Currency)
}

func TestUserRepoImpl_GetUserByUid(t *testing.T) {
	// given
	ctx := context.Background()
	repo := user.NewUserRepo(db)
	u := testUser()
	id, err := repo.CreateUser(ctx, u)
	assert.NoError(t, err)

	// when
	stored, err := repo.GetUserByUid(ctx, u.Uid)

	// then
	assert.NoError(t, err)
	assert.Equal(t, id, stored.Id)
}

func TestUserRepoImpl_GetUserByUid_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := user.NewUserRepo(db)

	_, err := repo.GetUserByUid(ctx, "no-such-uid")

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepoImpl_UpdateUser(t *testing.T) {
	// given
	ctx := context.Background()
	repo := user.NewUserRepo(db)
	u := testUser()
	id, err := repo.CreateUser(ctx, u)
	assert.NoError(t, err)

	// when
	u.DisplayName = "Renamed"
	u.Settings.Timezone = "America/New_York"
	updated, err := repo.UpdateUser(ctx, id, u)

	// then
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.DisplayName)
	stored, err := repo.GetUser(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "America/New_York", stored.Settings.Timezone)
}

func TestUserRepoImpl_DeleteUser(t *testing.T) {
	// given
	ctx := context.Background()
	repo := user.NewUserRepo(db)
	u := testUser()
	id, err := repo.CreateUser(ctx, u)
	assert.NoError(t, err)

	// when
	err = repo.DeleteUser(ctx, id)

	// then
	assert.NoError(t, err)
	_, err = repo.GetUser(ctx, id)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepoImpl_IsUsernameAvailable(t *testing.T) {
	// given
	ctx := context.Background()
	repo := user.NewUserRepo(db)
	u := testUser()
	_, err := repo.CreateUser(ctx, u)
	assert.NoError(t, err)

	// when / then
	taken, err := repo.IsUsernameAvailable(ctx, u.Username)
	assert.NoError(t, err)
	assert.False(t, taken)

	free, err := repo.IsUsernameAvailable(ctx, "user_"+uuid.NewString()[:8])
	assert.NoError(t, err)
	assert.True(t, free)
}
