package sqlc

import (
	"context"
	"testing"
	"time"

	pgutil "github.com/RoyceAzure/rj/util/pg_util"
	"github.com/RoyceAzure/rj/util/random"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

// Helper function to create a random user for testing
func createRandomUser(t *testing.T) (User, CreateUserParams) {
	t.Helper()

	arg := CreateUserParams{
		ID:           pgutil.UUIDToPgUUIDV5(uuid.New()),
		Email:        random.RandomEmail(),
		Username:     random.RandomString(10),
		PasswordHash: random.RandomString(32),
		Role:         "user",
		BirthDate:    pgtype.Date{Time: time.Date(1995, 5, 20, 0, 0, 0, 0, time.UTC), Valid: true},
		CreatedAt:    time.Now().UTC(),
	}

	user, err := testQueries.CreateUser(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, user)

	require.Equal(t, arg.Email, user.Email)
	require.Equal(t, arg.Username, user.Username)
	require.Equal(t, arg.Role, user.Role)

	require.NotZero(t, user.CreatedAt)

	return user, arg
}

func createRandomAdmin(t *testing.T) User {
	t.Helper()

	user, _ := createRandomUser(t)
	admin, err := testQueries.SetUserRole(context.Background(), SetUserRoleParams{
		ID:   user.ID,
		Role: "admin",
	})
	require.NoError(t, err)
	require.Equal(t, "admin", admin.Role)
	return admin
}

func TestCreateUser(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestCreateUser")
	}
	user, _ := createRandomUser(t)
	t.Cleanup(func() {
		testQueries.DeleteUser(context.Background(), user.ID)
	})
}

func TestGetUserByID(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestGetUserByID")
	}
	createdUser, _ := createRandomUser(t)
	t.Cleanup(func() {
		testQueries.DeleteUser(context.Background(), createdUser.ID)
	})

	retrievedUser, err := testQueries.GetUserByID(context.Background(), createdUser.ID)
	require.NoError(t, err)
	require.NotEmpty(t, retrievedUser)

	require.Equal(t, createdUser.ID, retrievedUser.ID)
	require.Equal(t, createdUser.Email, retrievedUser.Email)
	require.Equal(t, createdUser.Username, retrievedUser.Username)
	require.Equal(t, createdUser.PasswordHash, retrievedUser.PasswordHash)
	require.Equal(t, createdUser.Role, retrievedUser.Role)
	require.WithinDuration(t, createdUser.CreatedAt, retrievedUser.CreatedAt, time.Second)
}

func TestGetUserByIdentifier(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestGetUserByIdentifier")
	}
	createdUser, _ := createRandomUser(t)
	t.Cleanup(func() {
		testQueries.DeleteUser(context.Background(), createdUser.ID)
	})

	//email與username都要查得到同一個人
	byEmail, err := testQueries.GetUserByIdentifier(context.Background(), createdUser.Email)
	require.NoError(t, err)
	require.Equal(t, createdUser.ID, byEmail.ID)

	byUsername, err := testQueries.GetUserByIdentifier(context.Background(), createdUser.Username)
	require.NoError(t, err)
	require.Equal(t, createdUser.ID, byUsername.ID)
}

func TestCountUsersByEmail(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestCountUsersByEmail")
	}
	createdUser, _ := createRandomUser(t)
	t.Cleanup(func() {
		testQueries.DeleteUser(context.Background(), createdUser.ID)
	})

	count, err := testQueries.CountUsersByEmail(context.Background(), createdUser.Email)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	count, err = testQueries.CountUsersByEmail(context.Background(), random.RandomEmail())
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func TestUpdateUserProfile(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestUpdateUserProfile")
	}
	createdUser, _ := createRandomUser(t)
	t.Cleanup(func() {
		testQueries.DeleteUser(context.Background(), createdUser.ID)
	})

	storeName := random.RandomString(8)
	storeAddress := random.RandomString(20)
	updated, err := testQueries.UpdateUserProfile(context.Background(), UpdateUserProfileParams{
		ID:           createdUser.ID,
		StoreName:    pgutil.StringToPgTextV5(&storeName),
		StoreAddress: pgutil.StringToPgTextV5(&storeAddress),
	})
	require.NoError(t, err)
	require.Equal(t, storeName, updated.StoreName.String)
	require.Equal(t, storeAddress, updated.StoreAddress.String)
}

func TestUpdateUserPassword(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestUpdateUserPassword")
	}
	createdUser, _ := createRandomUser(t)
	t.Cleanup(func() {
		testQueries.DeleteUser(context.Background(), createdUser.ID)
	})

	newHash := random.RandomString(32)
	err := testQueries.UpdateUserPassword(context.Background(), UpdateUserPasswordParams{
		ID:           createdUser.ID,
		PasswordHash: newHash,
	})
	require.NoError(t, err)

	retrievedUser, err := testQueries.GetUserByID(context.Background(), createdUser.ID)
	require.NoError(t, err)
	require.Equal(t, newHash, retrievedUser.PasswordHash)
}

func TestSetUserRole(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestSetUserRole")
	}
	createdUser, _ := createRandomUser(t)
	t.Cleanup(func() {
		testQueries.DeleteUser(context.Background(), createdUser.ID)
	})

	admin, err := testQueries.SetUserRole(context.Background(), SetUserRoleParams{
		ID:   createdUser.ID,
		Role: "admin",
	})
	require.NoError(t, err)
	require.Equal(t, "admin", admin.Role)

	//role以外的欄位不能被改到
	require.Equal(t, createdUser.Email, admin.Email)
	require.Equal(t, createdUser.PasswordHash, admin.PasswordHash)
}

func TestListAdminIDsForUpdate(t *testing.T) {
	if testQueries == nil {
		t.Skip("Database not configured, skipping TestListAdminIDsForUpdate")
	}
	admin := createRandomAdmin(t)
	t.Cleanup(func() {
		testQueries.DeleteUser(context.Background(), admin.ID)
	})

	ids, err := testQueries.ListAdminIDsForUpdate(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, ids)

	found := false
	for _, id := range ids {
		if id == admin.ID {
			found = true
		}
	}
	require.True(t, found)
}
