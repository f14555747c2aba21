package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orchid/internal/errors"
	"orchid/internal/testutil"
)

// Unit Tests

func TestNewMySQLUserRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)

	_, err := db.Exec(`INSERT INTO users (email, name) VALUES ('an@example.com', 'An')`)
	require.NoError(t, err)

	exists, err := repo.ExistsByEmail(context.Background(), "an@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(context.Background(), "binh@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_MarkVerified(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)

	_, err := db.Exec(`INSERT INTO users (email, name) VALUES ('an@example.com', 'An')`)
	require.NoError(t, err)

	err = repo.MarkVerified(context.Background(), "an@example.com")
	require.NoError(t, err)

	var verified bool
	err = db.QueryRow(`SELECT is_verified FROM users WHERE email = ?`, "an@example.com").Scan(&verified)
	require.NoError(t, err)
	assert.True(t, verified)
}

func TestUserRepository_MarkVerified_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)

	err := repo.MarkVerified(context.Background(), "ghost@example.com")
	assert.Error(t, err)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}
