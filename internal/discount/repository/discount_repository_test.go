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

func TestNewMySQLDiscountRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLDiscountRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestDiscountRepository_FindByCode_PercentCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLDiscountRepository(db)

	_, err := db.Exec(`
		INSERT INTO discount_codes (code, description, discount_percent, discount_amount, start_date, end_date)
		VALUES ('SUMMER10', 'Summer sale', 10, NULL, '2024-06-01 00:00:00', '2024-06-30 23:59:59')
	`)
	require.NoError(t, err)

	dc, err := repo.FindByCode(context.Background(), "SUMMER10")
	require.NoError(t, err)
	assert.Equal(t, "SUMMER10", dc.Code)
	require.NotNil(t, dc.DiscountPercent)
	assert.Equal(t, 10, *dc.DiscountPercent)
	assert.Nil(t, dc.DiscountAmount)
	assert.Equal(t, 2024, dc.StartDate.Year())
}

func TestDiscountRepository_FindByCode_FixedAmountCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLDiscountRepository(db)

	_, err := db.Exec(`
		INSERT INTO discount_codes (code, description, discount_percent, discount_amount, start_date, end_date)
		VALUES ('FLAT50K', 'Flat discount', NULL, 50000, '2024-06-01 00:00:00', '2024-06-30 23:59:59')
	`)
	require.NoError(t, err)

	dc, err := repo.FindByCode(context.Background(), "FLAT50K")
	require.NoError(t, err)
	assert.Nil(t, dc.DiscountPercent)
	require.NotNil(t, dc.DiscountAmount)
	assert.Equal(t, int64(50000), *dc.DiscountAmount)
}

func TestDiscountRepository_FindByCode_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLDiscountRepository(db)

	dc, err := repo.FindByCode(context.Background(), "NOPE")
	assert.Error(t, err)
	assert.Nil(t, dc)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}
