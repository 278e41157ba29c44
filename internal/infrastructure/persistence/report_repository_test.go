package persistence

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// newMockDB wraps a sqlmock connection in GORM so the aggregate SQL
// of the report repository can be asserted without a database
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       sqlDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() { sqlDB.Close() })
	return gormDB, mock, sqlDB
}

func TestGormReportRepository_RevenueByDay(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewGormReportRepository(db)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`DATE_TRUNC('day', placed_at)`)).
		WithArgs("delivered", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"day", "orders", "revenue"}).
			AddRow(from, int64(3), "450000").
			AddRow(from.Add(24*time.Hour), int64(1), "150000"))

	points, err := repo.RevenueByDay(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, int64(3), points[0].Orders)
	assert.True(t, points[0].Revenue.Equals(valueobject.NewMoneyVNDFromInt(450000)))
	assert.True(t, points[1].Revenue.Equals(valueobject.NewMoneyVNDFromInt(150000)))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormReportRepository_TopProducts(t *testing.T) {
	db, mock, _ := newMockDB(t)
	repo := NewGormReportRepository(db)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SUM(order_items.quantity)`)).
		WithArgs("delivered", from, to, 10).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "quantity"}).
			AddRow("7b4f9c52-9d5a-4f7e-8f2a-1c3d5e7f9a0b", "Margherita", int64(42)))

	// A non-positive limit falls back to the default of ten.
	tops, err := repo.TopProducts(context.Background(), from, to, 0)
	require.NoError(t, err)
	require.Len(t, tops, 1)
	assert.Equal(t, "Margherita", tops[0].Name)
	assert.Equal(t, int64(42), tops[0].Quantity)

	assert.NoError(t, mock.ExpectationsWereMet())
}
