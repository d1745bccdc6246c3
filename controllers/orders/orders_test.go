package orderControllers

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func dbMock(t *testing.T) (*sql.DB, *gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	gormdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqldb,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	return sqldb, gormdb, mock
}

func TestListOrdersNewestFirstWithNestedOrders(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	older := time.Now().Add(-time.Hour)
	newer := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM "transactions" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "reference", "total", "created_at"}).
			AddRow(2, 1, "ref-2", "25.00", newer).
			AddRow(1, 1, "ref-1", "10.00", older))

	mock.ExpectQuery(`SELECT (.+) FROM "orders"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "transaction_id", "product_id", "quantity", "price"}).
			AddRow(11, 2, 1, 2, "10.00").
			AddRow(12, 2, 2, 1, "5.00").
			AddRow(10, 1, 1, 1, "10.00"))

	transactions, err := ListOrders(db, 1)
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	assert.Equal(t, uint(2), transactions[0].ID, "newest transaction first")
	assert.Equal(t, uint(1), transactions[1].ID)
	require.Len(t, transactions[0].Orders, 2)
	require.Len(t, transactions[1].Orders, 1)

	assert.True(t, transactions[0].Total.Equal(decimal.RequireFromString("25.00")))

	// Order lines carry the snapshot price, reconciling with the total.
	sum := decimal.Zero
	for _, o := range transactions[0].Orders {
		sum = sum.Add(o.Price.Mul(decimal.NewFromInt(int64(o.Quantity))))
	}
	assert.True(t, transactions[0].Total.Equal(sum))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrdersEmptyHistory(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "transactions" WHERE user_id =`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "reference", "total", "created_at"}))

	transactions, err := ListOrders(db, 1)
	require.NoError(t, err)
	assert.Empty(t, transactions)

	assert.NoError(t, mock.ExpectationsWereMet())
}
