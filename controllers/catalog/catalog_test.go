package catalogControllers

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sayan01/groceri/models"
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

func validProductInput() ProductInput {
	return ProductInput{
		Name:            "milk",
		CategoryID:      1,
		Quantity:        5,
		Price:           "10.00",
		ManufactureDate: "2026-08-01",
	}
}

func TestCategoryNameValidation(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"too long", strings.Repeat("x", 65)},
		{"too long multibyte", strings.Repeat("é", 65)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			category, err := CreateCategory(db, tc.input)
			assert.Nil(t, category)

			var validationErr *models.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, "name", validationErr.Field)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCategory(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	category, err := CreateCategory(db, "  dairy ")
	require.NoError(t, err)
	assert.Equal(t, uint(3), category.ID)
	assert.Equal(t, "dairy", category.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// A 40-character name is within the limit even when every character is
// multibyte; the limit counts characters, not bytes.
func TestCreateCategoryMultibyteNameWithinLimit(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	name := strings.Repeat("é", 40)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectCommit()

	category, err := CreateCategory(db, name)
	require.NoError(t, err)
	assert.Equal(t, name, category.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductInputValidation(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	cases := []struct {
		name   string
		mutate func(*ProductInput)
		field  string
	}{
		{"empty name", func(in *ProductInput) { in.Name = " " }, "name"},
		{"long name", func(in *ProductInput) { in.Name = strings.Repeat("x", 65) }, "name"},
		{"long multibyte name", func(in *ProductInput) { in.Name = strings.Repeat("é", 65) }, "name"},
		{"negative quantity", func(in *ProductInput) { in.Quantity = -1 }, "quantity"},
		{"non-numeric price", func(in *ProductInput) { in.Price = "ten" }, "price"},
		{"negative price", func(in *ProductInput) { in.Price = "-1.00" }, "price"},
		{"bad date", func(in *ProductInput) { in.ManufactureDate = "01-08-2026" }, "manufacture_date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validProductInput()
			tc.mutate(&input)

			product, err := CreateProduct(db, input)
			assert.Nil(t, product)

			var validationErr *models.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}

	// Field validation fails before the category lookup.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProductUnknownCategory(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	product, err := CreateProduct(db, validProductInput())
	assert.Nil(t, product)

	var notFoundErr *models.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, "category", notFoundErr.Entity)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProduct(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "dairy"))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	product, err := CreateProduct(db, validProductInput())
	require.NoError(t, err)
	assert.Equal(t, uint(5), product.ID)
	assert.Equal(t, "milk", product.Name)
	assert.Equal(t, 5, product.Quantity)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), product.ManufactureDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProductMissing(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "products"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := DeleteProduct(db, 42)

	var notFoundErr *models.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, uint(42), notFoundErr.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategoryCascadesToProducts(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "dairy"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "products"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "categories"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, DeleteCategory(db, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductMissing(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	product, err := GetProduct(db, 42)
	assert.Nil(t, product)

	var notFoundErr *models.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))

	assert.NoError(t, mock.ExpectationsWereMet())
}
