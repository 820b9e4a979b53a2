package repository

import (
	"context"
	"testing"
	"time"

	"go-inventory-rfid/internal/model"
	"go-inventory-rfid/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, DSN: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, model.All()...))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func uintPtr(v uint) *uint { return &v }

func TestCategoryRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepo(setupTestDB(t))

	category := &model.Category{CategoryName: "Electronics"}
	require.NoError(t, repo.Create(ctx, category))
	assert.Equal(t, uint(1), category.CategoryID)

	found, err := repo.FindByID(ctx, category.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", found.CategoryName)
	assert.False(t, found.CreatedAt.IsZero())

	require.NoError(t, repo.Update(ctx, category.CategoryID, &model.Category{CategoryName: "Gadgets"}))
	found, err = repo.FindByID(ctx, category.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, "Gadgets", found.CategoryName)

	require.NoError(t, repo.Delete(ctx, category.CategoryID))
	_, err = repo.FindByID(ctx, category.CategoryID)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCrudRepo_MissingRows(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewLocationRepo(db)

	_, err := repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Update(ctx, 42, &model.Location{LocationName: "Nowhere"})
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Location{}).Count(&count).Error)
	assert.Zero(t, count, "update must not create a row")

	assert.ErrorIs(t, repo.Delete(ctx, 42), ErrNotFound)

	exists, err := repo.Exists(ctx, 42)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCrudRepo_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewSupplierRepo(setupTestDB(t))

	supplier := &model.Supplier{SupplierName: "Acme", ContactInfo: "acme@example.com", Address: "1 Main St"}
	require.NoError(t, repo.Create(ctx, supplier))

	require.NoError(t, repo.Delete(ctx, supplier.SupplierID))
	assert.ErrorIs(t, repo.Delete(ctx, supplier.SupplierID), ErrNotFound)
}

func TestProductRepo_UpdateOverwritesAllColumns(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewProductRepo(db)

	category := &model.Category{CategoryName: "Tools"}
	require.NoError(t, NewCategoryRepo(db).Create(ctx, category))

	product := &model.Product{
		ProductName:   "Hammer",
		Description:   "Claw hammer",
		CategoryID:    uintPtr(category.CategoryID),
		Price:         1500,
		StockQuantity: 10,
		RfidTagID:     "TAG-1",
	}
	require.NoError(t, repo.Create(ctx, product))

	// Zero values must be written, not skipped.
	require.NoError(t, repo.Update(ctx, product.ProductID, &model.Product{ProductName: "Mallet"}))

	found, err := repo.FindByID(ctx, product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, "Mallet", found.ProductName)
	assert.Empty(t, found.Description)
	assert.Nil(t, found.CategoryID)
	assert.Zero(t, found.Price)
	assert.Zero(t, found.StockQuantity)
	assert.Empty(t, found.RfidTagID)
}

func TestProductRepo_StockInTransaction(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewProductRepo(db)

	product := &model.Product{ProductName: "Cable", Price: 10, StockQuantity: 3}
	require.NoError(t, repo.Create(ctx, product))

	err := db.Transaction(func(tx *gorm.DB) error {
		txRepo := repo.WithTx(tx)
		locked, err := txRepo.FindForUpdate(ctx, product.ProductID)
		if err != nil {
			return err
		}
		return txRepo.UpdateStock(ctx, locked.ProductID, locked.StockQuantity+4)
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 7, found.StockQuantity)

	assert.ErrorIs(t, repo.UpdateStock(ctx, 999, 1), ErrNotFound)
}

func TestRfidRepo_DeleteByUID(t *testing.T) {
	ctx := context.Background()
	repo := NewRfidRepo(setupTestDB(t))

	for _, uid := range []string{"AA", "BB", "AA"} {
		require.NoError(t, repo.Create(ctx, &model.RfidScan{UID: uid}))
	}

	removed, err := repo.DeleteByUID(ctx, "AA")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	scans, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, scans, 1)
	assert.Equal(t, "BB", scans[0].UID)

	removed, err = repo.DeleteByUID(ctx, "missing")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestTransactionRepo_Filter(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	products := NewProductRepo(db)
	repo := NewTransactionRepo(db)

	a := &model.Product{ProductName: "A", Price: 1, StockQuantity: 1}
	b := &model.Product{ProductName: "B", Price: 1, StockQuantity: 1}
	require.NoError(t, products.Create(ctx, a))
	require.NoError(t, products.Create(ctx, b))

	now := time.Now()
	rows := []*model.Transaction{
		{ProductID: a.ProductID, Quantity: 1, TransactionType: model.TxIn, TransactionDate: now},
		{ProductID: a.ProductID, Quantity: 1, TransactionType: model.TxOut, TransactionDate: now},
		{ProductID: b.ProductID, Quantity: 2, TransactionType: model.TxIn, TransactionDate: now},
	}
	for _, row := range rows {
		require.NoError(t, repo.Create(ctx, row))
	}

	all, err := repo.FindAll(ctx, TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	forA, err := repo.FindAll(ctx, TransactionFilter{ProductID: a.ProductID})
	require.NoError(t, err)
	assert.Len(t, forA, 2)

	ins, err := repo.FindAll(ctx, TransactionFilter{Type: model.TxIn})
	require.NoError(t, err)
	assert.Len(t, ins, 2)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReferenceCounts(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	categories := NewCategoryRepo(db)
	locations := NewLocationRepo(db)
	products := NewProductRepo(db)
	transactions := NewTransactionRepo(db)

	cat := &model.Category{CategoryName: "Tags"}
	loc := &model.Location{LocationName: "Shelf"}
	require.NoError(t, categories.Create(ctx, cat))
	require.NoError(t, locations.Create(ctx, loc))

	p := &model.Product{ProductName: "A", Price: 1, StockQuantity: 1, CategoryID: uintPtr(cat.CategoryID), LocationID: uintPtr(loc.LocationID)}
	require.NoError(t, products.Create(ctx, p))
	require.NoError(t, transactions.Create(ctx, &model.Transaction{
		ProductID: p.ProductID, Quantity: 1, TransactionType: model.TxIn, TransactionDate: time.Now(), LocationID: uintPtr(loc.LocationID),
	}))

	n, err := products.CountByCategory(ctx, cat.CategoryID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = transactions.CountByLocation(ctx, loc.LocationID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, products.Delete(ctx, p.ProductID))
	n, err = products.CountByLocation(ctx, loc.LocationID)
	require.NoError(t, err)
	assert.Zero(t, n, "soft-deleted products are not counted")
}

func TestUserRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(setupTestDB(t))

	user := &model.User{Username: "alice", Role: model.RoleUser, Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))

	err := repo.Create(ctx, &model.User{Username: "alice", Role: model.RoleUser, Password: "hash"})
	assert.ErrorIs(t, err, ErrDuplicate)

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, found.UserID)

	require.NoError(t, repo.UpdatePassword(ctx, user.UserID, "new-hash"))
	found, err = repo.FindByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", found.Password)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
