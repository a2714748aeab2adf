package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jstore/internal/domain/order"
	"jstore/internal/domain/order/valueobjects"
	"jstore/internal/infrastructure/persistence/models"
	sharedDB "jstore/internal/shared/db"
	apperrors "jstore/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.OrderModel{}))
	return db
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	price, err := valueobjects.NewMoney(4990, "BRL")
	require.NoError(t, err)
	o, err := order.NewOrder("JStore License", price, nil)
	require.NoError(t, err)
	return o
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	o := newTestOrder(t)
	require.NoError(t, repo.Create(ctx, o))
	assert.NotZero(t, o.ID())

	loaded, err := repo.GetBySID(ctx, o.SID())
	require.NoError(t, err)
	assert.Equal(t, o.ID(), loaded.ID())
	assert.Equal(t, o.SID(), loaded.SID())
	assert.Equal(t, valueobjects.OrderStatusPending, loaded.Status())
	assert.Equal(t, int64(4990), loaded.Price().AmountInCents())
}

func TestOrderRepository_GetBySID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.GetBySID(context.Background(), "ord_missing00000")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestOrderRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	o := newTestOrder(t)
	require.NoError(t, repo.Create(ctx, o))

	require.NoError(t, o.AttachPreference("pref-1"))
	_, err := o.ApplyPaymentStatus(valueobjects.OrderStatusApproved, "pay-1", false)
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, o))

	loaded, err := repo.GetBySID(ctx, o.SID())
	require.NoError(t, err)
	assert.Equal(t, valueobjects.OrderStatusApproved, loaded.Status())
	require.NotNil(t, loaded.PreferenceID())
	assert.Equal(t, "pref-1", *loaded.PreferenceID())
	require.NotNil(t, loaded.PaymentID())
	assert.Equal(t, "pay-1", *loaded.PaymentID())
	assert.Equal(t, o.Version(), loaded.Version())
}

func TestOrderRepository_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)

	o := newTestOrder(t)
	o.SetID(999)
	err := repo.Update(context.Background(), o)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestOrderRepository_UsesTransactionFromContext(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	txManager := sharedDB.NewTransactionManager(db)
	ctx := context.Background()

	o := newTestOrder(t)
	err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.Create(txCtx, o); err != nil {
			return err
		}
		return apperrors.NewInternalError("forced rollback")
	})
	require.Error(t, err)

	_, err = repo.GetBySID(ctx, o.SID())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
