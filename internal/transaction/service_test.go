package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/moneta-app/banksync/internal/category"
	"github.com/moneta-app/banksync/internal/scraper"
	"github.com/moneta-app/banksync/internal/transaction"
)

func floatPtr(v float64) *float64 { return &v }

func testEngine() *category.Engine {
	return category.NewEngine([]category.Rule{
		{Category: "groceries", Keywords: []string{"supermarket"}},
	})
}

func TestService_Reconcile_SavesExpenseWithCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	accountID := uuid.New()
	date := time.Date(2024, 1, 5, 14, 30, 12, 0, time.UTC)

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		Exists(gomock.Any(), transaction.Key{
			TenantID:    tenantID,
			AccountID:   accountID,
			Amount:      12000,
			Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Description: "SuperMarket",
		}).
		Return(false, nil)
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, int64(12000), tx.Amount)
			assert.Equal(t, transaction.TypeExpense, tx.Type)
			assert.Equal(t, transaction.StatusCompleted, tx.Status)
			assert.Equal(t, "SuperMarket", tx.Description)
			require.NotNil(t, tx.CategoryID)
			assert.Equal(t, "groceries", *tx.CategoryID)
			assert.Equal(t, transaction.SourceBankSync, tx.Source)
			assert.Equal(t, "ILS", tx.OriginalCurrency)

			tx.ID = uuid.New()

			return nil
		})

	svc := transaction.NewService(repo, testEngine())

	result, err := svc.Reconcile(context.Background(), tenantID, accountID, []scraper.Transaction{
		{
			Date:             date,
			Description:      "SuperMarket",
			ChargedAmount:    floatPtr(-120),
			OriginalCurrency: "ILS",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, transaction.ReconcileResult{Saved: 1, Skipped: 0}, result)
}

func TestService_Reconcile_SkipsDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		Exists(gomock.Any(), gomock.Any()).
		Return(true, nil)

	svc := transaction.NewService(repo, testEngine())

	result, err := svc.Reconcile(context.Background(), uuid.New(), uuid.New(), []scraper.Transaction{
		{Date: time.Now(), Description: "SuperMarket", ChargedAmount: floatPtr(-120)},
	})
	require.NoError(t, err)
	assert.Equal(t, transaction.ReconcileResult{Saved: 0, Skipped: 1}, result)
}

func TestService_Reconcile_SameAmountDifferentDescriptionsBothSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)

	var descriptions []string

	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			descriptions = append(descriptions, tx.Description)
			return nil
		}).
		Times(2)

	svc := transaction.NewService(repo, testEngine())

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	result, err := svc.Reconcile(context.Background(), uuid.New(), uuid.New(), []scraper.Transaction{
		{Date: date, Description: "Cafe Noir", ChargedAmount: floatPtr(-50)},
		{Date: date, Description: "Cafe Blanc", ChargedAmount: floatPtr(-50)},
	})
	require.NoError(t, err)
	assert.Equal(t, transaction.ReconcileResult{Saved: 2, Skipped: 0}, result)
	assert.Equal(t, []string{"Cafe Noir", "Cafe Blanc"}, descriptions)
}

func TestService_Reconcile_IncomeFromPositiveOriginalAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, int64(3550), tx.Amount)
			assert.Equal(t, transaction.TypeIncome, tx.Type)
			return nil
		})

	svc := transaction.NewService(repo, testEngine())

	// No charged amount: the original amount drives both value and sign.
	result, err := svc.Reconcile(context.Background(), uuid.New(), uuid.New(), []scraper.Transaction{
		{Date: time.Now(), Description: "refund", OriginalAmount: floatPtr(35.5)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Saved)
}

func TestService_Reconcile_MissingDescriptionGetsPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		Exists(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key transaction.Key) (bool, error) {
			assert.Equal(t, "No description", key.Description)
			return false, nil
		})
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, "No description", tx.Description)
			assert.Nil(t, tx.CategoryID)
			return nil
		})

	svc := transaction.NewService(repo, testEngine())

	_, err := svc.Reconcile(context.Background(), uuid.New(), uuid.New(), []scraper.Transaction{
		{Date: time.Now(), ChargedAmount: floatPtr(-10)},
	})
	require.NoError(t, err)
}

func TestService_Reconcile_PendingStatusPreserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			assert.Equal(t, transaction.StatusPending, tx.Status)
			return nil
		})

	svc := transaction.NewService(repo, testEngine())

	_, err := svc.Reconcile(context.Background(), uuid.New(), uuid.New(), []scraper.Transaction{
		{Date: time.Now(), Description: "hold", ChargedAmount: floatPtr(-10), Status: "pending"},
	})
	require.NoError(t, err)
}

func TestService_Reconcile_StoreErrorAbortsRemaining(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)

	gomock.InOrder(
		repo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, nil),
		repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, errors.New("db gone")),
	)

	svc := transaction.NewService(repo, testEngine())

	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	result, err := svc.Reconcile(context.Background(), uuid.New(), uuid.New(), []scraper.Transaction{
		{Date: date, Description: "first", ChargedAmount: floatPtr(-10)},
		{Date: date, Description: "second", ChargedAmount: floatPtr(-20)},
		{Date: date, Description: "third", ChargedAmount: floatPtr(-30)},
	})
	assert.Error(t, err)
	// The first insert stays; the third transaction is never reached.
	assert.Equal(t, transaction.ReconcileResult{Saved: 1, Skipped: 0}, result)
}

func TestService_Reconcile_SecondRunSavesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txns := []scraper.Transaction{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Description: "first", ChargedAmount: floatPtr(-10)},
		{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Description: "second", ChargedAmount: floatPtr(-20)},
	}

	seen := make(map[transaction.Key]bool)

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		Exists(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key transaction.Key) (bool, error) {
			return seen[key], nil
		}).
		Times(4)
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			seen[transaction.Key{
				TenantID:    tx.TenantID,
				AccountID:   tx.AccountID,
				Amount:      tx.Amount,
				Date:        tx.Date,
				Description: tx.Description,
			}] = true

			return nil
		}).
		Times(2)

	svc := transaction.NewService(repo, testEngine())

	tenantID, accountID := uuid.New(), uuid.New()

	first, err := svc.Reconcile(context.Background(), tenantID, accountID, txns)
	require.NoError(t, err)
	assert.Equal(t, transaction.ReconcileResult{Saved: 2, Skipped: 0}, first)

	second, err := svc.Reconcile(context.Background(), tenantID, accountID, txns)
	require.NoError(t, err)
	assert.Equal(t, transaction.ReconcileResult{Saved: 0, Skipped: 2}, second)
}
