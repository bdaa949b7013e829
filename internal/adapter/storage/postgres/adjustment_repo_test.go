package postgres

import (
	"context"
	"testing"
	"time"

	"store-credit-ledger/internal/core/domain"
	"store-credit-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adjustmentColumnNames() []string {
	return []string{"id", "wallet_id", "amount", "description", "actor_id", "created_at"}
}

func TestAdjustmentRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdjustmentRepo(mock)
	actor := uuid.New()
	adj, err := domain.NewAdjustment(uuid.New(), -70, "paid for order X", &actor)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallet_adjustments").
		WithArgs(adj.ID, adj.WalletID, adj.Amount, adj.Description, adj.ActorID, adj.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, adj)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustmentRepo_ListByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdjustmentRepo(mock)
	walletID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	newest := domain.Adjustment{ID: uuid.New(), WalletID: walletID, Amount: -70, Description: "paid", CreatedAt: now}
	oldest := domain.Adjustment{ID: uuid.New(), WalletID: walletID, Amount: 100, Description: "top-up", CreatedAt: now.Add(-time.Hour)}

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(walletID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))
	mock.ExpectQuery("SELECT .+ FROM wallet_adjustments WHERE wallet_id").
		WithArgs(walletID, 2, 2).
		WillReturnRows(pgxmock.NewRows(adjustmentColumnNames()).
			AddRow(newest.ID, newest.WalletID, newest.Amount, newest.Description, newest.ActorID, newest.CreatedAt).
			AddRow(oldest.ID, oldest.WalletID, oldest.Amount, oldest.Description, oldest.ActorID, oldest.CreatedAt))

	result, total, err := repo.ListByWallet(context.Background(), walletID, ports.Page{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, result, 2)
	assert.Equal(t, int64(-70), result[0].Amount)
	assert.Nil(t, result[0].ActorID)
	assert.Equal(t, int64(100), result[1].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustmentRepo_LedgerTotals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdjustmentRepo(mock)
	walletID := uuid.New()

	mock.ExpectQuery("SELECT w.balance, COALESCE").
		WithArgs(walletID).
		WillReturnRows(pgxmock.NewRows([]string{"balance", "sum", "count"}).AddRow(int64(30), int64(30), int64(2)))

	totals, err := repo.LedgerTotals(context.Background(), walletID)
	require.NoError(t, err)
	require.NotNil(t, totals)
	assert.Equal(t, domain.LedgerTotals{Balance: 30, Sum: 30, Count: 2}, *totals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustmentRepo_LedgerTotalsUnknownWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAdjustmentRepo(mock)
	walletID := uuid.New()

	mock.ExpectQuery("SELECT w.balance").
		WithArgs(walletID).
		WillReturnError(pgx.ErrNoRows)

	totals, err := repo.LedgerTotals(context.Background(), walletID)
	require.NoError(t, err)
	assert.Nil(t, totals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, ports.Page{Page: 0, PageSize: 20}.Offset())
	assert.Equal(t, 0, ports.Page{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, ports.Page{Page: 3, PageSize: 20}.Offset())
}
