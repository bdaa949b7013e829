package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWallet(customerID uuid.UUID) *domain.Wallet {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Wallet{
		ID:         uuid.New(),
		CustomerID: customerID,
		Name:       "Store credit",
		ChannelIDs: []uuid.UUID{uuid.New(), uuid.New()},
		Currency:   "USD",
		Balance:    0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func walletColumnNames() []string {
	return []string{"id", "customer_id", "name", "channel_ids", "currency", "balance", "created_at", "updated_at"}
}

func walletRow(rows *pgxmock.Rows, w *domain.Wallet) *pgxmock.Rows {
	return rows.AddRow(
		w.ID, w.CustomerID, w.Name, uuidStrings(w.ChannelIDs),
		w.Currency, w.Balance, w.CreatedAt, w.UpdatedAt,
	)
}

func TestWalletRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(w.ID, w.CustomerID, w.Name, uuidStrings(w.ChannelIDs),
			w.Currency, w.Balance, w.CreatedAt, w.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())
	w.Balance = 4200

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE id").
		WithArgs(w.ID).
		WillReturnRows(walletRow(pgxmock.NewRows(walletColumnNames()), w))

	result, err := repo.GetByID(context.Background(), w.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.ID, result.ID)
	assert.Equal(t, w.ChannelIDs, result.ChannelIDs)
	assert.Equal(t, int64(4200), result.Balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(walletColumnNames()))

	result, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_ListByCustomer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	customerID := uuid.New()
	w1, w2 := newTestWallet(customerID), newTestWallet(customerID)

	rows := pgxmock.NewRows(walletColumnNames())
	walletRow(rows, w1)
	walletRow(rows, w2)
	mock.ExpectQuery("SELECT .+ FROM wallets WHERE customer_id").
		WithArgs(customerID).
		WillReturnRows(rows)

	result, err := repo.ListByCustomer(context.Background(), customerID)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, w1.ID, result[0].ID)
	assert.Equal(t, w2.ID, result[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_IncrementBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())
	w.Balance = 130

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE wallets SET balance = balance \+ \$1`).
		WithArgs(int64(30), w.ID).
		WillReturnRows(walletRow(pgxmock.NewRows(walletColumnNames()), w))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.IncrementBalance(context.Background(), tx, w.ID, 30)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(130), result.Balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_IncrementBalance_GuardRejects(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE wallets SET balance = balance \+ \$1`).
		WithArgs(int64(-500), id).
		WillReturnRows(pgxmock.NewRows(walletColumnNames()))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.IncrementBalance(context.Background(), tx, id, -500)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_IncrementBalance_CheckConstraint(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE wallets SET balance = balance \+ \$1`).
		WithArgs(int64(-1), id).
		WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "wallets_balance_non_negative"})

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.IncrementBalance(context.Background(), tx, id, -1)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrBalanceConstraint))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_IncrementBalance_OtherError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`UPDATE wallets SET balance = balance \+ \$1`).
		WithArgs(int64(5), id).
		WillReturnError(errors.New("connection reset"))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	_, err = repo.IncrementBalance(context.Background(), tx, id, 5)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrBalanceConstraint))
	assert.NoError(t, mock.ExpectationsWereMet())
}
