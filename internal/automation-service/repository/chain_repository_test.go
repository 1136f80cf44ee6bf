package repository

import (
	apperrors "VCS_Node_Automation/internal/automation-service/errors"
	"VCS_Node_Automation/internal/automation-service/model"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainRepository_CreateChain(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChainRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "chains" ("name","type","chain_id","allowance","created_at","updated_at") VALUES ($1,$2,$3,$4,$5,$6) RETURNING "id"`)).
		WithArgs("ETH", "evm", "1", 5, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("chain-1"))
	mock.ExpectCommit()

	chain, err := repo.CreateChain(context.Background(), model.Chain{Name: "ETH", Type: "evm", ChainID: "1", Allowance: 5})

	require.NoError(t, err)
	assert.Equal(t, "chain-1", chain.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChainRepository_GetChains(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChainRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "chains" ORDER BY name asc`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "type", "chain_id", "allowance", "created_at", "updated_at"}).
			AddRow("chain-1", "BSC", "evm", "56", 3, time.Now(), time.Now()).
			AddRow("chain-2", "ETH", "evm", "1", 5, time.Now(), time.Now()))

	chains, err := repo.GetChains(context.Background())

	require.NoError(t, err)
	require.Len(t, chains, 2)
	assert.Equal(t, "BSC", chains[0].Name)
	assert.Equal(t, "56", chains[0].ChainID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChainRepository_UpdateChainByID(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "chains" SET "allowance"=$1,"updated_at"=$2 WHERE id = $3`)).
					WithArgs(10, sqlmock.AnyArg(), "chain-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error Chain Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "chains" SET`)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrChainNotFound,
		},
		{
			name: "Error Chain Name Already Exists",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "chains" SET`)).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrChainNameAlreadyExists,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewChainRepository(db)
			tc.mockSetup(mock)

			err := repo.UpdateChainByID(context.Background(), "chain-1", map[string]any{"allowance": 10})

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
