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

var hostColumns = []string{"id", "name", "location_id", "load_balancer", "ip", "fqdn", "created_at", "updated_at"}

func TestHostRepository_CreateHost(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "hosts" ("name","location_id","load_balancer","ip","fqdn","created_at","updated_at") VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING "id"`)).
					WithArgs("host-1", "loc-1", false, "10.0.0.1", "host-1.example.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("host-id-1"))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error Host Name Already Exists",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "hosts"`)).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "hosts_name_key"})
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrHostNameAlreadyExists,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewHostRepository(db)
			tc.mockSetup(mock)

			host, err := repo.CreateHost(context.Background(), model.Host{
				Name:       "host-1",
				LocationID: "loc-1",
				IP:         "10.0.0.1",
				FQDN:       "host-1.example.com",
			})

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "host-id-1", host.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHostRepository_GetHostByID(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success with location",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hosts" WHERE id = $1 ORDER BY "hosts"."id" LIMIT $2`)).
					WithArgs("host-id-1", 1).
					WillReturnRows(sqlmock.NewRows(hostColumns).AddRow("host-id-1", "host-1", "loc-1", false, "10.0.0.1", "", now, now))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "locations" WHERE "locations"."id" = $1`)).
					WithArgs("loc-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("loc-1", "us-east-2"))
			},
		},
		{
			name: "Error Host Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hosts" WHERE id = $1 ORDER BY "hosts"."id" LIMIT $2`)).
					WithArgs("host-id-1", 1).
					WillReturnRows(sqlmock.NewRows(hostColumns))
			},
			expectedError: apperrors.ErrHostNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewHostRepository(db)
			tc.mockSetup(mock)

			host, err := repo.GetHostByID(context.Background(), "host-id-1")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "us-east-2", host.Location.Name)
				assert.Equal(t, "10.0.0.1", host.Address())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHostRepository_GetHosts(t *testing.T) {
	now := time.Now()
	loadBalancer := true
	db, mock := setupTestDB(t)
	repo := NewHostRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hosts" WHERE load_balancer = $1 ORDER BY name asc`)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(hostColumns).
			AddRow("lb-1", "lb-a", "loc-1", true, "", "lb-a.example.com", now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "locations" WHERE "locations"."id" = $1`)).
		WithArgs("loc-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("loc-1", "us-east-2"))

	hosts, err := repo.GetHosts(context.Background(), &loadBalancer)

	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.True(t, hosts[0].LoadBalancer)
	assert.Equal(t, "lb-a.example.com", hosts[0].Address())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHostRepository_GetHostsByNames(t *testing.T) {
	now := time.Now()
	db, mock := setupTestDB(t)
	repo := NewHostRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hosts" WHERE name IN ($1,$2)`)).
		WithArgs("lb-a", "lb-b").
		WillReturnRows(sqlmock.NewRows(hostColumns).
			AddRow("lb-1", "lb-a", "loc-1", true, "", "lb-a.example.com", now, now).
			AddRow("lb-2", "lb-b", "loc-1", true, "10.0.0.2", "", now, now))

	hosts, err := repo.GetHostsByNames(context.Background(), []string{"lb-a", "lb-b"})

	require.NoError(t, err)
	assert.Len(t, hosts, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHostRepository_UpdateHostByID(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "hosts" SET "fqdn"=$1,"updated_at"=$2 WHERE id = $3`)).
					WithArgs("host-1.example.com", sqlmock.AnyArg(), "host-id-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error Host Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "hosts" SET`)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrHostNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewHostRepository(db)
			tc.mockSetup(mock)

			err := repo.UpdateHostByID(context.Background(), "host-id-1", map[string]any{"fqdn": "host-1.example.com"})

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
