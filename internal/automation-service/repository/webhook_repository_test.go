package repository

import (
	apperrors "VCS_Node_Automation/internal/automation-service/errors"
	"VCS_Node_Automation/internal/automation-service/model"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookRepository_GetWebhook(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedURL   string
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "webhooks" WHERE chain = $1 AND location = $2 ORDER BY "webhooks"."id" LIMIT $3`)).
					WithArgs("ETH", "us-east-2", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "chain", "location", "url", "created_at", "updated_at"}).
						AddRow("wh-1", "ETH", "us-east-2", "https://discord.com/api/webhooks/1/abc", time.Now(), time.Now()))
			},
			expectedURL: "https://discord.com/api/webhooks/1/abc",
		},
		{
			name: "Error Webhook Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "webhooks" WHERE chain = $1 AND location = $2`)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			expectedError: apperrors.ErrWebhookNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewWebhookRepository(db)
			tc.mockSetup(mock)

			webhook, err := repo.GetWebhook(context.Background(), "ETH", "us-east-2")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedURL, webhook.URL)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWebhookRepository_CreateWebhook(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewWebhookRepository(db)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "webhooks" ("chain","location","url","created_at","updated_at") VALUES ($1,$2,$3,$4,$5) RETURNING "id"`)).
		WithArgs("ETH", "us-east-2", "https://discord.com/api/webhooks/1/abc", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("wh-1"))
	mock.ExpectCommit()

	webhook, err := repo.CreateWebhook(context.Background(), model.Webhook{
		Chain:    "ETH",
		Location: "us-east-2",
		URL:      "https://discord.com/api/webhooks/1/abc",
	})

	require.NoError(t, err)
	assert.Equal(t, "wh-1", webhook.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
