package webhook

import (
	apperrors "VCS_Node_Automation/internal/automation-service/errors"
	mockrepository "VCS_Node_Automation/internal/automation-service/mocks/repository"
	"VCS_Node_Automation/internal/automation-service/model"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestDiscordRegistrar_RegisterForNode(t *testing.T) {
	ctx := context.Background()
	node := model.Node{
		ID:    "node-1",
		Chain: model.Chain{Name: "ETH"},
		Host:  model.Host{Name: "host-1", Location: model.Location{Name: "us-east-2"}},
	}

	testCases := []struct {
		name          string
		discordStatus int
		discordBody   string
		setupMocks    func(webhookRepo *mockrepository.MockWebhookRepository)
		expectDiscord bool
		expectErr     bool
	}{
		{
			name: "Success webhook already registered",
			setupMocks: func(webhookRepo *mockrepository.MockWebhookRepository) {
				webhookRepo.EXPECT().GetWebhook(ctx, "ETH", "us-east-2").Return(model.Webhook{ID: "wh-1"}, nil)
			},
		},
		{
			name:          "Success webhook created",
			discordStatus: http.StatusOK,
			discordBody:   `{"id":"123","token":"abc","url":"https://discord.com/api/webhooks/123/abc"}`,
			setupMocks: func(webhookRepo *mockrepository.MockWebhookRepository) {
				webhookRepo.EXPECT().GetWebhook(ctx, "ETH", "us-east-2").Return(model.Webhook{}, apperrors.ErrWebhookNotFound)
				webhookRepo.EXPECT().
					CreateWebhook(ctx, model.Webhook{Chain: "ETH", Location: "us-east-2", URL: "https://discord.com/api/webhooks/123/abc"}).
					Return(model.Webhook{ID: "wh-2"}, nil)
			},
			expectDiscord: true,
		},
		{
			name: "Error webhook lookup fails",
			setupMocks: func(webhookRepo *mockrepository.MockWebhookRepository) {
				webhookRepo.EXPECT().GetWebhook(ctx, "ETH", "us-east-2").Return(model.Webhook{}, errors.New("db error"))
			},
			expectErr: true,
		},
		{
			name:          "Error discord rejects",
			discordStatus: http.StatusForbidden,
			discordBody:   `{"message":"Missing Permissions"}`,
			setupMocks: func(webhookRepo *mockrepository.MockWebhookRepository) {
				webhookRepo.EXPECT().GetWebhook(ctx, "ETH", "us-east-2").Return(model.Webhook{}, apperrors.ErrWebhookNotFound)
			},
			expectDiscord: true,
			expectErr:     true,
		},
		{
			name:          "Error persisting webhook",
			discordStatus: http.StatusOK,
			discordBody:   `{"id":"123","token":"abc"}`,
			setupMocks: func(webhookRepo *mockrepository.MockWebhookRepository) {
				webhookRepo.EXPECT().GetWebhook(ctx, "ETH", "us-east-2").Return(model.Webhook{}, apperrors.ErrWebhookNotFound)
				webhookRepo.EXPECT().CreateWebhook(ctx, gomock.Any()).Return(model.Webhook{}, errors.New("db error"))
			},
			expectDiscord: true,
			expectErr:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			discordCalled := false
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				discordCalled = true
				assert.Equal(t, "/channels/chan-1/webhooks", r.URL.Path)
				assert.Equal(t, "Bot token-1", r.Header.Get("Authorization"))
				var body map[string]string
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "ETH-us-east-2", body["name"])
				w.WriteHeader(tc.discordStatus)
				_, _ = w.Write([]byte(tc.discordBody))
			}))
			defer server.Close()

			ctrl := gomock.NewController(t)
			webhookRepo := mockrepository.NewMockWebhookRepository(ctrl)
			tc.setupMocks(webhookRepo)

			registrar := NewDiscordRegistrar(Config{
				APIURL:         server.URL,
				BotToken:       "token-1",
				ChannelID:      "chan-1",
				RequestTimeout: time.Second,
			}, webhookRepo, zap.NewNop())

			err := registrar.RegisterForNode(ctx, node)
			assert.Equal(t, tc.expectDiscord, discordCalled)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
