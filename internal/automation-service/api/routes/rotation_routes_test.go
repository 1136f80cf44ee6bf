package routes

import (
	mockhandler "VCS_Node_Automation/internal/automation-service/mocks/api/handler"
	mockmiddleware "VCS_Node_Automation/internal/automation-service/mocks/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetUpRotationRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockRotationHandler(ctrl)
	mockMiddleware := mockmiddleware.NewMockAuthMiddleware(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	emptySuccessHandler := func(c *gin.Context) {
		c.Status(http.StatusOK)
	}
	nextMiddleware := func(c *gin.Context) {
		c.Next()
	}

	mockMiddleware.EXPECT().CheckUserPermission(gomock.Any()).Return(nextMiddleware).AnyTimes()

	mockHandler.EXPECT().AddToRotation().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().RemoveFromRotation().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetRotationEvents().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetHaProxyStatus().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetServerCount().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetHaProxyMessage().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().CheckValidHaProxy().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ReportRotationStatus().Return(emptySuccessHandler).AnyTimes()

	SetUpRotationRoutes(r, mockHandler, mockMiddleware)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Add To Rotation Route",
			method:         http.MethodPost,
			path:           "/nodes/some-id/rotation",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Remove From Rotation Route",
			method:         http.MethodDelete,
			path:           "/nodes/some-id/rotation",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Rotation Events Route",
			method:         http.MethodGet,
			path:           "/nodes/some-id/rotation/events",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get HaProxy Status Route",
			method:         http.MethodGet,
			path:           "/nodes/some-id/haproxy/status",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Server Count Route",
			method:         http.MethodGet,
			path:           "/nodes/some-id/haproxy/count",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get HaProxy Message Route",
			method:         http.MethodGet,
			path:           "/nodes/some-id/haproxy/message",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Check Valid HaProxy Route",
			method:         http.MethodPost,
			path:           "/haproxy/validate",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Report Rotation Status Route",
			method:         http.MethodPost,
			path:           "/rotation/reports",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
