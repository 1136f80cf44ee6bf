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

func TestSetUpNodeRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockNodeHandler(ctrl)
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

	mockHandler.EXPECT().CreateNode().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetNodes().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ImportNodes().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetNode().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().UpdateNode().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().DeleteNode().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().MuteMonitor().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().UnmuteMonitor().Return(emptySuccessHandler).AnyTimes()

	SetUpNodeRoutes(r, mockHandler, mockMiddleware)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Create Node Route",
			method:         http.MethodPost,
			path:           "/nodes",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Nodes Route",
			method:         http.MethodGet,
			path:           "/nodes",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Import Nodes Route",
			method:         http.MethodPost,
			path:           "/nodes/import",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Node Route",
			method:         http.MethodGet,
			path:           "/nodes/some-id",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Update Node Route",
			method:         http.MethodPatch,
			path:           "/nodes/some-id",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Delete Node Route",
			method:         http.MethodDelete,
			path:           "/nodes/some-id",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Mute Monitor Route",
			method:         http.MethodPost,
			path:           "/nodes/some-id/mute",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unmute Monitor Route",
			method:         http.MethodPost,
			path:           "/nodes/some-id/unmute",
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
