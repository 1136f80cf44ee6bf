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

func TestSetUpHostRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockHostHandler(ctrl)
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

	mockHandler.EXPECT().CreateHost().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetHosts().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ImportHosts().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().UpdateHost().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().DeleteHost().Return(emptySuccessHandler).AnyTimes()

	SetUpHostRoutes(r, mockHandler, mockMiddleware)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Create Host Route",
			method:         http.MethodPost,
			path:           "/hosts",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Hosts Route",
			method:         http.MethodGet,
			path:           "/hosts",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Import Hosts Route",
			method:         http.MethodPost,
			path:           "/hosts/import",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Update Host Route",
			method:         http.MethodPatch,
			path:           "/hosts/some-id",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Delete Host Route",
			method:         http.MethodDelete,
			path:           "/hosts/some-id",
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
