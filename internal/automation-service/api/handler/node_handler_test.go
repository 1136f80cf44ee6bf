package handler

import (
	apperrors "VCS_Node_Automation/internal/automation-service/errors"
	mockservice "VCS_Node_Automation/internal/automation-service/mocks/service"
	"VCS_Node_Automation/internal/automation-service/model"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testNode() model.Node {
	return model.Node{
		ID:            "node-id-1",
		Name:          "node-7",
		Chain:         model.Chain{ID: "chain-1", Name: "ETH"},
		Host:          model.Host{ID: "host-2", Name: "host-2", FQDN: "host.example", Location: handlerLocation},
		Port:          8080,
		URL:           "http://host.example:8080",
		Backend:       "eth-mainnet",
		Server:        "node-7",
		LoadBalancers: []model.Host{{ID: "lb-1", Name: "lb-a", LoadBalancer: true}},
		HaProxy:       true,
		BasicAuth:     "user:secret",
	}
}

func TestNodeHandler_CreateNode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validBody := `{"chain_id":"chain-1","host_id":"host-2","name":"node-7","port":8080,"load_balancer_ids":["lb-1"],"haproxy":true,"backend":"eth-mainnet","server":"node-7"}`
	nodeInput := model.NodeInput{
		ChainID:         "chain-1",
		HostID:          "host-2",
		Name:            "node-7",
		Port:            8080,
		LoadBalancerIDs: []string{"lb-1"},
		HaProxy:         true,
		Backend:         "eth-mainnet",
		Server:          "node-7",
	}

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockAutomationService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Node Created",
			body: validBody,
			setupMocks: func(mockService *mockservice.MockAutomationService) {
				mockService.EXPECT().CreateNode(gomock.Any(), nodeInput, true).Return(testNode(), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"url":"http://host.example:8080"`,
		},
		{
			name:           "Error Validation Failed (port required)",
			body:           `{"chain_id":"chain-1","host_id":"host-2","name":"node-7"}`,
			setupMocks:     func(mockService *mockservice.MockAutomationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Port field is required"`,
		},
		{
			name:           "Error Validation Failed (port range)",
			body:           `{"chain_id":"chain-1","host_id":"host-2","name":"node-7","port":70000}`,
			setupMocks:     func(mockService *mockservice.MockAutomationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Port field must be less than or equal to 65535"`,
		},
		{
			name:           "Error Validation Failed (backend required with haproxy)",
			body:           `{"chain_id":"chain-1","host_id":"host-2","name":"node-7","port":8080,"haproxy":true,"server":"node-7"}`,
			setupMocks:     func(mockService *mockservice.MockAutomationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Backend field is required when HaProxy true"`,
		},
		{
			name: "Error https on host without fqdn",
			body: validBody,
			setupMocks: func(mockService *mockservice.MockAutomationService) {
				mockService.EXPECT().CreateNode(gomock.Any(), nodeInput, true).
					Return(model.Node{}, fmt.Errorf("AutomationService.CreateNode: %w", apperrors.ErrHTTPSRequiresFQDN))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Node cannot use https with a host that does not have a FQDN"`,
		},
		{
			name: "Error host not found",
			body: validBody,
			setupMocks: func(mockService *mockservice.MockAutomationService) {
				mockService.EXPECT().CreateNode(gomock.Any(), nodeInput, true).Return(model.Node{}, apperrors.ErrHostNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Host not found"`,
		},
		{
			name: "Error webhook registration failed",
			body: validBody,
			setupMocks: func(mockService *mockservice.MockAutomationService) {
				mockService.EXPECT().CreateNode(gomock.Any(), nodeInput, true).Return(model.Node{}, errors.New("discord unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockAutomationService(ctrl)
			tc.setupMocks(mockService)

			handler := NewNodeHandler(mockService, NewLogger(zap.NewNop()))

			w, c := setupTestContext(t, http.MethodPost, "/nodes", jsonBody(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.CreateNode()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestNodeHandler_GetNode_HidesBasicAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockAutomationService(ctrl)
	mockService.EXPECT().GetNode(gomock.Any(), "node-id-1").Return(testNode(), nil)
	handler := NewNodeHandler(mockService, NewLogger(zap.NewNop()))

	w, c := setupTestContext(t, http.MethodGet, "/nodes/node-id-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "node-id-1"}}

	handler.GetNode()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"load_balancers":[{"id":"lb-1"`)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestNodeHandler_UpdateNode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	port := 9090
	lbIDs := []string{}

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(mockService *mockservice.MockAutomationService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success port change",
			body: `{"port":9090}`,
			setupMocks: func(mockService *mockservice.MockAutomationService) {
				updated := testNode()
				updated.Port, updated.URL = 9090, "http://host.example:9090"
				mockService.EXPECT().UpdateNode(gomock.Any(), model.NodeUpdate{ID: "node-id-1", Port: &port}, true).Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"url":"http://host.example:9090"`,
		},
		{
			name: "Success clear load balancers",
			body: `{"load_balancer_ids":[]}`,
			setupMocks: func(mockService *mockservice.MockAutomationService) {
				updated := testNode()
				updated.LoadBalancers = nil
				mockService.EXPECT().UpdateNode(gomock.Any(), model.NodeUpdate{ID: "node-id-1", LoadBalancerIDs: &lbIDs}, true).Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"load_balancers":[]`,
		},
		{
			name:           "Error invalid url",
			body:           `{"url":"not a url"}`,
			setupMocks:     func(mockService *mockservice.MockAutomationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The URL field is not a valid url"`,
		},
		{
			name: "Error node not found",
			body: `{"port":9090}`,
			setupMocks: func(mockService *mockservice.MockAutomationService) {
				mockService.EXPECT().UpdateNode(gomock.Any(), gomock.Any(), true).Return(model.Node{}, apperrors.ErrNodeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Node not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockAutomationService(ctrl)
			tc.setupMocks(mockService)

			handler := NewNodeHandler(mockService, NewLogger(zap.NewNop()))

			w, c := setupTestContext(t, http.MethodPatch, "/nodes/node-id-1", jsonBody(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Params = gin.Params{{Key: "id", Value: "node-id-1"}}

			handler.UpdateNode()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestNodeHandler_ImportNodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	csvContent := "chain,host,name,port,https,automation,haproxy,backend,frontend,server,load_balancers\n" +
		"ETH,host-2,node-7,8080,false,true,true,eth-mainnet,,node-7,lb-a;lb-b\n"

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mockservice.NewMockAutomationService(ctrl)
		mockService.EXPECT().CreateNodesCSV(gomock.Any(), []model.NodeCSVInput{{
			Chain:         "ETH",
			Host:          "host-2",
			Name:          "node-7",
			Port:          8080,
			Automation:    true,
			HaProxy:       true,
			Backend:       "eth-mainnet",
			Server:        "node-7",
			LoadBalancers: []string{"lb-a", "lb-b"},
		}}).Return([]model.Node{testNode()}, nil)
		handler := NewNodeHandler(mockService, NewLogger(zap.NewNop()))

		body, contentType := multipartBody(t, "nodes.csv", []byte(csvContent))
		w, c := setupTestContext(t, http.MethodPost, "/nodes/import", body)
		c.Request.Header.Set("Content-Type", contentType)

		handler.ImportNodes()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `{"imported_count":1,"imported":["node-7"]}`)
	})

	t.Run("Error invalid port", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mockservice.NewMockAutomationService(ctrl)
		handler := NewNodeHandler(mockService, NewLogger(zap.NewNop()))

		body, contentType := multipartBody(t, "nodes.csv", []byte("chain,host,name,port\nETH,host-2,node-7,http\n"))
		w, c := setupTestContext(t, http.MethodPost, "/nodes/import", body)
		c.Request.Header.Set("Content-Type", contentType)

		handler.ImportNodes()(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"Row 2: port must be an integer"`)
	})

	t.Run("Error no file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := NewNodeHandler(mockservice.NewMockAutomationService(ctrl), NewLogger(zap.NewNop()))

		w, c := setupTestContext(t, http.MethodPost, "/nodes/import", nil)

		handler.ImportNodes()(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"message":"Invalid request body"`)
	})
}

func TestNodeHandler_MuteMonitor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockAutomationService(ctrl)
	muted := testNode()
	muted.Muted = true
	mockService.EXPECT().MuteMonitor(gomock.Any(), "node-id-1").Return(muted, nil)
	mockService.EXPECT().UnmuteMonitor(gomock.Any(), "node-id-1").Return(model.Node{}, errors.New("db down"))
	handler := NewNodeHandler(mockService, NewLogger(zap.NewNop()))

	w, c := setupTestContext(t, http.MethodPost, "/nodes/node-id-1/mute", nil)
	c.Params = gin.Params{{Key: "id", Value: "node-id-1"}}
	handler.MuteMonitor()(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"muted":true`)

	w, c = setupTestContext(t, http.MethodPost, "/nodes/node-id-1/unmute", nil)
	c.Params = gin.Params{{Key: "id", Value: "node-id-1"}}
	handler.UnmuteMonitor()(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
