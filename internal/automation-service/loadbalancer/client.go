package loadbalancer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the control plane of a single load balancer replica.
type Client interface {
	Enable(ctx context.Context, backend, server, destination string) (bool, error)
	Disable(ctx context.Context, backend, server, destination string) (bool, error)
	GetCount(ctx context.Context, backend, destination string) (int, error)
	GetStatus(ctx context.Context, backend, server, destination string) (bool, error)
}

const (
	adminStateReady    = "ready"
	adminStateMaint    = "maint"
	operationalStateUp = "up"
)

type runtimeServer struct {
	Name             string `json:"name"`
	AdminState       string `json:"admin_state"`
	OperationalState string `json:"operational_state"`
}

func (s runtimeServer) online() bool {
	return s.AdminState == adminStateReady && s.OperationalState == operationalStateUp
}

type Config struct {
	Port           int
	User           string
	Password       string
	RequestTimeout time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
}

type dataPlaneClient struct {
	client         *http.Client
	scheme         string
	port           int
	user           string
	password       string
	maxRetries     int
	initialBackoff time.Duration
}

func (d *dataPlaneClient) Enable(ctx context.Context, backend, server, destination string) (bool, error) {
	res, err := d.setAdminState(ctx, backend, server, destination, adminStateReady)
	if err != nil {
		return false, fmt.Errorf("LoadBalancerClient.Enable: %w", err)
	}
	return res.AdminState == adminStateReady, nil
}

func (d *dataPlaneClient) Disable(ctx context.Context, backend, server, destination string) (bool, error) {
	res, err := d.setAdminState(ctx, backend, server, destination, adminStateMaint)
	if err != nil {
		return false, fmt.Errorf("LoadBalancerClient.Disable: %w", err)
	}
	return res.AdminState == adminStateMaint, nil
}

func (d *dataPlaneClient) GetCount(ctx context.Context, backend, destination string) (int, error) {
	var servers []runtimeServer
	query := url.Values{"backend": {backend}}
	if err := d.do(ctx, http.MethodGet, d.endpoint(destination, "/v2/services/haproxy/runtime/servers", query), nil, &servers); err != nil {
		return 0, fmt.Errorf("LoadBalancerClient.GetCount: %w", err)
	}
	count := 0
	for _, s := range servers {
		if s.online() {
			count++
		}
	}
	return count, nil
}

func (d *dataPlaneClient) GetStatus(ctx context.Context, backend, server, destination string) (bool, error) {
	var res runtimeServer
	query := url.Values{"backend": {backend}}
	if err := d.do(ctx, http.MethodGet, d.endpoint(destination, "/v2/services/haproxy/runtime/servers/"+url.PathEscape(server), query), nil, &res); err != nil {
		return false, fmt.Errorf("LoadBalancerClient.GetStatus: %w", err)
	}
	return res.online(), nil
}

func (d *dataPlaneClient) setAdminState(ctx context.Context, backend, server, destination, state string) (runtimeServer, error) {
	body, err := json.Marshal(map[string]string{"admin_state": state})
	if err != nil {
		return runtimeServer{}, err
	}
	var res runtimeServer
	query := url.Values{"backend": {backend}}
	err = d.do(ctx, http.MethodPut, d.endpoint(destination, "/v2/services/haproxy/runtime/servers/"+url.PathEscape(server), query), body, &res)
	return res, err
}

func (d *dataPlaneClient) endpoint(destination, path string, query url.Values) string {
	u := url.URL{
		Scheme:   d.scheme,
		Host:     fmt.Sprintf("%s:%d", destination, d.port),
		Path:     path,
		RawQuery: query.Encode(),
	}
	return u.String()
}

// StatusError is returned when the data plane API answers with a non 2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("data plane api returned %d: %s", e.StatusCode, e.Message)
}

// do retries transport errors and 5xx answers with exponential backoff, 4xx answers are
// returned immediately.
func (d *dataPlaneClient) do(ctx context.Context, method, requestUrl string, body []byte, out interface{}) error {
	backoff := d.initialBackoff
	var err error
	for attempt := 1; attempt <= d.maxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return errors.Join(err, ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, method, requestUrl, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth(d.user, d.password)

		var resp *http.Response
		resp, err = d.client.Do(req)
		if err != nil {
			continue
		}
		var b []byte
		b, err = io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			err = &StatusError{StatusCode: resp.StatusCode, Message: string(bytes.TrimSpace(b))}
			if resp.StatusCode < 500 {
				return err
			}
			continue
		}
		if out == nil || len(b) == 0 {
			return nil
		}
		if err = json.Unmarshal(b, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	}
	return err
}

func NewDataPlaneClient(cfg Config) Client {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &dataPlaneClient{
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		scheme:         "http",
		port:           cfg.Port,
		user:           cfg.User,
		password:       cfg.Password,
		maxRetries:     maxRetries,
		initialBackoff: cfg.InitialBackoff,
	}
}
