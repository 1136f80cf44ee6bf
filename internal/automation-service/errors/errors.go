package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrLocationNotFound          = errors.New("location not found")
	ErrLocationNameAlreadyExists = errors.New("location name already exists")
	ErrChainNotFound             = errors.New("chain not found")
	ErrChainNameAlreadyExists    = errors.New("chain name already exists")
	ErrHostNotFound              = errors.New("host not found")
	ErrHostNameAlreadyExists     = errors.New("host name already exists")
	ErrNodeNotFound              = errors.New("node not found")
	ErrNodeNameAlreadyExists     = errors.New("node name already exists")
	ErrWebhookNotFound           = errors.New("webhook not found")
)

var (
	ErrValidation        = errors.New("validation error")
	ErrHTTPSRequiresFQDN = fmt.Errorf("%w: node cannot use https with a host that does not have a FQDN", ErrValidation)
	ErrNoLoadBalancers   = fmt.Errorf("%w: no load balancers assigned", ErrValidation)
	ErrHostAddressEmpty  = fmt.Errorf("%w: host requires an ip or a fqdn", ErrValidation)

	// ErrSafetyViolation is returned when an automated disable would leave the backend with
	// no server, or only the server being removed, in rotation.
	ErrSafetyViolation = errors.New("safety violation")
	ErrAlreadyOffline  = errors.New("server already offline")
)

// ExternalCallError annotates a failed load balancer call with the replica it was sent to.
type ExternalCallError struct {
	Op          string
	Backend     string
	Server      string
	Destination string
	Err         error
}

func (e *ExternalCallError) Error() string {
	if e.Server == "" {
		return fmt.Sprintf("%s failed. Destination: %s Backend: %s: %v", e.Op, e.Destination, e.Backend, e.Err)
	}
	return fmt.Sprintf("%s failed. Destination: %s Backend: %s Server: %s: %v", e.Op, e.Destination, e.Backend, e.Server, e.Err)
}

func (e *ExternalCallError) Unwrap() error {
	return e.Err
}

func NewExternalCallError(op, backend, server, destination string, err error) error {
	return &ExternalCallError{
		Op:          op,
		Backend:     backend,
		Server:      server,
		Destination: destination,
		Err:         err,
	}
}

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, typeReason string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       typeReason,
		Reason:     reason,
	}
}
