package repository

import (
	apperrors "VCS_Node_Automation/internal/automation-service/errors"
	"VCS_Node_Automation/internal/automation-service/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
)

type RotationEventRepository interface {
	// EnsureIndex creates the rotation event index with keyword mappings unless it already exists.
	EnsureIndex(ctx context.Context) error
	CreateRotationEvent(ctx context.Context, event model.RotationEvent) error
	GetRotationEvents(ctx context.Context, nodeID string, limit int) ([]model.RotationEvent, error)
}

const esRotationEventIndexName = "rotation_events"

const esRotationEventIndexMapping = `{
  "mappings": {
    "properties": {
      "id":        {"type": "keyword"},
      "node_id":   {"type": "keyword"},
      "node_name": {"type": "keyword"},
      "backend":   {"type": "keyword"},
      "server":    {"type": "keyword"},
      "action":    {"type": "keyword"},
      "manual":    {"type": "boolean"},
      "success":   {"type": "boolean"},
      "message":   {"type": "text"},
      "timestamp": {"type": "date"}
    }
  }
}`

const esIndexAlreadyExists = "resource_already_exists_exception"

type rotationEventRepository struct {
	es *elasticsearch.Client
}

type esErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
}

type esRotationEventsResponse struct {
	Hits struct {
		Hits []struct {
			Source model.RotationEvent `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (r *rotationEventRepository) EnsureIndex(ctx context.Context) error {
	res, err := r.es.Indices.Create(esRotationEventIndexName,
		r.es.Indices.Create.WithContext(ctx),
		r.es.Indices.Create.WithBody(strings.NewReader(esRotationEventIndexMapping)))
	if err != nil {
		return fmt.Errorf("RotationEventRepo.EnsureIndex: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return fmt.Errorf("RotationEventRepo.EnsureIndex decode err response: %w", err)
		}
		if e.Error.Type == esIndexAlreadyExists {
			return nil
		}
		return fmt.Errorf("RotationEventRepo.EnsureIndex: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}
	return nil
}

func (r *rotationEventRepository) CreateRotationEvent(ctx context.Context, event model.RotationEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("RotationEventRepo.CreateRotationEvent encode event: %w", err)
	}
	res, err := r.es.Index(esRotationEventIndexName, bytes.NewReader(b),
		r.es.Index.WithContext(ctx),
		r.es.Index.WithDocumentID(event.ID))
	if err != nil {
		return fmt.Errorf("RotationEventRepo.CreateRotationEvent: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return fmt.Errorf("RotationEventRepo.CreateRotationEvent decode err response: %w", err)
		}
		return fmt.Errorf("RotationEventRepo.CreateRotationEvent: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}
	return nil
}

func (r *rotationEventRepository) GetRotationEvents(ctx context.Context, nodeID string, limit int) ([]model.RotationEvent, error) {
	query := map[string]interface{}{
		"size": limit,
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"node_id": nodeID,
			},
		},
		"sort": []map[string]interface{}{
			{
				"timestamp": map[string]interface{}{
					"order": "desc",
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("RotationEventRepo.GetRotationEvents encode query: %w", err)
	}
	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(esRotationEventIndexName),
		r.es.Search.WithBody(&buf))
	if err != nil {
		return nil, fmt.Errorf("RotationEventRepo.GetRotationEvents: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e esErrorResponse
		if err = json.NewDecoder(res.Body).Decode(&e); err != nil {
			return nil, fmt.Errorf("RotationEventRepo.GetRotationEvents decode err response: %w", err)
		}
		return nil, fmt.Errorf("RotationEventRepo.GetRotationEvents: %w", apperrors.NewElasticSearchError(res.StatusCode, e.Error.Type, e.Error.Reason))
	}

	var eventsRes esRotationEventsResponse
	if err = json.NewDecoder(res.Body).Decode(&eventsRes); err != nil {
		return nil, fmt.Errorf("RotationEventRepo.GetRotationEvents decode response body: %w", err)
	}
	events := make([]model.RotationEvent, 0, len(eventsRes.Hits.Hits))
	for _, hit := range eventsRes.Hits.Hits {
		events = append(events, hit.Source)
	}
	return events, nil
}

func NewRotationEventRepository(esClient *elasticsearch.Client) RotationEventRepository {
	return &rotationEventRepository{
		es: esClient,
	}
}
