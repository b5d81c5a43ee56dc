// Package elastic provides an Elasticsearch-backed implementation of the
// stop store, for deployments that already run a cluster and want resolved
// stops queryable alongside other transit data.
//
// Records live in a single index, one document per stop, keyed by the stop
// ID. Timestamp semantics match the SQLite backend: RegisteredAt is written
// once, UpdatedAt on every save.
package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/stopline-labs/stopline-cli/internal/core/domain"
	"github.com/stopline-labs/stopline-cli/internal/core/ports/driven"
)

// Config holds the cluster connection settings.
type Config struct {
	// Addresses lists the cluster node URLs.
	Addresses []string

	// Username and Password are optional basic-auth credentials.
	Username string
	Password string

	// Index is the index name. Defaults to "stops".
	Index string

	// Transport overrides the HTTP transport. Used in tests.
	Transport http.RoundTripper
}

// Ensure StopStore implements the interface.
var _ driven.StopStore = (*StopStore)(nil)

// StopStore is an Elasticsearch-backed implementation of driven.StopStore.
type StopStore struct {
	client *elasticsearch.Client
	index  string

	// now is swappable for tests.
	now func() time.Time
}

// stopDocument is the indexed document shape.
type stopDocument struct {
	Name         string    `json:"name"`
	Lat          *float64  `json:"lat,omitempty"`
	Lon          *float64  `json:"lon,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewStopStore creates a stop store against the configured cluster.
func NewStopStore(cfg Config) (*StopStore, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, fmt.Errorf("creating elasticsearch client: %w", err)
	}

	index := cfg.Index
	if index == "" {
		index = "stops"
	}

	return &StopStore{client: client, index: index, now: time.Now}, nil
}

// Get retrieves a stop by ID.
func (s *StopStore) Get(ctx context.Context, id int) (*domain.Stop, error) {
	res, err := esapi.GetRequest{Index: s.index, DocumentID: docID(id)}.Do(ctx, s.client)
	if err != nil {
		return nil, fmt.Errorf("getting stop %d: %w", id, err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return nil, domain.ErrNotFound
	}
	if res.IsError() {
		return nil, fmt.Errorf("getting stop %d: %s", id, res.Status())
	}

	var body struct {
		Source stopDocument `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding stop %d: %w", id, err)
	}
	return body.Source.toStop(id), nil
}

// Save inserts or updates a stop. The existing document is read first so an
// update keeps the original RegisteredAt; the read and write are not atomic,
// which is acceptable because concurrent saves carry equivalent data.
func (s *StopStore) Save(ctx context.Context, stop *domain.Stop) error {
	if stop == nil {
		return domain.ErrInvalidStop
	}

	now := s.now().UTC()
	doc := stopDocument{
		Name:         stop.Name,
		Lat:          stop.Lat,
		Lon:          stop.Lon,
		RegisteredAt: now,
		UpdatedAt:    now,
	}
	if existing, err := s.Get(ctx, stop.ID); err == nil {
		doc.RegisteredAt = existing.RegisteredAt
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("saving stop %d: %w", stop.ID, err)
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshalling stop %d: %w", stop.ID, err)
	}

	res, err := esapi.IndexRequest{
		Index:      s.index,
		DocumentID: docID(stop.ID),
		Body:       bytes.NewReader(payload),
		Refresh:    "true",
	}.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("saving stop %d: %w", stop.ID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("saving stop %d: %s", stop.ID, res.Status())
	}

	stop.RegisteredAt = doc.RegisteredAt
	stop.UpdatedAt = doc.UpdatedAt
	return nil
}

// Exists reports whether a stop is persisted.
func (s *StopStore) Exists(ctx context.Context, id int) (bool, error) {
	res, err := esapi.ExistsRequest{Index: s.index, DocumentID: docID(id)}.Do(ctx, s.client)
	if err != nil {
		return false, fmt.Errorf("checking stop %d: %w", id, err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case 200:
		return true, nil
	case 404:
		return false, nil
	default:
		return false, fmt.Errorf("checking stop %d: %s", id, res.Status())
	}
}

// Delete removes a stop and reports whether a record was removed.
func (s *StopStore) Delete(ctx context.Context, id int) (bool, error) {
	res, err := esapi.DeleteRequest{Index: s.index, DocumentID: docID(id), Refresh: "true"}.Do(ctx, s.client)
	if err != nil {
		return false, fmt.Errorf("deleting stop %d: %w", id, err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return false, nil
	}
	if res.IsError() {
		return false, fmt.Errorf("deleting stop %d: %s", id, res.Status())
	}
	return true, nil
}

// ListIDs returns the IDs of every persisted stop, ascending.
func (s *StopStore) ListIDs(ctx context.Context) ([]int, error) {
	query := `{"query":{"match_all":{}},"_source":false,"size":10000,"sort":[{"_doc":"asc"}]}`
	res, err := esapi.SearchRequest{
		Index: []string{s.index},
		Body:  bytes.NewReader([]byte(query)),
	}.Do(ctx, s.client)
	if err != nil {
		return nil, fmt.Errorf("listing stops: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		// Index not created yet: no stops persisted.
		return nil, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("listing stops: %s", res.Status())
	}

	var body struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding stop listing: %w", err)
	}

	ids := make([]int, 0, len(body.Hits.Hits))
	for _, hit := range body.Hits.Hits {
		id, err := strconv.Atoi(hit.ID)
		if err != nil {
			continue // foreign document in the index
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// toStop converts an indexed document back to the domain entity.
func (d stopDocument) toStop(id int) *domain.Stop {
	return &domain.Stop{
		ID:           id,
		Name:         d.Name,
		Lat:          d.Lat,
		Lon:          d.Lon,
		RegisteredAt: d.RegisteredAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// docID maps a stop ID onto the document ID.
func docID(id int) string {
	return strconv.Itoa(id)
}
