package seedload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/gridiron/internal/domain/model"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// seasonBatch is one upload unit with its idempotency key.
type seasonBatch struct {
	UploadID string          `json:"upload_id"`
	Rows     []model.StatRow `json:"rows"`
}

// careerBatch replaces one position's career collection.
type careerBatch struct {
	UploadID string               `json:"upload_id"`
	Position string               `json:"position"`
	Players  []model.CareerPlayer `json:"players"`
}

// splitBatches cuts rows into upload batches of at most batchSize rows,
// each tagged with a fresh upload ID.
func splitBatches(rows []model.StatRow, batchSize int) []seasonBatch {
	if batchSize <= 0 {
		batchSize = len(rows)
	}
	batches := make([]seasonBatch, 0, len(rows)/batchSize+1)
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		batches = append(batches, seasonBatch{
			UploadID: uuid.NewString(),
			Rows:     rows[start:end],
		})
	}
	return batches
}

// submitSeasonBatches submits row batches concurrently using a worker pool.
func submitSeasonBatches(ctx context.Context, config *Config, rows []model.StatRow, stats *Stats) error {
	batches := splitBatches(rows, config.BatchSize)
	log.Printf("📤 Submitting %d rows in %d batches with %d workers...", len(rows), len(batches), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/seasons"

	var (
		accepted  int64
		duplicate int64
		rejected  int64
		submitted int64
	)

	batchChan := make(chan seasonBatch, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for batch := range batchChan {
				select {
				case <-ctx.Done():
					return
				default:
					result := submitSingleBatch(ctx, client, url, batch)

					atomic.AddInt64(&submitted, 1)
					switch result {
					case "accepted":
						atomic.AddInt64(&accepted, 1)
					case "duplicate":
						atomic.AddInt64(&duplicate, 1)
					default:
						atomic.AddInt64(&rejected, 1)
					}

					if config.Verbose {
						log.Printf("📊 Progress: %d/%d batches (accepted: %d, duplicate: %d, rejected: %d)",
							atomic.LoadInt64(&submitted), len(batches),
							atomic.LoadInt64(&accepted), atomic.LoadInt64(&duplicate), atomic.LoadInt64(&rejected))
					}
				}
			}
		}()
	}

	go func() {
		defer close(batchChan)
		for _, batch := range batches {
			select {
			case <-ctx.Done():
				return
			case batchChan <- batch:
			}
		}
	}()

	wg.Wait()

	stats.BatchesSubmitted = int(atomic.LoadInt64(&submitted))
	stats.BatchesAccepted = int(atomic.LoadInt64(&accepted))
	stats.BatchesDuplicate = int(atomic.LoadInt64(&duplicate))
	stats.BatchesRejected = int(atomic.LoadInt64(&rejected))

	log.Printf(`✅ Batch submission completed:
   Accepted: %d
   Duplicate: %d
   Rejected: %d
`, stats.BatchesAccepted, stats.BatchesDuplicate, stats.BatchesRejected)

	if stats.BatchesAccepted == 0 {
		return fmt.Errorf("no batches accepted (%d rejected)", stats.BatchesRejected)
	}
	return nil
}

// submitSingleBatch submits one batch and classifies the outcome. A 429
// means the ingest queue was full; the upload ID is released server-side so
// the batch is retried once after a short backoff.
func submitSingleBatch(ctx context.Context, client *HTTPClient, url string, batch seasonBatch) string {
	for attempt := 0; attempt < 2; attempt++ {
		resp, err := client.Post(ctx, url, batch)
		if err != nil {
			return "failed"
		}

		body, err := readResponseBody(resp)
		if err != nil {
			return "failed"
		}

		switch resp.StatusCode {
		case StatusAccepted:
			return "accepted"
		case StatusOK:
			var ack ackResponse
			if err := json.Unmarshal(body, &ack); err == nil && ack.Duplicate {
				return "duplicate"
			}
			return "duplicate"
		case StatusTooManyRequests:
			select {
			case <-ctx.Done():
				return "failed"
			case <-time.After(time.Second):
			}
			continue
		default:
			return "failed"
		}
	}
	return "failed"
}

// submitCareers uploads the career collections, one position per request.
func submitCareers(ctx context.Context, config *Config, careers map[string][]model.CareerPlayer, stats *Stats) error {
	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/careers"

	for _, position := range model.Positions {
		players := careers[position]
		if len(players) == 0 {
			continue
		}

		batch := careerBatch{
			UploadID: uuid.NewString(),
			Position: position,
			Players:  players,
		}
		resp, err := client.Post(ctx, url, batch)
		if err != nil {
			return fmt.Errorf("submit %s careers: %w", position, err)
		}
		body, _ := readResponseBody(resp)
		if resp.StatusCode != StatusAccepted {
			return fmt.Errorf("submit %s careers: status %d: %s", position, resp.StatusCode, string(body))
		}
		stats.CareerCollections++
	}

	log.Printf("✅ Career collections uploaded: %d", stats.CareerCollections)
	return nil
}
