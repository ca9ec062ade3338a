package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/infra_vision/internal/config"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestWorker(client *redis.Client, cfg *config.Config) (*Worker, *[]time.Duration) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	w := NewWorker(client, logger, cfg)
	var waits []time.Duration
	w.wait = func(_ context.Context, d time.Duration) bool {
		waits = append(waits, d)
		return true
	}
	return w, &waits
}

func sampleEvent() ReportEvent {
	report := models.IncidentReport{
		ID:                uuid.New(),
		Type:              "Pothole",
		Severity:          6,
		Thumbnail:         []byte{0xff, 0xd8},
		ThumbnailMIMEType: "image/jpeg",
	}
	return NewReportEvent(uuid.New(), report, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
}

func TestNewReportEvent_StripsThumbnail(t *testing.T) {
	event := sampleEvent()

	assert.Equal(t, EventReportCreated, event.Type)
	assert.Nil(t, event.Report.Thumbnail)
	assert.Empty(t, event.Report.ThumbnailMIMEType)
	assert.Equal(t, "Pothole", event.Report.Type)
}

func TestWorker_DeliversSignedEvent(t *testing.T) {
	client := newTestRedis(t)

	var (
		gotBody      []byte
		gotSignature string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  10 * time.Millisecond,
	}
	worker, waits := newTestWorker(client, cfg)

	event := sampleEvent()
	require.NoError(t, NewRedisPublisher(client).Publish(context.Background(), event))

	assert.True(t, worker.processNext(context.Background()))
	assert.Empty(t, *waits)

	var delivered ReportEvent
	require.NoError(t, json.Unmarshal(gotBody, &delivered))
	assert.Equal(t, event.Report.ID, delivered.Report.ID)
	assert.Equal(t, event.SessionID, delivered.SessionID)
	assert.Equal(t, generateHMACSHA256(string(gotBody), "secret"), gotSignature)
}

func TestWorker_RetriesWithBackoff(t *testing.T) {
	client := newTestRedis(t)

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  10 * time.Millisecond,
	}
	worker, waits := newTestWorker(client, cfg)

	require.NoError(t, NewRedisPublisher(client).Publish(context.Background(), sampleEvent()))

	assert.False(t, worker.processNext(context.Background()))
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, *waits)
}

func TestWorker_CancelStopsBackoff(t *testing.T) {
	client := newTestRedis(t)

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Hour,
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	worker := NewWorker(client, logger, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	event := sampleEvent()
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	done := make(chan bool, 1)
	go func() { done <- worker.deliver(ctx, event, string(payload)) }()

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case delivered := <-done:
		assert.False(t, delivered)
	case <-time.After(2 * time.Second):
		t.Fatal("delivery did not stop after context cancellation")
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestWaitContext(t *testing.T) {
	assert.True(t, waitContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	assert.False(t, waitContext(ctx, time.Hour))
	assert.Less(t, time.Since(start), time.Second)
}

func TestWorker_SkipsWithoutURL(t *testing.T) {
	client := newTestRedis(t)
	cfg := &config.Config{WebhookTimeout: time.Second, WebhookMaxRetries: 3}
	worker, _ := newTestWorker(client, cfg)

	require.NoError(t, NewRedisPublisher(client).Publish(context.Background(), sampleEvent()))

	assert.False(t, worker.processNext(context.Background()))
	n, err := client.LLen(context.Background(), webhookQueueKey).Result()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWorker_MalformedPayloadIsDropped(t *testing.T) {
	client := newTestRedis(t)
	cfg := &config.Config{WebhookURL: "http://127.0.0.1:1", WebhookTimeout: time.Second}
	worker, _ := newTestWorker(client, cfg)

	require.NoError(t, client.LPush(context.Background(), webhookQueueKey, "{not json").Err())

	assert.False(t, worker.processNext(context.Background()))
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), sampleEvent()))
}
