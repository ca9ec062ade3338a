package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shenikar/infra_vision/internal/config"
	"github.com/shenikar/infra_vision/internal/media"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyEnv = "INFRA_VISION_TEST_GEMINI_KEY"

// fakeGemini отвечает на generateContent заранее заданным кандидатом
type fakeGemini struct {
	server   *httptest.Server
	calls    atomic.Int32
	lastBody atomic.Value
}

func newFakeGemini(t *testing.T, candidate map[string]any) *fakeGemini {
	f := &fakeGemini{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		body, _ := io.ReadAll(r.Body)
		f.lastBody.Store(string(body))

		if !strings.Contains(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{candidate}})
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeGemini) body() string {
	v, _ := f.lastBody.Load().(string)
	return v
}

func textCandidate(text string) map[string]any {
	return map[string]any{
		"content": map[string]any{
			"role":  "model",
			"parts": []any{map[string]any{"text": text}},
		},
	}
}

func newTestProvider(t *testing.T, baseURL string) *GeminiProvider {
	t.Setenv(testKeyEnv, "test-key")

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewGeminiProvider(&config.Config{
		GeminiAPIKeyEnv:    testKeyEnv,
		GeminiModel:        "gemini-2.5-flash",
		GeminiSpatialModel: "gemini-3-pro-preview",
		GeminiBaseURL:      baseURL + "/",
	}, logger)
}

func TestClassifyImages_Success(t *testing.T) {
	fake := newFakeGemini(t, textCandidate(`{"type":"Flooding","severity":8,"waterDepth":"6 inches","description":"Street flooded.","repairCost":"$50,000","department":"Environmental"}`))
	provider := newTestProvider(t, fake.server.URL)

	result, err := provider.ClassifyImages(context.Background(), []media.Frame{
		{Data: []byte("frame-1"), MIMEType: "image/jpeg"},
		{Data: []byte("frame-2"), MIMEType: "image/jpeg"},
	})

	require.NoError(t, err)
	assert.Equal(t, &models.Classification{
		Type:        "Flooding",
		Severity:    8,
		WaterDepth:  "6 inches",
		Description: "Street flooded.",
		RepairCost:  "$50,000",
		Department:  "Environmental",
	}, result)
	assert.EqualValues(t, 1, fake.calls.Load())
	assert.Contains(t, fake.body(), "responseSchema")
	assert.Contains(t, fake.body(), "infrastructure analyst")
}

func TestClassifyImages_MalformedJSON(t *testing.T) {
	fake := newFakeGemini(t, textCandidate(`not json`))
	provider := newTestProvider(t, fake.server.URL)

	_, err := provider.ClassifyImages(context.Background(), []media.Frame{{Data: []byte("x"), MIMEType: "image/png"}})

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to decode classification")
}

func TestClassifyImages_EmptyResponse(t *testing.T) {
	fake := newFakeGemini(t, textCandidate(""))
	provider := newTestProvider(t, fake.server.URL)

	_, err := provider.ClassifyImages(context.Background(), []media.Frame{{Data: []byte("x"), MIMEType: "image/png"}})

	require.ErrorIs(t, err, ErrEmptyResponse)
}

func TestProvider_MissingCredential(t *testing.T) {
	fake := newFakeGemini(t, textCandidate("LAT: 1, LNG: 2"))
	provider := newTestProvider(t, fake.server.URL)
	t.Setenv(testKeyEnv, "")
	ctx := context.Background()

	_, err := provider.ClassifyImages(ctx, []media.Frame{{Data: []byte("x"), MIMEType: "image/png"}})
	require.ErrorIs(t, err, ErrMissingCredential)

	_, err = provider.ResolveAddress(ctx, "123 Main St")
	require.ErrorIs(t, err, ErrMissingCredential)

	_, err = provider.AnswerQuery(ctx, nil, "total?")
	require.ErrorIs(t, err, ErrMissingCredential)

	_, err = provider.DetectSpatialFeatures(ctx, media.Frame{Data: []byte("x"), MIMEType: "image/png"})
	require.ErrorIs(t, err, ErrMissingCredential)

	assert.Zero(t, fake.calls.Load(), "no request may be sent without a credential")
}

func TestResolveAddress_WithMapsCitation(t *testing.T) {
	candidate := textCandidate("The address is here. LAT: 40.7128, LNG: -74.0060")
	candidate["groundingMetadata"] = map[string]any{
		"groundingChunks": []any{
			map[string]any{"web": map[string]any{"uri": "https://nyc.gov/streets"}},
			map[string]any{"web": map[string]any{"uri": "https://www.google.com/maps/place/?q=abc"}},
		},
	}
	fake := newFakeGemini(t, candidate)
	provider := newTestProvider(t, fake.server.URL)

	loc, err := provider.ResolveAddress(context.Background(), "Queens Blvd & 63rd Dr")

	require.NoError(t, err)
	assert.Equal(t, 40.7128, loc.Latitude)
	assert.Equal(t, -74.0060, loc.Longitude)
	assert.Equal(t, "https://www.google.com/maps/place/?q=abc", loc.GoogleMapsURL)
	assert.Contains(t, fake.body(), "googleMaps")
	assert.NotContains(t, fake.body(), "responseMimeType")
}

func TestResolveAddress_UnparsableFallsBack(t *testing.T) {
	fake := newFakeGemini(t, textCandidate("I am not sure where that is."))
	provider := newTestProvider(t, fake.server.URL)

	loc, err := provider.ResolveAddress(context.Background(), "somewhere")

	require.NoError(t, err)
	assert.Equal(t, DefaultCenter, *loc)
}

func TestResolveAddress_EmptyAddressSkipsCall(t *testing.T) {
	fake := newFakeGemini(t, textCandidate("LAT: 1, LNG: 2"))
	provider := newTestProvider(t, fake.server.URL)

	loc, err := provider.ResolveAddress(context.Background(), "   ")

	require.NoError(t, err)
	assert.Equal(t, DefaultCenter, *loc)
	assert.Zero(t, fake.calls.Load())
}

func TestAnswerQuery_EmbedsBudgetTable(t *testing.T) {
	fake := newFakeGemini(t, textCandidate("**Parks** is over budget."))
	provider := newTestProvider(t, fake.server.URL)
	items := []models.BudgetLineItem{
		{Department: "Parks", Project: "Juniper Valley Park Renovation", Cost: 800000, Status: models.BudgetStatusOverBudget, Year: 2023},
	}

	answer, err := provider.AnswerQuery(context.Background(), items, "What is over budget?")

	require.NoError(t, err)
	assert.Equal(t, "**Parks** is over budget.", answer)
	assert.Contains(t, fake.body(), "Juniper Valley Park Renovation")
	assert.Contains(t, fake.body(), "What is over budget?")
}

func TestDetectSpatialFeatures_Success(t *testing.T) {
	fake := newFakeGemini(t, textCandidate(`{"summary":"Dense housing without transit.","boxes":[{"ymin":0.1,"xmin":0.2,"ymax":0.5,"xmax":0.6,"label":"High Density Residential","reasoning":"No bus shelters"}]}`))
	provider := newTestProvider(t, fake.server.URL)

	detection, err := provider.DetectSpatialFeatures(context.Background(), media.Frame{Data: []byte("sat"), MIMEType: "image/png"})

	require.NoError(t, err)
	assert.Equal(t, "Dense housing without transit.", detection.Summary)
	require.Len(t, detection.Boxes, 1)
	assert.Equal(t, models.BoundingBox{YMin: 0.1, XMin: 0.2, YMax: 0.5, XMax: 0.6, Label: "High Density Residential", Reasoning: "No bus shelters"}, detection.Boxes[0])
}
