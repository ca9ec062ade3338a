package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shenikar/infra_vision/internal/config"
	"github.com/shenikar/infra_vision/internal/media"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// GeminiProvider - реализация Provider поверх Google GenAI SDK
type GeminiProvider struct {
	apiKeyEnv    string
	model        string
	spatialModel string
	baseURL      string
	logger       *logrus.Logger
}

func NewGeminiProvider(cfg *config.Config, logger *logrus.Logger) *GeminiProvider {
	return &GeminiProvider{
		apiKeyEnv:    cfg.GeminiAPIKeyEnv,
		model:        cfg.GeminiModel,
		spatialModel: cfg.GeminiSpatialModel,
		baseURL:      cfg.GeminiBaseURL,
		logger:       logger,
	}
}

// newClient создает клиента на каждый вызов: ключ читается из окружения в момент вызова
func (p *GeminiProvider) newClient(ctx context.Context) (*genai.Client, error) {
	apiKey := os.Getenv(p.apiKeyEnv)
	if apiKey == "" {
		p.logger.WithField("env", p.apiKeyEnv).Error("API key is missing from environment variables")
		return nil, fmt.Errorf("%w: %s is not set", ErrMissingCredential, p.apiKeyEnv)
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if p.baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: p.baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return client, nil
}

// ClassifyImages отправляет все кадры одним запросом и получает структурированную классификацию
func (p *GeminiProvider) ClassifyImages(ctx context.Context, frames []media.Frame) (*models.Classification, error) {
	log := p.logger.WithFields(logrus.Fields{
		"provider": "gemini",
		"method":   "ClassifyImages",
		"frames":   len(frames),
	})

	client, err := p.newClient(ctx)
	if err != nil {
		return nil, err
	}

	parts := make([]*genai.Part, 0, len(frames)+1)
	for _, frame := range frames {
		parts = append(parts, genai.NewPartFromBytes(frame.Data, frame.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(classificationPrompt))

	resp, err := client.Models.GenerateContent(ctx, p.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(classificationSystemInstruction, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    classificationSchema,
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini vision request failed")
		return nil, fmt.Errorf("gemini vision: %w", err)
	}

	text := resp.Text()
	if text == "" {
		log.Error("Gemini vision returned an empty response")
		return nil, fmt.Errorf("gemini vision: %w", ErrEmptyResponse)
	}

	var result models.Classification
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.WithError(err).Error("Gemini vision returned malformed JSON")
		return nil, fmt.Errorf("gemini vision: failed to decode classification: %w", err)
	}
	return &result, nil
}

// ResolveAddress геокодирует адрес с инструментом Google Maps. Пустой адрес и
// неразобранный ответ дают DefaultCenter; ошибки транспорта возвращаются как есть.
func (p *GeminiProvider) ResolveAddress(ctx context.Context, address string) (*models.Location, error) {
	log := p.logger.WithFields(logrus.Fields{
		"provider": "gemini",
		"method":   "ResolveAddress",
	})

	if strings.TrimSpace(address) == "" {
		loc := DefaultCenter
		return &loc, nil
	}

	client, err := p.newClient(ctx)
	if err != nil {
		return nil, err
	}

	// responseMimeType нельзя использовать вместе с инструментами
	resp, err := client.Models.GenerateContent(ctx, p.model,
		genai.Text(geocodePrompt(address)),
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini geocoding request failed")
		return nil, fmt.Errorf("gemini geocoding: %w", err)
	}

	text := resp.Text()
	loc, ok := LocationFromText(text, groundingURIs(resp))
	if !ok {
		log.WithField("response", text).Warn("Could not parse coordinates from Gemini response")
	}
	return loc, nil
}

// AnswerQuery передает всю таблицу бюджета в запрос и возвращает ответ в Markdown
func (p *GeminiProvider) AnswerQuery(ctx context.Context, items []models.BudgetLineItem, query string) (string, error) {
	client, err := p.newClient(ctx)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to serialize budget data: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, p.model,
		genai.Text(budgetPrompt(data, query)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(budgetSystemInstruction, genai.RoleUser),
		},
	)
	if err != nil {
		p.logger.WithError(err).WithField("method", "AnswerQuery").Error("Gemini budget request failed")
		return "", fmt.Errorf("gemini budget: %w", err)
	}
	return resp.Text(), nil
}

// DetectSpatialFeatures запрашивает сводку и рамки "транспортных пустынь"
func (p *GeminiProvider) DetectSpatialFeatures(ctx context.Context, image media.Frame) (*models.SpatialDetection, error) {
	log := p.logger.WithFields(logrus.Fields{
		"provider": "gemini",
		"method":   "DetectSpatialFeatures",
		"model":    p.spatialModel,
	})

	client, err := p.newClient(ctx)
	if err != nil {
		return nil, err
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(image.Data, image.MIMEType),
		genai.NewPartFromText(spatialPrompt),
	}
	resp, err := client.Models.GenerateContent(ctx, p.spatialModel,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   spatialSchema,
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini spatial analysis request failed")
		return nil, fmt.Errorf("gemini spatial: %w", err)
	}

	text := resp.Text()
	if text == "" {
		log.Error("Gemini spatial analysis returned an empty response")
		return nil, fmt.Errorf("gemini spatial: %w", ErrEmptyResponse)
	}

	var result models.SpatialDetection
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.WithError(err).Error("Gemini spatial analysis returned malformed JSON")
		return nil, fmt.Errorf("gemini spatial: failed to decode detection: %w", err)
	}
	return &result, nil
}

// groundingURIs собирает ссылки из grounding-метаданных первого кандидата
func groundingURIs(resp *genai.GenerateContentResponse) []string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	var uris []string
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil {
			continue
		}
		if chunk.Web != nil && chunk.Web.URI != "" {
			uris = append(uris, chunk.Web.URI)
		}
		if chunk.Maps != nil && chunk.Maps.URI != "" {
			uris = append(uris, chunk.Maps.URI)
		}
	}
	return uris
}
