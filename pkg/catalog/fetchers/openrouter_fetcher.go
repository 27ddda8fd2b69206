package fetchers

// ABOUTME: OpenRouter catalog data source hitting the /api/v1/models endpoint
// ABOUTME: Maps upstream pricing, architecture, and parameter metadata into ModelRecords

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/estiens/open-router-enhanced-sub001/pkg/catalog/domain"
)

// DefaultBaseURL is the OpenRouter API endpoint.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

const defaultTimeout = 10 * time.Second

// OpenRouterFetcher fetches model metadata from OpenRouter. It implements
// domain.DataSource.
type OpenRouterFetcher struct {
	client *resty.Client
	apiKey string
}

// NewOpenRouterFetcher creates a fetcher against the public OpenRouter API.
// The API key is optional for the models endpoint; when present it is sent
// as a bearer token.
func NewOpenRouterFetcher(apiKey string) *OpenRouterFetcher {
	return NewOpenRouterFetcherWithBaseURL(apiKey, DefaultBaseURL)
}

// NewOpenRouterFetcherWithBaseURL creates a fetcher against a custom base URL.
// Used by tests and proxied deployments.
func NewOpenRouterFetcherWithBaseURL(apiKey, baseURL string) *OpenRouterFetcher {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(defaultTimeout)
	return &OpenRouterFetcher{client: client, apiKey: apiKey}
}

// openRouterModelsResponse is the wire shape of the models endpoint.
type openRouterModelsResponse struct {
	Data []openRouterModel `json:"data"`
}

type openRouterModel struct {
	ID                  string                 `json:"id"`
	Name                string                 `json:"name"`
	Created             int64                  `json:"created,omitempty"`
	Description         string                 `json:"description,omitempty"`
	Pricing             openRouterPricing      `json:"pricing"`
	ContextLength       int                    `json:"context_length"`
	Architecture        openRouterArchitecture `json:"architecture,omitempty"`
	SupportedParameters []string               `json:"supported_parameters,omitempty"`
}

type openRouterPricing struct {
	Prompt     string `json:"prompt"`     // USD per token
	Completion string `json:"completion"` // USD per token
}

type openRouterArchitecture struct {
	Modality         string   `json:"modality"`
	InputModalities  []string `json:"input_modalities"`
	OutputModalities []string `json:"output_modalities"`
}

// FetchAll retrieves the full model list from OpenRouter and maps it into
// catalog records.
func (f *OpenRouterFetcher) FetchAll(ctx context.Context) ([]domain.ModelRecord, error) {
	var response openRouterModelsResponse

	req := f.client.R().
		SetContext(ctx).
		SetResult(&response)
	if f.apiKey != "" {
		req.SetAuthToken(f.apiKey)
	}

	resp, err := req.Get("/models")
	if err != nil {
		return nil, fmt.Errorf("fetching models: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode(), resp.String())
	}

	records := make([]domain.ModelRecord, 0, len(response.Data))
	for _, m := range response.Data {
		records = append(records, mapModel(m))
	}
	return records, nil
}

// mapModel converts one upstream model entry into a catalog record.
func mapModel(m openRouterModel) domain.ModelRecord {
	pricing := domain.Pricing{
		InputPer1K:  parsePerTokenPrice(m.Pricing.Prompt) * 1000,
		OutputPer1K: parsePerTokenPrice(m.Pricing.Completion) * 1000,
	}

	record := domain.ModelRecord{
		ID:            m.ID,
		Pricing:       pricing,
		ContextLength: m.ContextLength,
		Tier:          domain.TierFromPricing(pricing),
		Description:   m.Description,
		Capabilities:  deriveCapabilities(m),
	}

	// A zero created timestamp means the upstream catalog does not know the
	// release date; leave CreatedAt nil so recency filters fail closed.
	if m.Created > 0 {
		created := time.Unix(m.Created, 0).UTC()
		record.CreatedAt = &created
	}

	return record
}

// deriveCapabilities maps architecture and parameter metadata onto tags.
func deriveCapabilities(m openRouterModel) []domain.Capability {
	caps := []domain.Capability{domain.CapabilityChat}

	modality := strings.ToLower(m.Architecture.Modality)
	if strings.Contains(modality, "image") || containsFold(m.Architecture.InputModalities, "image") {
		caps = append(caps, domain.CapabilityVision)
	}
	if containsFold(m.SupportedParameters, "tools") || containsFold(m.SupportedParameters, "tool_choice") {
		caps = append(caps, domain.CapabilityFunctionCalling)
	}
	if containsFold(m.SupportedParameters, "structured_outputs") || containsFold(m.SupportedParameters, "response_format") {
		caps = append(caps, domain.CapabilityStructuredOutputs)
	}
	if m.ContextLength >= domain.LongContextThreshold {
		caps = append(caps, domain.CapabilityLongContext)
	}

	return caps
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// parsePerTokenPrice converts an upstream string price to a float, tolerating
// empty and malformed values as zero.
func parsePerTokenPrice(price string) float64 {
	if price == "" {
		return 0
	}
	p, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return 0
	}
	return p
}
