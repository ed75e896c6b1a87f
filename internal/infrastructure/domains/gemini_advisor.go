package domains

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"webux_bd/internal/domain/entities"
	"webux_bd/internal/usecase/interfaces"
)

var ErrGeminiNotConfigured = errors.New("gemini advisor not configured")

const (
	defaultModel   = "gemini-2.5-flash"
	generateURLFmt = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
	requestTimeout = 20 * time.Second
)

// GeminiAdvisor asks a Gemini model to judge a domain name and propose
// alternatives. The model only simulates registrar knowledge; verdicts are
// advisory and callers fall back to a canned set when the call fails.
type GeminiAdvisor struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

var _ interfaces.IDomainAdvisor = (*GeminiAdvisor)(nil)

func NewGeminiAdvisor(apiKey, model string) *GeminiAdvisor {
	if model == "" {
		model = defaultModel
	}
	if apiKey == "" {
		log.Printf("[domains][advisor] missing GEMINI_API_KEY, suggestions will use the fallback set")
	}
	return &GeminiAdvisor{
		httpClient: &http.Client{Timeout: requestTimeout},
		apiKey:     apiKey,
		model:      model,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// responseSchema constrains the model to the suggestion array shape.
var responseSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"name": {"type": "STRING"},
			"isAvailable": {"type": "BOOLEAN"},
			"price": {"type": "STRING"},
			"reasoning": {"type": "STRING"}
		},
		"required": ["name", "isAvailable", "price", "reasoning"]
	}
}`)

type suggestionItem struct {
	Name        string `json:"name"`
	IsAvailable bool   `json:"isAvailable"`
	Price       string `json:"price"`
	Reasoning   string `json:"reasoning"`
}

func (a *GeminiAdvisor) Suggest(ctx context.Context, domainName string) ([]entities.DomainResult, error) {
	if a.apiKey == "" {
		return nil, ErrGeminiNotConfigured
	}

	prompt := fmt.Sprintf(`Act as a domain name registrar and branding expert.
The user is interested in the domain name: %q.

1. Analyze if this domain is likely premium, taken, or available based on common patterns (do not actually query a WHOIS database, just simulate based on likelihood).
2. Suggest 4 creative, modern alternatives relevant to web development, tech, or the specific keywords in the input.
3. Assign realistic simulated pricing.

Return the response in strictly JSON format adhering to the schema. The first element must describe %q itself.`, domainName, domainName)

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema,
		},
	})
	if err != nil {
		return nil, err
	}

	url := a.baseURL
	if url == "" {
		url = fmt.Sprintf(generateURLFmt, a.model)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		log.Printf("[domains][advisor] request failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[domains][advisor] unexpected status=%d", resp.StatusCode)
		return nil, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("gemini returned no candidates")
	}

	var items []suggestionItem
	if err := json.Unmarshal([]byte(decoded.Candidates[0].Content.Parts[0].Text), &items); err != nil {
		return nil, err
	}

	results := make([]entities.DomainResult, 0, len(items))
	for _, it := range items {
		results = append(results, entities.DomainResult{
			Name:        it.Name,
			IsAvailable: it.IsAvailable,
			Price:       it.Price,
			Reasoning:   it.Reasoning,
		})
	}
	return results, nil
}
