package narrativeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/vfg2006/store-deck-api/internal/config"
)

const messagesPath = "/v1/messages"

var (
	// ErrMissingAPIKey indica que a credencial do serviço de narrativa não foi configurada
	ErrMissingAPIKey = errors.New("chave de API do serviço de narrativa não configurada")

	// ErrEmptyResponse indica que o serviço respondeu sem conteúdo utilizável
	ErrEmptyResponse = errors.New("resposta do serviço de narrativa vazia ou malformada")
)

type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type NarrativeClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Narrative.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &NarrativeClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// GenerateText envia o prompt composto e retorna o primeiro bloco de texto da resposta
func (c *NarrativeClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.config.Narrative.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	endpoint, err := url.Parse(c.config.Narrative.BaseURL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, messagesPath)

	payload := messageRequest{
		Model:     c.config.Narrative.Model,
		MaxTokens: c.config.Narrative.MaxTokens,
		Messages: []message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("x-api-key", c.config.Narrative.APIKey)
	req.Header.Set("anthropic-version", c.config.Narrative.Version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if len(response.Content) == 0 || response.Content[0].Text == "" {
		return "", ErrEmptyResponse
	}

	return response.Content[0].Text, nil
}
