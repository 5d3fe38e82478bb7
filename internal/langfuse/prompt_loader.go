package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// PromptLoaderConfig describes where the system instruction template lives.
type PromptLoaderConfig struct {
	Config

	PromptName  string
	PromptLabel string
	// SavePath caches the last fetched prompt and serves as offline fallback.
	SavePath string
}

var (
	errLangfuseDisabled = errors.New("langfuse integration disabled")
	// ErrNoPrompt means neither Langfuse nor the local cache produced a prompt.
	ErrNoPrompt = errors.New("no prompt available")
)

// LoadPrompt fetches a text prompt from Langfuse, caching it at SavePath. On
// any fetch failure the cached copy is returned instead.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	if cfg.PromptName != "" {
		prompt, err := fetchPrompt(ctx, cfg)
		if err == nil {
			if err := savePrompt(cfg.SavePath, prompt); err != nil {
				log.Warn().Err(err).Msg("[langfuse] failed to cache prompt locally")
			}
			return prompt, nil
		}
		if !errors.Is(err, errLangfuseDisabled) {
			log.Warn().Err(err).Str("prompt", cfg.PromptName).Msg("[langfuse] prompt fetch failed")
		}
	}
	return readPrompt(cfg.SavePath)
}

func fetchPrompt(ctx context.Context, cfg PromptLoaderConfig) (string, error) {
	if !cfg.Enabled() {
		return "", errLangfuseDisabled
	}

	parsed, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(cfg.PromptName)
	if cfg.PromptLabel != "" {
		parsed.RawQuery = url.Values{"label": {cfg.PromptLabel}}.Encode()
	}

	reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call Langfuse prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("Langfuse prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var promptResp struct {
		Type   string          `json:"type"`
		Prompt json.RawMessage `json:"prompt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&promptResp); err != nil {
		return "", fmt.Errorf("decode Langfuse prompt response: %w", err)
	}
	if promptResp.Type != "" && promptResp.Type != "text" {
		return "", fmt.Errorf("unsupported prompt type %q, want text", promptResp.Type)
	}

	var text string
	if err := json.Unmarshal(promptResp.Prompt, &text); err != nil {
		return "", fmt.Errorf("parse text prompt: %w", err)
	}
	return text, nil
}

func readPrompt(path string) (string, error) {
	if path == "" {
		return "", ErrNoPrompt
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read local prompt file: %v", ErrNoPrompt, err)
	}
	return string(data), nil
}

func savePrompt(path, prompt string) error {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(prompt), 0o600)
}
