package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client — клиент Judge0 CE. Песочница синхронная: ждем результат
// в рамках одного запроса (wait=true), ретраев нет — при ошибке
// пользователь запускает код заново сам.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type runRequest struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

type RunStatus struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type RunResult struct {
	Stdout        string    `json:"stdout"`
	Stderr        string    `json:"stderr"`
	CompileOutput string    `json:"compile_output"`
	Message       string    `json:"message"`
	Status        RunStatus `json:"status"`
	Time          string    `json:"time"`
	Memory        float64   `json:"memory"`
}

func (c *Client) Execute(ctx context.Context, languageID int, sourceCode, stdin string) (*RunResult, error) {
	bodyBytes, err := json.Marshal(runRequest{
		SourceCode: sourceCode,
		LanguageID: languageID,
		Stdin:      stdin,
	})
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/submissions?base64_encoded=false&wait=true"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("judge0 error: status=%d body=%s", resp.StatusCode, raw)
	}

	var result RunResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("judge0 decode failed: %w", err)
	}
	return &result, nil
}
