// Package mailapi is the HTTP client for the transactional mail service.
package mailapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/notification"
)

type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, from string, httpClient *http.Client) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    trimmed,
		apiKey:     strings.TrimSpace(apiKey),
		from:       strings.TrimSpace(from),
		httpClient: httpClient,
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) Send(ctx context.Context, email notification.Email) error {
	if c.baseURL == "" {
		return fmt.Errorf("mail api not configured")
	}
	if strings.TrimSpace(email.To) == "" {
		return fmt.Errorf("recipient address is empty")
	}
	payload := sendRequest{From: c.from, To: email.To, Subject: email.Subject, Text: email.Body}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode mail request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	payloadBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("mail api status %d", resp.StatusCode)
	}
	return mapSendError(resp.StatusCode, payloadBytes)
}

func mapSendError(status int, payload []byte) error {
	var parsed errorResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		message := strings.TrimSpace(string(payload))
		if message == "" {
			return fmt.Errorf("mail api status %d", status)
		}
		return fmt.Errorf("mail api status %d: %s", status, message)
	}
	if parsed.Message != "" {
		return fmt.Errorf("mail api: %s", parsed.Message)
	}
	if parsed.Error != "" {
		return fmt.Errorf("mail api: %s", parsed.Error)
	}
	return fmt.Errorf("mail api status %d", status)
}
