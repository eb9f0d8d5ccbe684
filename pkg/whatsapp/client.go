// Package whatsapp is a thin client for the Evolution API text-message
// endpoint (POST /message/sendText/{instance}). Sends are best effort:
// failures come back as a result value, never as a panic or retry.
package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	BaseURL    string
	Instance   string
	APIKey     string
	HTTPClient *http.Client
}

type sendTextRequest struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

// SendResult is the per-recipient outcome of one send attempt.
type SendResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func NewClient(baseURL, instance, apiKey string) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Instance: instance,
		APIKey:   apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Configured reports whether the client has enough settings to attempt a
// send. An unconfigured client no-ops and reports failure instead of
// erroring out the caller.
func (c *Client) Configured() bool {
	return c.BaseURL != "" && c.Instance != ""
}

// FormatNumber normalizes a phone number to the digits-only
// country+area+number form the Evolution API expects (5561999999999).
// Returns "" when the input cannot yield at least 10 digits.
func FormatNumber(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) >= 12 && strings.HasPrefix(d, "55") {
		return d
	}
	if len(d) >= 10 {
		return "55" + d
	}
	return ""
}

// SendText sends one text message. Numbers that do not normalize are
// rejected locally without an outbound call.
func (c *Client) SendText(number, text string) SendResult {
	if !c.Configured() {
		log.Println("whatsapp: EVOLUTION_API_URL or EVOLUTION_INSTANCE not configured, skipping send")
		return SendResult{OK: false, Error: "whatsapp API not configured"}
	}

	normalized := FormatNumber(number)
	if normalized == "" {
		log.Printf("whatsapp: invalid number %q, skipping send", number)
		return SendResult{OK: false, Error: "invalid phone number"}
	}

	jsonData, err := json.Marshal(sendTextRequest{Number: normalized, Text: text})
	if err != nil {
		return SendResult{OK: false, Error: fmt.Sprintf("failed to marshal request: %v", err)}
	}

	url := fmt.Sprintf("%s/message/sendText/%s", c.BaseURL, c.Instance)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return SendResult{OK: false, Error: fmt.Sprintf("failed to create request: %v", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("apikey", c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("whatsapp: send to %s failed: %v", normalized, err)
		return SendResult{OK: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = resp.Status
		}
		log.Printf("whatsapp: send to %s returned %d: %s", normalized, resp.StatusCode, msg)
		return SendResult{OK: false, Error: msg}
	}

	return SendResult{OK: true}
}
