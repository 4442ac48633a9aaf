package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
}

// NewResendClient creates a new Resend client
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "hello@kularfashion.com" // Default from address
	}

	return &ResendClient{
		apiKey:  apiKey,
		from:    from,
		baseURL: "https://api.resend.com",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SendNewsletterWelcome sends the welcome email to a new subscriber
func (r *ResendClient) SendNewsletterWelcome(email string) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      email,
		"subject": "Welcome to the Kular Fashion newsletter",
		"html":    r.buildWelcomeHTML(),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", r.baseURL+"/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] API error %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend API returned %d", resp.StatusCode)
	}

	log.Printf("[resend] welcome email sent to %s", email)
	return nil
}

func (r *ResendClient) buildWelcomeHTML() string {
	return `
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 24px;">
		<h2 style="color: #111;">Welcome to Kular Fashion</h2>
		<p style="color: #444; line-height: 1.6;">
			Thanks for subscribing. You'll be the first to hear about new arrivals,
			seasonal edits and subscriber-only offers.
		</p>
		<p style="color: #444; line-height: 1.6;">
			— The Kular Fashion team
		</p>
		<hr style="border: none; border-top: 1px solid #eee; margin: 24px 0;" />
		<p style="color: #999; font-size: 12px;">
			You received this email because you subscribed on kularfashion.com.
		</p>
	</div>`
}
