package utils

import (
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

var webhookClient = resty.New().SetTimeout(5 * time.Second)

// NotifyModeration posts a moderation event to the configured webhook.
// Best-effort: a missing MODERATION_WEBHOOK_URL disables it, and delivery
// failures are logged without affecting the request.
func NotifyModeration(action, entity string, id uint, name string) {
	url := os.Getenv("MODERATION_WEBHOOK_URL")
	if url == "" {
		return
	}

	resp, err := webhookClient.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"action": action,
			"entity": entity,
			"id":     id,
			"nom":    name,
			"at":     time.Now().UTC().Format(time.RFC3339),
		}).
		Post(url)

	if err != nil {
		log.Printf("Moderation webhook error for %s %d: %v", entity, id, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Moderation webhook returned %d for %s %d", resp.StatusCode(), entity, id)
	}
}
