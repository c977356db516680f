package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"problemspec/internal/domain/model"
	"problemspec/internal/domain/ports"
)

const (
	maxTitle       = 256
	maxDescription = 4096
	embedColor     = 0x5865F2
)

// Webhook is a Discord webhook publisher. Each document becomes one embed
// whose description holds the content in a fenced code block.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
	now        func() time.Time
}

var _ ports.Publisher = (*Webhook)(nil)

// NewWebhook creates a new Discord webhook publisher.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// Publish posts doc to Discord.
func (w *Webhook) Publish(ctx context.Context, doc model.Document) error {
	if w.webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}

	payload := map[string]any{
		"content": "",
		"embeds": []map[string]any{
			{
				"title":       truncate(doc.Name, maxTitle),
				"description": codeBlock(doc.Content, fenceLanguage(doc.Language), maxDescription),
				"timestamp":   w.now().UTC().Format(time.RFC3339),
				"color":       embedColor,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	if w.logger != nil {
		w.logger.Info(ctx, "document sent to discord", "document", doc.Name)
	}
	return nil
}

// fenceLanguage maps a document language onto a Discord code block hint.
func fenceLanguage(lang string) string {
	switch lang {
	case "javascript":
		return "js"
	case "python":
		return "py"
	default:
		return lang
	}
}

// codeBlock wraps content in a fence, cutting content so the whole block fits
// in limit characters.
func codeBlock(content, lang string, limit int) string {
	content = strings.TrimRight(content, "\n")
	open := "```" + lang + "\n"
	const closing = "\n```"
	room := limit - utf8.RuneCountInString(open) - utf8.RuneCountInString(closing)
	if utf8.RuneCountInString(content) > room {
		content = strings.TrimRight(cutRunes(content, room-3), "\n") + "..."
	}
	return open + content + closing
}

func truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	return strings.TrimSpace(cutRunes(value, limit-3)) + "..."
}

// cutRunes returns the first n runes of s.
func cutRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
