package m365

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/samber/lo"

	"github.com/custodia-labs/collabctl/internal/core/domain"
)

// messageCard is the Teams MessageCard payload used when a title is given.
type messageCard struct {
	Type     string        `json:"@type"`
	Summary  string        `json:"summary"`
	Sections []cardSection `json:"sections"`
}

type cardSection struct {
	ActivityTitle string `json:"activityTitle"`
	Text          string `json:"text"`
}

// textPayload is the plain webhook payload used when no title is given.
type textPayload struct {
	Text string `json:"text"`
}

// PostMessage posts to the named channel through its pre-configured incoming
// webhook, bypassing the Graph client entirely. Returns whether the webhook
// answered exactly 200; any other status is a failed post, not an error.
func (p *Provider) PostMessage(ctx context.Context, channelName, message, title string) (bool, error) {
	webhookURL, ok := p.config.Webhooks[channelName]
	if !ok {
		names := lo.Keys(p.config.Webhooks)
		sort.Strings(names)
		return false, &domain.NotFoundError{
			Resource:     "webhook channel",
			ID:           channelName,
			Alternatives: names,
		}
	}

	var payload any
	if title != "" {
		payload = messageCard{
			Type:    "MessageCard",
			Summary: title,
			Sections: []cardSection{
				{ActivityTitle: title, Text: message},
			},
		}
	} else {
		payload = textPayload{Text: message}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.webhook.Do(req)
	if err != nil {
		return false, fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
