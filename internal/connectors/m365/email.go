package m365

import (
	"context"
	"net/url"

	"github.com/samber/lo"

	"github.com/custodia-labs/collabctl/internal/core/domain"
)

// sendMailRequest is the Graph sendMail action payload.
type sendMailRequest struct {
	Message         outlookMessage `json:"message"`
	SaveToSentItems bool           `json:"saveToSentItems"`
}

type outlookMessage struct {
	Subject      string      `json:"subject"`
	Body         itemBody    `json:"body"`
	ToRecipients []recipient `json:"toRecipients"`
}

type itemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type recipient struct {
	EmailAddress emailAddress `json:"emailAddress"`
}

type emailAddress struct {
	Address string `json:"address"`
}

// SendEmail sends a plain-text email via the sender's mailbox, saving the sent
// copy to Sent Items. When fromUser is empty the first user in the tenant is
// used as the sender; a tenant with no users is a *domain.NoUsersAvailableError.
// The send is fire-and-forget: once Graph accepts the call, the result is true.
func (p *Provider) SendEmail(ctx context.Context, to []string, subject, body, fromUser string) (bool, error) {
	if fromUser == "" {
		users, err := p.ListUsers(ctx, 1)
		if err != nil {
			return false, err
		}
		if len(users) == 0 {
			return false, &domain.NoUsersAvailableError{}
		}
		fromUser = users[0].ID
	}

	payload := sendMailRequest{
		Message: outlookMessage{
			Subject: subject,
			Body: itemBody{
				ContentType: "Text",
				Content:     body,
			},
			ToRecipients: lo.Map(to, func(addr string, _ int) recipient {
				return recipient{EmailAddress: emailAddress{Address: addr}}
			}),
		},
		SaveToSentItems: true,
	}

	path := "/users/" + url.PathEscape(fromUser) + "/sendMail"
	if err := p.client.postJSON(ctx, path, payload); err != nil {
		return false, err
	}
	return true, nil
}
