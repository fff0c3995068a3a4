package m365

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/samber/lo"

	"github.com/custodia-labs/collabctl/internal/core/domain"
)

const defaultUserLimit = 25

// userSelectFields is the fixed field projection for directory queries.
const userSelectFields = "id,displayName,userPrincipalName,mail,department"

// graphUser is a user resource from Microsoft Graph.
type graphUser struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
	Department        string `json:"department"`
}

// email returns the user's mail address, falling back to the principal name.
func (u *graphUser) email() string {
	if u.Mail != "" {
		return u.Mail
	}
	return u.UserPrincipalName
}

// toRecord maps a Graph user to the domain record.
func (u graphUser) toRecord() domain.User {
	return domain.User{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.email(),
		Department:  u.Department,
	}
}

// ListUsers fetches up to limit users in the tenant (default 25).
func (p *Provider) ListUsers(ctx context.Context, limit int) ([]domain.User, error) {
	if limit <= 0 {
		limit = defaultUserLimit
	}

	query := url.Values{
		"$top":    {strconv.Itoa(limit)},
		"$select": {userSelectFields},
	}

	var resp struct {
		Value []graphUser `json:"value"`
	}
	if err := p.client.getJSON(ctx, "/users", query, &resp); err != nil {
		return nil, err
	}

	return lo.Map(resp.Value, func(u graphUser, _ int) domain.User {
		return u.toRecord()
	}), nil
}

// GetUser fetches a single user by ID or principal name.
func (p *Provider) GetUser(ctx context.Context, userID string) (domain.User, error) {
	query := url.Values{"$select": {userSelectFields}}

	var user graphUser
	err := p.client.getJSON(ctx, "/users/"+url.PathEscape(userID), query, &user)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.User{}, &domain.NotFoundError{Resource: "user", ID: userID}
		}
		return domain.User{}, err
	}

	return user.toRecord(), nil
}
