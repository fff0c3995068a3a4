package m365

import (
	"context"
	"net/url"

	"github.com/custodia-labs/collabctl/internal/core/domain"
)

const defaultMessageLimit = 20

// teamEnumerationLimit bounds the fan-out when aggregating channels across
// teams: only the first teams returned by the group listing are queried.
const teamEnumerationLimit = 5

// teamProvisioningFilter selects groups that are provisioned as Teams.
const teamProvisioningFilter = "resourceProvisioningOptions/Any(x:x eq 'Team')"

// graphTeam is a Team-provisioned group from Microsoft Graph.
type graphTeam struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// graphChannel is a Teams channel resource.
type graphChannel struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

// toRecord maps a Graph channel to the domain record, annotated with the team
// it was found under. teamName is empty unless discovered via enumeration.
func (ch graphChannel) toRecord(teamID, teamName string) domain.Channel {
	return domain.Channel{
		ID:          ch.ID,
		Name:        ch.DisplayName,
		Description: ch.Description,
		TeamID:      teamID,
		TeamName:    teamName,
	}
}

// graphChatMessage is a channel message resource.
type graphChatMessage struct {
	ID   string `json:"id"`
	Body *struct {
		Content string `json:"content"`
	} `json:"body"`
	From *struct {
		User *struct {
			DisplayName string `json:"displayName"`
		} `json:"user"`
	} `json:"from"`
	CreatedDateTime string `json:"createdDateTime"`
}

// toRecord maps a Graph message to the domain record.
func (msg graphChatMessage) toRecord(channelID string) domain.Message {
	sender := domain.UnknownSender
	if msg.From != nil && msg.From.User != nil && msg.From.User.DisplayName != "" {
		sender = msg.From.User.DisplayName
	}

	content := ""
	if msg.Body != nil {
		content = msg.Body.Content
	}

	return domain.Message{
		ID:        msg.ID,
		Content:   content,
		Sender:    sender,
		Timestamp: msg.CreatedDateTime,
		ChannelID: channelID,
	}
}

// ListChannels lists the channels of a team. When teamID is empty it
// enumerates Team-provisioned groups (bounded by teamEnumerationLimit) and
// aggregates their channels; teams that fail to answer are skipped so a single
// inaccessible team never fails the whole call.
func (p *Provider) ListChannels(ctx context.Context, teamID string) ([]domain.Channel, error) {
	if teamID != "" {
		channels, err := p.listTeamChannels(ctx, teamID)
		if err != nil {
			return nil, err
		}
		result := make([]domain.Channel, 0, len(channels))
		for _, ch := range channels {
			result = append(result, ch.toRecord(teamID, ""))
		}
		return result, nil
	}

	query := url.Values{
		"$filter": {teamProvisioningFilter},
		"$select": {"id,displayName"},
	}
	var teams struct {
		Value []graphTeam `json:"value"`
	}
	if err := p.client.getJSON(ctx, "/groups", query, &teams); err != nil {
		return nil, err
	}

	enumerated := teams.Value
	if len(enumerated) > teamEnumerationLimit {
		enumerated = enumerated[:teamEnumerationLimit]
	}

	all := make([]domain.Channel, 0)
	for _, team := range enumerated {
		if team.ID == "" {
			continue
		}
		channels, err := p.listTeamChannels(ctx, team.ID)
		if err != nil {
			// Best-effort aggregate: skip teams we can't access.
			p.log.Debug("skipping inaccessible team",
				"team_id", team.ID, "team_name", team.DisplayName, "error", err)
			continue
		}
		for _, ch := range channels {
			all = append(all, ch.toRecord(team.ID, team.DisplayName))
		}
	}
	return all, nil
}

// listTeamChannels fetches the raw channel list of one team.
func (p *Provider) listTeamChannels(ctx context.Context, teamID string) ([]graphChannel, error) {
	var resp struct {
		Value []graphChannel `json:"value"`
	}
	path := "/teams/" + url.PathEscape(teamID) + "/channels"
	if err := p.client.getJSON(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// GetMessages fetches up to limit recent messages from a channel (default 20).
// Graph scopes channel messages under a team, so teamID is mandatory; the
// vendor-side ordering is preserved.
func (p *Provider) GetMessages(ctx context.Context, channelID string, limit int, teamID string) ([]domain.Message, error) {
	if teamID == "" {
		return nil, &domain.InvalidArgumentError{
			Param:  "team_id",
			Reason: "required for channel messages",
		}
	}
	if limit <= 0 {
		limit = defaultMessageLimit
	}

	var resp struct {
		Value []graphChatMessage `json:"value"`
	}
	path := "/teams/" + url.PathEscape(teamID) + "/channels/" + url.PathEscape(channelID) + "/messages"
	if err := p.client.getJSON(ctx, path, nil, &resp); err != nil {
		return nil, err
	}

	raw := resp.Value
	if len(raw) > limit {
		raw = raw[:limit]
	}

	messages := make([]domain.Message, 0, len(raw))
	for _, msg := range raw {
		messages = append(messages, msg.toRecord(channelID))
	}
	return messages, nil
}
