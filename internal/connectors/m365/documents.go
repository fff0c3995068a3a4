package m365

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/custodia-labs/collabctl/internal/core/domain"
)

// driveRootAlias is the folder path value meaning "the drive root".
const driveRootAlias = "root"

// graphSite is a SharePoint site resource.
type graphSite struct {
	ID string `json:"id"`
}

// graphDriveItem is a drive item (file or folder) from Microsoft Graph.
type graphDriveItem struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Size   int64       `json:"size"`
	WebURL string      `json:"webUrl"`
	Folder *folderInfo `json:"folder,omitempty"`
}

// folderInfo marks an item as a folder.
type folderInfo struct {
	ChildCount int `json:"childCount"`
}

// isFolder returns true if the item is a folder.
func (d *graphDriveItem) isFolder() bool {
	return d.Folder != nil
}

// resolveSiteID returns siteID unchanged when given, otherwise the first site
// the tenant lists. The "default" is whatever Graph returns first, nothing
// more deterministic than that.
func (p *Provider) resolveSiteID(ctx context.Context, siteID string) (string, error) {
	if siteID != "" {
		return siteID, nil
	}

	var resp struct {
		Value []graphSite `json:"value"`
	}
	if err := p.client.getJSON(ctx, "/sites", nil, &resp); err != nil {
		return "", err
	}
	if len(resp.Value) == 0 || resp.Value[0].ID == "" {
		return "", &domain.NotFoundError{Resource: "sharepoint site"}
	}
	return resp.Value[0].ID, nil
}

// ListDocuments lists children of folderPath on the site's default drive, or
// of the drive root when folderPath is empty or "root". A tenant without any
// site yields an empty list, not an error.
func (p *Provider) ListDocuments(ctx context.Context, folderPath, siteID string) ([]domain.Document, error) {
	resolved, err := p.resolveSiteID(ctx, siteID)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return []domain.Document{}, nil
		}
		return nil, err
	}

	path := "/sites/" + url.PathEscape(resolved) + "/drive/root/children"
	if folderPath != "" && folderPath != driveRootAlias {
		path = "/sites/" + url.PathEscape(resolved) + "/drive/root:/" + escapeDrivePath(folderPath) + ":/children"
	}

	var resp struct {
		Value []graphDriveItem `json:"value"`
	}
	if err := p.client.getJSON(ctx, path, nil, &resp); err != nil {
		return nil, err
	}

	parent := folderPath
	if parent == "" {
		parent = "/"
	}

	return lo.Map(resp.Value, func(item graphDriveItem, _ int) domain.Document {
		return domain.Document{
			ID:       item.ID,
			Name:     item.Name,
			Path:     parent,
			WebURL:   item.WebURL,
			Size:     item.Size,
			IsFolder: item.isFolder(),
		}
	}), nil
}

// UploadDocument writes content to folderPath/name (or just name for the drive
// root) on the site's default drive and returns the created item.
func (p *Provider) UploadDocument(ctx context.Context, name string, content []byte, folderPath, siteID string) (domain.Document, error) {
	resolved, err := p.resolveSiteID(ctx, siteID)
	if err != nil {
		return domain.Document{}, err
	}

	dest := name
	if folderPath != "" && folderPath != driveRootAlias {
		dest = folderPath + "/" + name
	}

	var item graphDriveItem
	path := "/sites/" + url.PathEscape(resolved) + "/drive/root:/" + escapeDrivePath(dest) + ":/content"
	if err := p.client.putBytes(ctx, path, content, &item); err != nil {
		return domain.Document{}, err
	}

	return domain.Document{
		ID:     item.ID,
		Name:   name,
		Path:   dest,
		WebURL: item.WebURL,
	}, nil
}

// DownloadDocument returns the raw content of a document on the site's default
// drive. A document without content yields empty bytes, not an error.
func (p *Provider) DownloadDocument(ctx context.Context, documentID, siteID string) ([]byte, error) {
	resolved, err := p.resolveSiteID(ctx, siteID)
	if err != nil {
		return nil, err
	}

	path := "/sites/" + url.PathEscape(resolved) + "/drive/items/" + url.PathEscape(documentID) + "/content"
	return p.client.getBytes(ctx, path)
}

// escapeDrivePath escapes each segment of a drive path while keeping the
// segment separators intact.
func escapeDrivePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
