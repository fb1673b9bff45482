package api

import (
	"context"
	"net/url"
	"strconv"

	"scriptcraft-client/internal/core"
)

// GenerateScript runs one generation and returns the new session with its
// version summaries. Generation can take a while server-side; the pipeline's
// timeout is the only bound.
func (c *Client) GenerateScript(ctx context.Context, req core.GenerateRequest) (core.GenerateResult, error) {
	var result core.GenerateResult
	err := c.post(ctx, "/scripts/generate", req, &result)
	return result, err
}

// GetScriptDetail fetches the full record of a script version.
func (c *Client) GetScriptDetail(ctx context.Context, versionID string) (core.ScriptDetail, error) {
	var detail core.ScriptDetail
	err := c.get(ctx, "/scripts/versions/"+url.PathEscape(versionID), nil, &detail)
	return detail, err
}

// UpdateScript saves edited content for a version.
func (c *Client) UpdateScript(ctx context.Context, versionID string, req core.UpdateScriptRequest) (core.UpdateResult, error) {
	var result core.UpdateResult
	err := c.put(ctx, "/scripts/versions/"+url.PathEscape(versionID), req, &result)
	return result, err
}

// SelectScript marks a version as the chosen one within its session.
func (c *Client) SelectScript(ctx context.Context, versionID string) error {
	return c.post(ctx, "/scripts/versions/"+url.PathEscape(versionID)+"/select", nil, nil)
}

// GetSessionVersions fetches the version summaries of a generation session.
func (c *Client) GetSessionVersions(ctx context.Context, sessionID string) ([]core.VersionBrief, error) {
	var versions []core.VersionBrief
	err := c.get(ctx, "/scripts/sessions/"+url.PathEscape(sessionID), nil, &versions)
	return versions, err
}

// GetScriptHistory fetches a page of past generation sessions.
func (c *Client) GetScriptHistory(ctx context.Context, q core.HistoryQuery) (core.HistoryPage, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.VideoType != "" {
		query.Set("videoType", q.VideoType)
	}

	var page core.HistoryPage
	err := c.get(ctx, "/scripts/sessions", query, &page)
	return page, err
}
