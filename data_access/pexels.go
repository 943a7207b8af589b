package data_access

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"vidhub-backend/models"
)

// PexelsClient fetches video metadata from the Pexels catalog API.
type PexelsClient struct {
	client *resty.Client
}

func NewPexelsClient(apiKey, baseURL string) *PexelsClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Authorization", apiKey).
		SetTimeout(15 * time.Second)

	return &PexelsClient{client: client}
}

// FetchPopular returns one page of the provider's popular videos.
func (c *PexelsClient) FetchPopular(ctx context.Context, page, perPage int) ([]models.PexelsVideo, error) {
	return c.fetch(ctx, "/popular", map[string]string{
		"page":     fmt.Sprintf("%d", page),
		"per_page": fmt.Sprintf("%d", perPage),
	})
}

// SearchVideos queries the provider's catalog by keyword.
func (c *PexelsClient) SearchVideos(ctx context.Context, query string, page, perPage int) ([]models.PexelsVideo, error) {
	return c.fetch(ctx, "/search", map[string]string{
		"query":    query,
		"page":     fmt.Sprintf("%d", page),
		"per_page": fmt.Sprintf("%d", perPage),
	})
}

func (c *PexelsClient) fetch(ctx context.Context, path string, params map[string]string) ([]models.PexelsVideo, error) {
	var list models.PexelsVideoList

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&list).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("error making request to Pexels API: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("pexels API returned status %d", resp.StatusCode())
	}

	return list.Videos, nil
}
