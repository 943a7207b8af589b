package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidhub-backend/helper"
	"vidhub-backend/models"
)

type VideoService struct {
	videoStore VideoStore
	catalog    CatalogClient
}

func NewVideoService(videoStore VideoStore, catalog CatalogClient) *VideoService {
	return &VideoService{
		videoStore: videoStore,
		catalog:    catalog,
	}
}

func (s *VideoService) GetVideo(ctx context.Context, videoID primitive.ObjectID) (*models.Video, error) {
	return s.videoStore.FindByID(ctx, videoID)
}

func (s *VideoService) ListVideos(ctx context.Context, page, limit int) (*models.VideoListResponse, error) {
	bounds := helper.Paginate(page, limit, 0)

	videos, total, err := s.videoStore.List(ctx, bounds.Offset, bounds.Size)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []models.Video{}
	}

	paged := helper.Paginate(page, limit, int(total))
	return &models.VideoListResponse{
		Videos:      videos,
		CurrentPage: paged.Number,
		TotalPages:  paged.TotalPages,
		TotalVideos: total,
	}, nil
}

// IngestionResult reports one catalog ingestion run.
type IngestionResult struct {
	Fetched  int `json:"fetched"`
	Inserted int `json:"inserted"`
}

// IngestPopular pulls pages of popular videos from the catalog provider and
// upserts them by external id. Newly-seen videos start with zeroed
// engagement state; videos already present are left untouched.
func (s *VideoService) IngestPopular(ctx context.Context, pages, perPage int) (*IngestionResult, error) {
	return s.ingest(ctx, pages, perPage, s.catalog.FetchPopular)
}

// IngestSearch is IngestPopular for a keyword query.
func (s *VideoService) IngestSearch(ctx context.Context, query string, pages, perPage int) (*IngestionResult, error) {
	fetch := func(ctx context.Context, page, perPage int) ([]models.PexelsVideo, error) {
		return s.catalog.SearchVideos(ctx, query, page, perPage)
	}
	return s.ingest(ctx, pages, perPage, fetch)
}

func (s *VideoService) ingest(ctx context.Context, pages, perPage int, fetch func(context.Context, int, int) ([]models.PexelsVideo, error)) (*IngestionResult, error) {
	if pages < 1 {
		pages = 1
	}
	if perPage < 1 || perPage > 80 {
		perPage = 15
	}

	result := &IngestionResult{}
	for page := 1; page <= pages; page++ {
		entries, err := fetch(ctx, page, perPage)
		if err != nil {
			return nil, err
		}
		for i := range entries {
			result.Fetched++
			inserted, err := s.videoStore.UpsertFromCatalog(ctx, entries[i].ToVideo())
			if err != nil {
				return nil, err
			}
			if inserted {
				result.Inserted++
			}
		}
	}
	return result, nil
}
