package service

import (
	"context"

	"github.com/Lixing-Zhang/pavilion-catalog/internal/catalog"
	"github.com/Lixing-Zhang/pavilion-catalog/internal/models"
)

// ListAlbums returns active gallery albums by display order with media counts
func (s *CatalogService) ListAlbums(ctx context.Context) ([]AlbumSummary, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	albums := catalog.ActiveByOrder(c.Albums)
	summaries := make([]AlbumSummary, len(albums))
	for i, a := range albums {
		photos, videos := countMedia(c.MediaOf(a.ID, ""))
		summaries[i] = AlbumSummary{Album: a, Photos: photos, Videos: videos}
	}
	return summaries, nil
}

// GetAlbum resolves an album; mediaType narrows the media list but not the counts
func (s *CatalogService) GetAlbum(ctx context.Context, slug string, mediaType models.MediaType) (*AlbumView, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	album, ok := catalog.Resolve(c.Albums, slug)
	if !ok {
		return nil, ErrAlbumNotFound
	}

	photos, videos := countMedia(c.MediaOf(album.ID, ""))
	return &AlbumView{
		Album:  album,
		Media:  c.MediaOf(album.ID, mediaType),
		Photos: photos,
		Videos: videos,
	}, nil
}

func countMedia(items []models.MediaItem) (photos, videos int) {
	for _, m := range items {
		switch m.Type {
		case models.MediaImage:
			photos++
		case models.MediaVideo:
			videos++
		}
	}
	return photos, videos
}

// ListJobs returns the open positions
func (s *CatalogService) ListJobs(ctx context.Context) ([]models.Job, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Active(c.Jobs), nil
}

// GetJob resolves a job posting
func (s *CatalogService) GetJob(ctx context.Context, slug string) (*models.Job, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	job, ok := catalog.Resolve(c.Jobs, slug)
	if !ok {
		return nil, ErrJobNotFound
	}
	return &job, nil
}

// GetPage resolves a CMS page
func (s *CatalogService) GetPage(ctx context.Context, slug string) (*models.Page, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	page, ok := catalog.Resolve(c.Pages, slug)
	if !ok {
		return nil, ErrPageNotFound
	}
	return &page, nil
}

// GetStoreInfo returns the store's contact and location details
func (s *CatalogService) GetStoreInfo(ctx context.Context) (*models.StoreInfo, error) {
	c, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if c.Store == nil {
		return nil, ErrStoreInfoNotFound
	}
	info := *c.Store
	info.Phone = append([]string(nil), c.Store.Phone...)
	return &info, nil
}
