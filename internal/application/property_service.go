package application

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/estatia/estatia/internal/domain/entity"
	repo "github.com/estatia/estatia/internal/domain/repository"
	"github.com/estatia/estatia/pkg/helpers"
)

const listingCacheKey = "properties:all"

// PropertyService orchestrates listing CRUD, search and sort. Redis and
// Elasticsearch are optional collaborators; a nil client disables the cache
// or the index without affecting the served result.
type PropertyService struct {
	Repo     repo.PropertyRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	ES       *elasticsearch.Client
	ESIndex  string
	Logger   *logrus.Logger
}

func NewPropertyService(r repo.PropertyRepository, rdb *redis.Client, cacheTTL time.Duration, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *PropertyService {
	return &PropertyService{Repo: r, Redis: rdb, CacheTTL: cacheTTL, ES: es, ESIndex: esIndex, Logger: logger}
}

func (s *PropertyService) List(ctx context.Context) ([]PropertyResponse, error) {
	if s.Redis != nil {
		var cached []PropertyResponse
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, listingCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	props, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := ToPropertyResponses(props)
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, listingCacheKey, out, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("listing cache write failed")
		}
	}
	return out, nil
}

func (s *PropertyService) Get(ctx context.Context, id int64) (PropertyResponse, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return PropertyResponse{}, err
	}
	return ToPropertyResponse(p), nil
}

func (s *PropertyService) Create(ctx context.Context, req PropertyRequest) (PropertyResponse, error) {
	p := PropertyFromRequest(req)
	if err := s.Repo.Create(ctx, p); err != nil {
		return PropertyResponse{}, err
	}
	s.invalidateListingCache(ctx)
	s.indexProperty(ctx, p)
	return ToPropertyResponse(p), nil
}

// Update overwrites all five mutable fields; partial updates are not supported.
func (s *PropertyService) Update(ctx context.Context, id int64, req PropertyRequest) (PropertyResponse, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return PropertyResponse{}, err
	}
	ApplyPropertyRequest(p, req)
	if err := s.Repo.Update(ctx, p); err != nil {
		return PropertyResponse{}, err
	}
	s.invalidateListingCache(ctx)
	s.indexProperty(ctx, p)
	return ToPropertyResponse(p), nil
}

func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListingCache(ctx)
	s.removeFromIndex(ctx, id)
	return nil
}

func (s *PropertyService) SearchByLocation(ctx context.Context, location string) ([]PropertyResponse, error) {
	props, err := s.Repo.SearchByLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	return ToPropertyResponses(props), nil
}

// SearchByPriceRange returns rows whose price lies in the closed interval
// [minPrice, maxPrice].
func (s *PropertyService) SearchByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]PropertyResponse, error) {
	props, err := s.Repo.SearchByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, err
	}
	return ToPropertyResponses(props), nil
}

func (s *PropertyService) SearchByTitle(ctx context.Context, title string) ([]PropertyResponse, error) {
	props, err := s.Repo.SearchByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	return ToPropertyResponses(props), nil
}

func (s *PropertyService) SortedByPriceAsc(ctx context.Context) ([]PropertyResponse, error) {
	props, err := s.Repo.ListByPriceAsc(ctx)
	if err != nil {
		return nil, err
	}
	return ToPropertyResponses(props), nil
}

func (s *PropertyService) SortedByPriceDesc(ctx context.Context) ([]PropertyResponse, error) {
	props, err := s.Repo.ListByPriceDesc(ctx)
	if err != nil {
		return nil, err
	}
	return ToPropertyResponses(props), nil
}

// SeedSampleData inserts the ten sample listings when the store is empty.
// Gated on row count, so repeated calls are no-ops once anything exists.
func (s *PropertyService) SeedSampleData(ctx context.Context) error {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for i := range sampleListings {
		p := sampleListings[i]
		if err := s.Repo.Create(ctx, &p); err != nil {
			return err
		}
	}
	if s.Logger != nil {
		s.Logger.WithField("count", len(sampleListings)).Info("sample property data initialized")
	}
	s.invalidateListingCache(ctx)
	return nil
}

func (s *PropertyService) invalidateListingCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, listingCacheKey); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("listing cache invalidation failed")
	}
}

// indexProperty mirrors the row into Elasticsearch. Best effort: search
// endpoints are served from the store, the index only feeds external tooling.
func (s *PropertyService) indexProperty(ctx context.Context, p *entity.Property) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          p.ID,
		"title":       p.Title,
		"location":    p.Location,
		"price":       p.Price,
		"image_url":   p.ImageURL,
		"description": p.Description,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":  p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESIndex,
		DocumentID: strconv.FormatInt(p.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("property_id", p.ID).Warn("es index response error")
	}
}

func (s *PropertyService) removeFromIndex(ctx context.Context, id int64) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("property_id", id).Warn("es delete failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
}
