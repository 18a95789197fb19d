package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	catalogRepo "barberflow/database/repository/catalog"
	"barberflow/utils"
)

const (
	servicesCacheKey = "catalog:services"
	barbersCacheKey  = "catalog:barbers"
)

// DefaultCatalogService serves the list_services and list_barbers tools,
// fronted by a short-TTL Redis read-through cache. A nil Cache disables
// caching.
type DefaultCatalogService struct {
	Repo  catalogRepo.CatalogRepository
	Cache *redis.Client
	TTL   time.Duration
}

// ListServices returns the active services, cheapest representation first by name.
func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]ServiceInfo, error) {
	var infos []ServiceInfo
	if s.cacheGet(ctx, servicesCacheKey, &infos) {
		return infos, nil
	}

	services, err := s.Repo.ListActiveServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	for _, svc := range services {
		infos = append(infos, ServiceInfo{
			ID:              svc.ID,
			Name:            svc.Name,
			Description:     svc.Description,
			DurationMinutes: svc.DurationMinutes,
			PriceCents:      svc.PriceCents,
		})
	}
	s.cacheSet(ctx, servicesCacheKey, infos)
	return infos, nil
}

// ListBarbers returns the active barbers.
func (s *DefaultCatalogService) ListBarbers(ctx context.Context) ([]BarberInfo, error) {
	var infos []BarberInfo
	if s.cacheGet(ctx, barbersCacheKey, &infos) {
		return infos, nil
	}

	barbers, err := s.Repo.ListActiveBarbers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list barbers: %w", err)
	}
	for _, b := range barbers {
		infos = append(infos, BarberInfo{ID: b.ID, Name: b.Name})
	}
	s.cacheSet(ctx, barbersCacheKey, infos)
	return infos, nil
}

func (s *DefaultCatalogService) cacheGet(ctx context.Context, key string, out any) bool {
	if s.Cache == nil {
		return false
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		utils.GetLogger().Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false
	}
	return true
}

func (s *DefaultCatalogService) cacheSet(ctx context.Context, key string, val any) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	ttl := s.TTL
	if ttl == 0 {
		ttl = time.Minute
	}
	if err := s.Cache.Set(ctx, key, data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}
