package portfolio

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/pkg/logger"
)

// InvalidateCacheUseCase drops the cached snapshot after a content mutation
// so the next load rebuilds it from the repositories.
type InvalidateCacheUseCase struct {
	cache  *redis.Client
	logger logger.Logger
}

func NewInvalidateCacheUseCase(cache *redis.Client, log logger.Logger) *InvalidateCacheUseCase {
	return &InvalidateCacheUseCase{cache: cache, logger: log}
}

func (uc *InvalidateCacheUseCase) Execute(ctx context.Context) error {
	if err := uc.cache.Del(ctx, CacheKey).Err(); err != nil {
		return fmt.Errorf("delete snapshot cache failed: %w", err)
	}
	uc.logger.Info("portfolio snapshot cache invalidated", zap.String("key", CacheKey))
	return nil
}
