package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	visitorTotalKey      = "visitors:total"
	visitorPageKeyPrefix = "visitors:page:"
)

// RedisVisitorCounter tracks page visits in Redis. Counts are monotonic
// INCRs with no TTL; Redis persistence is the durability story.
type RedisVisitorCounter struct {
	client *redis.Client
}

// NewRedisVisitorCounter creates a new Redis-backed visitor counter
func NewRedisVisitorCounter(client *redis.Client) *RedisVisitorCounter {
	return &RedisVisitorCounter{
		client: client,
	}
}

// Hit records a visit to page and returns the new total for that page.
// The site-wide total is bumped in the same call.
func (r *RedisVisitorCounter) Hit(ctx context.Context, page string) (int64, error) {
	page = normalizePage(page)

	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "visitors.Hit",
		trace.WithAttributes(attribute.String("visitors.page", page)),
	)
	defer span.End()

	pipe := r.client.TxPipeline()
	pageCount := pipe.Incr(ctx, visitorPageKeyPrefix+page)
	pipe.Incr(ctx, visitorTotalKey)

	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to record visit: %w", err)
	}

	return pageCount.Val(), nil
}

// Total returns the site-wide visit count
func (r *RedisVisitorCounter) Total(ctx context.Context) (int64, error) {
	count, err := r.client.Get(ctx, visitorTotalKey).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil // No visits recorded yet
		}
		return 0, fmt.Errorf("failed to read visitor total: %w", err)
	}
	return count, nil
}

// PageCount returns the visit count for a single page
func (r *RedisVisitorCounter) PageCount(ctx context.Context, page string) (int64, error) {
	count, err := r.client.Get(ctx, visitorPageKeyPrefix+normalizePage(page)).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read page count: %w", err)
	}
	return count, nil
}

// normalizePage collapses page identifiers so "/", "" and "home" share a key
func normalizePage(page string) string {
	page = strings.Trim(strings.ToLower(page), "/")
	if page == "" {
		return "home"
	}
	return page
}
