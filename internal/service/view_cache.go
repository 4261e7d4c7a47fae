package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"psicoagenda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefixes for cached read views
	patientListKeyPrefix   = "view:patients:list:"
	patientDetailKeyPrefix = "view:patients:detail:"

	viewCacheTTL = 5 * time.Minute
)

// ViewCache is the cache-invalidation contract the domain actions expose to
// their callers: any mutation of a patient invalidates the cached patient
// list pages and the patient's detail view for the owning tenant.
type ViewCache interface {
	GetPatientList(ctx context.Context, tenantID uuid.UUID, filter *entity.PatientFilter) ([]byte, bool)
	SetPatientList(ctx context.Context, tenantID uuid.UUID, filter *entity.PatientFilter, payload []byte)
	InvalidatePatientViews(ctx context.Context, tenantID, patientID uuid.UUID)
}

type redisViewCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisViewCache(client *redis.Client, log *logrus.Logger) ViewCache {
	return &redisViewCache{client: client, log: log}
}

// patientListKey hashes the filter so every distinct page/search/sort
// combination gets its own cache entry under the tenant's prefix.
func patientListKey(tenantID uuid.UUID, filter *entity.PatientFilter) string {
	raw := fmt.Sprintf("%s|%s|%s|%s|%d|%d", filter.Search, filter.Status, filter.SortBy, filter.SortOrder, filter.Page, filter.Limit)
	sum := sha256.Sum256([]byte(raw))
	return patientListKeyPrefix + tenantID.String() + ":" + hex.EncodeToString(sum[:8])
}

func (c *redisViewCache) GetPatientList(ctx context.Context, tenantID uuid.UUID, filter *entity.PatientFilter) ([]byte, bool) {
	payload, err := c.client.Get(ctx, patientListKey(tenantID, filter)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read patient list cache: %+v", err)
		}
		return nil, false
	}
	return payload, true
}

func (c *redisViewCache) SetPatientList(ctx context.Context, tenantID uuid.UUID, filter *entity.PatientFilter, payload []byte) {
	if err := c.client.Set(ctx, patientListKey(tenantID, filter), payload, viewCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to cache patient list: %+v", err)
	}
}

func (c *redisViewCache) InvalidatePatientViews(ctx context.Context, tenantID, patientID uuid.UUID) {
	listPattern := patientListKeyPrefix + tenantID.String() + ":*"
	keys, err := c.client.Keys(ctx, listPattern).Result()
	if err != nil {
		c.log.Warnf("Failed to list patient view cache keys: %+v", err)
		return
	}
	keys = append(keys, patientDetailKeyPrefix+patientID.String())
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("Failed to invalidate patient view cache: %+v", err)
	}
}
