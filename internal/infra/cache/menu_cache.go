package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"cafe_menu_service/internal/domain/menu"
)

// CachingMenuRepository is a read-through LRU decorator over another
// menu repository. Lookups by date are served from the cache when
// possible; every write invalidates the affected date so readers never
// see stale content. Cached records are cloned on the way out, keeping
// the cached copies safe from caller mutation.
type CachingMenuRepository struct {
	inner  menu.Repository
	cache  *lru.Cache[string, *menu.Record]
	logger *logrus.Entry
}

func NewCachingMenuRepository(inner menu.Repository, size int, logger *logrus.Entry) (*CachingMenuRepository, error) {
	c, err := lru.New[string, *menu.Record](size)
	if err != nil {
		return nil, err
	}
	return &CachingMenuRepository{inner: inner, cache: c, logger: logger}, nil
}

func (r *CachingMenuRepository) GetByDate(ctx context.Context, date string) (*menu.Record, error) {
	if rec, ok := r.cache.Get(date); ok {
		r.logger.WithField("date", date).Debug("Menu cache hit")
		return rec.Clone(), nil
	}

	rec, err := r.inner.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	r.cache.Add(date, rec.Clone())
	return rec, nil
}

func (r *CachingMenuRepository) Upsert(ctx context.Context, date string, slots []menu.Slot) (*menu.Record, error) {
	rec, err := r.inner.Upsert(ctx, date, slots)
	if err != nil {
		return nil, err
	}
	r.cache.Add(date, rec.Clone())
	return rec, nil
}

func (r *CachingMenuRepository) Update(ctx context.Context, date string, slots []menu.Slot) (int64, error) {
	changed, err := r.inner.Update(ctx, date, slots)
	r.cache.Remove(date)
	return changed, err
}

func (r *CachingMenuRepository) Delete(ctx context.Context, date string) (int64, error) {
	changed, err := r.inner.Delete(ctx, date)
	r.cache.Remove(date)
	return changed, err
}

func (r *CachingMenuRepository) ListAll(ctx context.Context) ([]*menu.Record, error) {
	return r.inner.ListAll(ctx)
}
