package biz

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"

	"github.com/looplj/objecthub/internal/log"
	"github.com/looplj/objecthub/internal/objects"
	"github.com/looplj/objecthub/internal/pkg/xcache"
	"github.com/looplj/objecthub/internal/store"
)

// ObjectStore is the persistence the object service reads through.
type ObjectStore interface {
	Get(ctx context.Context, id int) (*store.Record, error)
	Save(ctx context.Context, rec *store.Record) error
	Delete(ctx context.Context, id int) error
}

type ObjectServiceParams struct {
	fx.In

	Store       ObjectStore
	ObjectCache xcache.Cache[store.Record]
}

// ObjectService loads data object records through the object cache.
type ObjectService struct {
	store ObjectStore
	cache xcache.Cache[store.Record]
	group singleflight.Group
}

func NewObjectService(params ObjectServiceParams) *ObjectService {
	cache := params.ObjectCache
	if cache == nil {
		cache = xcache.NewNoop[store.Record]()
	}

	return &ObjectService{
		store: params.Store,
		cache: cache,
	}
}

func buildObjectCacheKey(id int) string {
	return "data_object:" + strconv.Itoa(id)
}

// GetRecord returns the record with the ID regardless of its class.
// Concurrent misses for the same ID share one storage read.
func (s *ObjectService) GetRecord(ctx context.Context, id int) (*store.Record, error) {
	cacheKey := buildObjectCacheKey(id)

	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil && cached.ID == id {
		return &cached, nil
	}

	// The shared read outlives any single caller, each caller still honours its own context.
	ch := s.group.DoChan(cacheKey, func() (any, error) {
		loadCtx := context.WithoutCancel(ctx)

		rec, err := s.store.Get(loadCtx, id)
		if err != nil {
			return nil, err
		}

		if err := s.cache.Set(loadCtx, cacheKey, *rec); err != nil {
			log.Warn(loadCtx, "failed to cache data object", log.Int("id", id), log.Cause(err))
		}

		return rec, nil
	})

	var res singleflight.Result

	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to get data object: %w", ctx.Err())
	}

	v, err := res.Val, res.Err
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("data object %d: %w", id, objects.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to get data object: %w", err)
	}

	rec := *v.(*store.Record)

	return &rec, nil
}

// GetByID returns the record with the ID when it belongs to class.
// A record of another class is reported as not found.
func (s *ObjectService) GetByID(ctx context.Context, class string, id int) (*store.Record, error) {
	rec, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if rec.Class != class {
		log.Debug(ctx, "data object class mismatch",
			log.Int("id", id),
			log.String("want", class),
			log.String("got", rec.Class),
		)

		return nil, fmt.Errorf("data object %d is a %s: %w: %w", id, rec.Class, ErrClassMismatch, objects.ErrNotFound)
	}

	return rec, nil
}

// Save stores the record and drops its cache entry.
func (s *ObjectService) Save(ctx context.Context, rec *store.Record) error {
	if err := s.store.Save(ctx, rec); err != nil {
		return err
	}

	s.invalidateObjectCache(ctx, rec.ID)

	return nil
}

// Delete removes the record and drops its cache entry.
func (s *ObjectService) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateObjectCache(ctx, id)

	return nil
}

func (s *ObjectService) invalidateObjectCache(ctx context.Context, id int) {
	_ = s.cache.Delete(ctx, buildObjectCacheKey(id))
}
