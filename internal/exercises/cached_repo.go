package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	cacheSize        = 8 * 1024 * 1024
	cacheExpireInSec = 10 * 60
)

// CachedRepo keeps catalog reads in memory; the catalog is read-only at runtime.
type CachedRepo struct {
	repo  exercisesRepo
	cache *freecache.Cache
}

func NewCachedRepo(repo exercisesRepo) *CachedRepo {
	return &CachedRepo{
		repo:  repo,
		cache: freecache.NewCache(cacheSize),
	}
}

func (r *CachedRepo) List(ctx context.Context, params ListParams) ([]Exercise, error) {
	cacheKey := []byte(fmt.Sprintf("list::%s::%s", params.Category, params.Type))
	if cached, err := r.cache.Get(cacheKey); err == nil {
		var exercises []Exercise
		if err := json.Unmarshal(cached, &exercises); err == nil {
			return exercises, nil
		} else {
			log.Errorf("failed to unmarshal cached exercises list: %s", err)
		}
	}

	exercises, err := r.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	r.set(cacheKey, exercises)
	return exercises, nil
}

func (r *CachedRepo) Get(ctx context.Context, id uuid.UUID) (*Exercise, error) {
	cacheKey := []byte("get::" + id.String())
	if cached, err := r.cache.Get(cacheKey); err == nil {
		var e Exercise
		if err := json.Unmarshal(cached, &e); err == nil {
			return &e, nil
		} else {
			log.Errorf("failed to unmarshal cached exercise %s: %s", id, err)
		}
	}

	e, err := r.repo.Get(ctx, id)
	if err != nil {
		// misses are not cached, the catalog might get seeded later
		if !errors.Is(err, ErrExerciseNotFound) {
			log.Debugf("get exercise %s: %s", id, err)
		}
		return nil, err
	}

	r.set(cacheKey, e)
	return e, nil
}

func (r *CachedRepo) set(key []byte, value any) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("failed to marshal exercises cache value: %s", err)
		return
	}
	if err := r.cache.Set(key, valueBytes, cacheExpireInSec); err != nil {
		log.Errorf("failed to set exercises cache [%s]: %s", key, err)
	}
}
