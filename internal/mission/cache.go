package mission

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MobMissions_Go/internal/domain"
)

// CacheSchemaVersion is bumped when the cached snapshot shape changes
const CacheSchemaVersion = "1.0"

type cachedCharacter struct {
	Version   string
	Character *domain.Character
	CachedAt  time.Time
}

// characterCache keeps short-lived character snapshots for chance previews.
// Any write to a character must invalidate its entry.
type characterCache struct {
	lru *expirable.LRU[uuid.UUID, *cachedCharacter]
}

func newCharacterCache(size int, ttl time.Duration) *characterCache {
	return &characterCache{
		lru: expirable.NewLRU[uuid.UUID, *cachedCharacter](size, nil, ttl),
	}
}

func (c *characterCache) Get(id uuid.UUID) (*domain.Character, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return nil, false
	}
	return entry.Character, true
}

func (c *characterCache) Set(character *domain.Character) {
	c.lru.Add(character.ID, &cachedCharacter{
		Version:   CacheSchemaVersion,
		Character: character,
		CachedAt:  time.Now(),
	})
}

func (c *characterCache) Invalidate(id uuid.UUID) {
	c.lru.Remove(id)
}

// CacheStats reports cache occupancy
type CacheStats struct {
	Size int `json:"size"`
}

func (c *characterCache) Stats() CacheStats {
	return CacheStats{Size: c.lru.Len()}
}
