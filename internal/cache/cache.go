package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type CacheItem struct {
	Value      interface{}
	Expiration int64
}

// Cache es un caché en memoria con TTL, compartido por todas las peticiones
type Cache struct {
	items map[string]CacheItem
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time

	// gen avanza con cada borrado; una lectura anterior al borrado no puede
	// volver a escribir un valor viejo con SetIfGeneration.
	gen uint64
}

// New crea el caché y lanza la limpieza periódica, que termina cuando ctx se cancela
func New(ctx context.Context, defaultTTL time.Duration) *Cache {
	c := &Cache{
		items: make(map[string]CacheItem),
		ttl:   defaultTTL,
		now:   time.Now,
	}
	go c.cleanupExpired(ctx, cleanupInterval(defaultTTL))
	return c
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > 5*time.Minute {
		return 5 * time.Minute
	}
	return ttl
}

// Generation devuelve la generación actual. Se toma antes de leer la fuente.
func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// SetIfGeneration guarda el valor solo si no hubo borrados desde gen
func (c *Cache) SetIfGeneration(key string, value interface{}, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return false
	}
	c.items[key] = CacheItem{
		Value:      value,
		Expiration: c.now().Add(c.ttl).UnixNano(),
	}
	return true
}

// GetValue obtiene un valor del caché
func (c *Cache) GetValue(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}

	if c.now().UnixNano() > item.Expiration {
		return nil, false
	}

	return item.Value, true
}

// Delete elimina un valor del caché
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	c.gen++
}

// DeleteByPrefix elimina todas las claves que empiecen con un prefijo
func (c *Cache) DeleteByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
	c.gen++
}

func (c *Cache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now().UnixNano()
	for key, item := range c.items {
		if now > item.Expiration {
			delete(c.items, key)
		}
	}
}

// cleanupExpired limpia items expirados periódicamente
func (c *Cache) cleanupExpired(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}
