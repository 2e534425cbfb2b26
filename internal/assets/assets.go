// Package assets resolves shader and texture files by relative path.
//
// Sources are searched newest first: directories added with AddDir shadow the
// embedded shaders, so a checkout can iterate on GLSL without rebuilding.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/meadow/internal/assets/shaders"
	"github.com/Faultbox/meadow/internal/logger"
)

// ErrNotFound is returned when no source has the requested file.
var ErrNotFound = errors.New("asset not found")

type source struct {
	name   string
	prefix string
	fsys   fs.FS
}

// Manager reads assets from layered sources.
type Manager struct {
	sources []source
	cache   *Cache
	mu      sync.RWMutex
}

// NewManager creates a manager holding only the embedded shaders under "shaders/".
func NewManager() *Manager {
	m := &Manager{cache: NewCache()}
	m.Mount("embedded", "shaders", shaders.FS)
	return m
}

// AddDir adds a directory on disk. It takes priority over earlier sources.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset dir %s: not a directory", dir)
	}
	m.Mount(dir, "", os.DirFS(dir))
	return nil
}

// Mount adds fsys so that prefix/name resolves to name inside fsys.
func (m *Manager) Mount(name, prefix string, fsys fs.FS) {
	m.mu.Lock()
	m.sources = append(m.sources, source{name: name, prefix: prefix, fsys: fsys})
	m.mu.Unlock()
	m.cache.Clear()
	logger.Debug("asset source mounted", zap.String("source", name), zap.String("prefix", prefix))
}

// Read returns the contents of p. Errors wrap ErrNotFound when no source has it.
func (m *Manager) Read(p string) ([]byte, error) {
	p = path.Clean(p)
	if data, ok := m.cache.Get(p); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		src := m.sources[i]
		name, ok := src.resolve(p)
		if !ok {
			continue
		}
		data, err := fs.ReadFile(src.fsys, name)
		if err == nil {
			logger.Debug("asset loaded", zap.String("path", p), zap.String("source", src.name), zap.Int("bytes", len(data)))
			m.cache.Set(p, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s from %s: %w", p, src.name, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
}

// ReadString is Read for text assets such as shaders.
func (m *Manager) ReadString(p string) (string, error) {
	data, err := m.Read(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s source) resolve(p string) (string, bool) {
	if s.prefix == "" {
		return p, fs.ValidPath(p)
	}
	if len(p) <= len(s.prefix)+1 || p[:len(s.prefix)] != s.prefix || p[len(s.prefix)] != '/' {
		return "", false
	}
	name := p[len(s.prefix)+1:]
	return name, fs.ValidPath(name)
}

// CacheStats returns read cache hits and misses since the last mount.
func (m *Manager) CacheStats() (hits, misses int) {
	return m.cache.Stats()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear drops every entry and resets the counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
