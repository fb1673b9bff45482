// Package scripts holds the client-side state for generated scripts: the
// active generation session, its version list, and a cache of fetched version
// details.
package scripts

import (
	"sync"

	"github.com/jellydator/ttlcache/v3"

	"scriptcraft-client/internal/core"
)

// Store is the script state store. Details live in the cache until ClearCache
// is called; switching sessions never purges them, so stale entries from an
// earlier session can still be served until an explicit clear.
type Store struct {
	mu               sync.RWMutex
	currentSessionID string
	currentVersions  []core.VersionBrief

	details *ttlcache.Cache[string, core.ScriptDetail]
}

// NewStore creates an empty store. Cached details never expire and the cache
// is unbounded; the view layer decides when entries are stale.
func NewStore() *Store {
	c := ttlcache.New[string, core.ScriptDetail]()
	go c.Start()
	return &Store{details: c}
}

// Close stops the cache's expiration loop.
func (s *Store) Close() {
	s.details.Stop()
}

// SetCurrentSession replaces the active session and its version list
// wholesale; nothing is merged with prior state.
func (s *Store) SetCurrentSession(sessionID string, versions []core.VersionBrief) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentSessionID = sessionID
	s.currentVersions = append([]core.VersionBrief(nil), versions...)
}

// CurrentSessionID returns the active generation session id, empty when none
// is selected.
func (s *Store) CurrentSessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSessionID
}

// CurrentVersions returns the version list of the active session.
func (s *Store) CurrentVersions() []core.VersionBrief {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.VersionBrief(nil), s.currentVersions...)
}

// CacheDetail inserts or overwrites the detail record for a version.
func (s *Store) CacheDetail(versionID string, detail core.ScriptDetail) {
	s.details.Set(versionID, detail, ttlcache.NoTTL)
}

// CachedDetail returns the cached detail for a version, reporting a miss via
// the boolean.
func (s *Store) CachedDetail(versionID string) (core.ScriptDetail, bool) {
	item := s.details.Get(versionID)
	if item == nil {
		return core.ScriptDetail{}, false
	}
	return item.Value(), true
}

// ClearCache removes every cached detail. The session id and version list are
// untouched.
func (s *Store) ClearCache() {
	s.details.DeleteAll()
}
