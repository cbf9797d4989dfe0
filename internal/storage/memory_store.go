package storage

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/atomic"
)

// RecordStore maps string keys to serialized JSON documents. It behaves like
// one browser profile's local storage: writes overwrite unconditionally and
// the last writer wins.
type RecordStore interface {
	Get(key string) ([]byte, bool)
	Put(key string, doc []byte)
	Remove(key string)
	Keys(prefix string) []string
	Len() int
	Revision() uint64
}

// MemoryStore is the in-process document map. Every mutation bumps the
// revision, which response caches use to scope their keys.
type MemoryStore struct {
	mu       sync.RWMutex
	docs     map[string][]byte
	revision atomic.Uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[key]
	return doc, ok
}

func (s *MemoryStore) Put(key string, doc []byte) {
	cp := make([]byte, len(doc))
	copy(cp, doc)

	s.mu.Lock()
	s.docs[key] = cp
	s.mu.Unlock()
	s.revision.Inc()
}

func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	_, existed := s.docs[key]
	delete(s.docs, key)
	s.mu.Unlock()
	if existed {
		s.revision.Inc()
	}
}

// Keys returns the sorted keys starting with prefix.
func (s *MemoryStore) Keys(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0)
	for k := range s.docs {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

func (s *MemoryStore) Revision() uint64 {
	return s.revision.Load()
}

// Snapshot copies the document map for persistence.
func (s *MemoryStore) Snapshot() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]byte, len(s.docs))
	for k, v := range s.docs {
		out[k] = v
	}
	return out
}

// Replace swaps the whole document map, used when a snapshot is restored.
func (s *MemoryStore) Replace(docs map[string][]byte) {
	if docs == nil {
		docs = make(map[string][]byte)
	}
	s.mu.Lock()
	s.docs = docs
	s.mu.Unlock()
	s.revision.Inc()
}
