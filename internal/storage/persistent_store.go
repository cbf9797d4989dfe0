package storage

import (
	"fmt"
	"formpick/internal/providers"
	"formpick/internal/structures"
	"os"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// PersistentStore is the profile store handed to services. Writes land in
// memory first and are then written through to the snapshot file, or left
// for the scheduler when write-through is off.
type PersistentStore struct {
	mem          *MemoryStore
	fileManager  *FileManager
	logger       providers.Logger
	filePath     string
	writeThrough bool
	dirty        atomic.Bool
	saveMu       sync.Mutex
}

func NewPersistentStore(mem *MemoryStore, fileManager *FileManager, conf *structures.Config, logger providers.Logger) *PersistentStore {
	return &PersistentStore{
		mem:          mem,
		fileManager:  fileManager,
		logger:       logger,
		filePath:     conf.Persistence.FilePath,
		writeThrough: conf.Persistence.WriteThrough,
	}
}

func (p *PersistentStore) Get(key string) ([]byte, bool) {
	return p.mem.Get(key)
}

func (p *PersistentStore) Put(key string, doc []byte) {
	p.mem.Put(key, doc)
	p.changed()
}

func (p *PersistentStore) Remove(key string) {
	p.mem.Remove(key)
	p.changed()
}

func (p *PersistentStore) Keys(prefix string) []string {
	return p.mem.Keys(prefix)
}

func (p *PersistentStore) Len() int {
	return p.mem.Len()
}

func (p *PersistentStore) Revision() uint64 {
	return p.mem.Revision()
}

func (p *PersistentStore) changed() {
	p.dirty.Store(true)
	if !p.writeThrough {
		return
	}
	if err := p.Flush(); err != nil {
		p.logger.Errorf(providers.TypeStore, "Write-through to %s failed: %s", p.filePath, err)
	}
}

// Dirty reports whether memory holds writes that are not on disk yet.
func (p *PersistentStore) Dirty() bool {
	return p.dirty.Load()
}

// Flush saves the snapshot when there is something to save.
func (p *PersistentStore) Flush() error {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	if !p.dirty.Swap(false) {
		return nil
	}
	if err := p.fileManager.SaveToFile(p.filePath, p.mem.Snapshot()); err != nil {
		p.dirty.Store(true)
		return err
	}
	return nil
}

// Load replaces memory with the snapshot on disk.
func (p *PersistentStore) Load() error {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	docs, err := p.fileManager.LoadFromFile(p.filePath)
	if err != nil {
		return err
	}
	p.mem.Replace(docs)
	p.dirty.Store(false)
	p.logger.Infof(providers.TypeStore, "Loaded %d documents from %s", len(docs), p.filePath)
	return nil
}

// Quarantine moves an unreadable snapshot aside so the next save cannot
// overwrite it, and returns where it went.
func (p *PersistentStore) Quarantine() (string, error) {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	dst := fmt.Sprintf("%s.corrupt-%d", p.filePath, time.Now().UnixNano())
	if err := os.Rename(p.filePath, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func (p *PersistentStore) Close() {
	p.fileManager.Close()
}
