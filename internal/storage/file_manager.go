package storage

import (
	"formpick/internal/providers"
	"formpick/internal/storage/interfaces"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

const snapshotVersion = 2

// snapshot is the on-disk envelope. Documents are kept as text, the way
// local storage keeps them, so a malformed document survives a round-trip.
type snapshot struct {
	Version int               `json:"version"`
	Records map[string]string `json:"records"`
}

type FileManager struct {
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewFileManager(compressor interfaces.CompressorInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *FileManager {
	return &FileManager{
		compressor: compressor,
		logger:     logger,
		metrics:    metrics,
	}
}

func (f *FileManager) SaveToFile(fileName string, docs map[string][]byte) error {
	start := time.Now()
	defer func() { f.metrics.ObservePersistenceDuration(time.Since(start)) }()

	snap := snapshot{Version: snapshotVersion, Records: make(map[string]string, len(docs))}
	for k, v := range docs {
		snap.Records[k] = string(v)
	}

	jsonData, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile reads a profile snapshot. A missing file is an empty profile.
func (f *FileManager) LoadFromFile(fileName string) (map[string][]byte, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]byte{}, nil
		}
		return nil, err
	}

	plain, err := f.compressor.Decompress(data)
	if err != nil {
		f.logger.Warnf(providers.TypeStore, "Snapshot %s is not compressed, reading it as plain JSON", fileName)
		plain = data
	}

	var snap snapshot
	if err := json.Unmarshal(plain, &snap); err == nil && snap.Version == snapshotVersion && snap.Records != nil {
		docs := make(map[string][]byte, len(snap.Records))
		for k, v := range snap.Records {
			docs[k] = []byte(v)
		}
		return docs, nil
	}

	// v1: a bare object of key -> document, as exported from browser storage
	f.logger.Warnf(providers.TypeStore, "Snapshot without version found, try to migrate from v1 format")
	var legacy map[string]json.RawMessage
	if err := json.Unmarshal(plain, &legacy); err != nil {
		f.logger.Warnf(providers.TypeStore, "Migration failed")
		return nil, err
	}
	docs := make(map[string][]byte, len(legacy))
	for k, v := range legacy {
		docs[k] = unquoteDocument(v)
	}
	f.logger.Warnf(providers.TypeStore, "Migration from v1 format successful, %d documents", len(docs))
	return docs, nil
}

// unquoteDocument unwraps documents exported as JSON strings ("[...]").
func unquoteDocument(raw json.RawMessage) []byte {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return []byte(text)
	}
	return []byte(raw)
}
