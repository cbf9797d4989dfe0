package storage

import (
	json "github.com/goccy/go-json"
)

// Read decodes the document under key into a T. A missing key or a document
// that does not parse yields fallback; Read never fails.
func Read[T any](store RecordStore, key string, fallback T) T {
	doc, ok := store.Get(key)
	if !ok || len(doc) == 0 {
		return fallback
	}
	var v T
	if err := json.Unmarshal(doc, &v); err != nil {
		return fallback
	}
	return v
}

// Lookup is Read for callers that need to tell "absent" from "present".
func Lookup[T any](store RecordStore, key string) (T, bool) {
	var zero T
	doc, ok := store.Get(key)
	if !ok || len(doc) == 0 {
		return zero, false
	}
	var v T
	if err := json.Unmarshal(doc, &v); err != nil {
		return zero, false
	}
	return v, true
}

// Write serializes v and stores it under key, replacing any prior document.
func Write[T any](store RecordStore, key string, v T) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	store.Put(key, doc)
	return nil
}
