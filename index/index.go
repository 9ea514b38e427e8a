// Package index combines document storage with inverted indexing using
// Roaring Bitmaps for efficient filtered lookups over document collections.
package index

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/jsonval"
)

// DocumentIndex combines primary document storage with an inverted index
// using Roaring Bitmaps.
//
// Architecture:
//   - Primary storage: map[uint32]Document (documents by ID)
//   - Inverted index: field -> valueKey -> bitmap of IDs
//
// Posting lists are keyed by jsonval.Value.Key(), the stable per-value
// string representation, so any value kind can be indexed.
type DocumentIndex struct {
	mu sync.RWMutex

	documents map[uint32]jsonval.Document
	inverted  map[string]map[string]*roaring.Bitmap
}

// New creates a new empty document index.
func New() *DocumentIndex {
	return &DocumentIndex{
		documents: make(map[uint32]jsonval.Document),
		inverted:  make(map[string]map[string]*roaring.Bitmap),
	}
}

// Set stores a document for an ID and updates the inverted index. Any
// existing document for the ID is replaced.
func (ix *DocumentIndex) Set(id uint32, doc jsonval.Document) {
	if doc == nil {
		return
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if old, exists := ix.documents[id]; exists {
		ix.removeLocked(id, old)
	}
	ix.documents[id] = doc
	ix.addLocked(id, doc)
}

// Get retrieves the document for an ID.
func (ix *DocumentIndex) Get(id uint32) (jsonval.Document, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	doc, ok := ix.documents[id]
	return doc, ok
}

// Delete removes the document for an ID and updates the inverted index.
func (ix *DocumentIndex) Delete(id uint32) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if doc, exists := ix.documents[id]; exists {
		ix.removeLocked(id, doc)
	}
	delete(ix.documents, id)
}

// Len returns the number of documents in the index.
func (ix *DocumentIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return len(ix.documents)
}

// addLocked adds a document to the inverted index. Caller must hold
// ix.mu.Lock().
func (ix *DocumentIndex) addLocked(id uint32, doc jsonval.Document) {
	for key, value := range doc {
		valueMap, ok := ix.inverted[key]
		if !ok {
			valueMap = make(map[string]*roaring.Bitmap)
			ix.inverted[key] = valueMap
		}

		valueKey := value.Key()
		bitmap, ok := valueMap[valueKey]
		if !ok {
			bitmap = roaring.New()
			valueMap[valueKey] = bitmap
		}
		bitmap.Add(id)
	}
}

// removeLocked removes a document from the inverted index. Caller must
// hold ix.mu.Lock().
func (ix *DocumentIndex) removeLocked(id uint32, doc jsonval.Document) {
	for key, value := range doc {
		valueMap, ok := ix.inverted[key]
		if !ok {
			continue
		}

		valueKey := value.Key()
		bitmap, ok := valueMap[valueKey]
		if !ok {
			continue
		}
		bitmap.Remove(id)

		if bitmap.IsEmpty() {
			delete(valueMap, valueKey)
			if len(valueMap) == 0 {
				delete(ix.inverted, key)
			}
		}
	}
}

// CompileFilter compiles a FilterSet into a bitmap of matching IDs, or nil
// if compilation is not possible.
//
// Supported operators:
//   - OpEqual: exact posting list lookup
//   - OpIn: union of posting lists
//   - everything else: falls back to scanning, see ScanFilter
func (ix *DocumentIndex) CompileFilter(fs *jsonval.FilterSet) *roaring.Bitmap {
	if fs == nil || len(fs.Filters) == 0 {
		return nil
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var result *roaring.Bitmap

	for _, filter := range fs.Filters {
		var filterBitmap *roaring.Bitmap

		switch filter.Operator {
		case jsonval.OpEqual:
			filterBitmap = ix.postingsLocked(filter.Key, filter.Value)

		case jsonval.OpIn:
			arr, ok := filter.Value.AsArray()
			if !ok {
				// OpIn with a non-array value cannot be compiled.
				return nil
			}
			filterBitmap = roaring.New()
			for _, v := range arr {
				if bitmap := ix.postingsLocked(filter.Key, v); bitmap != nil {
					filterBitmap.Or(bitmap)
				}
			}

		default:
			// Range and substring operators require scanning.
			return nil
		}

		if result == nil {
			if filterBitmap == nil {
				return roaring.New()
			}
			result = filterBitmap.Clone()
		} else if filterBitmap != nil {
			result.And(filterBitmap)
		} else {
			return roaring.New()
		}

		if result.IsEmpty() {
			return result
		}
	}

	if result == nil {
		return roaring.New()
	}
	return result
}

// ScanFilter evaluates a FilterSet by scanning all documents. Slower than
// CompileFilter but supports all operators.
func (ix *DocumentIndex) ScanFilter(fs *jsonval.FilterSet) []uint32 {
	if fs == nil {
		return nil
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	result := make([]uint32, 0, len(ix.documents))
	for id, doc := range ix.documents {
		if fs.Matches(doc) {
			result = append(result, id)
		}
	}
	return result
}

// CreateFilterFunc creates a membership test from a FilterSet.
//
// If the set compiles to a bitmap the returned function is an O(1) bitmap
// lookup; otherwise it falls back to evaluating the filter against the
// stored document per ID.
func (ix *DocumentIndex) CreateFilterFunc(fs *jsonval.FilterSet) func(uint32) bool {
	if fs == nil || len(fs.Filters) == 0 {
		return nil
	}

	if bitmap := ix.CompileFilter(fs); bitmap != nil {
		return func(id uint32) bool {
			return bitmap.Contains(id)
		}
	}

	return func(id uint32) bool {
		ix.mu.RLock()
		doc, ok := ix.documents[id]
		ix.mu.RUnlock()
		if !ok {
			return false
		}
		return fs.Matches(doc)
	}
}

// postingsLocked retrieves the bitmap for a field=value combination, nil if
// no postings exist. Caller must hold ix.mu.RLock().
func (ix *DocumentIndex) postingsLocked(key string, v jsonval.Value) *roaring.Bitmap {
	valueMap, ok := ix.inverted[key]
	if !ok {
		return nil
	}
	return valueMap[v.Key()]
}

// Stats describes the size of a DocumentIndex.
type Stats struct {
	DocumentCount    int    // total documents
	FieldCount       int    // number of indexed fields
	BitmapCount      int    // total posting lists
	TotalCardinality uint64 // sum of posting list cardinalities
	MemoryBytes      uint64 // estimated bitmap memory usage
}

// GetStats returns statistics about the index.
func (ix *DocumentIndex) GetStats() Stats {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	stats := Stats{
		DocumentCount: len(ix.documents),
		FieldCount:    len(ix.inverted),
	}
	for _, valueMap := range ix.inverted {
		for _, bitmap := range valueMap {
			stats.BitmapCount++
			stats.TotalCardinality += bitmap.GetCardinality()
			stats.MemoryBytes += bitmap.GetSizeInBytes()
		}
	}
	return stats
}
