package schedule

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed store_schema.json
var storeSchemaJSON string

var (
	storeSchemaOnce sync.Once
	storeSchema     *jsonschema.Schema
	storeSchemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	storeSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("store_schema.json", strings.NewReader(storeSchemaJSON)); err != nil {
			storeSchemaErr = fmt.Errorf("add store schema: %w", err)
			return
		}
		storeSchema, storeSchemaErr = compiler.Compile("store_schema.json")
	})
	return storeSchema, storeSchemaErr
}

// Store manages the persisted schedule document. It holds an exclusive file
// lock from Open until Close so a run is the store's only writer, and
// replaces the document atomically on Save.
type Store struct {
	path string
	lock *flock.Flock
	doc  *Document
}

// Open locks and reads the store document. A missing or malformed store is a
// fatal input error; nothing has been written at that point.
func Open(path string) (*Store, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock store %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("store %s is locked by another run", path)
	}

	doc, err := readDocument(path)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}
	return &Store{path: path, lock: lock, doc: doc}, nil
}

// Create writes an empty store document at path and returns the opened
// store. It refuses to overwrite an existing document.
func Create(path string, meta Meta) (*Store, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("store %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	doc := &Document{Schedule: meta, Days: []Day{}}
	if err := writeDocument(path, doc); err != nil {
		return nil, err
	}
	return Open(path)
}

// Document returns the in-memory store document owned by this run.
func (s *Store) Document() *Document {
	return s.doc
}

// Path returns the store file location.
func (s *Store) Path() string {
	return s.path
}

// Save atomically replaces the store file with the current document.
func (s *Store) Save() error {
	return writeDocument(s.path, s.doc)
}

// Close releases the store lock without writing.
func (s *Store) Close() error {
	if s == nil || s.lock == nil {
		return nil
	}
	return s.lock.Unlock()
}

// Read loads and validates the store document without taking the write
// lock, for read-only commands.
func Read(path string) (*Document, error) {
	return readDocument(path)
}

func readDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read store %s: %w", path, err)
	}
	if err := validateDocument(data); err != nil {
		return nil, fmt.Errorf("store %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse store %s: %w", path, err)
	}
	return &doc, nil
}

func validateDocument(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}

// writeDocument marshals doc and renames a temp file over path so readers
// never observe a partial document. The document is validated against the
// store schema first: a store this run cannot reopen must never reach disk.
func writeDocument(path string, doc *Document) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := validateDocument(buf.Bytes()); err != nil {
		return fmt.Errorf("refusing to write store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".schedule-*.json")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp store: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace store %s: %w", path, err)
	}
	return nil
}
