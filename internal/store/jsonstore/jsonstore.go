package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/reminders/internal/store"
)

// JSON-backed storage. Single file, human-readable, portable.
// The file is opened on every operation; there is no in-memory cache,
// so a Get always sees the latest Set from any writer in the process.

const DefaultFileName = "reminders.json"

// document maps namespace -> key -> value. Namespaces other than ours are
// kept intact on rewrite.
type document map[string]map[string]string

type Store struct {
	path      string
	namespace string
}

// New returns a store backed by the file at path. The file and its parent
// directory are created on first write.
func New(path string) *Store {
	return &Store{path: path, namespace: store.Namespace}
}

// Path is the backing file.
func (s *Store) Path() string { return s.path }

func (s *Store) Get(key, def string) (string, error) {
	doc, err := s.load()
	if err != nil {
		return "", err
	}
	if v, ok := doc[s.namespace][key]; ok {
		return v, nil
	}
	return def, nil
}

func (s *Store) Set(key, value string) error {
	if err := store.CheckText(key, value); err != nil {
		return err
	}
	doc, err := s.load()
	if err != nil {
		return err
	}
	ns := doc[s.namespace]
	if ns == nil {
		ns = map[string]string{}
		doc[s.namespace] = ns
	}
	ns[key] = value
	return s.save(doc)
}

func (s *Store) Remove(key string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	ns, ok := doc[s.namespace]
	if !ok {
		return nil
	}
	if _, ok := ns[key]; !ok {
		return nil
	}
	delete(ns, key)
	return s.save(doc)
}

func (s *Store) load() (document, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return document{}, nil
		}
		return nil, fmt.Errorf("jsonstore: read file: %w", err)
	}
	if len(b) == 0 {
		return document{}, nil
	}
	doc := document{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("jsonstore: json unmarshal %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *Store) save(doc document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: json marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("jsonstore: mkdir: %w", err)
	}
	if err := writeFileAtomic(s.path, b, 0o600); err != nil {
		return fmt.Errorf("jsonstore: %w", err)
	}
	return nil
}

// writeFileAtomic writes to a temp file in the same directory and renames it
// over the target, so readers never observe a half-written document.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".reminders-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", filename, err)
	}
	return nil
}
