package uow_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

// recordingStore is an in-memory DocumentStore that records every call in
// order and can be told to fail a given collection/operation pair.
type recordingStore struct {
	mu    sync.Mutex
	calls []string
	docs  map[string]map[identifier.ID][]byte
	fail  map[string]error // key: "<op>:<collection>"
}

func newRecordingStore() *recordingStore {
	return &recordingStore{
		docs: make(map[string]map[identifier.ID][]byte),
		fail: make(map[string]error),
	}
}

func (s *recordingStore) failOn(op, collection string, err error) {
	s.fail[op+":"+collection] = err
}

func (s *recordingStore) record(op, collection, detail string) error {
	s.calls = append(s.calls, fmt.Sprintf("%s:%s:%s", op, collection, detail))
	return s.fail[op+":"+collection]
}

func (s *recordingStore) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *recordingStore) seed(collection string, id identifier.ID, body string) {
	if s.docs[collection] == nil {
		s.docs[collection] = make(map[identifier.ID][]byte)
	}
	s.docs[collection][id] = []byte(body)
}

func (s *recordingStore) FindByID(_ context.Context, collection string, id identifier.ID) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("find", collection, id.Key()); err != nil {
		return nil, false, err
	}
	body, ok := s.docs[collection][id]
	return body, ok, nil
}

func (s *recordingStore) InsertMany(_ context.Context, collection string, records []ports.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	detail := ""
	for i, r := range records {
		if i > 0 {
			detail += ","
		}
		detail += r.ID.Key()
	}
	if err := s.record("insert", collection, detail); err != nil {
		return err
	}
	if s.docs[collection] == nil {
		s.docs[collection] = make(map[identifier.ID][]byte)
	}
	for _, r := range records {
		s.docs[collection][r.ID] = r.Body
	}
	return nil
}

func (s *recordingStore) ReplaceByID(_ context.Context, collection string, rec ports.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("replace", collection, rec.ID.Key()); err != nil {
		return err
	}
	if s.docs[collection] == nil {
		s.docs[collection] = make(map[identifier.ID][]byte)
	}
	s.docs[collection][rec.ID] = rec.Body
	return nil
}

func (s *recordingStore) DeleteByID(_ context.Context, collection string, id identifier.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("delete", collection, id.Key()); err != nil {
		return err
	}
	delete(s.docs[collection], id)
	return nil
}
