package main

import (
	"context"
	"sync"
)

type fakeUpdate[T any] struct {
	patch   T
	eq      Eq
	columns []string
}

// fakeTable records every call and answers from canned results.
type fakeTable[T any] struct {
	mu sync.Mutex

	selectRows []T
	selectErr  error
	selects    []Query

	// insertResult is returned from Insert. Nil echoes the inserted rows.
	insertResult []T
	insertErr    error
	inserts      [][]T

	updateResult []T
	updateErr    error
	updates      []fakeUpdate[T]

	deleteErr error
	deletes   []Eq
}

func (f *fakeTable[T]) Select(ctx context.Context, q Query) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selects = append(f.selects, q)
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	if q.Single && len(f.selectRows) == 0 {
		return nil, ErrNoRows
	}
	return append([]T(nil), f.selectRows...), nil
}

func (f *fakeTable[T]) Insert(ctx context.Context, rows ...T) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts = append(f.inserts, rows)
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if f.insertResult != nil {
		return f.insertResult, nil
	}
	return rows, nil
}

func (f *fakeTable[T]) Update(ctx context.Context, patch T, eq Eq, columns ...string) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, fakeUpdate[T]{patch: patch, eq: eq, columns: columns})
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateResult != nil {
		return f.updateResult, nil
	}
	return []T{patch}, nil
}

func (f *fakeTable[T]) Delete(ctx context.Context, eq Eq) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, eq)
	return f.deleteErr
}

type fakeConfirmer struct {
	answer  bool
	prompts []string
}

func (c *fakeConfirmer) Confirm(prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

type fakePublisher struct {
	changed []string
}

func (p *fakePublisher) Changed(table string) {
	p.changed = append(p.changed, table)
}

type memFlags map[string]string

func (m memFlags) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m memFlags) Set(key, value string) { m[key] = value }

func (m memFlags) Remove(key string) { delete(m, key) }
