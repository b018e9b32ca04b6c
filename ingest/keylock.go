// Copyright 2026 Civic Archive Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ingest

import (
	"sync"

	"github.com/civicarchive/govdoc/core"
)

// keyLock serializes work per document ID. Two sources in the same run can
// map to the same ID (duplicate filenames in different directories), and the
// store's replace-then-upsert sequence must not interleave for one document.
// The lock map is run-scoped and never shrinks; a run touches each ID a
// handful of times.
type keyLock struct {
	mu    sync.Mutex
	locks map[core.ID]*sync.Mutex
}

func newKeyLock() *keyLock {
	return &keyLock{locks: make(map[core.ID]*sync.Mutex)}
}

// acquire locks the mutex for id and returns the matching unlock.
func (l *keyLock) acquire(id core.ID) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
