// Copyright 2025 Poiesic Systems
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

// Package storage provides the storage abstraction layer for readnext.
//
// This package defines repository interfaces that decouple storage
// implementation from the recommendation logic. The catalog store and the
// description index live behind BookRepository and DescriptionRepository;
// the BadgerDB implementation is in storage/badger.
//
// # Constructor Return Type Pattern
//
// Public constructors return interfaces to enforce abstraction:
//
//	repo, err := badger.NewBookRepository(backend)  // returns storage.BookRepository
//
// Internal package constructors may return concrete types since they're only
// used within the implementation package.
//
// # Thread Safety
//
// Both stores are written exactly once, during the startup ingest, and are
// read-only afterwards. Implementations must support concurrent reads from
// multiple goroutines; no concurrent writes occur after startup.
//
// # Context Support
//
// All repository methods accept context.Context. Pass context.Background()
// for operations without specific timeout requirements.
package storage
