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

package recommend

import "errors"

var (
	// ErrBookRepositoryRequired is returned when a book repository is not provided.
	ErrBookRepositoryRequired = errors.New("book repository required")

	// ErrDescriptionRepositoryRequired is returned when a description repository is not provided.
	ErrDescriptionRepositoryRequired = errors.New("description repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrInvalidQuery is returned for an empty query or a filter value
	// outside its domain. The index is never consulted.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrRetrieval is returned when the embedding or similarity-search step
	// could not complete. No partial result is synthesized.
	ErrRetrieval = errors.New("retrieval failed")
)
