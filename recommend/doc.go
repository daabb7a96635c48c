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

// Package recommend implements the semantic recommendation pipeline.
//
// A query runs through four stages:
//   - Similarity retrieval over embedded book descriptions
//   - Catalog join on the candidate ISBNs, preserving similarity order
//   - Category filtering and truncation to the final result window
//   - Optional tone re-rank of that window by emotion score
//
// Queries are read-only against shared, immutable state, so any number may
// run concurrently. A per-query failure never affects the shared index or
// other in-flight queries.
package recommend
