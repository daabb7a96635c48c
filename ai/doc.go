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

// Package ai defines the embedding capability consumed by the description
// index and the recommendation engine.
//
// The Embedder interface abstracts the external embedding provider so the
// engine can be exercised against a deterministic fake (see ai/mock) while
// production wiring talks to any OpenAI-compatible API (see ai/openai).
package ai
