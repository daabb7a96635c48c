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

// Package corpus parses the tagged description corpus.
//
// Each record pairs an ISBN with the free-text description that gets
// embedded into the description index. The ISBN rides along as the record's
// leading token so that index hits can be joined back against the catalog.
// ParseTagged is the single, tested implementation of that format; nothing
// else in the module is allowed to guess at it.
package corpus
