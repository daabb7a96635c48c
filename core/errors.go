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

package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidBookRecord indicates a BookRecord failed validation.
	ErrInvalidBookRecord = errors.New("invalid book record")

	// ErrInvalidDescriptionEntry indicates a DescriptionEntry failed validation.
	ErrInvalidDescriptionEntry = errors.New("invalid description entry")

	// ErrInvalidISBN indicates a value could not be parsed as a positive ISBN-13.
	ErrInvalidISBN = errors.New("invalid isbn13")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyDescription indicates the description text is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrNegativeEmotionScore indicates an emotion score is negative.
	ErrNegativeEmotionScore = errors.New("emotion scores cannot be negative")

	// ErrUnknownTone indicates a tone outside the tone filter domain.
	ErrUnknownTone = errors.New("unknown tone")
)
