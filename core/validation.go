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

import "fmt"

// ValidateBookRecord validates a BookRecord according to domain rules.
//
// Validation rules:
//   - ISBN must be positive
//   - Title must not be empty
//   - Emotion scores must not be negative
//
// NOT validated:
//   - Authors, Description, Category (may legitimately be empty in the catalog)
//   - Thumbnail fields (derived fallback handles absent thumbnails)
func ValidateBookRecord(record *BookRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidBookRecord)
	}

	if record.ISBN <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidBookRecord, ErrInvalidISBN)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidBookRecord, ErrEmptyTitle)
	}

	for _, score := range []float64{record.Joy, record.Surprise, record.Anger, record.Fear, record.Sadness} {
		if score < 0 {
			return fmt.Errorf("%w: %w", ErrInvalidBookRecord, ErrNegativeEmotionScore)
		}
	}

	return nil
}

// ValidateDescriptionEntry validates a DescriptionEntry according to domain rules.
//
// Validation rules:
//   - ISBN must be positive
//   - Text must not be empty
//
// NOT validated:
//   - Vector (can be empty until the ingest pipeline embeds the entry)
func ValidateDescriptionEntry(entry *DescriptionEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidDescriptionEntry)
	}

	if entry.ISBN <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDescriptionEntry, ErrInvalidISBN)
	}

	if entry.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDescriptionEntry, ErrEmptyDescription)
	}

	return nil
}
