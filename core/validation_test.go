package core

import (
	"errors"
	"testing"
)

func TestValidateBookRecord(t *testing.T) {
	valid := func() *BookRecord {
		return &BookRecord{
			ISBN:     9780002005883,
			Title:    "Gilead",
			Authors:  "Marilynne Robinson",
			Category: "Fiction",
			Joy:      0.25,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*BookRecord)
		wantErr error
	}{
		{
			name:   "valid record",
			mutate: func(*BookRecord) {},
		},
		{
			name:    "zero isbn",
			mutate:  func(r *BookRecord) { r.ISBN = 0 },
			wantErr: ErrInvalidISBN,
		},
		{
			name:    "empty title",
			mutate:  func(r *BookRecord) { r.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "negative emotion score",
			mutate:  func(r *BookRecord) { r.Fear = -0.1 },
			wantErr: ErrNegativeEmotionScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid()
			tt.mutate(record)
			err := ValidateBookRecord(record)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidBookRecord) || !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateBookRecord() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if err := ValidateBookRecord(nil); !errors.Is(err, ErrInvalidBookRecord) {
		t.Errorf("ValidateBookRecord(nil) = %v", err)
	}
}

func TestValidateDescriptionEntry(t *testing.T) {
	entry := &DescriptionEntry{ISBN: 9780002005883, Text: "A novel about grace."}
	if err := ValidateDescriptionEntry(entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ValidateDescriptionEntry(&DescriptionEntry{Text: "no isbn"}); !errors.Is(err, ErrInvalidISBN) {
		t.Errorf("expected ErrInvalidISBN, got %v", err)
	}

	if err := ValidateDescriptionEntry(&DescriptionEntry{ISBN: 1}); !errors.Is(err, ErrEmptyDescription) {
		t.Errorf("expected ErrEmptyDescription, got %v", err)
	}

	if err := ValidateDescriptionEntry(nil); !errors.Is(err, ErrInvalidDescriptionEntry) {
		t.Errorf("expected ErrInvalidDescriptionEntry, got %v", err)
	}
}
