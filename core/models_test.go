package core

import (
	"testing"
)

func TestParseISBN(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ISBN
		wantErr bool
	}{
		{
			name:  "bare isbn13",
			input: "9780002005883",
			want:  9780002005883,
		},
		{
			name:  "surrounding whitespace",
			input: "  9780006178736\t",
			want:  9780006178736,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			input:   "isbn13",
			wantErr: true,
		},
		{
			name:    "negative",
			input:   "-9780002005883",
			wantErr: true,
		},
		{
			name:    "zero",
			input:   "0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISBN(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseISBN(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseISBN(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseISBN(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFingerprintOf(t *testing.T) {
	fp1 := FingerprintOf("a story about forgiveness")
	fp2 := FingerprintOf("a story about forgiveness")
	if fp1 != fp2 {
		t.Errorf("FingerprintOf() produced different fingerprints for same content: %d vs %d", fp1, fp2)
	}

	fp3 := FingerprintOf("a story about revenge")
	if fp1 == fp3 {
		t.Errorf("FingerprintOf() produced same fingerprint for different content")
	}
}
