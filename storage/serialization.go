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

package storage

import (
	"github.com/poiesic/readnext/core"
)

// MarshalBookRecord serializes a BookRecord to bytes.
func MarshalBookRecord(record *core.BookRecord) []byte {
	buf := make([]byte, core.BookRecordMUS.Size(*record))
	core.BookRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalBookRecord deserializes a BookRecord from bytes.
func UnmarshalBookRecord(data []byte) (*core.BookRecord, error) {
	record, _, err := core.BookRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalDescriptionEntry serializes a DescriptionEntry to bytes.
func MarshalDescriptionEntry(entry *core.DescriptionEntry) []byte {
	buf := make([]byte, core.DescriptionEntryMUS.Size(*entry))
	core.DescriptionEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalDescriptionEntry deserializes a DescriptionEntry from bytes.
func UnmarshalDescriptionEntry(data []byte) (*core.DescriptionEntry, error) {
	entry, _, err := core.DescriptionEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// MarshalVector serializes a bare embedding vector to bytes.
func MarshalVector(vector []float32) []byte {
	buf := make([]byte, core.Float32SliceMUS.Size(vector))
	core.Float32SliceMUS.Marshal(vector, buf)
	return buf
}

// UnmarshalVector deserializes a bare embedding vector from bytes.
func UnmarshalVector(data []byte) ([]float32, error) {
	vector, _, err := core.Float32SliceMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return vector, nil
}
