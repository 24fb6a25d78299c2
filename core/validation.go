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

// ValidateTriageItem validates a TriageItem according to domain rules.
//
// Validation rules:
//   - BatchID must not be empty
//   - Note must not be empty (records without usable notes are never triaged)
//   - Classification must be a valid Category
//
// NOT validated:
//   - Client / CarePro / VisitDate (uploads may omit them; stored as-is)
//   - GeneratedAt (set by the pipeline at build time)
func ValidateTriageItem(item *TriageItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidTriageItem)
	}

	if item.BatchID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTriageItem, ErrEmptyBatchID)
	}

	if item.Note == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTriageItem, ErrEmptyNote)
	}

	if err := ValidateCategory(item.Classification); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTriageItem, err)
	}

	return nil
}

// ValidateClientDigest validates a ClientDigest according to domain rules.
//
// Validation rules:
//   - BatchID must not be empty
//   - Client must not be empty (records without one group under ClientUnknown)
//   - Summary must not be empty (the summarizer always yields text, a sentinel
//     at worst)
//   - VisitCount must be positive
func ValidateClientDigest(digest *ClientDigest) error {
	if digest == nil {
		return fmt.Errorf("%w: digest is nil", ErrInvalidClientDigest)
	}

	if digest.BatchID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidClientDigest, ErrEmptyBatchID)
	}

	if digest.Client == "" {
		return fmt.Errorf("%w: %w", ErrInvalidClientDigest, ErrEmptyClient)
	}

	if digest.Summary == "" {
		return fmt.Errorf("%w: %w", ErrInvalidClientDigest, ErrEmptySummary)
	}

	if digest.VisitCount < 1 {
		return fmt.Errorf("%w: visit count %d", ErrInvalidClientDigest, digest.VisitCount)
	}

	return nil
}

// ValidateCategory validates that a Category has a valid value.
func ValidateCategory(c Category) error {
	if c != CategoryRed && c != CategoryAmber && c != CategoryGreen {
		return fmt.Errorf("%w: value %d", ErrInvalidCategory, c)
	}
	return nil
}
