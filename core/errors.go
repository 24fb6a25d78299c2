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
	// ErrInvalidTriageItem indicates a TriageItem failed validation.
	ErrInvalidTriageItem = errors.New("invalid triage item")

	// ErrInvalidClientDigest indicates a ClientDigest failed validation.
	ErrInvalidClientDigest = errors.New("invalid client digest")

	// ErrInvalidCategory indicates an invalid Category value.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrEmptyBatchID indicates the BatchID field is empty.
	ErrEmptyBatchID = errors.New("batch id cannot be empty")

	// ErrEmptyNote indicates the Note field is empty.
	ErrEmptyNote = errors.New("note cannot be empty")

	// ErrEmptyClient indicates the Client field is empty.
	ErrEmptyClient = errors.New("client cannot be empty")

	// ErrEmptySummary indicates the Summary field is empty.
	ErrEmptySummary = errors.New("summary cannot be empty")
)
