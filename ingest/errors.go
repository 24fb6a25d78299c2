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

package ingest

import "errors"

var (
	// ErrMalformedBatch indicates that an object's content could not be
	// decoded as a JSON array of visit records.
	ErrMalformedBatch = errors.New("malformed batch content")

	// ErrReaderRequired indicates a Driver was constructed without an
	// object store reader.
	ErrReaderRequired = errors.New("object store reader is required")

	// ErrPipelineRequired indicates a Driver was constructed without a
	// pipeline.
	ErrPipelineRequired = errors.New("pipeline is required")

	// ErrPersisterRequired indicates a Driver was constructed without a
	// persister for its mode.
	ErrPersisterRequired = errors.New("persister is required")

	// ErrInvalidMode indicates an unrecognized processing mode.
	ErrInvalidMode = errors.New("invalid processing mode")
)
