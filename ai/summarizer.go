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


package ai

import (
	"context"
	"log/slog"
	"strings"
)

const (
	summariseMaxTokens   = 200
	summariseTemperature = 0.3
)

// Summary sentinels. Callers receive these literal strings instead of errors.
const (
	// SummaryNone is returned for an empty note list, without invoking the model.
	SummaryNone = "No summary available."

	// SummaryUnavailable is returned when the model invocation fails.
	SummaryUnavailable = "Summary unavailable due to an error."
)

// Summarizer condenses a client's chronologically ordered visit notes into a
// single bounded-length professional summary.
//
// Failure policy: an empty note list yields SummaryNone without invoking the
// generator; a generator error yields SummaryUnavailable. SummarizeNotes
// therefore never returns an error.
type Summarizer struct {
	gen    TextGenerator
	logger *slog.Logger
}

// NewSummarizer creates a summarizer backed by the given text generator.
func NewSummarizer(gen TextGenerator) (*Summarizer, error) {
	if gen == nil {
		return nil, ErrGeneratorRequired
	}
	return &Summarizer{
		gen:    gen,
		logger: slog.Default().With("component", "summarizer"),
	}, nil
}

// SummarizeNotes summarizes the notes, which must be ordered oldest to newest.
// Returns the trimmed model reply, or a sentinel per the failure policy.
func (s *Summarizer) SummarizeNotes(ctx context.Context, notes []string) string {
	if len(notes) == 0 {
		return SummaryNone
	}

	prompt := buildSummarisePrompt(notes)
	reply, err := s.gen.GenerateText(ctx, prompt, summariseMaxTokens, summariseTemperature)
	if err != nil {
		s.logger.Error("summarisation call failed", "notes", len(notes), "err", err)
		return SummaryUnavailable
	}

	return strings.TrimSpace(reply)
}
