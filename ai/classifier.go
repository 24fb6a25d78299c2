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
	"errors"
	"log/slog"
	"strings"

	"github.com/poiesic/carelog/core"
)

const (
	classifyMaxTokens   = 10
	classifyTemperature = 0.1
)

// ErrGeneratorRequired is returned when a text generator is not provided.
var ErrGeneratorRequired = errors.New("text generator required")

// Classifier assigns a red/amber/green Category to a single visit note.
//
// Failure policy: empty or whitespace-only notes are classified green without
// invoking the generator; a generator error or an unrecognisable reply yields
// amber. ClassifyNote therefore never returns an error.
type Classifier struct {
	gen    TextGenerator
	logger *slog.Logger
}

// NewClassifier creates a classifier backed by the given text generator.
func NewClassifier(gen TextGenerator) (*Classifier, error) {
	if gen == nil {
		return nil, ErrGeneratorRequired
	}
	return &Classifier{
		gen:    gen,
		logger: slog.Default().With("component", "classifier"),
	}, nil
}

// ClassifyNote classifies one visit note.
//
// The reply is parsed by case-insensitive substring search for the category
// keywords in priority order red, amber, green. No retries are performed: a
// single failed call is absorbed into the amber default.
func (c *Classifier) ClassifyNote(ctx context.Context, note string) core.Category {
	if strings.TrimSpace(note) == "" {
		c.logger.Warn("empty note provided for classification")
		return core.CategoryGreen
	}

	prompt := buildClassifyPrompt(note)
	reply, err := c.gen.GenerateText(ctx, prompt, classifyMaxTokens, classifyTemperature)
	if err != nil {
		c.logger.Error("classification call failed, defaulting to amber", "err", err)
		return core.CategoryAmber
	}

	category, ok := core.ParseCategoryReply(reply)
	if !ok {
		c.logger.Warn("unexpected classification reply, defaulting to amber", "reply", reply)
		return core.CategoryAmber
	}
	return category
}
