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


// Package ai provides the text-generation abstractions used by carelog.
//
// The package defines one narrow interface, TextGenerator, covering the hosted
// model invocation, and two policy types built on top of it:
//
//   - Classifier: maps one visit note to a red/amber/green Category
//   - Summarizer: condenses a client's ordered notes into one summary
//
// Classifier and Summarizer absorb every generator failure into a documented
// default value and therefore never return errors. That policy is deliberate:
// a single failed model call must never surface as a pipeline error, and
// classification failures bias toward caution (amber), never toward silently
// suppressing a concern.
//
// # Implementation Packages
//
//   - ai/openai: production TextGenerator using OpenAI-compatible APIs
//   - ai/mock: test double for unit testing without external services
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	gen, err := openai.NewTextGenerator(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	classifier, err := ai.NewClassifier(gen)
//	category := classifier.ClassifyNote(ctx, "patient fell and was injured")
package ai
