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


package carelog

import (
	"log/slog"

	"github.com/poiesic/carelog/ai"
	"github.com/poiesic/carelog/ai/openai"
	"github.com/poiesic/carelog/ingest"
	"github.com/poiesic/carelog/objectstore"
	"github.com/poiesic/carelog/objectstore/fs"
	"github.com/poiesic/carelog/pipeline"
	"github.com/poiesic/carelog/storage"
	"github.com/poiesic/carelog/storage/badger"
)

// Service wires the object store, pipeline, and repositories together. It is
// the embedding entry point; the CLI is a thin wrapper around it.
type Service struct {
	backend    *badger.Backend
	triageRepo storage.TriageRepository
	digestRepo storage.DigestRepository
	store      objectstore.Reader
	generator  ai.TextGenerator
	poolSize   int
	logger     *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig  *ai.Config
	generator ai.TextGenerator
	store     objectstore.Reader
	poolSize  int
}

// WithAIConfig sets the model endpoint configuration.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithTextGenerator injects a text generator directly, bypassing the
// endpoint configuration. Intended for tests.
func WithTextGenerator(gen ai.TextGenerator) ServiceOption {
	return func(o *serviceOptions) {
		o.generator = gen
	}
}

// WithObjectStore injects an object store reader, replacing the default
// filesystem store.
func WithObjectStore(store objectstore.Reader) ServiceOption {
	return func(o *serviceOptions) {
		o.store = store
	}
}

// WithPoolSize sets the worker pool size used by drivers created from this
// service.
func WithPoolSize(size int) ServiceOption {
	return func(o *serviceOptions) {
		o.poolSize = size
	}
}

// NewService opens the store at dbPath and serves objects from storeRoot.
// storeRoot is ignored when an object store is injected.
func NewService(dbPath, storeRoot string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return nil, err
	}

	triageRepo := badger.NewTriageRepository(backend)
	digestRepo := badger.NewDigestRepository(backend)

	store := options.store
	if store == nil {
		store, err = fs.NewStore(storeRoot)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	generator := options.generator
	if generator == nil {
		generator, err = openai.NewTextGenerator(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	return &Service{
		backend:    backend,
		triageRepo: triageRepo,
		digestRepo: digestRepo,
		store:      store,
		generator:  generator,
		poolSize:   options.poolSize,
		logger:     slog.Default(),
	}, nil
}

// Close releases the repositories and the backing store.
func (s *Service) Close() error {
	if err := s.triageRepo.Close(); err != nil {
		s.logger.Error("error closing triage repository", "err", err)
		return err
	}
	if err := s.digestRepo.Close(); err != nil {
		s.logger.Error("error closing digest repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (s *Service) TriageRepository() storage.TriageRepository {
	return s.triageRepo
}

func (s *Service) DigestRepository() storage.DigestRepository {
	return s.digestRepo
}

// NewDriver builds a driver for the given mode over this service's store,
// generator, and repositories.
func (s *Service) NewDriver(mode ingest.Mode) (*ingest.Driver, error) {
	classifier, err := ai.NewClassifier(s.generator)
	if err != nil {
		return nil, err
	}
	summarizer, err := ai.NewSummarizer(s.generator)
	if err != nil {
		return nil, err
	}

	var pipeOpts []pipeline.Option
	if s.poolSize > 0 {
		pipeOpts = append(pipeOpts, pipeline.WithPoolSize(s.poolSize))
	}
	pipe, err := pipeline.NewPipeline(classifier, summarizer, pipeOpts...)
	if err != nil {
		return nil, err
	}

	triage, err := storage.NewTriagePersister(s.triageRepo)
	if err != nil {
		return nil, err
	}
	digests, err := storage.NewDigestPersister(s.digestRepo)
	if err != nil {
		return nil, err
	}

	return ingest.NewDriver(mode, s.store, pipe, triage, digests)
}
