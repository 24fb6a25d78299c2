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

package watch

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/poiesic/carelog/ingest"
)

// notificationBuffer bounds how many pending notifications the watcher holds
// before dropping new ones.
const notificationBuffer = 100

// ErrEmptyBucket indicates a Watcher was created without a bucket name.
var ErrEmptyBucket = errors.New("bucket name is required")

// Watcher emits a Notification for every batch file created in a watched
// directory. Only files with a matching extension are reported.
type Watcher struct {
	bucket     string
	extensions []string
	watcher    *fsnotify.Watcher
	logger     *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithExtensions sets the file extensions that trigger notifications.
// Default is ".json" only.
func WithExtensions(extensions ...string) Option {
	return func(w *Watcher) {
		if len(extensions) > 0 {
			w.extensions = extensions
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
	}
}

// NewWatcher creates a watcher whose notifications carry the given bucket
// name. Callers must Close it when done.
func NewWatcher(bucket string, opts ...Option) (*Watcher, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, ErrEmptyBucket
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		bucket:     bucket,
		extensions: []string{".json"},
		watcher:    fsw,
		logger:     slog.Default().With("component", "watcher"),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Watch starts monitoring dir and returns the notification channel. The
// channel closes when ctx is cancelled or the underlying watcher stops.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan ingest.Notification, error) {
	if err := w.watcher.Add(dir); err != nil {
		return nil, err
	}

	notifications := make(chan ingest.Notification, notificationBuffer)

	go func() {
		defer close(notifications)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
					continue
				}
				if !w.isWatchedExtension(event.Name) {
					continue
				}

				notification := ingest.Notification{
					Bucket: w.bucket,
					Key:    filepath.Base(event.Name),
				}

				select {
				case notifications <- notification:
					w.logger.Info("batch file detected",
						"bucket", notification.Bucket, "key", notification.Key)
				case <-ctx.Done():
					return
				default:
					w.logger.Warn("notification buffer full, dropping",
						"key", notification.Key)
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.logger.Error("watch error", "dir", dir, "err", err)
			}
		}
	}()

	return notifications, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// isWatchedExtension reports whether the file name carries one of the
// watched extensions.
func (w *Watcher) isWatchedExtension(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range w.extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
