// Package blob implements the local persistence mirror on top of a
// gocloud.dev blob bucket: one blob per fixed key, JSON string values. A
// fileblob directory serves production; tests run against memblob.
package blob

import (
	"context"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	"renteasy/config"
	"renteasy/internal/domain/repository"
)

type mirrorStore struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the mirror store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewMirrorStore opens the fileblob-backed local mirror, creating its
// directory on first run.
func NewMirrorStore(params Params) (repository.MirrorStore, error) {
	path := params.Config.Mirror.Path
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, errors.Wrap(err, "create mirror directory")
	}

	bucket, err := fileblob.OpenBucket(path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "open mirror bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing mirror bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return &mirrorStore{bucket: bucket}, nil
}

// NewWithBucket wraps an already-open bucket. Used by tests and tools that
// manage the bucket lifecycle themselves.
func NewWithBucket(bucket *blob.Bucket) repository.MirrorStore {
	return &mirrorStore{bucket: bucket}
}

// Get returns the value stored under key, or ok=false when absent.
func (s *mirrorStore) Get(key string) (string, bool, error) {
	data, err := s.bucket.ReadAll(context.Background(), key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "read mirror key %s", key)
	}

	return string(data), true, nil
}

// Set stores value under key, replacing any previous value.
func (s *mirrorStore) Set(key, value string) error {
	if err := s.bucket.WriteAll(context.Background(), key, []byte(value), nil); err != nil {
		return errors.Wrapf(err, "write mirror key %s", key)
	}

	return nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *mirrorStore) Remove(key string) error {
	err := s.bucket.Delete(context.Background(), key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete mirror key %s", key)
	}

	return nil
}
