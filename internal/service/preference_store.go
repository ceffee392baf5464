package service

import (
	"context"
	"errors"

	"token-recovery-dapp/internal/core/ports"
	"token-recovery-dapp/pkg/logger"

	"github.com/rs/zerolog"
)

// LastWalletKey holds the name of the last successfully connected wallet.
const LastWalletKey = "lastWallet"

// PreferenceStore namespaces keys under a fixed prefix and absorbs backend
// failures. Reads that fail look like missing keys; failed writes are logged.
type PreferenceStore struct {
	backend ports.KeyValueStore
	prefix  string
	log     zerolog.Logger
}

// NewPreferenceStore creates a PreferenceStore over the given backend.
func NewPreferenceStore(backend ports.KeyValueStore, prefix string, log zerolog.Logger) *PreferenceStore {
	return &PreferenceStore{
		backend: backend,
		prefix:  prefix,
		log:     logger.Component(log, "preference_store"),
	}
}

// Key returns the namespaced backend key.
func (s *PreferenceStore) Key(key string) string {
	return s.prefix + key
}

func (s *PreferenceStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.backend.Get(ctx, s.Key(key))
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			s.log.Warn().Err(err).Str("key", key).Msg("preference read failed, treating as absent")
		}
		return "", false
	}
	return value, true
}

func (s *PreferenceStore) Set(ctx context.Context, key, value string) {
	if err := s.backend.Set(ctx, s.Key(key), value); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("preference write failed")
	}
}

func (s *PreferenceStore) Remove(ctx context.Context, key string) {
	if err := s.backend.Delete(ctx, s.Key(key)); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("preference remove failed")
	}
}
