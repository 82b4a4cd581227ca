package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/shepherd/pkg/jwtx"
)

// InitKeys generates the EdDSA signing keys for access tokens.
//
// Keys live only in memory. Every restart rotates them, so tokens issued by
// a previous process stop verifying and users sign in again. By default 3
// keys are generated; SHEPHERD_NUM_KEYS overrides that.
func InitKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	logger.Info("initializing ephemeral key manager", "num_keys", cfg.NumKeys)

	keyManager, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ephemeral key manager: %w", err)
	}

	logger.Info("generated ephemeral signing keys",
		"num_keys", keyManager.NumSigners(),
		"issuer", cfg.Issuer,
	)
	logger.Warn("all existing tokens are now invalid due to key rotation on startup")

	return keyManager, nil
}
