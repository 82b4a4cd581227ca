package jwtx

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/aussiebroadwan/shepherd/pkg/cryptox"
)

const AlgorithmEdDSA = "EdDSA"

const (
	defaultNumKeys = 3
	maxNumKeys     = 10
	defaultLeeway  = 30 * time.Second
)

// KeyManager owns the signing keys of one process and the KeySet that
// verifies them.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	mu      sync.RWMutex
	signers []Signer
}

type KeyManagerOptions struct {
	Issuer   string
	Audience []string // empty disables audience checks

	// NumKeys defaults to 3 and is capped at 10.
	NumKeys int

	// Leeway defaults to 30s.
	Leeway time.Duration
}

// NewEphemeralKeyManager generates in-memory Ed25519 keys. Tokens do not
// survive a restart.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: Issuer is required")
	}

	n := opts.NumKeys
	if n <= 0 {
		n = defaultNumKeys
	}
	n = min(n, maxNumKeys)

	leeway := opts.Leeway
	if leeway <= 0 {
		leeway = defaultLeeway
	}

	km := &KeyManager{KeySet: NewKeySet()}
	for i := range n {
		kid, err := cryptox.GenerateToken(cryptox.TokenSize128)
		if err != nil {
			return nil, fmt.Errorf("jwtx: key id: %w", err)
		}
		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, err
		}
		signer, err := NewSignerEdDSA("shepherd-"+kid, pemKey)
		if err != nil {
			return nil, fmt.Errorf("jwtx: signer %d: %w", i+1, err)
		}
		if err := km.AddSigner(signer); err != nil {
			return nil, err
		}
	}

	km.Verifier = NewVerifierEdDSA(km.KeySet, opts.Issuer, opts.Audience, leeway)
	return km, nil
}

func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}

// GetSigner picks one of the signing keys at random.
func (km *KeyManager) GetSigner() Signer {
	km.mu.RLock()
	defer km.mu.RUnlock()

	switch len(km.signers) {
	case 0:
		return nil
	case 1:
		return km.signers[0]
	}
	return km.signers[rand.IntN(len(km.signers))]
}

func (km *KeyManager) NumSigners() int {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.signers)
}

// AddSigner makes signer available for signing and verification.
func (km *KeyManager) AddSigner(signer Signer) error {
	if signer == nil {
		return fmt.Errorf("jwtx: signer cannot be nil")
	}

	km.mu.Lock()
	defer km.mu.Unlock()

	if err := km.KeySet.AddSigner(signer); err != nil {
		return fmt.Errorf("jwtx: add signer to keyset: %w", err)
	}
	km.signers = append(km.signers, signer)
	return nil
}
