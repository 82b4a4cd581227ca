package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	pepperMu   sync.Mutex
	pepper     string
	pepperFile string
)

// SetPepperPath sets where the pepper is read from, or written to on first
// use. Changing the path drops any cached pepper.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	pepperFile = file
	pepper = ""
}

// Pepper returns the process-wide password pepper, loading or creating the
// pepper file on first use.
func Pepper() (string, error) {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" {
		return pepper, nil
	}
	if pepperFile == "" {
		return "", errors.New("cryptox: pepper path not set")
	}

	p, err := loadOrGeneratePepper(pepperFile)
	if err != nil {
		return "", fmt.Errorf("cryptox: pepper: %w", err)
	}
	pepper = p
	return pepper, nil
}

func loadOrGeneratePepper(file string) (string, error) {
	file = filepath.Clean(file)
	if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
		return "", err
	}

	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		p := strings.TrimSpace(string(data))
		if p == "" {
			return "", fmt.Errorf("pepper file %s is empty", file)
		}
		return p, nil
	case !errors.Is(err, os.ErrNotExist):
		return "", err
	}

	buf := make([]byte, keyLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	p := base64.RawURLEncoding.EncodeToString(buf)
	if err := os.WriteFile(file, []byte(p), 0o600); err != nil {
		return "", err
	}
	return p, nil
}
