package session

// backend.go holds credential persistence. The CLI stores credentials in the
// OS keyring; tests construct a fresh in-memory backend per test.

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "dramahub-admin"
	tokenKey    = "auth_credentials"
)

// ErrNoCredentials is returned by Load when nothing has been stored yet.
var ErrNoCredentials = errors.New("session: no stored credentials")

type Credentials struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type Backend interface {
	Store(Credentials) error
	Load() (*Credentials, error)
	Delete() error
}

// KeyringBackend persists credentials in the OS keyring, JSON-marshalled
// under a single key.
type KeyringBackend struct{}

func (KeyringBackend) Store(creds Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return keyring.Set(serviceName, tokenKey, string(data))
}

func (KeyringBackend) Load() (*Credentials, error) {
	value, err := keyring.Get(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, ErrNoCredentials
	}
	if err != nil {
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(value), &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func (KeyringBackend) Delete() error {
	err := keyring.Delete(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// MemoryBackend keeps credentials in memory only.
type MemoryBackend struct {
	mu    sync.Mutex
	creds *Credentials
}

func (b *MemoryBackend) Store(creds Credentials) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.creds = &creds
	return nil
}

func (b *MemoryBackend) Load() (*Credentials, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.creds == nil {
		return nil, ErrNoCredentials
	}
	creds := *b.creds
	return &creds, nil
}

func (b *MemoryBackend) Delete() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.creds = nil
	return nil
}
