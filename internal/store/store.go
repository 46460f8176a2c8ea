package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MalithGihan/taxnotice-service/internal/apperr"
	"github.com/MalithGihan/taxnotice-service/pkg/types"
)

var (
	ErrExists   = fmt.Errorf("%w: user already exists", apperr.ErrConflict)
	ErrNotFound = fmt.Errorf("%w: user", apperr.ErrNotFound)
)

// FS keeps one JSON file per user under Root/users. File names are derived
// from the normalized email, so lookups never scan the directory.
type FS struct{ Root string }

func New(root string) (*FS, error) {
	s := &FS{Root: root}
	if err := os.MkdirAll(s.usersDir(), 0o700); err != nil {
		return nil, err
	}
	return s, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *FS) usersDir() string { return filepath.Join(s.Root, "users") }

func (s *FS) userPath(email string) string {
	sum := sha256.Sum256([]byte(NormalizeEmail(email)))
	return filepath.Join(s.usersDir(), hex.EncodeToString(sum[:])+".json")
}

// CreateUser stores u unless a user with the same email exists. The record is
// written to a temp file and hard-linked into place, so two concurrent
// registrations for one email cannot both succeed and readers never see a
// partial file.
func (s *FS) CreateUser(u types.User) error {
	u.Email = NormalizeEmail(u.Email)
	b, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(s.usersDir(), "user.tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if err := os.Link(tmp, s.userPath(u.Email)); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrExists
		}
		return err
	}
	return nil
}

func (s *FS) UserByEmail(email string) (types.User, error) {
	var u types.User
	b, err := os.ReadFile(s.userPath(email))
	if errors.Is(err, fs.ErrNotExist) {
		return u, ErrNotFound
	}
	if err != nil {
		return u, err
	}
	if err := json.Unmarshal(b, &u); err != nil {
		return u, fmt.Errorf("decode user record: %w", err)
	}
	return u, nil
}
