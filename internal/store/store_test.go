package store_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MalithGihan/taxnotice-service/internal/apperr"
	"github.com/MalithGihan/taxnotice-service/internal/store"
	"github.com/MalithGihan/taxnotice-service/pkg/types"
)

func TestCreateAndLoadUser(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	u := types.User{
		ID: "u1", FirstName: "Karen", LastName: "Hinds", Email: "  Karen@Example.COM ",
		PasswordHash: "h", DOB: "1970-01-02", MobileNumber: "555-0100",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, s.CreateUser(u))

	got, err := s.UserByEmail("karen@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "karen@example.com", got.Email)
	assert.True(t, got.CreatedAt.Equal(u.CreatedAt))
}

func TestCreateUserDuplicate(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.CreateUser(types.User{ID: "a", Email: "dup@example.com"}))

	err = s.CreateUser(types.User{ID: "b", Email: "DUP@example.com"})
	assert.True(t, errors.Is(err, store.ErrExists), "got %v", err)
	assert.True(t, errors.Is(err, apperr.ErrConflict), "got %v", err)

	got, err := s.UserByEmail("dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID, "first record was overwritten")
}

func TestCreateUserConcurrentSameEmail(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)

	var ok atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.CreateUser(types.User{Email: "race@example.com"}); err == nil {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), ok.Load())
}

func TestUserByEmailMissing(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	_, err = s.UserByEmail("nobody@example.com")
	assert.True(t, errors.Is(err, store.ErrNotFound), "got %v", err)
}
