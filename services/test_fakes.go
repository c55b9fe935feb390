package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/nbarth/gatehouse/core"
)

// FakeUserStorage is a test-only fake implementing core.UserStorage.
// It stores users in a map and exposes error fields for behavior injection.
type FakeUserStorage struct {
	users     map[string]*core.User // key: user ID
	nextID    int
	mu        sync.RWMutex
	createErr error
	getErr    error
	updateErr error
}

func NewFakeUserStorage() *FakeUserStorage {
	return &FakeUserStorage{
		users: make(map[string]*core.User),
	}
}

func (f *FakeUserStorage) CreateUser(ctx context.Context, u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}

	for _, existing := range f.users {
		if existing.Email == u.Email {
			return core.ErrUserExists
		}
	}

	if u.ID == "" {
		f.nextID++
		u.ID = fmt.Sprintf("user-%d", f.nextID)
	}
	f.users[u.ID] = u
	return nil
}

func (f *FakeUserStorage) GetUserByID(ctx context.Context, id string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	return u, nil
}

func (f *FakeUserStorage) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (f *FakeUserStorage) UpdateUserImage(ctx context.Context, id, locator string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.users[id]
	if !ok {
		return core.ErrUserNotFound
	}
	u.Image = &locator
	return nil
}

// Count returns the number of stored users matching the email.
func (f *FakeUserStorage) Count(email string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := 0
	for _, u := range f.users {
		if u.Email == email {
			n++
		}
	}
	return n
}

// FakeBlobStorage is a test-only fake implementing core.BlobStorage.
type FakeBlobStorage struct {
	blobs     map[string][]byte // key: storage key
	deleted   []string
	mu        sync.Mutex
	saveErr   error
	deleteErr error
}

func NewFakeBlobStorage() *FakeBlobStorage {
	return &FakeBlobStorage{
		blobs: make(map[string][]byte),
	}
}

func (f *FakeBlobStorage) Save(ctx context.Context, key, contentType string, r io.Reader) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}
	f.blobs[key] = buf.Bytes()
	return nil
}

func (f *FakeBlobStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.blobs, key)
	f.deleted = append(f.deleted, key)
	return nil
}

// Keys returns the keys currently held in the fake store.
func (f *FakeBlobStorage) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.blobs))
	for k := range f.blobs {
		keys = append(keys, k)
	}
	return keys
}
