package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/alexraskin/linkcraft/internal/cache"
	"github.com/alexraskin/linkcraft/internal/models"

	"golang.org/x/crypto/bcrypt"
)

const passwordKey = "admin_password"

var ErrLinkNotFound = errors.New("link not found")

type Database interface {
	Close()
	LoadState(ctx context.Context) (models.State, error)
	SaveState(ctx context.Context, s models.State) error
	UpdateProfile(ctx context.Context, p models.Profile) error
	AddLink(ctx context.Context, l models.Link) (models.Link, error)
	RemoveLink(ctx context.Context, index int) error
	UpdateLink(ctx context.Context, l models.Link) error
	UpdateSettings(ctx context.Context, s models.Settings) error
	ResetState(ctx context.Context) error
	HasPassword(ctx context.Context) (bool, error)
	VerifyPassword(ctx context.Context, password string) (bool, error)
	SetPassword(ctx context.Context, password string) error
}

// kv is a single settings(key, value) table.
type kv interface {
	get(ctx context.Context, key string) (string, bool, error)
	put(ctx context.Context, key, value string) error
	close()
}

type database struct {
	kv    kv
	cache *cache.Cache
	// serializes load-modify-save edits of the state blob
	mu sync.Mutex
}

// NewDatabase opens the store named by dbURL. postgres:// and postgresql://
// URLs use a pgx pool; anything else is a SQLite path, optionally prefixed
// with sqlite://.
func NewDatabase(ctx context.Context, dbURL string, cacheTTL time.Duration) (Database, error) {
	var (
		store kv
		err   error
	)
	switch {
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		store, err = newPostgres(ctx, dbURL)
	default:
		store, err = newSQLite(ctx, strings.TrimPrefix(dbURL, "sqlite://"))
	}
	if err != nil {
		return nil, err
	}

	return &database{
		kv:    store,
		cache: cache.NewCache(cacheTTL),
	}, nil
}

func (d *database) Close() {
	d.kv.close()
}

// LoadState returns the saved state. A missing blob gives the default
// state; so does a corrupt one, which is logged.
func (d *database) LoadState(ctx context.Context) (models.State, error) {
	if s, ok := d.cache.GetState(); ok {
		return s, nil
	}

	gen := d.cache.Generation()
	blob, ok, err := d.kv.get(ctx, models.StorageKey)
	if err != nil {
		return models.State{}, fmt.Errorf("failed to read state: %w", err)
	}
	if !ok {
		return models.DefaultState(), nil
	}

	s, err := models.DecodeState([]byte(blob))
	if err != nil {
		slog.Warn("Failed to load saved state, using defaults", "error", err)
	}

	d.cache.SetState(s, gen)
	return s, nil
}

// SaveState replaces the whole state.
func (d *database) SaveState(ctx context.Context, s models.State) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.save(ctx, s)
}

func (d *database) save(ctx context.Context, s models.State) error {
	data, err := models.EncodeState(s)
	if err != nil {
		return err
	}
	if err := d.kv.put(ctx, models.StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	d.cache.InvalidateState()
	return nil
}

func (d *database) edit(ctx context.Context, fn func(s *models.State) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, err := d.LoadState(ctx)
	if err != nil {
		return err
	}
	if err := fn(&s); err != nil {
		return err
	}
	return d.save(ctx, s)
}

func (d *database) UpdateProfile(ctx context.Context, p models.Profile) error {
	return d.edit(ctx, func(s *models.State) error {
		s.Profile = p
		return nil
	})
}

// AddLink appends l and returns it as stored, with its id filled in.
func (d *database) AddLink(ctx context.Context, l models.Link) (models.Link, error) {
	var added models.Link
	err := d.edit(ctx, func(s *models.State) error {
		s.AddLink(l)
		added = s.Links[len(s.Links)-1]
		return nil
	})
	return added, err
}

func (d *database) RemoveLink(ctx context.Context, index int) error {
	return d.edit(ctx, func(s *models.State) error {
		if !s.RemoveLink(index) {
			return fmt.Errorf("%w: index %d", ErrLinkNotFound, index)
		}
		return nil
	})
}

func (d *database) UpdateLink(ctx context.Context, l models.Link) error {
	return d.edit(ctx, func(s *models.State) error {
		if !s.UpdateLink(l.ID, l.Title, l.URL, l.Icon) {
			return fmt.Errorf("%w: id %q", ErrLinkNotFound, l.ID)
		}
		return nil
	})
}

func (d *database) UpdateSettings(ctx context.Context, settings models.Settings) error {
	return d.edit(ctx, func(s *models.State) error {
		s.Settings = settings
		return nil
	})
}

func (d *database) ResetState(ctx context.Context) error {
	return d.edit(ctx, func(s *models.State) error {
		s.Reset()
		return nil
	})
}

// HasPassword reports whether an editor password hash is stored.
func (d *database) HasPassword(ctx context.Context) (bool, error) {
	hash, ok, err := d.kv.get(ctx, passwordKey)
	if err != nil {
		return false, err
	}
	return ok && hash != "", nil
}

func (d *database) VerifyPassword(ctx context.Context, password string) (bool, error) {
	hash, ok, err := d.kv.get(ctx, passwordKey)
	if err != nil {
		return false, err
	}
	if !ok || hash == "" {
		return false, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil, nil
}

func (d *database) SetPassword(ctx context.Context, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return d.kv.put(ctx, passwordKey, string(hashedPassword))
}
