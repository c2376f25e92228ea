package repo

import (
	"context"
	"sync"
)

type MemoryPrefsRepository struct {
	mu     sync.RWMutex
	themes map[string]Theme
}

func NewMemoryPrefs() *MemoryPrefsRepository {
	return &MemoryPrefsRepository{themes: make(map[string]Theme)}
}

func (r *MemoryPrefsRepository) GetTheme(_ context.Context, clientID string) (Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.themes[clientID], nil
}

func (r *MemoryPrefsRepository) SetTheme(_ context.Context, clientID string, theme Theme) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if theme == ThemeSystem {
		delete(r.themes, clientID)
		return nil
	}
	r.themes[clientID] = theme
	return nil
}
