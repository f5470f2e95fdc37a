package favorites

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dashtab/dashtab/internal/config"
	"github.com/dashtab/dashtab/internal/model"
)

// DefaultUndoWindow is how long a removed favorite can be restored
const DefaultUndoWindow = 5 * time.Second

// pendingRemoval tracks one optimistic deletion awaiting undo or expiry
type pendingRemoval struct {
	favorite model.Favorite
	index    int
	timer    *time.Timer
}

// Service handles favorites operations. Each deletion gets its own
// independent undo offer; offers are neither queued nor merged.
type Service struct {
	store *config.Store

	mu         sync.Mutex
	pending    map[string]*pendingRemoval
	undoWindow time.Duration
}

// NewService creates a new favorites service over the given store
func NewService(store *config.Store) *Service {
	return &Service{
		store:      store,
		pending:    make(map[string]*pendingRemoval),
		undoWindow: DefaultUndoWindow,
	}
}

// SetUndoWindow overrides the undo window duration
func (s *Service) SetUndoWindow(window time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.undoWindow = window
}

// Add appends a new favorite. An empty URL is rejected and nothing changes;
// an empty name is allowed and the display label derives from the URL later.
func (s *Service) Add(name, rawURL string) (model.Favorite, bool) {
	if strings.TrimSpace(rawURL) == "" {
		return model.Favorite{}, false
	}

	favorite := model.Favorite{
		ID:   model.NewFavoriteID(),
		Name: name,
		URL:  model.NormalizeURL(rawURL),
	}

	settings := s.store.Current()
	settings.Favorites = append(settings.Favorites, favorite)
	s.store.Save(settings)

	log.Printf("Added favorite %s (%s)", favorite.ID, favorite.URL)
	return favorite, true
}

// Edit replaces the favorite with the given id in place, preserving order.
// An unknown id or an empty URL in the patch is a no-op.
func (s *Service) Edit(id string, patch model.Favorite) bool {
	if strings.TrimSpace(patch.URL) == "" {
		return false
	}

	settings := s.store.Current()
	for i, favorite := range settings.Favorites {
		if favorite.ID != id {
			continue
		}
		settings.Favorites[i] = model.Favorite{
			ID:      id,
			Name:    patch.Name,
			URL:     model.NormalizeURL(patch.URL),
			IconURL: patch.IconURL,
		}
		s.store.Save(settings)
		return true
	}
	return false
}

// Remove deletes the favorite immediately and opens an undo offer. The
// returned token restores the favorite at its original index until the undo
// window elapses. An unknown id returns ok=false and changes nothing.
func (s *Service) Remove(id string) (token string, removed model.Favorite, ok bool) {
	settings := s.store.Current()

	index := -1
	for i, favorite := range settings.Favorites {
		if favorite.ID == id {
			index = i
			removed = favorite
			break
		}
	}
	if index < 0 {
		return "", model.Favorite{}, false
	}

	settings.Favorites = append(settings.Favorites[:index], settings.Favorites[index+1:]...)
	s.store.Save(settings)

	token = newUndoToken()

	s.mu.Lock()
	window := s.undoWindow
	s.pending[token] = &pendingRemoval{
		favorite: removed,
		index:    index,
		timer: time.AfterFunc(window, func() {
			s.expire(token)
		}),
	}
	s.mu.Unlock()

	log.Printf("Removed favorite %s, undo open for %s", id, window)
	return token, removed, true
}

// Undo restores a removed favorite at its original position. After the
// window has elapsed, or for an unknown token, there is nothing to undo.
func (s *Service) Undo(token string) bool {
	s.mu.Lock()
	removal, exists := s.pending[token]
	if exists {
		delete(s.pending, token)
	}
	s.mu.Unlock()

	if !exists {
		return false
	}
	removal.timer.Stop()

	settings := s.store.Current()
	index := removal.index
	if index > len(settings.Favorites) {
		index = len(settings.Favorites)
	}

	favorites := make([]model.Favorite, 0, len(settings.Favorites)+1)
	favorites = append(favorites, settings.Favorites[:index]...)
	favorites = append(favorites, removal.favorite)
	favorites = append(favorites, settings.Favorites[index:]...)
	settings.Favorites = favorites
	s.store.Save(settings)

	log.Printf("Restored favorite %s at index %d", removal.favorite.ID, index)
	return true
}

// Reorder moves the dragged favorite to the target's current position as a
// single-element move, keeping all other relative order. Equal or unknown
// ids are a no-op.
func (s *Service) Reorder(draggedID, targetID string) bool {
	if draggedID == targetID {
		return false
	}

	settings := s.store.Current()
	draggedIndex, targetIndex := -1, -1
	for i, favorite := range settings.Favorites {
		switch favorite.ID {
		case draggedID:
			draggedIndex = i
		case targetID:
			targetIndex = i
		}
	}
	if draggedIndex < 0 || targetIndex < 0 {
		return false
	}

	favorites := settings.Favorites
	dragged := favorites[draggedIndex]
	favorites = append(favorites[:draggedIndex], favorites[draggedIndex+1:]...)

	if targetIndex > len(favorites) {
		targetIndex = len(favorites)
	}
	favorites = append(favorites, model.Favorite{})
	copy(favorites[targetIndex+1:], favorites[targetIndex:])
	favorites[targetIndex] = dragged

	settings.Favorites = favorites
	s.store.Save(settings)
	return true
}

// expire finalizes a pending removal whose window elapsed
func (s *Service) expire(token string) {
	s.mu.Lock()
	removal, exists := s.pending[token]
	if exists {
		delete(s.pending, token)
	}
	s.mu.Unlock()

	if exists {
		log.Printf("Undo window elapsed for favorite %s", removal.favorite.ID)
	}
}

// newUndoToken generates a unique token for a pending removal
func newUndoToken() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
