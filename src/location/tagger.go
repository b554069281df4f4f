package location

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNoCoordinates is returned when tagging before a location was fetched.
var ErrNoCoordinates = errors.New("no location fetched yet")

// Tag attaches a position to an analysis result.
type Tag struct {
	ID          uuid.UUID   `json:"id"`
	ResultID    uuid.UUID   `json:"result_id"`
	Coordinates Coordinates `json:"coordinates"`
	At          time.Time   `json:"at"`
}

// Tagger keeps tags in memory for the lifetime of the session.
type Tagger struct {
	mu    sync.Mutex
	tags  []Tag
	Clock func() time.Time
}

// Tag records a new tag. A nil coordinates pointer or an out-of-range
// position is rejected.
func (t *Tagger) Tag(resultID uuid.UUID, c *Coordinates) (Tag, error) {
	if c == nil {
		return Tag{}, ErrNoCoordinates
	}
	if !c.Valid() {
		return Tag{}, errors.New("coordinates out of range")
	}
	now := time.Now
	if t.Clock != nil {
		now = t.Clock
	}
	tag := Tag{ID: uuid.New(), ResultID: resultID, Coordinates: *c, At: now()}
	t.mu.Lock()
	t.tags = append(t.tags, tag)
	t.mu.Unlock()
	return tag, nil
}

// Tags returns a copy of all recorded tags, oldest first.
func (t *Tagger) Tags() []Tag {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Tag(nil), t.tags...)
}

// Reset forgets all tags.
func (t *Tagger) Reset() {
	t.mu.Lock()
	t.tags = nil
	t.mu.Unlock()
}
