package session

import (
	"log"
	"time"

	"github.com/uzimpp/elemental-dungeon-sub000/systems"
	"github.com/yohamta/donburi"
)

// Recorder saves a run once, the first time it is seen over.
type Recorder struct {
	store Store
	now   func() time.Time
	saved bool
	last  Record
}

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store, now: time.Now}
}

// Update saves the run if it just ended and reports whether it did. Save
// failures are logged and not retried.
func (r *Recorder) Update(w donburi.World) bool {
	if r.saved || r.store == nil || !systems.IsGameOver(w) {
		return false
	}
	r.saved = true
	r.last = FromFacts(systems.Facts(w), r.now())
	if err := r.store.Save(r.last); err != nil {
		log.Printf("Warning: Could not save session: %v", err)
		return false
	}
	return true
}

// Last is the record written by Update, if any.
func (r *Recorder) Last() (Record, bool) {
	return r.last, r.saved
}
