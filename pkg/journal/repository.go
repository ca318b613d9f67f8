package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"healthjournal/pkg/store"
)

// ErrValidation marks a rejected save: title or content was empty after
// trimming. Callers surface it as a notification, never a crash.
var ErrValidation = errors.New("validation failed")

// Repository owns the canonical in-memory entry collection and mediates all
// reads and writes. Every mutation persists the whole collection through the
// adapter before memory is updated, so memory and disk never diverge.
type Repository struct {
	adapter store.Adapter
	log     zerolog.Logger

	entries []*Entry
	subs    []func()
}

// NewRepository loads the collection from the adapter. A missing key yields
// an empty journal. Stored data that fails to parse also degrades to an
// empty journal; the journal is non-critical personal data and staying
// usable beats failing the session. The condition is logged for diagnostics.
func NewRepository(adapter store.Adapter, log zerolog.Logger) *Repository {
	r := &Repository{adapter: adapter, log: log}
	r.entries = r.load()
	return r
}

func (r *Repository) load() []*Entry {
	data, ok, err := r.adapter.Read(store.JournalKey)
	if err != nil {
		r.log.Warn().Err(err).Msg("journal: store read failed, starting empty")
		return nil
	}
	if !ok {
		return nil
	}
	var entries []*Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		r.log.Warn().Err(err).Msg("journal: stored data unparseable, starting empty")
		return nil
	}
	kept := entries[:0]
	for _, e := range entries {
		if e != nil {
			kept = append(kept, e)
		}
	}
	sortEntries(kept)
	return kept
}

// Reload re-reads the persisted collection, replacing in-memory state. Used
// when a store watcher reports an external write.
func (r *Repository) Reload() {
	r.entries = r.load()
	r.notify()
}

// Subscribe registers fn to run after every successful mutation or reload.
func (r *Repository) Subscribe(fn func()) {
	r.subs = append(r.subs, fn)
}

func (r *Repository) notify() {
	for _, fn := range r.subs {
		fn()
	}
}

// All returns the entries ordered by date.
func (r *Repository) All() []*Entry {
	out := make([]*Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// FindByDate returns the entry for the local calendar day of t, if any.
func (r *Repository) FindByDate(t time.Time) *Entry {
	for _, e := range r.entries {
		if e.Date.SameDay(t) {
			return e
		}
	}
	return nil
}

// Upsert saves the journal for the given day. An existing entry keeps its
// ID and date and gets new title, content, and mood; otherwise a fresh entry
// is created. The collection is persisted before the in-memory state moves,
// so a failed write changes nothing.
func (r *Repository) Upsert(date time.Time, title, content string, mood Mood) (*Entry, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, fmt.Errorf("title must not be empty: %w", ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("content must not be empty: %w", ErrValidation)
	}

	next := make([]*Entry, len(r.entries))
	copy(next, r.entries)

	var saved *Entry
	for i, e := range next {
		if e.Date.SameDay(date) {
			saved = &Entry{
				ID:      e.ID,
				Title:   title,
				Content: content,
				Date:    e.Date,
				Mood:    mood,
			}
			next[i] = saved
			break
		}
	}
	if saved == nil {
		saved = New(date, title, content, mood)
		next = append(next, saved)
		sortEntries(next)
	}

	if err := r.persist(next); err != nil {
		return nil, err
	}
	r.entries = next
	r.notify()
	return saved, nil
}

// Remove deletes the entry with the given id and reports whether anything
// was deleted. The shrunken collection is persisted before memory changes.
func (r *Repository) Remove(id string) (bool, error) {
	idx := -1
	for i, e := range r.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	next := make([]*Entry, 0, len(r.entries)-1)
	next = append(next, r.entries[:idx]...)
	next = append(next, r.entries[idx+1:]...)

	if err := r.persist(next); err != nil {
		return false, err
	}
	r.entries = next
	r.notify()
	return true, nil
}

func (r *Repository) persist(entries []*Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := r.adapter.Write(store.JournalKey, data); err != nil {
		return fmt.Errorf("journal: persist: %w", err)
	}
	return nil
}

func sortEntries(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left := entries[i]
		right := entries[j]
		lt := left.Date.Time
		rt := right.Date.Time
		if lt.Equal(rt) {
			return left.ID < right.ID
		}
		return lt.Before(rt)
	})
}
