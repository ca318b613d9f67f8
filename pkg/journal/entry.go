// Package journal holds the health journal domain: entries, moods, and the
// repository that owns the persisted collection.
package journal

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one day's journal record. The ID and Date are fixed at creation;
// only Title, Content, and Mood change on edit.
type Entry struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    Timestamp `json:"date"`
	Mood    Mood      `json:"mood"`
}

func New(date time.Time, title, content string, mood Mood) *Entry {
	return &Entry{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
		Date:    Timestamp{Time: date},
		Mood:    mood,
	}
}

func (e *Entry) Row() (string, string, string) {
	return e.Date.Local().Format(layoutISO), e.Mood.Glyph().Symbol, e.Title
}

func (e *Entry) String() string {
	return e.Mood.Glyph().Symbol + "  " + e.Title
}
