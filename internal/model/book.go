package model

import "time"

// Book is a catalogue entry. ISBN is unique across all books.
type Book struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ISBN      string    `json:"isbn"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}
