package core

import "fmt"

// Book is the central entity of the library domain.
// It has no identity beyond its fields; two books with the same title are both kept.
// Year is free text and is never interpreted as a number.
type Book struct {
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Year   string `json:"year" yaml:"year"`
}

// String renders the book the way the listing prints it.
func (b Book) String() string {
	return fmt.Sprintf("Title: %s, Author: %s, Year: %s", b.Title, b.Author, b.Year)
}
