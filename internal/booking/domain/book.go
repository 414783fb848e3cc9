package domain

import "time"

// Book is the descriptive catalog entry for a title, keyed by ISBN.
type Book struct {
	ISBN          string
	Title         string
	Author        string // optional
	Publisher     string // optional
	PublishedYear int    // optional, 0 when unknown
	Language      string // optional
	Pages         int    // optional, 0 when unknown
	CoverURL      string // optional
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Collection tracks per-ISBN inventory counters. Invariant:
// 0 <= AvailableCount <= TotalCount, and TotalCount - AvailableCount equals
// the number of open loans for the ISBN.
type Collection struct {
	ISBN           string
	TotalCount     int
	AvailableCount int
}

// BookStock is the catalog entry joined with its inventory counters; this is
// the view borrow/return return to the caller.
type BookStock struct {
	Book
	TotalCount     int
	AvailableCount int
}
