package entity

import "time"

const (
	// DateLayout is the wire format of the day a quote was said.
	DateLayout = "2006-01-02"
	// DateTimeLayout is the wire format of a quote's creation timestamp.
	DateTimeLayout = "2006-01-02 15:04"
)

// Quote is an attributed saying saved by a user.
// UserID is the only source of truth for who may modify or delete it.
type Quote struct {
	ID        int64
	Content   string    // The quoted text.
	WhoSaid   string    // The person the quote is attributed to.
	WhenSaid  time.Time // Day the quote was said. Only the date part is meaningful.
	UserID    int64     // Owner of the quote.
	User      *User     // Owner, populated by reads that join the users table.
	CreatedAt time.Time
}

// IsOwnedBy reports whether userID is the recorded owner of the quote.
func (q *Quote) IsOwnedBy(userID int64) bool {
	return q != nil && q.UserID == userID
}

// QuoteFilter narrows a quote search. Zero values are ignored.
// Text fields match case-insensitively as substrings, date bounds are inclusive.
type QuoteFilter struct {
	Content       string
	WhoSaid       string
	SaidFrom      *time.Time
	SaidTo        *time.Time
	Username      string
	DisplayedName string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}
