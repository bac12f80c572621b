package models

// Review is a user feedback record. UserID is a weak reference: reviews
// survive deletion of their author with a nulled owner.
type Review struct {
	ID      int64   `json:"id" db:"id"`
	Feature string  `json:"feature" db:"feature"`
	Text    *string `json:"text,omitempty" db:"text"`
	Stars   int     `json:"stars" db:"stars"`
	UserID  *int64  `json:"userId,omitempty" db:"user_id"`

	// Related entities
	User *User `json:"user,omitempty"`
}
