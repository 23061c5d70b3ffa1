package domain

import "time"

// User is the judge-side user record. Server-side aggregates on it (such as
// acceptance counts) may change after a submission, which is why the cached
// copy is refreshed after each successful submit.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
