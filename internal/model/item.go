package model

import "time"

// Item is a single named record in the remote collection.
// The server owns id and createdAt; the client never mints either.
type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
