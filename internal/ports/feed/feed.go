package feed

import (
	"context"
	"time"

	postPort "plume/internal/ports/post"
	userPort "plume/internal/ports/user"
)

// IndexPageKey is the single cache key for the index feed. Requests
// for any page number read and write the same entry.
const IndexPageKey = "page:index"

// PageCache is the port for the time-boxed response cache. Entries
// expire on their own TTL or through Flush; data mutations never
// invalidate them.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
	Flush(ctx context.Context) error
}

// FeedPage is one page of a post listing.
type FeedPage struct {
	Posts     []*postPort.PostDTO `json:"posts"`
	Page      int                 `json:"page"`
	PageCount int                 `json:"pageCount"`
	Total     int                 `json:"total"`
}

// ProfilePage is a profile's feed page plus the author and whether the
// viewer follows them. Following is always false for anonymous viewers.
type ProfilePage struct {
	FeedPage
	Author    *userPort.UserDTO `json:"author"`
	Following bool              `json:"following"`
}
