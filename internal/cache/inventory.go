package cache

import (
	"fmt"
	"time"
)

const (
	PostKeyPrefix     = "post:%d"
	FeedPageKeyPrefix = "feed:page:%d"
)

const (
	PostTTL     = 30 * time.Minute
	FeedPageTTL = 2 * time.Minute
)

// PostKey is the cache key for a single hydrated post viewed anonymously.
func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

// FeedPageKey is the cache key for an anonymously viewed feed page.
func FeedPageKey(pageIndex int) string {
	return fmt.Sprintf(FeedPageKeyPrefix, pageIndex)
}
