package cache

import (
	"context"
	"fmt"
	"time"
)

// Only anonymous reads are cached: the post detail page and the first page
// of the index feed. Authenticated views depend on the viewer and go to the
// database every time.
const (
	postKeyPrefix = "post:%d"
	indexFeedKey  = "feed:index:first"
)

const (
	PostTTL = 10 * time.Minute
	FeedTTL = 2 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

func IndexFeedKey() string {
	return indexFeedKey
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateIndexFeed(ctx context.Context) {
	Invalidate(ctx, indexFeedKey)
}
