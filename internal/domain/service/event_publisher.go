package service

import "context"

// Feed event types published on every feed mutation.
const (
	FeedEventPostCreated = "post_created"
	FeedEventPostLiked   = "post_liked"
	FeedEventPostUnliked = "post_unliked"
	FeedEventPostDeleted = "post_deleted"
	FeedEventFeedPurged  = "feed_purged"
	FeedEventBroadcast   = "broadcast"
)

// FeedEvent describes a single feed mutation for downstream consumers.
type FeedEvent struct {
	Type      string `json:"type"`
	PostID    string `json:"post_id,omitempty"`
	ActorID   string `json:"actor_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// EventPublisher publishes feed events to the configured transport.
type EventPublisher interface {
	// PublishFeedEvent publishes a single event. Publishing is best
	// effort from the caller's perspective; feed writes never roll back
	// on publish failure.
	PublishFeedEvent(ctx context.Context, event *FeedEvent) error

	// Close releases transport resources.
	Close() error
}
