package entity

import "time"

// SystemAuthorID is the reserved author ID used by admin broadcasts.
// It never matches a real principal and has no profile document.
const SystemAuthorID = "system"

// SystemAuthorName and SystemAuthorAvatar are the denormalized author
// fields stamped onto broadcast posts.
const (
	SystemAuthorName   = "AgentVerse"
	SystemAuthorAvatar = "📡"
)

// Post is a short text update on the shared feed. Author name and avatar
// are denormalized snapshots taken at post time; later profile edits do
// not retroactively rewrite them.
type Post struct {
	ID           string    // Document key, generated by the store.
	AuthorID     string    // Principal ID string, or SystemAuthorID for broadcasts.
	AuthorName   string    // Snapshot of the author's display name.
	AuthorAvatar string    // Snapshot of the author's avatar glyph.
	Content      string
	Mood         string
	Likes        int       // Always equals len(LikedBy); enforced transactionally.
	LikedBy      []string  // Principal IDs that have liked this post.
	CommentCount int       // Unused, kept at zero for wire compatibility.
	CreatedAt    time.Time // Server-assigned creation time; feed sort key.
	ClientTime   string    // Client-supplied ISO copy of the creation time.
}

// LikedByContains reports whether the principal already likes the post.
func (p *Post) LikedByContains(principalID string) bool {
	for _, id := range p.LikedBy {
		if id == principalID {
			return true
		}
	}

	return false
}

// AddLike inserts the principal into the liker set and recomputes the
// counter from the set, so the two cannot drift apart. Returns false
// and leaves the post untouched when the principal already likes it.
func (p *Post) AddLike(principalID string) bool {
	if p.LikedByContains(principalID) {
		return false
	}
	p.LikedBy = append(p.LikedBy, principalID)
	p.Likes = len(p.LikedBy)

	return true
}

// RemoveLike drops the principal from the liker set and recomputes the
// counter. Returns false when the principal never liked the post.
func (p *Post) RemoveLike(principalID string) bool {
	for i, id := range p.LikedBy {
		if id != principalID {
			continue
		}
		p.LikedBy = append(p.LikedBy[:i], p.LikedBy[i+1:]...)
		p.Likes = len(p.LikedBy)

		return true
	}

	return false
}
