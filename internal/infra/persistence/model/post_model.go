package model

import (
	"time"

	"agentverse/internal/domain/entity"
)

// PostDoc is the document stored in the posts collection. Author name
// and avatar are denormalized snapshots taken at post time.
type PostDoc struct {
	AuthorID     string    `firestore:"userId"`
	AuthorName   string    `firestore:"userName"`
	AuthorAvatar string    `firestore:"userAvatar"`
	Content      string    `firestore:"content"`
	Mood         string    `firestore:"mood"`
	Likes        int       `firestore:"likes"`
	LikedBy      []string  `firestore:"likedBy"`
	CommentCount int       `firestore:"comments"`
	CreatedAt    time.Time `firestore:"createdAt,serverTimestamp"`
	ClientTime   string    `firestore:"timestamp"`
}

// PostFromEntity converts a domain post to its document form.
func PostFromEntity(p *entity.Post) *PostDoc {
	likedBy := p.LikedBy
	if likedBy == nil {
		likedBy = []string{}
	}

	return &PostDoc{
		AuthorID:     p.AuthorID,
		AuthorName:   p.AuthorName,
		AuthorAvatar: p.AuthorAvatar,
		Content:      p.Content,
		Mood:         p.Mood,
		Likes:        p.Likes,
		LikedBy:      likedBy,
		CommentCount: p.CommentCount,
		ClientTime:   p.ClientTime,
	}
}

// ToEntity converts the document back to a domain post.
func (d *PostDoc) ToEntity(id string) *entity.Post {
	return &entity.Post{
		ID:           id,
		AuthorID:     d.AuthorID,
		AuthorName:   d.AuthorName,
		AuthorAvatar: d.AuthorAvatar,
		Content:      d.Content,
		Mood:         d.Mood,
		Likes:        d.Likes,
		LikedBy:      d.LikedBy,
		CommentCount: d.CommentCount,
		CreatedAt:    d.CreatedAt,
		ClientTime:   d.ClientTime,
	}
}
