package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPost_LikedByContains(t *testing.T) {
	post := &Post{LikedBy: []string{"a", "b"}}

	assert.True(t, post.LikedByContains("a"))
	assert.False(t, post.LikedByContains("c"))

	empty := &Post{}
	assert.False(t, empty.LikedByContains("a"))
}

func TestPost_AddLike_CounterTracksLikerSet(t *testing.T) {
	post := &Post{}

	for i, id := range []string{"a", "b", "c"} {
		assert.True(t, post.AddLike(id))
		assert.Equal(t, i+1, post.Likes)
		assert.Len(t, post.LikedBy, i+1)
	}

	// A repeated like is a no-op.
	assert.False(t, post.AddLike("b"))
	assert.Equal(t, 3, post.Likes)
	assert.Equal(t, []string{"a", "b", "c"}, post.LikedBy)
}

func TestPost_RemoveLike_Idempotent(t *testing.T) {
	post := &Post{LikedBy: []string{"a", "b"}, Likes: 2}

	assert.True(t, post.RemoveLike("a"))
	assert.Equal(t, 1, post.Likes)
	assert.Equal(t, []string{"b"}, post.LikedBy)

	// Removing a like that is not there changes nothing.
	assert.False(t, post.RemoveLike("a"))
	assert.Equal(t, 1, post.Likes)
	assert.Equal(t, []string{"b"}, post.LikedBy)
}
