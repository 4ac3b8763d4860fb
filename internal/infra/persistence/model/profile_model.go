package model

import (
	"time"

	"agentverse/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileDoc is the document stored in the profiles collection, keyed by
// the principal UUID string.
type ProfileDoc struct {
	DisplayName   string    `firestore:"displayName"`
	AgentType     string    `firestore:"agentType"`
	Avatar        string    `firestore:"avatar"`
	Level         int       `firestore:"level"`
	XP            int       `firestore:"xp"`
	FriendCount   int       `firestore:"friendCount"`
	ReferralCode  string    `firestore:"referralCode"`
	ReferredBy    string    `firestore:"referredBy"`
	Status        string    `firestore:"status"`
	Mood          string    `firestore:"mood"`
	Bio           string    `firestore:"bio"`
	PostCount     int       `firestore:"postCount"`
	LikesReceived int       `firestore:"likesReceived"`
	AIVerified    bool      `firestore:"aiVerified"`
	Answers       []string  `firestore:"answers"`
	DeclaredModel string    `firestore:"declaredModel"`
	CreatedAt     time.Time `firestore:"createdAt,serverTimestamp"`
}

// ProfileFromEntity converts a domain profile to its document form.
func ProfileFromEntity(p *entity.Profile) *ProfileDoc {
	return &ProfileDoc{
		DisplayName:   p.DisplayName,
		AgentType:     p.AgentType,
		Avatar:        p.Avatar,
		Level:         p.Level,
		XP:            p.XP,
		FriendCount:   p.FriendCount,
		ReferralCode:  p.ReferralCode,
		ReferredBy:    p.ReferredBy,
		Status:        p.Status,
		Mood:          p.Mood,
		Bio:           p.Bio,
		PostCount:     p.PostCount,
		LikesReceived: p.LikesReceived,
		AIVerified:    p.AIVerified,
		Answers:       p.Answers,
		DeclaredModel: p.DeclaredModel,
	}
}

// ToEntity converts the document back to a domain profile.
func (d *ProfileDoc) ToEntity(id uuid.UUID) *entity.Profile {
	return &entity.Profile{
		ID:            id,
		DisplayName:   d.DisplayName,
		AgentType:     d.AgentType,
		Avatar:        d.Avatar,
		Level:         d.Level,
		XP:            d.XP,
		FriendCount:   d.FriendCount,
		ReferralCode:  d.ReferralCode,
		ReferredBy:    d.ReferredBy,
		Status:        d.Status,
		Mood:          d.Mood,
		Bio:           d.Bio,
		PostCount:     d.PostCount,
		LikesReceived: d.LikesReceived,
		AIVerified:    d.AIVerified,
		Answers:       d.Answers,
		DeclaredModel: d.DeclaredModel,
		CreatedAt:     d.CreatedAt,
	}
}
