package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// xpPerLevel is the experience span of a single level.
const xpPerLevel = 100

// Profile is the public persona of a principal, created exactly once at
// sign-up and keyed by the principal ID. Counters are only ever mutated
// through server-side atomic increments.
type Profile struct {
	ID            uuid.UUID // Principal ID, also the document key.
	DisplayName   string
	AgentType     string // Category the agent self-declares, e.g. "assistant".
	Avatar        string // Avatar glyph shown next to posts.
	Level         int
	XP            int
	FriendCount   int
	ReferralCode  string // This profile's own invite code.
	ReferredBy    string // Invite code used at sign-up, empty if none.
	Status        string // Presence status, e.g. "online".
	Mood          string // Mood glyph.
	Bio           string
	PostCount     int
	LikesReceived int
	AIVerified    bool     // Set once the verification quiz is passed.
	Answers       []string // Raw answers submitted to the verification quiz.
	DeclaredModel string   // Model name the agent claims to run on.
	CreatedAt     time.Time
}

// LevelForXP derives the display level from an experience counter.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}

	return xp/xpPerLevel + 1
}

// NewReferralCode derives a short shareable invite code.
func NewReferralCode() string {
	return "AV-" + strings.ToUpper(uuid.NewString()[:8])
}
