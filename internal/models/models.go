package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	MediaImage = "image"
	MediaVideo = "video"
)

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Feed sort keys.
const (
	SortRecent  = "recent"
	SortPopular = "popular"
)

var Categories = []string{"music", "art", "dance", "writing", "sports", "tech", "other"}

type Profile struct {
	ProfileID              string    `json:"profileId" db:"profile_id"`
	Name                   string    `json:"name" db:"name"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Role                   string    `json:"role" db:"role"`
	Department             string    `json:"department" db:"department"`
	Year                   string    `json:"year" db:"year"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

type Talent struct {
	TalentID    string         `json:"talentId" db:"talent_id"`
	OwnerID     string         `json:"ownerId" db:"owner_id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Category    string         `json:"category" db:"category"`
	Tags        pq.StringArray `json:"tags" db:"tags"`
	MediaURL    string         `json:"mediaUrl" db:"media_url"`
	MediaType   string         `json:"mediaType" db:"media_type"`
	ObjectName  string         `json:"-" db:"object_name"`
	LikeCount   int            `json:"likeCount" db:"like_count"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
}

// Reaction is a per-viewer-per-talent like marker. At most one row exists
// per (talent, profile) pair; existence, not a counter, is the source of
// truth for liked state.
type Reaction struct {
	TalentID  string    `json:"talentId" db:"talent_id"`
	ProfileID string    `json:"profileId" db:"profile_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID string    `json:"commentId" db:"comment_id"`
	TalentID  string    `json:"talentId" db:"talent_id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type ServiceRequest struct {
	RequestID   string    `json:"requestId" db:"request_id"`
	RequesterID string    `json:"requesterId" db:"requester_id"`
	Category    string    `json:"category" db:"category"`
	Building    string    `json:"building" db:"building"`
	Room        string    `json:"room" db:"room"`
	Status      string    `json:"status" db:"status"`
	Priority    string    `json:"priority" db:"priority"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// TalentView is the transient projection served to the feed: a talent plus
// its resolved owner profile and the current viewer's liked state. It is
// rebuilt on every fetch and never written back.
type TalentView struct {
	Talent
	Owner   *Profile `json:"owner"`
	IsLiked bool     `json:"isLiked"`
}

type CommentView struct {
	Comment
	Author *Profile `json:"author"`
}

type RequestView struct {
	ServiceRequest
	Requester *Profile `json:"requester"`
}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
