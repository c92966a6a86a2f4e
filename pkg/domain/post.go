package domain

import (
	"strings"
	"time"
)

// ApprovalStatus represents the review decision state of a post
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// PostStatus represents the publishing state of a post
type PostStatus string

const (
	PostUnpublished PostStatus = "unpublished"
	PostPublished   PostStatus = "published"
)

// Decision is a reviewer's verdict on a pending post
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// Valid reports whether the decision is one of the known verdicts
func (d Decision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// PillarPaletteSize is the number of color classes available for pillar badges
const PillarPaletteSize = 6

// Post represents a generated content item owned by the automation server
type Post struct {
	ID             string         `json:"id"`
	Content        string         `json:"content"`
	TopicPillar    string         `json:"topic_pillar"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	PostStatus     PostStatus     `json:"post_status"`
	CreatedAt      time.Time      `json:"created_at"`
	EstimatedWords int            `json:"estimated_words"`
}

// StatusLabel derives the displayed status with precedence
// published > approved > rejected > pending, regardless of other fields
func (p *Post) StatusLabel() string {
	switch {
	case p.PostStatus == PostPublished:
		return "published"
	case p.ApprovalStatus == ApprovalApproved:
		return "approved"
	case p.ApprovalStatus == ApprovalRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// Hook returns the first non-blank line of the post content, used as a short
// preview. Falls back to the first 100 characters when every line is blank.
func (p *Post) Hook() string {
	for _, line := range strings.Split(p.Content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	runes := []rune(p.Content)
	if len(runes) > 100 {
		return string(runes[:100])
	}
	return p.Content
}

// PillarIndex maps a pillar label to a stable palette slot: the sum of its
// character codes modulo the palette size. Same label always gets same color.
func PillarIndex(pillar string) int {
	sum := 0
	for _, r := range pillar {
		sum += int(r)
	}
	return sum % PillarPaletteSize
}
