package models

import "time"

// Comment is the client-schema representation of a film comment.
// The id is assigned by the server.
type Comment struct {
	ID      string
	Author  string
	Content string
	Emotion Emotion
	Date    time.Time
}

// CommentDraft is a comment as authored locally, before the server has
// accepted it and assigned identity.
type CommentDraft struct {
	Content string
	Emotion Emotion
}

// Clone returns a copy of the comment.
func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
