package models

import (
	"fmt"
	"sync"
)

// CommentStore holds the comments of whichever film's detail view is
// currently open. It is a single working set, not a table partitioned
// by film id: opening another film replaces the content wholesale.
//
// Notifications carry the owning film, not a comment, so subscribers
// can reconcile the film's comment id list.
type CommentStore struct {
	Notifier[*Film]

	mu       sync.Mutex
	comments []*Comment
}

// NewCommentStore creates an empty comment store.
func NewCommentStore() *CommentStore {
	return &CommentStore{}
}

// SetComments replaces the working set without notifying. Used when a
// detail view opens; the open itself is not a data mutation.
func (s *CommentStore) SetComments(comments []*Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.comments = make([]*Comment, len(comments))
	for i, comment := range comments {
		s.comments[i] = comment.Clone()
	}
}

// GetComments returns a copy of the working set in order.
func (s *CommentStore) GetComments() []*Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := make([]*Comment, len(s.comments))
	for i, comment := range s.comments {
		comments[i] = comment.Clone()
	}
	return comments
}

// AddComment replaces the working set with the server-confirmed
// collection and notifies with the owning film.
func (s *CommentStore) AddComment(tag UpdateType, film *Film, comments []*Comment) {
	s.mu.Lock()
	s.comments = make([]*Comment, len(comments))
	for i, comment := range comments {
		s.comments[i] = comment.Clone()
	}
	s.mu.Unlock()

	s.notify(tag, film.Clone())
}

// DeleteComment removes the comment with the given id, rewrites the
// film's comment id list to the survivors in order, and notifies with
// the updated film. A missing id returns ErrNotFound with the store
// unmodified.
func (s *CommentStore) DeleteComment(tag UpdateType, film *Film, commentID string) (*Film, error) {
	s.mu.Lock()

	index := -1
	for i, comment := range s.comments {
		if comment.ID == commentID {
			index = i
			break
		}
	}
	if index == -1 {
		s.mu.Unlock()
		return nil, fmt.Errorf("delete comment %q: %w", commentID, ErrNotFound)
	}

	s.comments = append(s.comments[:index], s.comments[index+1:]...)

	updated := film.Clone()
	updated.Comments = make([]string, len(s.comments))
	for i, comment := range s.comments {
		updated.Comments[i] = comment.ID
	}
	s.mu.Unlock()

	s.notify(tag, updated.Clone())
	return updated, nil
}
