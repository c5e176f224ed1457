package dto

import (
	"github.com/eventlite/eventlite-api/internal/constants"
	"github.com/eventlite/eventlite-api/internal/models"
)

// ToggleBookmarkResponse reports the bookmark state after a toggle
type ToggleBookmarkResponse struct {
	Bookmarked bool   `json:"bookmarked"`
	Message    string `json:"message"`
}

// CommentDTO represents a comment in API responses. CreatedAt is
// human-readable, e.g. "August 29, 2026 at 14:05".
type CommentDTO struct {
	ID        uint64 `json:"id"`
	Body      string `json:"body"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

// AddCommentResponse wraps a newly created comment
type AddCommentResponse struct {
	Success bool       `json:"success"`
	Comment CommentDTO `json:"comment"`
}

// ToCommentDTO converts a Comment model to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID,
		Body:      comment.Body,
		Author:    comment.Author.Username,
		CreatedAt: comment.CreatedAt.Format(constants.CommentTimestampLayout),
	}
}
