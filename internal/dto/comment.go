package dto

// AddCommentRequest attaches an author-attributed comment to a lesson.
type AddCommentRequest struct {
	UserID   string `json:"userId" validate:"required"`
	UserType string `json:"userType" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

// AddReplyRequest nests a reply one level under an existing comment.
type AddReplyRequest struct {
	UserID   string `json:"userId" validate:"required"`
	UserType string `json:"userType" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

// AddReactionRequest attaches an emoji reaction to a lesson.
type AddReactionRequest struct {
	UserID   string `json:"userId" validate:"required"`
	UserType string `json:"userType" validate:"required"`
	Emoji    string `json:"emoji" validate:"required"`
}
