// Package domain holds DTOs for notes http and service contracts
package domain

// CreateNoteInput is the input for creating a note
type CreateNoteInput struct {
	Title string   `json:"title" validate:"required,min=1,max=200" example:"deploy checklist"`
	Body  string   `json:"body,omitempty" validate:"omitempty,max=10000" example:"rotate keys before the cutover"`
	Tags  []string `json:"tags,omitempty" validate:"omitempty,max=16,dive,min=1,max=40" example:"ops"`
}

// UpdateNoteInput is the input for replacing a note's content
type UpdateNoteInput struct {
	Title string   `json:"title" validate:"required,min=1,max=200"`
	Body  string   `json:"body,omitempty" validate:"omitempty,max=10000"`
	Tags  []string `json:"tags,omitempty" validate:"omitempty,max=16,dive,min=1,max=40"`
}

// ListNotesInput filters the notes listing
type ListNotesInput struct {
	Tag   string `json:"tag,omitempty" validate:"omitempty,min=1,max=40" example:"ops"`
	Limit int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}

// Note is the wire representation of one note
type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Body      string   `json:"body,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}
