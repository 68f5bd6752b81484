package entry

import "time"

const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

type EntryDocument struct {
	Id          string     `bson:"_id" json:"id"`
	OwnerId     string     `bson:"ownerId" json:"ownerId"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Status      string     `bson:"status" json:"status"`
	DueDate     *time.Time `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

type CreateEntryPayload struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=5000"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateEntryPayload only touches the fields that are present in the body.
type UpdateEntryPayload struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	Status      *string    `json:"status" validate:"omitempty,oneof=todo in_progress done"`
	DueDate     *time.Time `json:"dueDate"`
}

func (payload *UpdateEntryPayload) apply(entry *EntryDocument) {
	if payload.Title != nil {
		entry.Title = *payload.Title
	}
	if payload.Description != nil {
		entry.Description = *payload.Description
	}
	if payload.Status != nil {
		entry.Status = *payload.Status
	}
	if payload.DueDate != nil {
		entry.DueDate = payload.DueDate
	}
}
