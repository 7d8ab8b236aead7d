package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/initiative-tracker/internal/domain"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain/command"
)

// CreateActorRequest is the body of POST /api/v1/actors. A blank title gets
// the placeholder title.
type CreateActorRequest struct {
	Title string `json:"title"`
	Order *int   `json:"order,omitempty"`
}

// Validate accepts every create request.
func (r *CreateActorRequest) Validate() error {
	return nil
}

// UpdateActorRequest is the body of PATCH /api/v1/actors/{id}. Nil fields
// are left unchanged; an empty title removes the actor.
type UpdateActorRequest struct {
	Title *string `json:"title,omitempty"`
	Order *int    `json:"order,omitempty"`
}

// Validate requires at least one field.
func (r *UpdateActorRequest) Validate() error {
	if r.Title == nil && r.Order == nil {
		return &domain.ValidationError{Fields: map[string]string{
			"body": "must set title or order",
		}}
	}
	return nil
}

// AddConditionRequest is the body of POST /api/v1/actors/{id}/conditions.
type AddConditionRequest struct {
	Label string `json:"label"`
}

// Validate requires a non-blank label.
func (r *AddConditionRequest) Validate() error {
	if strings.TrimSpace(r.Label) == "" {
		return domain.NewValidationError("label", domain.MsgRequired)
	}
	return nil
}

// Command sources whose keystrokes belong to a text field, not the tracker.
var textInputSources = map[string]bool{
	"input":    true,
	"textarea": true,
}

// CommandRequest is the body of POST /api/v1/commands. Exactly one of
// Command, Key and KeyCode must be set. Source names the element that had
// focus when the key was pressed.
type CommandRequest struct {
	Command string `json:"command,omitempty"`
	Key     string `json:"key,omitempty"`
	KeyCode *int   `json:"key_code,omitempty"`
	Source  string `json:"source,omitempty"`
}

// Validate checks that exactly one command form is present.
func (r *CommandRequest) Validate() error {
	set := 0
	if r.Command != "" {
		set++
	}
	if r.Key != "" {
		set++
	}
	if r.KeyCode != nil {
		set++
	}
	if set != 1 {
		return &domain.ValidationError{Fields: map[string]string{
			"body": fmt.Sprintf("exactly one of command, key, key_code is required, got %d", set),
		}}
	}
	return nil
}

// FromTextInput reports whether the keystroke came from a text field and
// must not drive the tracker.
func (r *CommandRequest) FromTextInput() bool {
	return textInputSources[strings.ToLower(strings.TrimSpace(r.Source))]
}

// Decode resolves the request to a command. Unknown input yields
// command.Unrecognized.
func (r *CommandRequest) Decode() command.Command {
	switch {
	case r.KeyCode != nil:
		return command.FromKeyCode(*r.KeyCode)
	case r.Key != "":
		return command.FromKey(r.Key)
	default:
		cmd, _ := command.Parse(r.Command)
		return cmd
	}
}
