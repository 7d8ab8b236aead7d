package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/initiative-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain/command"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateActorRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.UpdateActorRequest
		wantErr bool
	}{
		{"empty body", dto.UpdateActorRequest{}, true},
		{"title only", dto.UpdateActorRequest{Title: ptr("Goblin")}, false},
		{"blank title", dto.UpdateActorRequest{Title: ptr("")}, false},
		{"order only", dto.UpdateActorRequest{Order: ptr(0)}, false},
		{"both", dto.UpdateActorRequest{Title: ptr("Goblin"), Order: ptr(12)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("Validate() = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestAddConditionRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.AddConditionRequest{Label: "Prone"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	err := (&dto.AddConditionRequest{Label: "  "}).Validate()
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	if verr.Fields["label"] != domain.MsgRequired {
		t.Errorf("Fields[label] = %q, want %q", verr.Fields["label"], domain.MsgRequired)
	}
}

func TestCommandRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.CommandRequest
		wantErr bool
	}{
		{"none", dto.CommandRequest{}, true},
		{"command", dto.CommandRequest{Command: "next"}, false},
		{"key", dto.CommandRequest{Key: "n"}, false},
		{"key code zero", dto.CommandRequest{KeyCode: ptr(0)}, false},
		{"two forms", dto.CommandRequest{Command: "next", Key: "n"}, true},
		{"all forms", dto.CommandRequest{Command: "next", Key: "n", KeyCode: ptr(110)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Validate() = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCommandRequest_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  dto.CommandRequest
		want command.Command
	}{
		{"by name", dto.CommandRequest{Command: "next"}, command.Next},
		{"by key", dto.CommandRequest{Key: "p"}, command.Previous},
		{"by key code", dto.CommandRequest{KeyCode: ptr(106)}, command.SelectDown},
		{"unknown name", dto.CommandRequest{Command: "dance"}, command.Unrecognized},
		{"unknown key code", dto.CommandRequest{KeyCode: ptr(999)}, command.Unrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.req.Decode(); got != tt.want {
				t.Errorf("Decode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandRequest_FromTextInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source string
		want   bool
	}{
		{"", false},
		{"body", false},
		{"input", true},
		{"TEXTAREA", true},
		{" input ", true},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()
			req := dto.CommandRequest{Key: "n", Source: tt.source}
			if got := req.FromTextInput(); got != tt.want {
				t.Errorf("FromTextInput() = %v, want %v", got, tt.want)
			}
		})
	}
}
