package tasklist

import (
	"strings"

	"github.com/jsamuelsen11/tasklists-service/internal/domain"
)

// Patch is a partial update for a TaskList. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
}

// Validate rejects a present but blank title.
func (p *Patch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return domain.NewValidationError("title", domain.MsgMustNotBeEmpty)
	}
	return nil
}

// Apply merges the patch into l: present overwrites, absent preserves.
func (p *Patch) Apply(l *TaskList) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
}
