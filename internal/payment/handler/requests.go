package handler

import (
	"strings"

	"charterdesk/pkg/validation"
)

// DocumentRequest identifies a payment order or verification application.
type DocumentRequest struct {
	ID string `query:"id" validate:"required,max=64,alphanum"`
}

func (r *DocumentRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
}

func (r *DocumentRequest) Validate() error {
	return validation.Validate(r)
}
