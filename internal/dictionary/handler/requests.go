package handler

import (
	"net/url"
	"strconv"
	"strings"

	"charterdesk/pkg/validation"
)

// NameRequest names a dictionary.
type NameRequest struct {
	Name string `query:"name" validate:"required,max=64"`
}

func (r *NameRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r *NameRequest) Validate() error {
	return validation.Validate(r)
}

// StatusRequest resolves a status by numeric code or by label.
type StatusRequest struct {
	Taxonomy string `query:"taxonomy" validate:"oneof=contract verification"`
	Code     string `query:"code" validate:"notblank"`
}

func (r *StatusRequest) Normalize() {
	r.Taxonomy = strings.ToLower(strings.TrimSpace(r.Taxonomy))
	if decoded, err := url.PathUnescape(r.Code); err == nil {
		r.Code = decoded
	}
	r.Code = strings.TrimSpace(r.Code)
}

func (r *StatusRequest) Validate() error {
	return validation.Validate(r)
}

// Numeric returns the code as a number when it is one.
func (r *StatusRequest) Numeric() (int, bool) {
	n, err := strconv.Atoi(r.Code)
	return n, err == nil
}

// GuestBusinessSearch filters guest businesses by full name; empty lists all.
type GuestBusinessSearch struct {
	CustomerFullName string `query:"customerFullName" validate:"max=128"`
}

func (r *GuestBusinessSearch) Normalize() {
	r.CustomerFullName = strings.TrimSpace(r.CustomerFullName)
}

func (r *GuestBusinessSearch) Validate() error {
	return validation.Validate(r)
}

// IDRequest carries a backend record id from the path.
type IDRequest struct {
	ID string `query:"id" validate:"required,max=64,alphanum"`
}

func (r *IDRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
}

func (r *IDRequest) Validate() error {
	return validation.Validate(r)
}
