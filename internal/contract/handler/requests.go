package handler

import (
	"strconv"
	"strings"

	dErrors "charterdesk/pkg/domain-errors"
	"charterdesk/pkg/validation"
)

// ViewRequest identifies a contract by its numeric id.
type ViewRequest struct {
	ID string `query:"id" validate:"required,number"`

	contractID int64
}

func (r *ViewRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
}

// Validate also parses the id; digit strings beyond int64 are rejected.
func (r *ViewRequest) Validate() error {
	if err := validation.Validate(r); err != nil {
		return err
	}
	id, err := strconv.ParseInt(r.ID, 10, 64)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "id is out of range")
	}
	r.contractID = id
	return nil
}

// ContractID is valid after Validate succeeds.
func (r *ViewRequest) ContractID() int64 {
	return r.contractID
}

// VoyageRequest looks up the execution voyage of a contract. TCWithTCT asks for the
// time charter variant with delivery and order details.
type VoyageRequest struct {
	ContractCode string `query:"contractCode"`
	TCWithTCT    string `query:"tcWithTct" validate:"omitempty,boolean"`
}

func (r *VoyageRequest) Normalize() {
	r.ContractCode = strings.TrimSpace(r.ContractCode)
	r.TCWithTCT = strings.TrimSpace(r.TCWithTCT)
}

func (r *VoyageRequest) Validate() error {
	return validation.Validate(r)
}

func (r *VoyageRequest) TimeCharter() bool {
	v, _ := strconv.ParseBool(r.TCWithTCT)
	return v
}
