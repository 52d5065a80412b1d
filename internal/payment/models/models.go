// Package models holds the display projections served for payment orders and
// verification (receipt offset) applications.
package models

import (
	"charterdesk/internal/dictionary"
	"charterdesk/internal/view"
)

// PaymentOrderView is the payment order page.
type PaymentOrderView struct {
	ID             int64                 `json:"id"`
	Code           string                `json:"code"`
	PaymentNo      string                `json:"payment_no"`
	Status         int                   `json:"status"`
	StatusInfo     dictionary.StatusInfo `json:"status_info"`
	Fields         []view.Field          `json:"fields"`
	Bank           []view.Field          `json:"bank"`
	FeeDetails     view.Table            `json:"fee_details"`
	BankReceipts   view.Table            `json:"bank_receipts"`
	ApprovalOrders view.Table            `json:"approval_orders"`
	Attachments    []view.Attachment     `json:"attachments"`
}

// VerificationView is the verification page. The fee detail columns depend on the
// verification type.
type VerificationView struct {
	ID               int64                 `json:"id"`
	Code             string                `json:"code"`
	OffsetNo         string                `json:"offset_no"`
	VerificationType *int                  `json:"verification_type"`
	Status           int                   `json:"status"`
	StatusInfo       dictionary.StatusInfo `json:"status_info"`
	Fields           []view.Field          `json:"fields"`
	FeeDetails       view.Table            `json:"fee_details"`
	BankReceipts     view.Table            `json:"bank_receipts"`
	Attachments      []view.Attachment     `json:"attachments"`
}
