// Package models holds the display projections served for contracts.
package models

import (
	"charterdesk/internal/dictionary"
	"charterdesk/internal/view"
)

// Layout names the page layout a contract renders with.
type Layout string

const (
	LayoutTCTCT     Layout = "tc_tct"
	LayoutVCFreight Layout = "vc_freight"
)

const DocumentType = "合同申请单"

// ApprovalInfo is the header card of a contract under approval.
type ApprovalInfo struct {
	Initiator      string                `json:"initiator"`
	DocumentType   string                `json:"document_type"`
	InitiationDate string                `json:"initiation_date"`
	Department     string                `json:"department"`
	ApplicationNo  string                `json:"application_no"`
	Status         int                   `json:"status"`
	StatusInfo     dictionary.StatusInfo `json:"status_info"`
}

// RouteTab is one route of a multi-route time charter with its rental legs.
type RouteTab struct {
	Name   string     `json:"name"`
	Remark string     `json:"remark"`
	Infos  view.Table `json:"infos"`
}

// UIState is the initial accordion and tab state of the page.
type UIState struct {
	ActiveCollapse []string `json:"active_collapse"`
	ActiveRouteTab *int     `json:"active_route_tab,omitempty"`
	ViewedRoutes   []int    `json:"viewed_routes,omitempty"`
}

// View is the whole contract page. Sections that do not apply to the layout are
// omitted.
type View struct {
	ID           int64             `json:"id"`
	Code         string            `json:"code"`
	ContractType *int              `json:"contract_type"`
	Layout       Layout            `json:"layout"`
	Approval     ApprovalInfo      `json:"approval"`
	Fields       []view.Field      `json:"fields"`
	RentalScheme []view.Field      `json:"rental_scheme,omitempty"`
	Routes       []RouteTab        `json:"routes,omitempty"`
	Payments     *view.Table       `json:"payments,omitempty"`
	Freight      []view.Field      `json:"freight,omitempty"`
	FreightInfos *view.Table       `json:"freight_infos,omitempty"`
	Brokers      view.Table        `json:"brokers"`
	Attachments  []view.Attachment `json:"attachments"`
	UI           UIState           `json:"ui"`
}

// Voyage is the execution voyage linked to a contract. Delivery, return and order
// details are only filled in for time charters.
type Voyage struct {
	ID               int64  `json:"id"`
	VesselName       string `json:"vessel_name"`
	ExternalVoyageNo string `json:"external_voyage_no"`
	Content          string `json:"content"`
	Title            string `json:"title"`

	Code         string `json:"code,omitempty"`
	VesselCode   string `json:"vessel_code,omitempty"`
	VoyageCode   string `json:"voyage_code,omitempty"`
	VoyageStatus *int   `json:"voyage_status,omitempty"`
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	Remark       string `json:"remark,omitempty"`

	DeliveryTime     string       `json:"delivery_time,omitempty"`
	ReturnTime       string       `json:"return_time,omitempty"`
	DeliveryLocation string       `json:"delivery_location,omitempty"`
	ReturnLocation   string       `json:"return_location,omitempty"`
	Order            *VoyageOrder `json:"order,omitempty"`
}

type VoyageOrder struct {
	OrderNo      string   `json:"order_no"`
	ContractNo   string   `json:"contract_no"`
	CustomerName string   `json:"customer_name"`
	SignDate     string   `json:"sign_date"`
	Amount       *float64 `json:"amount"`
	CurrencyCode string   `json:"currency_code"`
}
