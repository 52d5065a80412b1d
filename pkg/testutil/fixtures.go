package testutil

import (
	"encoding/json"

	"charterdesk/internal/backend/models"
)

// Ptr returns a pointer to v; handy for optional DTO fields.
func Ptr[T any](v T) *T {
	return &v
}

// Envelope renders a backend response body.
func Envelope(code int, data any) string {
	raw, err := json.Marshal(map[string]any{"code": code, "data": data, "message": "ok"})
	if err != nil {
		panic(err)
	}
	return string(raw)
}

// ContractBuilder provides a fluent interface for building test contracts.
type ContractBuilder struct {
	contract *models.ContractExternal
}

// NewContractBuilder starts from a TC contract with the common header filled in.
func NewContractBuilder() *ContractBuilder {
	return &ContractBuilder{
		contract: &models.ContractExternal{
			ID:             1001,
			Code:           "CT-1001",
			ContractNo:     "HT2025001",
			ContractType:   Ptr(models.ContractTypeTC),
			BusinessMode:   Ptr(1),
			LeaseType:      Ptr(0),
			ApprovalStatus: Ptr(1),
			Operator:       "张三",
			DeptName:       "外贸部",
			CreateTime:     "2025-09-20T14:00:00",
		},
	}
}

func (b *ContractBuilder) WithType(contractType int) *ContractBuilder {
	b.contract.ContractType = Ptr(contractType)
	return b
}

func (b *ContractBuilder) WithStatus(status int) *ContractBuilder {
	b.contract.ApprovalStatus = Ptr(status)
	return b
}

func (b *ContractBuilder) WithVessel(code string) *ContractBuilder {
	b.contract.VesselCode = code
	return b
}

func (b *ContractBuilder) WithRoute(name string, infos ...models.ContractRouteInfo) *ContractBuilder {
	b.contract.Routes = append(b.contract.Routes, models.ContractRoute{VesselRouteName: name, Infos: infos})
	return b
}

func (b *ContractBuilder) WithBroker(broker models.ContractBroker) *ContractBuilder {
	b.contract.Brokers = append(b.contract.Brokers, broker)
	return b
}

func (b *ContractBuilder) WithFreight(freight models.ContractFreight) *ContractBuilder {
	b.contract.Freights = append(b.contract.Freights, freight)
	return b
}

func (b *ContractBuilder) WithAttachment(name, path string) *ContractBuilder {
	b.contract.Attachments = append(b.contract.Attachments, models.FileAttachment{FileName: name, FilePath: path})
	return b
}

func (b *ContractBuilder) With(fn func(*models.ContractExternal)) *ContractBuilder {
	fn(b.contract)
	return b
}

func (b *ContractBuilder) Build() *models.ContractExternal {
	return b.contract
}

// FeeDetailBuilder builds fee lines for payment and verification tests.
type FeeDetailBuilder struct {
	fee models.FeeDetail
}

func NewFeeDetailBuilder() *FeeDetailBuilder {
	return &FeeDetailBuilder{
		fee: models.FeeDetail{
			VesselCode:   "V001",
			VesselName:   "远洋一号",
			VoyageCode:   "VC001",
			VoyageNo:     "2501",
			SubjectCode:  "S01",
			SubjectName:  "运费",
			ReceiptAmt:   Ptr(1234.5),
			CurrencyCode: "USD",
		},
	}
}

func (b *FeeDetailBuilder) With(fn func(*models.FeeDetail)) *FeeDetailBuilder {
	fn(&b.fee)
	return b
}

func (b *FeeDetailBuilder) Build() models.FeeDetail {
	return b.fee
}
