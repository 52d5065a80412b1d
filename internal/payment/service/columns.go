package service

import (
	"strings"

	backend "charterdesk/internal/backend/models"
	"charterdesk/internal/dictionary"
	"charterdesk/internal/format"
	"charterdesk/internal/view"
)

// labelOr returns the option label for code, then the first non-empty fallback,
// then the placeholder.
func labelOr(options dictionary.StringOptions, code string, fallbacks ...string) string {
	if l := dictionary.LabelOf(options, code); l != "" {
		return l
	}
	return format.Value(format.First(append(fallbacks, code)...))
}

func subjectName(code, name string, tree []backend.TreeNode) string {
	if n := dictionary.ExpenseSubjectName(code, tree); n != format.Placeholder {
		return n
	}
	return format.Value(name)
}

type feeColumn = view.Column[backend.FeeDetail]

// feeColumns lists every fee detail column in display order.
func feeColumns(b *dictionary.Bundle) []feeColumn {
	text := func(key, label string, width int, get func(backend.FeeDetail) string) feeColumn {
		return feeColumn{Key: key, Label: label, Align: view.AlignLeft, MinWidth: width, Render: func(r backend.FeeDetail) string {
			return format.Value(get(r))
		}}
	}
	date := func(key, label string, get func(backend.FeeDetail) string) feeColumn {
		return feeColumn{Key: key, Label: label, Align: view.AlignLeft, MinWidth: 110, Render: func(r backend.FeeDetail) string {
			return format.Date(get(r))
		}}
	}
	money := func(key, label string, get func(backend.FeeDetail) *float64) feeColumn {
		return feeColumn{Key: key, Label: label, Align: view.AlignRight, MinWidth: 110, Render: func(r backend.FeeDetail) string {
			return format.Amount(get(r))
		}}
	}

	return []feeColumn{
		{Key: "vesselCode", Label: "船名", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.FeeDetail) string {
			return labelOr(b.Ships, r.VesselCode, r.VesselName)
		}},
		{Key: "voyageCode", Label: "航次", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.FeeDetail) string {
			return labelOr(b.VoyageNos, r.VoyageCode, r.VoyageNo)
		}},
		{Key: "portCode", Label: "港口", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.FeeDetail) string {
			return labelOr(b.Ports, r.PortCode, r.PortName)
		}},
		{Key: "countryRegion", Label: "国家地区", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.FeeDetail) string {
			return labelOr(b.Countries, r.PortCountry, r.CountryName)
		}},
		{Key: "portPurpose", Label: "港口目的", Align: view.AlignLeft, MinWidth: 80, Render: func(r backend.FeeDetail) string {
			return labelOr(dictionary.PortPurposeOptions, r.PortGoal)
		}},
		{Key: "subjectCode", Label: "费用科目", Align: view.AlignLeft, MinWidth: 120, Render: func(r backend.FeeDetail) string {
			return subjectName(r.SubjectCode, r.SubjectName, b.CategoryWithSubjectTree)
		}},
		money("receiptAmt", "实收金额", func(r backend.FeeDetail) *float64 { return r.ReceiptAmt }),
		money("amount", "金额", func(r backend.FeeDetail) *float64 { return r.TaxIncludeAmount }),
		{Key: "currencyCode", Label: "币种", Align: view.AlignLeft, MinWidth: 80, Render: func(r backend.FeeDetail) string {
			return labelOr(b.Currencies, r.CurrencyCode, r.CurrencyName)
		}},
		text("remark", "备注", 120, func(r backend.FeeDetail) string { return r.Remark }),
		{Key: "counterSettlementUnit", Label: "结算单位（我方）", Align: view.AlignLeft, MinWidth: 140, Render: func(r backend.FeeDetail) string {
			return labelOr(b.BusinessCodes, r.CounterSettlementUnit)
		}},
		{Key: "settlementUnit", Label: "结算单位（对方）", Align: view.AlignLeft, MinWidth: 140, Render: func(r backend.FeeDetail) string {
			return labelOr(b.BusinessCodes, r.SettlementUnit)
		}},
		{Key: "portSequence", Label: "港序", Align: view.AlignRight, MinWidth: 60, Render: func(r backend.FeeDetail) string {
			return format.Int(r.ExecutionSort)
		}},
		date("plannedArrivalDate", "计划抵港日期", func(r backend.FeeDetail) string { return r.PlannedArrivalDate }),
		date("plannedDepartureDate", "计划离港日期", func(r backend.FeeDetail) string { return r.PlannedDepartureDate }),
		text("charterDirection", "租赁方向", 80, func(r backend.FeeDetail) string {
			return format.First(r.CharterDirectionName, r.CharterDirection)
		}),
		text("feeStandard", "费用标准", 120, func(r backend.FeeDetail) string { return r.FeeStandard }),
		{Key: "attachment", Label: "附件", Align: view.AlignLeft, MinWidth: 120, Render: func(r backend.FeeDetail) string {
			names := make([]string, 0, len(r.Attachments))
			for _, a := range r.Attachments {
				if a.FileName != "" {
					names = append(names, a.FileName)
				}
			}
			return format.Value(strings.Join(names, "、"))
		}},
		text("contractNo", "合同号", 120, func(r backend.FeeDetail) string { return r.ContractNo }),
		text("leasePeriod", "租金期数", 80, func(r backend.FeeDetail) string { return r.RentalPeriod }),
		text("calculationNote", "计算说明", 160, func(r backend.FeeDetail) string { return r.CalculationNote }),
		date("leaseStartTime", "租期开始时间", func(r backend.FeeDetail) string { return r.RentalStartTime }),
		date("leaseEndTime", "租期结束时间", func(r backend.FeeDetail) string { return r.RentalEndTime }),
		text("deductionItem", "扣租事项", 120, func(r backend.FeeDetail) string { return r.FeeExplain }),
		text("cargoDamageReason", "差异原因", 120, func(r backend.FeeDetail) string { return r.CargoDamageReason }),
		date("voyageStartTime", "航次开始时间", func(r backend.FeeDetail) string { return r.VoyageStartTime }),
		date("voyageEndTime", "航次结束时间", func(r backend.FeeDetail) string { return r.VoyageEndTime }),
		{Key: "loadPortCode", Label: "装港", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.FeeDetail) string {
			return labelOr(b.Ports, r.LoadPortCode)
		}},
		{Key: "dischargePortCode", Label: "卸港", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.FeeDetail) string {
			return labelOr(b.Ports, r.DischargePortCode)
		}},
		{Key: "goodsCode", Label: "货物", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.FeeDetail) string {
			return labelOr(b.GoodsTypes, r.GoodsCode)
		}},
		{Key: "actualCargoVolume", Label: "结算货量", Align: view.AlignRight, MinWidth: 100, Render: func(r backend.FeeDetail) string {
			return format.FixedPtr(r.ActualCargoVolume, 3)
		}},
	}
}

var (
	freightColumnKeys = []string{
		"vesselCode", "voyageCode", "subjectCode", "receiptAmt", "currencyCode", "settlementUnit",
		"counterSettlementUnit", "charterDirection", "calculationNote", "cargoDamageReason", "remark",
		"voyageStartTime", "voyageEndTime", "loadPortCode", "dischargePortCode", "goodsCode", "actualCargoVolume",
	}
	rentColumnKeys = []string{
		"vesselCode", "voyageCode", "leasePeriod", "subjectCode", "receiptAmt", "currencyCode",
		"calculationNote", "remark", "counterSettlementUnit", "settlementUnit", "leaseStartTime",
		"leaseEndTime", "deductionItem", "charterDirection",
	}
	thirdPartyColumnKeys = []string{
		"vesselCode", "voyageCode", "subjectCode", "amount", "currencyCode", "receiptAmt", "feeStandard",
		"remark", "counterSettlementUnit", "settlementUnit", "attachment", "contractNo", "charterDirection",
	}
	portChargeColumnKeys = []string{
		"vesselCode", "voyageCode", "portCode", "countryRegion", "portPurpose", "subjectCode", "receiptAmt",
		"currencyCode", "remark", "counterSettlementUnit", "settlementUnit", "portSequence",
		"plannedArrivalDate", "plannedDepartureDate", "charterDirection",
	}
	paymentOrderColumnKeys = []string{
		"vesselCode", "voyageCode", "subjectCode", "amount", "currencyCode",
		"counterSettlementUnit", "settlementUnit", "charterDirection", "remark",
	}
)

// verificationColumns maps a verification type to its visible fee columns:
// freight 1 and 4, rent 2 and 5, third party 3 and 7, port charges 6.
var verificationColumns = map[int][]string{
	1: freightColumnKeys,
	2: rentColumnKeys,
	3: thirdPartyColumnKeys,
	4: freightColumnKeys,
	5: rentColumnKeys,
	6: portChargeColumnKeys,
	7: thirdPartyColumnKeys,
}

// VerificationColumnKeys returns the fee columns shown for a verification type.
// Unknown or missing types show the freight set.
func VerificationColumnKeys(verificationType *int) []string {
	if verificationType != nil {
		if keys, ok := verificationColumns[*verificationType]; ok {
			return keys
		}
	}
	return freightColumnKeys
}

var bankReceiptColumns = []view.Column[backend.BankReceipt]{
	{Key: "bankFlowNo", Label: "银行流水号", Align: view.AlignLeft, MinWidth: 140, Render: func(r backend.BankReceipt) string {
		return format.Value(r.BankFlowNo)
	}},
	{Key: "actualPayCompany", Label: "实际付款公司", Align: view.AlignLeft, MinWidth: 140, Render: func(r backend.BankReceipt) string {
		return format.Value(r.ActualPayCompany)
	}},
	{Key: "actualPayAccount", Label: "实际付款账户", Align: view.AlignLeft, MinWidth: 140, Render: func(r backend.BankReceipt) string {
		return format.Value(r.ActualPayAccount)
	}},
	{Key: "amount", Label: "交易金额", Align: view.AlignRight, MinWidth: 110, Render: func(r backend.BankReceipt) string {
		return format.Amount(r.Amount)
	}},
	{Key: "payStatus", Label: "支付状态", Align: view.AlignLeft, MinWidth: 80, Render: func(r backend.BankReceipt) string {
		return dictionary.LabelOfPtr(dictionary.BankPayStatusOptions, r.PayStatus)
	}},
	{Key: "createTime", Label: "创建时间", Align: view.AlignLeft, MinWidth: 110, Render: func(r backend.BankReceipt) string {
		return format.DateTime(r.CreateTime)
	}},
}

func approvalOrderColumns(b *dictionary.Bundle) []view.Column[backend.PaymentApprovalOrder] {
	return []view.Column[backend.PaymentApprovalOrder]{
		{Key: "approvalNo", Label: "审批单号", Align: view.AlignLeft, MinWidth: 140, Render: func(r backend.PaymentApprovalOrder) string {
			return format.Value(r.ApprovalNo)
		}},
		{Key: "payItem", Label: "付款事项", Align: view.AlignLeft, MinWidth: 120, Render: func(r backend.PaymentApprovalOrder) string {
			return format.Value(r.PayItem)
		}},
		{Key: "applyAmt", Label: "申请金额", Align: view.AlignRight, MinWidth: 110, Render: func(r backend.PaymentApprovalOrder) string {
			return format.Amount(r.ApplyAmt)
		}},
		{Key: "currency", Label: "币种", Align: view.AlignLeft, MinWidth: 80, Render: func(r backend.PaymentApprovalOrder) string {
			return labelOr(b.Currencies, r.Currency)
		}},
		{Key: "payee", Label: "收款单位", Align: view.AlignLeft, MinWidth: 140, Render: func(r backend.PaymentApprovalOrder) string {
			return labelOr(b.BusinessCodes, r.Payee)
		}},
		{Key: "status", Label: "状态", Align: view.AlignLeft, MinWidth: 80, Render: func(r backend.PaymentApprovalOrder) string {
			return dictionary.VerificationStatuses.ByCodePtr(r.Status).Label
		}},
		{Key: "latestPayDate", Label: "最迟付款日期", Align: view.AlignLeft, MinWidth: 110, Render: func(r backend.PaymentApprovalOrder) string {
			return format.Date(r.LatestPayDate)
		}},
	}
}
