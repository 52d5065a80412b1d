package dictionary

import "sort"

type (
	IntOptions    = []Option[int]
	StringOptions = []Option[string]
)

var ContractStatusOptions = IntOptions{
	{Label: "待提交", Value: 0},
	{Label: "审批中", Value: 1},
	{Label: "审批通过", Value: 2},
	{Label: "审批驳回", Value: 3},
	{Label: "审批终止", Value: 4},
	{Label: "变更审批中", Value: 5},
	{Label: "变更终止", Value: 6},
	{Label: "变更驳回", Value: 7},
	{Label: "变更通过", Value: 8},
	{Label: "作废审批中", Value: 9},
	{Label: "已作废", Value: 10},
	{Label: "待生效", Value: 11},
	{Label: "已生效", Value: 12},
}

var ContractTypeOptions = IntOptions{
	{Label: "揽货合同", Value: 0},
	{Label: "TC期租合同", Value: 1},
	{Label: "TCT航次期租合同", Value: 2},
	{Label: "VC航次租船", Value: 3},
	{Label: "COA包运合同", Value: 4},
}

var BusinessModeOptions = IntOptions{
	{Label: "外贸OP", Value: 0},
	{Label: "外贸自营", Value: 1},
}

var LeaseTypeOptions = IntOptions{
	{Label: "租入", Value: 0},
	{Label: "租出", Value: 1},
}

// PortPurposeOptions are the port call purposes of an execution voyage.
var PortPurposeOptions = StringOptions{
	{Label: "始", Value: "0"},
	{Label: "装", Value: "1"},
	{Label: "卸", Value: "2"},
	{Label: "中", Value: "3"},
	{Label: "修", Value: "4"},
	{Label: "备", Value: "5"},
	{Label: "待", Value: "6"},
	{Label: "补", Value: "7"},
	{Label: "运", Value: "8"},
	{Label: "交船", Value: "9"},
	{Label: "还船", Value: "10"},
	{Label: "装卸", Value: "11"},
	{Label: "加油", Value: "12"},
	{Label: "其他", Value: "13"},
}

var ContractNatureOptions = StringOptions{
	{Label: "一般运输合同", Value: "0"},
	{Label: "超过2个航次且不超过半年", Value: "1"},
	{Label: "COA超过3载", Value: "2"},
	{Label: "租金水平/运费价格过低", Value: "3"},
	{Label: "超过2个航次且超过半年", Value: "4"},
}

var CustomerCommissionTypeOptions = StringOptions{
	{Label: "到付", Value: "0"},
	{Label: "后付", Value: "1"},
}

var PaymentTypeOptions = StringOptions{
	{Label: "到付", Value: "0"},
	{Label: "后付", Value: "1"},
	{Label: "预付", Value: "2"},
	{Label: "船抵卸货港锚地前所有运费一次性结清", Value: "3"},
}

var CargoRangeTypeOptions = StringOptions{
	{Label: "百分比", Value: "0"},
	{Label: "MIN/MAX", Value: "1"},
}

var FuelSpecificationOptions = StringOptions{
	{Label: "高硫重油(HSFO)", Value: "0"},
	{Label: "超低硫重质油(ULSFO)", Value: "1"},
	{Label: "普通重质油(FO)", Value: "2"},
	{Label: "低硫重质油(LSFO)", Value: "3"},
	{Label: "普通重柴油(DO)", Value: "4"},
	{Label: "低硫重柴油(LSDO)", Value: "5"},
	{Label: "普通轻柴油(GO)", Value: "6"},
	{Label: "低硫轻柴油(LSGO)", Value: "7"},
	{Label: "LNG", Value: "8"},
	{Label: "长城", Value: "9"},
}

var RepaymentPeriodOptions = StringOptions{
	{Label: "开票后", Value: "0"},
	{Label: "航次结束后", Value: "1"},
}

var FreightRateModelOptions = StringOptions{
	{Label: "运量", Value: "0"},
	{Label: "包干", Value: "1"},
}

var UnitOptions = StringOptions{
	{Label: "运费吨", Value: "0"},
	{Label: "立方米", Value: "1"},
	{Label: "重量吨", Value: "2"},
	{Label: "件", Value: "3"},
}

var ShippingTermsOptions = StringOptions{
	{Label: "FLT管装管卸", Value: "0"},
	{Label: "FIO不管装不管卸", Value: "1"},
	{Label: "FILO不管装管卸", Value: "2"},
	{Label: "LIFO管装不管卸", Value: "3"},
}

var BrokerCommissionTypeOptions = StringOptions{
	{Label: "运费", Value: "0"},
	{Label: "租金", Value: "3"},
}

var VoyageTypeOptions = StringOptions{
	{Label: "TC（期租）", Value: "1"},
	{Label: "TCT（航次期租）", Value: "2"},
	{Label: "VC（航次租船）", Value: "3"},
}

var VesselTypeOptions = StringOptions{
	{Label: "散货船", Value: "0"},
	{Label: "集装箱船", Value: "1"},
	{Label: "油轮", Value: "2"},
	{Label: "化学品船", Value: "3"},
	{Label: "LNG船", Value: "4"},
	{Label: "其他", Value: "5"},
}

var PaymentCycleTypeOptions = StringOptions{
	{Label: "天", Value: "0"},
	{Label: "周", Value: "1"},
	{Label: "月", Value: "2"},
	{Label: "季", Value: "3"},
	{Label: "年", Value: "4"},
}

// PaymentCycleOptions; "3" (合计) means the fee is not split by month.
var PaymentCycleOptions = StringOptions{
	{Label: "每月", Value: "0"},
	{Label: "合计", Value: "3"},
}

var SplitRuleOptions = StringOptions{
	{Label: "30天（eg:1500/30*days）", Value: "0"},
	{Label: "31天（eg:1500/31*days）", Value: "1"},
	{Label: "365天（eg:1500*12/365*days）", Value: "2"},
	{Label: "366天（eg:1500*12/366*days）", Value: "3"},
	{Label: "不拆分", Value: "5"},
}

var RentalTypeOptions = StringOptions{
	{Label: "固定租金", Value: "0"},
	{Label: "指数租金", Value: "1"},
}

var TimeTypeOptions = StringOptions{
	{Label: "天数", Value: "0"},
	{Label: "日期", Value: "1"},
}

var UnloadRangeOptions = StringOptions{
	{Label: "北中国", Value: "1"},
	{Label: "东南亚", Value: "2"},
	{Label: "南中国", Value: "3"},
	{Label: "空", Value: "0"},
}

var GuestRatingOptions = IntOptions{
	{Label: "A1", Value: 1},
	{Label: "A2", Value: 2},
	{Label: "A3", Value: 3},
	{Label: "B", Value: 4},
	{Label: "黑名单", Value: 5},
}

var VerificationStatusOptions = IntOptions{
	{Label: "待提交", Value: 0},
	{Label: "审批中", Value: 1},
	{Label: "审批通过", Value: 2},
	{Label: "审批驳回", Value: 3},
	{Label: "已撤回", Value: 4},
	{Label: "待支付", Value: 5},
	{Label: "支付中", Value: 6},
	{Label: "支付成功", Value: 7},
	{Label: "支付失败", Value: 8},
	{Label: "确认退回中", Value: 9},
	{Label: "作废审批中", Value: 10},
	{Label: "已作废", Value: 11},
}

var VerificationTypeOptions = IntOptions{
	{Label: "运费应收核销", Value: 1},
	{Label: "租金应收核销", Value: 2},
	{Label: "第三方应收核销", Value: 3},
	{Label: "运费退款核销", Value: 4},
	{Label: "租金退款核销", Value: 5},
	{Label: "港使费退款核销", Value: 6},
	{Label: "第三方退款核销", Value: 7},
}

var BizItemTypeOptions = StringOptions{
	{Label: "运费收入", Value: "1"},
	{Label: "租金收入", Value: "2"},
	{Label: "第三方收入", Value: "3"},
	{Label: "运费退款", Value: "4"},
	{Label: "租金退款", Value: "5"},
	{Label: "第三方退款", Value: "6"},
	{Label: "港使费退款", Value: "7"},
}

var SettlementMethodOptions = StringOptions{
	{Label: "现金", Value: "0"},
	{Label: "现金支票", Value: "1"},
	{Label: "银行转账", Value: "10"},
	{Label: "银企直联", Value: "3"},
	{Label: "电汇", Value: "4"},
	{Label: "银承兑汇", Value: "5"},
}

var BankPayStatusOptions = IntOptions{
	{Label: "未支付", Value: 0},
	{Label: "支付成功", Value: 1},
	{Label: "支付失败", Value: 2},
	{Label: "支付中", Value: 3},
}

var BankFeeTypeOptions = StringOptions{
	{Label: "SHA（共同承担）", Value: "1"},
	{Label: "OUR（汇款人承担）", Value: "2"},
	{Label: "BEN（收款人承担）", Value: "3"},
}

// PayTypeOptions labels PaymentOrder.PayType.
var PayTypeOptions = StringOptions{
	{Label: "运费付款", Value: "0"},
	{Label: "租金付款", Value: "1"},
	{Label: "第三方费用付款", Value: "2"},
	{Label: "港使费预付款", Value: "3"},
	{Label: "港使费结算付款", Value: "4"},
	{Label: "运费收入退款", Value: "5"},
	{Label: "租金收入退款", Value: "6"},
	{Label: "第三方收入退款", Value: "7"},
}

// GuestRatingLabel returns the rating label, or 未知等级 when the rating is absent
// or unknown.
func GuestRatingLabel(rating *int) string {
	if l := LabelOfPtr(GuestRatingOptions, rating); l != "" {
		return l
	}
	return "未知等级"
}

var static = map[string]any{
	"contract_statuses":         ContractStatusOptions,
	"contract_types":            ContractTypeOptions,
	"business_modes":            BusinessModeOptions,
	"lease_types":               LeaseTypeOptions,
	"port_purposes":             PortPurposeOptions,
	"contract_natures":          ContractNatureOptions,
	"customer_commission_types": CustomerCommissionTypeOptions,
	"payment_types":             PaymentTypeOptions,
	"cargo_range_types":         CargoRangeTypeOptions,
	"fuel_specifications":       FuelSpecificationOptions,
	"repayment_periods":         RepaymentPeriodOptions,
	"freight_rate_models":       FreightRateModelOptions,
	"units":                     UnitOptions,
	"shipping_terms":            ShippingTermsOptions,
	"broker_commission_types":   BrokerCommissionTypeOptions,
	"voyage_types":              VoyageTypeOptions,
	"vessel_types":              VesselTypeOptions,
	"payment_cycle_types":       PaymentCycleTypeOptions,
	"payment_cycles":            PaymentCycleOptions,
	"split_rules":               SplitRuleOptions,
	"rental_types":              RentalTypeOptions,
	"time_types":                TimeTypeOptions,
	"unload_ranges":             UnloadRangeOptions,
	"guest_ratings":             GuestRatingOptions,
	"verification_statuses":     VerificationStatusOptions,
	"verification_types":        VerificationTypeOptions,
	"biz_item_types":            BizItemTypeOptions,
	"settlement_methods":        SettlementMethodOptions,
	"bank_pay_statuses":         BankPayStatusOptions,
	"bank_fee_types":            BankFeeTypeOptions,
	"pay_types":                 PayTypeOptions,
}

// Static returns a built-in code table by name.
func Static(name string) (any, bool) {
	opts, ok := static[name]
	return opts, ok
}

func StaticNames() []string {
	names := make([]string, 0, len(static))
	for name := range static {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
