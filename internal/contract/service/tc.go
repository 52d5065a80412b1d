package service

import (
	"fmt"
	"strings"

	backend "charterdesk/internal/backend/models"
	"charterdesk/internal/contract/models"
	"charterdesk/internal/dictionary"
	"charterdesk/internal/format"
	"charterdesk/internal/view"
)

// labelOr returns the option label for v, falling back to Value(v).
func labelOr(options dictionary.StringOptions, v string) string {
	if l := dictionary.LabelOf(options, v); l != "" {
		return l
	}
	return format.Value(v)
}

func tcFields(c *backend.ContractExternal, b *dictionary.Bundle) []view.Field {
	guests := b.BusinessCodes
	return []view.Field{
		view.F("合同号", format.Value(c.ContractNo)),
		view.F("经营模式", dictionary.LabelOfPtr(dictionary.BusinessModeOptions, c.BusinessMode)),
		view.F("合同类型", dictionary.LabelOfPtr(dictionary.ContractTypeOptions, c.ContractType)),
		view.F("租赁方向", dictionary.LabelOfPtr(dictionary.LeaseTypeOptions, c.LeaseType)),
		view.F("船名", labelOr(b.Ships, c.VesselCode)),
		view.F("航次号", format.Value(c.VoyageNo)),
		view.F("船东", labelOr(guests, c.GuestBusinessCode)),
		view.F("客户/租家", labelOr(guests, c.OppositeSigningUnit)),
		view.F("结算单位对方", labelOr(guests, c.OppositeSettlementUnit)),
		view.F("签约主体", dictionary.LabelOf(guests, c.OurSigningUnit)),
		view.F("结算单位我方", labelOr(guests, c.OurSettlementUnit)),
		view.F("经办人", format.Value(c.Operator)),
		view.F("所属部门", format.Value(c.DeptName)),
		view.F("商务经理", dictionary.LabelOfPtr(b.Operators, c.BusinessManager)),
		view.F("签订日期", format.Date(c.SignDate)),
		view.F("币种", labelOr(b.Currencies, c.CurrencyCode)),
		view.F("受载期", format.Date(c.StartLaycan)+" - "+format.Date(c.EndLaycan)),
		view.F("合同性质", labelOr(dictionary.ContractNatureOptions, c.ContractNature)),
		view.F("油耗范围", format.Value(c.FuelConsumptionRange)),
		view.F("交船地点", labelOr(b.Ports, c.DeliveryVesselPort)),
		view.F("还船地点", labelOr(b.Ports, c.RepayVesselPort)),
		view.F("航行区域", format.Value(c.SailingRegion)),
		view.F("租期时长", format.Value(c.CharterPeriodDuration)),
		view.F("航次类型/航线", format.Value(c.VoyageType)),
		view.F("油款收/支方式", format.Value(c.FuelMethod)),
		view.F("租金收/支方式", format.Value(c.LeaseAmountMethod)),
		view.F("额外费用收取", format.Value(c.ExtraChargesCollection)),
		view.F("其他注意事项", format.Value(c.OtherPrecautions)),
	}
}

// labelWith appends "(detail)" to the label when detail is present.
func labelWith(label, detail string) string {
	if detail == "" {
		return label
	}
	return label + "(" + detail + ")"
}

func tcRentalScheme(c *backend.ContractExternal) []view.Field {
	commission := func() string {
		kind := dictionary.LabelOf(dictionary.CustomerCommissionTypeOptions, c.CustomerCommissionType)
		amt := ""
		if c.CustomerCommissionAmt != nil {
			amt = format.Fixed(*c.CustomerCommissionAmt, 5)
		}
		switch {
		case kind != "" && amt != "":
			return kind + "/" + amt + "%"
		case kind != "":
			return kind
		case amt != "":
			return amt + "%"
		}
		return format.Placeholder
	}

	cycle := format.Placeholder
	if c.PaymentCycleNumber != nil {
		cycle = format.Fixed(*c.PaymentCycleNumber, 2) + " " + dictionary.LabelOf(dictionary.PaymentCycleTypeOptions, c.PaymentCycleType)
	}

	fuel := func(kind string, value *float64) string {
		detail := ""
		if value != nil {
			detail = format.Fixed(*value, 4)
		}
		return labelWith(dictionary.LabelOf(dictionary.FuelSpecificationOptions, kind), detail)
	}

	period := dictionary.LabelOf(dictionary.RepaymentPeriodOptions, c.PaymentPeriod)
	if c.PaymentPeriodDay != nil {
		period += "(" + format.Fixed(*c.PaymentPeriodDay, 4) + "天)"
	}

	return []view.Field{
		view.F("多航向", format.YesNo(c.IsMultipleRoutes)),
		view.F("客户/租家佣金(%)", commission()),
		view.F("结算周期", strings.TrimSpace(cycle)),
		view.F("重油油价", fuel(c.HeavyFuelType, c.HeavyFuelValue)),
		view.F("轻油油价", fuel(c.LightFuelType, c.LightFuelValue)),
		view.F("累计租金计算", format.YesNo(c.IsTotalHireAmount)),
		view.F("支付方式", dictionary.LabelOf(dictionary.PaymentTypeOptions, c.PaymentType)),
		view.F("回款账期", period),
		view.F("备注", format.Value(c.ContractRemark)),
	}
}

const (
	rentalTypeDaily = "0"
	rentalTypeIndex = "1"

	timeTypeDays  = "0"
	timeTypeDates = "1"
)

// timeRange renders a rental leg's time window: a day range ("第3天 - 第10天") or a
// date range.
func timeRange(info backend.ContractRouteInfo) string {
	switch info.TimeType {
	case timeTypeDays:
		if info.TimeRangeDay == "" {
			return format.Placeholder
		}
		days := strings.Split(info.TimeRangeDay, ",")
		if len(days) >= 2 {
			return fmt.Sprintf("第%s天 - 第%s天", days[0], days[1])
		}
		return fmt.Sprintf("第%s天", days[0])
	case timeTypeDates:
		return format.Date(info.TimeRangeStart) + " - " + format.Date(info.TimeRangeEnd)
	}
	return format.Placeholder
}

var routeInfoColumns = []view.Column[backend.ContractRouteInfo]{
	{Key: "rentalType", Label: "租金类型", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.ContractRouteInfo) string {
		return dictionary.LabelOf(dictionary.RentalTypeOptions, r.RentalType)
	}},
	{Key: "rentalNumber", Label: "日租金", Align: view.AlignRight, MinWidth: 100, Render: func(r backend.ContractRouteInfo) string {
		if r.RentalType != rentalTypeDaily {
			return format.Placeholder
		}
		return format.Amount(r.RentalNumber)
	}},
	{Key: "timeType", Label: "时间类型", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.ContractRouteInfo) string {
		return dictionary.LabelOf(dictionary.TimeTypeOptions, r.TimeType)
	}},
	{Key: "timeRange", Label: "时间范围", Align: view.AlignLeft, MinWidth: 200, Render: timeRange},
	{Key: "indexType", Label: "指数类型", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.ContractRouteInfo) string {
		if r.RentalType != rentalTypeIndex {
			return format.Placeholder
		}
		return format.Value(r.IndexType)
	}},
	{Key: "proportion", Label: "百分比（%）", Align: view.AlignRight, MinWidth: 100, Render: func(r backend.ContractRouteInfo) string {
		if r.RentalType != rentalTypeIndex {
			return format.Placeholder
		}
		return format.FixedPtr(r.Proportion, 5)
	}},
	{Key: "unloadRange", Label: "卸货范围", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.ContractRouteInfo) string {
		return format.Value(r.UnloadRange)
	}},
}

func brokerColumns(b *dictionary.Bundle) []view.Column[backend.ContractBroker] {
	return []view.Column[backend.ContractBroker]{
		{Key: "guestBusinessCode", Label: "经纪公司", Align: view.AlignLeft, MinWidth: 120, Render: func(r backend.ContractBroker) string {
			return labelOr(b.BusinessCodes, r.GuestBusinessCode)
		}},
		{Key: "brokerCommissionType", Label: "经纪佣金类型", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.ContractBroker) string {
			return dictionary.LabelOf(dictionary.BrokerCommissionTypeOptions, r.BrokerCommissionType)
		}},
		{Key: "brokerCommissionValue", Label: "经纪佣金(%)", Align: view.AlignRight, MinWidth: 100, Render: func(r backend.ContractBroker) string {
			return format.FixedPtr(r.BrokerCommissionValue, 4)
		}},
		{Key: "isClientSettlement", Label: "是否客户/租家代付", Align: view.AlignLeft, MinWidth: 120, Render: func(r backend.ContractBroker) string {
			return format.YesNo(r.IsClientSettlement)
		}},
	}
}

// paymentCycleTotal (合计) is charged as one sum and has no monthly split.
const paymentCycleTotal = "3"

func paymentColumns(b *dictionary.Bundle) []view.Column[backend.ContractPayment] {
	return []view.Column[backend.ContractPayment]{
		{Key: "expenseSubjectCode", Label: "费用科目", Align: view.AlignLeft, MinWidth: 120, Render: func(r backend.ContractPayment) string {
			return dictionary.ExpenseSubjectName(r.ExpenseSubjectCode, b.CategoryWithSubjectTree)
		}},
		{Key: "amount", Label: "金额", Align: view.AlignRight, MinWidth: 100, Render: func(r backend.ContractPayment) string {
			return format.Amount(r.Amount)
		}},
		{Key: "paymentCycle", Label: "支付周期", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.ContractPayment) string {
			return labelOr(dictionary.PaymentCycleOptions, r.PaymentCycle)
		}},
		{Key: "splitRule", Label: "（按月）拆分规则", Align: view.AlignLeft, MinWidth: 120, Render: func(r backend.ContractPayment) string {
			if r.PaymentCycle == paymentCycleTotal {
				return format.Placeholder
			}
			return labelOr(dictionary.SplitRuleOptions, r.SplitRule)
		}},
	}
}

func projectTCTCT(c *backend.ContractExternal, b *dictionary.Bundle, v *models.View) {
	v.Layout = models.LayoutTCTCT
	v.Fields = tcFields(c, b)
	v.RentalScheme = tcRentalScheme(c)

	v.Routes = make([]models.RouteTab, 0, len(c.Routes))
	for _, route := range c.Routes {
		v.Routes = append(v.Routes, models.RouteTab{
			Name:   route.VesselRouteName,
			Remark: route.Remark,
			Infos:  view.Render(routeInfoColumns, route.Infos),
		})
	}
	payments := view.Render(paymentColumns(b), c.Payments)
	v.Payments = &payments
	v.Brokers = view.Render(brokerColumns(b), c.Brokers)

	first := 0
	v.UI = models.UIState{
		ActiveCollapse: []string{"1", "2", "3", "4", "5"},
		ActiveRouteTab: &first,
		ViewedRoutes:   []int{first},
	}
}
