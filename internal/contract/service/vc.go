package service

import (
	"strings"

	backend "charterdesk/internal/backend/models"
	"charterdesk/internal/contract/models"
	"charterdesk/internal/dictionary"
	"charterdesk/internal/format"
	"charterdesk/internal/view"
)

func vcFields(c *backend.ContractExternal, b *dictionary.Bundle) []view.Field {
	guests := b.BusinessCodes
	return []view.Field{
		view.F("合同号", format.Value(c.ContractNo)),
		view.F("经营模式", dictionary.LabelOfPtr(dictionary.BusinessModeOptions, c.BusinessMode)),
		view.F("合同类型", dictionary.LabelOfPtr(dictionary.ContractTypeOptions, c.ContractType)),
		view.F("租赁方向", dictionary.LabelOfPtr(dictionary.LeaseTypeOptions, c.LeaseType)),
		view.F("签约主体", dictionary.LabelOf(guests, c.OurSigningUnit)),
		view.F("结算单位我方", dictionary.LabelOf(guests, c.OurSettlementUnit)),
		view.F("客户/租家", dictionary.LabelOf(guests, c.OppositeSigningUnit)),
		view.F("结算单位对方", dictionary.LabelOf(guests, c.OppositeSettlementUnit)),
		view.F("经办人", format.Value(c.Operator)),
		view.F("所属部门", format.Value(c.DeptName)),
		view.F("商务经理", dictionary.LabelOfPtr(b.Operators, c.BusinessManager)),
		view.F("船名", dictionary.LabelOf(b.Ships, c.VesselCode)),
		view.F("航次号", format.Value(c.VoyageNo)),
		view.F("船东", dictionary.LabelOf(guests, c.GuestBusinessCode)),
		view.F("合同性质", dictionary.LabelOf(dictionary.ContractNatureOptions, c.ContractNature)),
		view.F("币种", dictionary.LabelOf(b.Currencies, c.CurrencyCode)),
		view.F("签订日期", format.Date(c.SignDate)),
		view.F("预收付比例", format.Percent(c.AdvancePaymentRatio)),
		view.F("受载期", format.Value(c.Laycan)),
		view.F("滞期速遣条款", format.Value(c.DispatchClause)),
		view.F("备注", format.Value(c.ContractRemark)),
	}
}

// present reports a set, non-zero number.
func present(v *float64) bool {
	return v != nil && *v != 0
}

func vcFreightFields(c *backend.ContractExternal) []view.Field {
	commission := dictionary.LabelOf(dictionary.CustomerCommissionTypeOptions, c.CustomerCommissionType)
	if present(c.CustomerCommissionAmt) {
		commission += "/" + format.JSNumber(*c.CustomerCommissionAmt) + "%"
	}

	fuel := func(kind string, value *float64) string {
		detail := ""
		if present(value) {
			detail = format.JSNumber(*value)
		}
		return labelWith(dictionary.LabelOf(dictionary.FuelSpecificationOptions, kind), detail)
	}

	period := dictionary.LabelOf(dictionary.RepaymentPeriodOptions, c.PaymentPeriod)
	if present(c.PaymentPeriodDay) {
		period += " (" + format.JSNumber(*c.PaymentPeriodDay) + "天)"
	}

	return []view.Field{
		view.F("租家佣金(%)", commission),
		view.F("支付方式", dictionary.LabelOf(dictionary.PaymentTypeOptions, c.PaymentType)),
		view.F("货量范围", labelWith(dictionary.LabelOf(dictionary.CargoRangeTypeOptions, c.CargoRangeType), c.CargoRangeValue)),
		view.F("重油油价", fuel(c.HeavyFuelType, c.HeavyFuelValue)),
		view.F("轻油油价", fuel(c.LightFuelType, c.LightFuelValue)),
		view.F("油耗范围", format.Value(c.FuelConsumptionRange)),
		view.F("回款账期", strings.TrimSpace(period)),
	}
}

func freightColumns(b *dictionary.Bundle) []view.Column[backend.ContractFreight] {
	port := func(code, name string) string {
		return format.Value(format.First(dictionary.LabelOf(b.Ports, code), name))
	}
	return []view.Column[backend.ContractFreight]{
		{Key: "freightCategory", Label: "运价类别", Align: view.AlignLeft, MinWidth: 80, Render: func(r backend.ContractFreight) string {
			return dictionary.LabelOf(dictionary.FreightRateModelOptions, r.FreightCategory)
		}},
		{Key: "goodsCode", Label: "货物", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.ContractFreight) string {
			return labelOr(b.GoodsTypes, r.GoodsCode)
		}},
		{Key: "goodsNumber", Label: "数量", Align: view.AlignRight, MinWidth: 80, Render: func(r backend.ContractFreight) string {
			return format.FixedPtr(r.GoodsNumber, 3)
		}},
		{Key: "unit", Label: "单位", Align: view.AlignLeft, MinWidth: 60, Render: func(r backend.ContractFreight) string {
			return dictionary.LabelOf(dictionary.UnitOptions, r.Unit)
		}},
		{Key: "loadingPort", Label: "装港", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.ContractFreight) string {
			return port(r.LoadingPort, r.LoadingPortName)
		}},
		{Key: "unloadingPort", Label: "卸港", Align: view.AlignLeft, MinWidth: 100, Render: func(r backend.ContractFreight) string {
			return port(r.UnloadingPort, r.UnloadingPortName)
		}},
		{Key: "freightNumber", Label: "运价", Align: view.AlignRight, MinWidth: 80, Render: func(r backend.ContractFreight) string {
			return format.FixedPtr(r.FreightNumber, 2)
		}},
		{Key: "shippingTerms", Label: "装运条款", Align: view.AlignLeft, MinWidth: 80, Render: func(r backend.ContractFreight) string {
			return dictionary.LabelOf(dictionary.ShippingTermsOptions, r.ShippingTerms)
		}},
		{Key: "advancePaymentRatio", Label: "运费预收付比例(%)", Align: view.AlignRight, MinWidth: 120, Render: func(r backend.ContractFreight) string {
			return format.FixedPtr(r.AdvancePaymentRatio, 5)
		}},
		{Key: "freightTotalNumber", Label: "运价小计", Align: view.AlignRight, MinWidth: 100, Render: func(r backend.ContractFreight) string {
			return format.FixedPtr(r.FreightTotalNumber, 2)
		}},
	}
}

func projectVCFreight(c *backend.ContractExternal, b *dictionary.Bundle, v *models.View) {
	v.Layout = models.LayoutVCFreight
	v.Fields = vcFields(c, b)
	v.Freight = vcFreightFields(c)
	freight := view.Render(freightColumns(b), c.Freights)
	v.FreightInfos = &freight
	v.Brokers = view.Render(brokerColumns(b), c.Brokers)
	v.UI = models.UIState{ActiveCollapse: []string{"1", "2", "3", "4"}}
}
