package service

import (
	"context"

	backend "charterdesk/internal/backend/models"
	"charterdesk/internal/dictionary"
	"charterdesk/internal/format"
	"charterdesk/internal/payment/models"
	"charterdesk/internal/platform/tracer"
	"charterdesk/internal/view"
)

// PaymentView loads a payment order and projects its page.
func (s *Service) PaymentView(ctx context.Context, id string) (_ *models.PaymentOrderView, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanPaymentView, tracer.String("payment.id", id))
	defer func() { span.End(err) }()

	order, bundle, err := load(ctx, s, func(ctx context.Context) (*backend.PaymentOrder, error) {
		return s.backend.PaymentDetail(ctx, id)
	})
	if err != nil {
		s.failed(ctx, "payment view failed", id, err)
		return nil, err
	}
	return ProjectPayment(order, bundle), nil
}

// ProjectPayment builds the payment order page.
func ProjectPayment(p *backend.PaymentOrder, b *dictionary.Bundle) *models.PaymentOrderView {
	status := 0
	if p.Status != nil {
		status = *p.Status
	}
	fees := view.Visible(feeColumns(b), paymentOrderColumnKeys)
	return &models.PaymentOrderView{
		ID:             p.ID,
		Code:           p.Code,
		PaymentNo:      format.Value(format.First(p.PaymentNo, p.Billno)),
		Status:         status,
		StatusInfo:     dictionary.VerificationStatuses.ByCode(status),
		Fields:         paymentFields(p, b),
		Bank:           bankFields(p),
		FeeDetails:     view.Render(fees, p.FeeDetails),
		BankReceipts:   view.Render(bankReceiptColumns, p.BankReceipts),
		ApprovalOrders: view.Render(approvalOrderColumns(b), p.ApprovalOrders),
		Attachments:    attachments(p.Attachments),
	}
}

func paymentFields(p *backend.PaymentOrder, b *dictionary.Bundle) []view.Field {
	return []view.Field{
		view.F("付款单号", format.First(p.PaymentNo, p.Billno)),
		view.F("付款类型", labelOr(dictionary.PayTypeOptions, p.PayType)),
		view.F("合同号", p.ContractNo),
		view.F("申请付款金额", format.Amount(p.ApplyAmt)),
		view.F("已预付金额", format.Amount(p.PrePaidAmount)),
		view.F("币种", labelOr(b.Currencies, p.Currency)),
		view.F("收款单位", labelOr(b.BusinessCodes, p.Payee)),
		view.F("收款单位国别", labelOr(b.Countries, p.PayeeCountry)),
		view.F("付款单位", labelOr(b.BusinessCodes, p.Payer)),
		view.F("付款账户", p.PayerBankAccount),
		view.F("付款事项", p.PayItem),
		view.F("结算方式", labelOr(dictionary.SettlementMethodOptions, p.SettleMethod)),
		view.F("最迟付款日期", format.Date(p.LatestPayDate)),
		view.F("支付成功时间", format.DateTime(p.PaySuccessTime)),
		view.F("是否急付", format.YesNo(p.UrgentFlag)),
		view.F("是否预付款", format.YesNo(p.PrepaymentFlag)),
		view.F("是否航次结算", format.YesNo(p.VoyageSettleFlag)),
		view.F("船名", labelOr(b.Ships, p.VesselCode, p.VesselName)),
		view.F("航次", labelOr(b.VoyageNos, p.VoyageCode)),
		view.F("港口", p.PortName),
		view.F("租金期数", p.RentalPeriod),
		view.F("备注", p.Remark),
		view.F("财务支付说明", p.FinanceDesc),
		view.F("驳回原因", p.RejectReason),
		view.F("撤回原因", p.WithdrawReason),
		view.F("创建时间", format.DateTime(p.CreateTime)),
	}
}

// bankFields lists the payee bank. The intermediate bank rows only appear when
// one is designated.
func bankFields(p *backend.PaymentOrder) []view.Field {
	fields := []view.Field{
		view.F("账户类型", p.AccountType),
		view.F("银行账户名称", p.BankAccountName),
		view.F("银行账号", p.BankAccount),
		view.F("开户银行", p.BankName),
		view.F("银行地址", p.BankAddress),
		view.F("SWIFT CODE", p.SwiftCode),
		view.F("汇款手续费承担方式", labelOr(dictionary.BankFeeTypeOptions, p.FeeBearType)),
		view.F("是否指定中间行", format.YesNo(p.IntermediateBankFlag)),
	}
	if p.IntermediateBankFlag != nil && *p.IntermediateBankFlag == 1 {
		fields = append(fields,
			view.F("中间行名称", p.IntermediateBankName),
			view.F("中间行SWIFT CODE", p.IntermediateSwiftCode),
		)
	}
	return fields
}

func attachments(files []backend.FileAttachment) []view.Attachment {
	out := make([]view.Attachment, 0, len(files))
	for _, f := range files {
		out = append(out, view.NewAttachment(f.FileName, f.FilePath, f.FileType))
	}
	return out
}
