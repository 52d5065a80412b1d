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

// VerificationView loads a verification application and projects its page.
func (s *Service) VerificationView(ctx context.Context, id string) (_ *models.VerificationView, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanVerificationView, tracer.String("verification.id", id))
	defer func() { span.End(err) }()

	offset, bundle, err := load(ctx, s, func(ctx context.Context) (*backend.ReceiptOffset, error) {
		return s.backend.VerificationDetail(ctx, id)
	})
	if err != nil {
		s.failed(ctx, "verification view failed", id, err)
		return nil, err
	}
	if offset.VerificationType != nil {
		span.SetAttributes(tracer.Int(tracer.AttrVerifyType, *offset.VerificationType))
	}
	return ProjectVerification(offset, bundle), nil
}

// ProjectVerification builds the verification page. The fee table shows only the
// columns of the verification type.
func ProjectVerification(o *backend.ReceiptOffset, b *dictionary.Bundle) *models.VerificationView {
	status := 0
	if o.Status != nil {
		status = *o.Status
	}
	fees := view.Visible(feeColumns(b), VerificationColumnKeys(o.VerificationType))
	return &models.VerificationView{
		ID:               o.ID,
		Code:             o.Code,
		OffsetNo:         format.Value(o.OffsetNo),
		VerificationType: o.VerificationType,
		Status:           status,
		StatusInfo:       dictionary.VerificationStatuses.ByCode(status),
		Fields:           verificationFields(o, b),
		FeeDetails:       view.Render(fees, o.FeeDetails),
		BankReceipts:     view.Render(bankReceiptColumns, o.BankReceipts),
		Attachments:      attachments(o.Attachments),
	}
}

func verificationFields(o *backend.ReceiptOffset, b *dictionary.Bundle) []view.Field {
	return []view.Field{
		view.F("核销单号", o.OffsetNo),
		view.F("核销类型", dictionary.LabelOfPtr(dictionary.VerificationTypeOptions, o.VerificationType)),
		view.F("款项性质", labelOr(dictionary.BizItemTypeOptions, o.BizItemType)),
		view.F("结算方式", labelOr(dictionary.SettlementMethodOptions, o.SettleMethod)),
		view.F("付款单位", labelOr(b.BusinessCodes, o.Payer)),
		view.F("收款单位", labelOr(b.BusinessCodes, o.Payee)),
		view.F("收款金额", format.Amount(o.ReceiptAmt)),
		view.F("核销金额", format.Amount(o.OffsetAmt)),
		view.F("币种", labelOr(b.Currencies, o.CurrencyCode)),
		view.F("银行流水号", o.BankFlowNo),
		view.F("收款日期", format.Date(o.ReceiptDate)),
		view.F("申请人", o.ApplicantName),
		view.F("所属部门", o.DeptName),
		view.F("备注", o.Remark),
		view.F("创建时间", format.DateTime(o.CreateTime)),
	}
}
