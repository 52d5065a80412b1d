package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	backend "charterdesk/internal/backend/models"
	"charterdesk/internal/contract/models"
	"charterdesk/internal/dictionary"
	"charterdesk/internal/format"
	"charterdesk/internal/platform/tracer"
	"charterdesk/internal/view"
	dErrors "charterdesk/pkg/domain-errors"
	"charterdesk/pkg/requestcontext"
)

// Dictionaries supplies the option bundle used for label lookups.
type Dictionaries interface {
	Ensure(ctx context.Context) (*dictionary.Bundle, error)
}

// Backend fetches contract and voyage records.
type Backend interface {
	Contract(ctx context.Context, id int64) (*backend.ContractExternal, error)
	VoyageByContractCode(ctx context.Context, contractCode string) (*backend.VoyageRef, error)
	ExternalVoyage(ctx context.Context, id int64) (*backend.ExternalVoyage, error)
}

type Service struct {
	dictionaries Dictionaries
	backend      Backend
	tracer       tracer.Tracer
	logger       *slog.Logger
}

type Option func(*Service)

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(dictionaries Dictionaries, backend Backend, opts ...Option) *Service {
	s := &Service{
		dictionaries: dictionaries,
		backend:      backend,
		tracer:       tracer.NewNoop(),
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// View loads the contract and the dictionaries side by side and projects the page.
func (s *Service) View(ctx context.Context, id int64) (_ *models.View, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanContractView, tracer.Int64("contract.id", id))
	defer func() { span.End(err) }()

	var (
		contract *backend.ContractExternal
		bundle   *dictionary.Bundle
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contract, err = s.backend.Contract(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		bundle, err = s.dictionaries.Ensure(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.WarnContext(ctx, "contract view failed",
			"contract_id", id,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, err
	}

	if contract.ContractType != nil {
		span.SetAttributes(tracer.Int(tracer.AttrContractType, *contract.ContractType))
	}
	return Project(contract, bundle), nil
}

// Project builds the page for a contract. Time charters (TC, TCT) get the rental
// layout; every other type, COA included, gets the freight layout.
func Project(c *backend.ContractExternal, b *dictionary.Bundle) *models.View {
	v := &models.View{
		ID:           c.ID,
		Code:         c.Code,
		ContractType: c.ContractType,
		Approval:     Approval(c),
		Attachments:  Attachments(c.Attachments),
	}
	if format.IsTCOrTCTContract(c.ContractType) {
		projectTCTCT(c, b, v)
	} else {
		projectVCFreight(c, b, v)
	}
	return v
}

// Approval builds the approval header. A nil contract yields placeholders and
// status 0.
func Approval(c *backend.ContractExternal) models.ApprovalInfo {
	if c == nil {
		return models.ApprovalInfo{
			Initiator:      format.Placeholder,
			DocumentType:   models.DocumentType,
			InitiationDate: format.Placeholder,
			Department:     format.Placeholder,
			ApplicationNo:  format.Placeholder,
			StatusInfo:     dictionary.ContractStatuses.ByCode(0),
		}
	}
	status := 0
	if c.ApprovalStatus != nil {
		status = *c.ApprovalStatus
	}
	return models.ApprovalInfo{
		Initiator:      format.Value(c.Operator),
		DocumentType:   models.DocumentType,
		InitiationDate: format.DateTime(c.CreateTime),
		Department:     format.Value(c.DeptName),
		ApplicationNo:  format.Value(c.ContractNo),
		Status:         status,
		StatusInfo:     dictionary.ContractStatuses.ByCode(status),
	}
}

func Attachments(files []backend.FileAttachment) []view.Attachment {
	out := make([]view.Attachment, 0, len(files))
	for _, f := range files {
		out = append(out, view.NewAttachment(f.FileName, f.FilePath, f.FileType))
	}
	return out
}

// Voyage resolves the execution voyage of a contract. Lookup failures are logged
// and reported as no voyage; an empty code is no voyage. A missing detail record
// leaves the fields of the contract-code lookup.
func (s *Service) Voyage(ctx context.Context, contractCode string, tcWithTCT bool) *models.Voyage {
	if contractCode == "" {
		return nil
	}
	ref, err := s.backend.VoyageByContractCode(ctx, contractCode)
	if err != nil {
		s.voyageFailed(ctx, contractCode, err)
		return nil
	}
	detail, err := s.backend.ExternalVoyage(ctx, ref.ID)
	switch {
	case dErrors.HasCode(err, dErrors.CodeNotFound):
		// no detail record: the contract-code lookup alone still names the voyage
		detail = &backend.ExternalVoyage{}
	case err != nil:
		s.voyageFailed(ctx, contractCode, err)
		return nil
	}
	return projectVoyage(ref, detail, tcWithTCT)
}

func (s *Service) voyageFailed(ctx context.Context, contractCode string, err error) {
	s.logger.WarnContext(ctx, "voyage lookup failed",
		"contract_code", contractCode,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
}

func projectVoyage(ref *backend.VoyageRef, d *backend.ExternalVoyage, tcWithTCT bool) *models.Voyage {
	v := &models.Voyage{
		ID:               ref.ID,
		VesselName:       format.First(d.VesselName, ref.VesselName),
		ExternalVoyageNo: format.First(d.ExternalVoyageNo, ref.ExternalVoyageNo),
		Code:             d.Code,
		VesselCode:       d.VesselCode,
		VoyageCode:       d.VoyageCode,
		VoyageStatus:     d.VoyageStatus,
		StartTime:        d.StartTime,
		EndTime:          d.EndTime,
		Remark:           d.Remark,
	}
	content := format.Value(v.VesselName) + " - " + format.Value(v.ExternalVoyageNo)
	v.Content = content
	v.Title = "航次：" + content

	if !tcWithTCT {
		return v
	}
	if dr := d.DeliveryReturn; dr != nil {
		v.DeliveryTime = format.Date(dr.DeliveryTime)
		v.ReturnTime = format.Date(dr.ReturnTime)
		v.DeliveryLocation = dr.DeliveryLocation
		v.ReturnLocation = dr.ReturnLocation
	}
	if o := d.ExternalOrder; o != nil {
		v.Order = &models.VoyageOrder{
			OrderNo:      o.OrderNo,
			ContractNo:   o.ContractNo,
			CustomerName: o.CustomerName,
			SignDate:     format.Date(o.SignDate),
			Amount:       o.Amount,
			CurrencyCode: o.CurrencyCode,
		}
	}
	return v
}
