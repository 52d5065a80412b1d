package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	backend "charterdesk/internal/backend/models"
	"charterdesk/internal/dictionary"
	"charterdesk/internal/platform/tracer"
	"charterdesk/pkg/requestcontext"
)

// Dictionaries supplies the option bundle used for label lookups.
type Dictionaries interface {
	Ensure(ctx context.Context) (*dictionary.Bundle, error)
}

// Backend fetches payment order and verification records.
type Backend interface {
	PaymentDetail(ctx context.Context, id string) (*backend.PaymentOrder, error)
	VerificationDetail(ctx context.Context, id string) (*backend.ReceiptOffset, error)
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

// load fetches a document and the dictionaries concurrently.
func load[T any](ctx context.Context, s *Service, fetch func(context.Context) (*T, error)) (*T, *dictionary.Bundle, error) {
	var (
		doc    *T
		bundle *dictionary.Bundle
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc, err = fetch(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bundle, err = s.dictionaries.Ensure(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return doc, bundle, nil
}

func (s *Service) failed(ctx context.Context, msg, id string, err error) {
	s.logger.WarnContext(ctx, msg,
		"document_id", id,
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
}
