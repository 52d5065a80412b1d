package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"charterdesk/internal/backend/models"
	"charterdesk/internal/platform/tracer"
	dErrors "charterdesk/pkg/domain-errors"
	"charterdesk/pkg/requestcontext"
)

// Source fetches the raw lists behind the bundle. *backend.Client implements it.
type Source interface {
	GuestBusinesses(ctx context.Context, customerFullName string) ([]models.GuestBusiness, error)
	Employees(ctx context.Context) ([]models.Employee, error)
	Projects(ctx context.Context) ([]models.Project, error)
	ProjectGroups(ctx context.Context) ([]models.ProjectGroup, error)
	Vessels(ctx context.Context) ([]models.Vessel, error)
	Ports(ctx context.Context) ([]models.Port, error)
	Goods(ctx context.Context) ([]models.Goods, error)
	Orgs(ctx context.Context) ([]models.Org, error)
	Currencies(ctx context.Context) ([]models.Currency, error)
	CategoryTreeWithSubject(ctx context.Context) ([]models.TreeNode, error)
	VoyageNoConfigs(ctx context.Context) ([]models.VoyageNoConfig, error)
	StatisticsSubjects(ctx context.Context) ([]models.Subject, error)
	ExpenseCategories(ctx context.Context) ([]models.Category, error)
	VoyageNoConfigExts(ctx context.Context) ([]models.VoyageNoConfigExt, error)
	Countries(ctx context.Context) ([]models.Country, error)
}

const flightKey = "bundle"

// Cache loads the bundle once and keeps it for the life of the process. Concurrent
// callers during a load share one batch. A failed batch caches nothing and the next
// call starts over.
type Cache struct {
	source  Source
	tracer  tracer.Tracer
	metrics *Metrics
	logger  *slog.Logger
	now     func() time.Time

	flight singleflight.Group
	mu     sync.RWMutex
	bundle *Bundle
}

type CacheOption func(*Cache)

func WithTracer(t tracer.Tracer) CacheOption {
	return func(c *Cache) {
		c.tracer = t
	}
}

func WithMetrics(m *Metrics) CacheOption {
	return func(c *Cache) {
		c.metrics = m
	}
}

func WithLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		c.logger = logger
	}
}

func NewCache(source Source, opts ...CacheOption) *Cache {
	c := &Cache{
		source: source,
		tracer: tracer.NewNoop(),
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached bundle without triggering a load.
func (c *Cache) Get() (*Bundle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bundle, c.bundle != nil
}

// Loaded reports whether a batch has succeeded.
func (c *Cache) Loaded() bool {
	_, ok := c.Get()
	return ok
}

// Ensure returns the bundle, loading it on first use. The shared batch runs
// detached from the caller's cancellation so one caller giving up does not fail the
// others; a caller whose context ends stops waiting and gets a timeout error.
func (c *Cache) Ensure(ctx context.Context) (*Bundle, error) {
	if b, ok := c.Get(); ok {
		c.metrics.request("hit")
		return b, nil
	}

	ch := c.flight.DoChan(flightKey, func() (any, error) {
		if b, ok := c.Get(); ok {
			return b, nil
		}
		b, err := c.load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.bundle = b
		c.mu.Unlock()
		return b, nil
	})

	select {
	case <-ctx.Done():
		c.metrics.request("abandoned")
		return nil, dErrors.Wrap(ctx.Err(), dErrors.CodeTimeout, "dictionary load abandoned")
	case res := <-ch:
		if res.Err != nil {
			c.metrics.request("failed")
			return nil, res.Err
		}
		if res.Shared {
			c.metrics.request("shared")
		} else {
			c.metrics.request("loaded")
		}
		return res.Val.(*Bundle), nil
	}
}

func (c *Cache) load(ctx context.Context) (_ *Bundle, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanDictionaryLoad)
	start := c.now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "failed"
		}
		c.metrics.load(outcome, c.now().Sub(start).Seconds())
		span.End(err)
	}()

	var r raw
	g, gctx := errgroup.WithContext(ctx)
	s := c.source
	fetch(gctx, c, g, "business_codes", &r.guestBusinesses, func(ctx context.Context) ([]models.GuestBusiness, error) {
		return s.GuestBusinesses(ctx, "")
	})
	fetch(gctx, c, g, "operators", &r.employees, s.Employees)
	fetch(gctx, c, g, "projects", &r.projects, s.Projects)
	fetch(gctx, c, g, "project_groups", &r.projectGroups, s.ProjectGroups)
	fetch(gctx, c, g, "ships", &r.vessels, s.Vessels)
	fetch(gctx, c, g, "ports", &r.ports, s.Ports)
	fetch(gctx, c, g, "goods_types", &r.goods, s.Goods)
	fetch(gctx, c, g, "orgs", &r.orgs, s.Orgs)
	fetch(gctx, c, g, "currencies", &r.currencies, s.Currencies)
	fetch(gctx, c, g, "category_with_subject_tree", &r.categoryTree, s.CategoryTreeWithSubject)
	fetch(gctx, c, g, "voyage_nos", &r.voyageNos, s.VoyageNoConfigs)
	fetch(gctx, c, g, "subjects", &r.subjects, s.StatisticsSubjects)
	fetch(gctx, c, g, "expense_categories", &r.categories, s.ExpenseCategories)
	fetch(gctx, c, g, "external_voyage_nos", &r.extVoyageNos, s.VoyageNoConfigExts)
	fetch(gctx, c, g, "countries", &r.countries, s.Countries)

	if err := g.Wait(); err != nil {
		c.logger.ErrorContext(ctx, "dictionary load failed",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return nil, err
	}

	b := r.bundle()
	c.logger.InfoContext(ctx, "dictionary loaded",
		"duration_ms", c.now().Sub(start).Milliseconds(),
		"ships", len(b.Ships),
		"ports", len(b.Ports),
		"business_codes", len(b.BusinessCodes),
	)
	return b, nil
}

func fetch[T any](ctx context.Context, c *Cache, g *errgroup.Group, source string, dst *[]T, fn func(context.Context) ([]T, error)) {
	g.Go(func() error {
		ctx, span := c.tracer.Start(ctx, tracer.SpanDictionaryFetch, tracer.String(tracer.AttrSource, source))
		items, err := fn(ctx)
		span.End(err)
		if err != nil {
			c.metrics.fetchFailed(source)
			return fmt.Errorf("load %s: %w", source, err)
		}
		*dst = items
		return nil
	})
}
