// Package dashboard computes the aggregate statistics shown on the
// dashboard from the client and project collections.
package dashboard

import (
	"context"
	"sort"

	"github.com/praxisapp/praxis/internal/core/client"
	"github.com/praxisapp/praxis/internal/core/project"
	"golang.org/x/sync/errgroup"
)

// recentN is how many recently added entries each "recent" slice holds.
const recentN = 5

// ClientLister lists every client, satisfied by *client.Core.
type ClientLister interface {
	Query(ctx context.Context) ([]client.Client, error)
}

// ProjectLister lists every project, satisfied by *project.Core.
type ProjectLister interface {
	Query(ctx context.Context) ([]project.Project, error)
}

// Cache holds a short lived snapshot of computed stats. On a miss it
// runs compute and stores the result.
type Cache interface {
	Stats(ctx context.Context, compute func(context.Context) (Stats, error)) (Stats, error)
}

// Core deals with dashboard's business logic.
type Core struct {
	clients  ClientLister
	projects ProjectLister
	cache    Cache
}

// NewCore constructs a dashboard core. The cache may be nil, in which
// case every read computes from the stores.
func NewCore(clients ClientLister, projects ProjectLister, cache Cache) *Core {
	return &Core{
		clients:  clients,
		projects: projects,
		cache:    cache,
	}
}

// Stats returns the dashboard statistics, served from the cache when one
// is configured and fresh.
func (c *Core) Stats(ctx context.Context) (Stats, error) {
	if c.cache == nil {
		return c.compute(ctx)
	}
	return c.cache.Stats(ctx, c.compute)
}

func (c *Core) compute(ctx context.Context) (Stats, error) {
	var clients []client.Client
	var projects []project.Project

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = c.clients.Query(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = c.projects.Query(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	return Compute(clients, projects), nil
}

// Compute derives the dashboard statistics from the full collections.
// It is a pure function: same inputs, same output. Total revenue sums
// the budget of every project regardless of status, it is not the sum
// of collected invoice payments.
func Compute(clients []client.Client, projects []project.Project) Stats {
	s := Stats{
		TotalClients:   len(clients),
		RecentClients:  recent(clients, func(c client.Client) int64 { return c.JoinDate.UnixMicro() }),
		RecentProjects: recent(projects, func(p project.Project) int64 { return p.CreatedDate.UnixMicro() }),
	}

	for _, p := range projects {
		if p.Status == project.StatusActive {
			s.ActiveProjects++
		}
		s.TotalRevenue += p.Budget
	}

	return s
}

// recent returns the recentN entries with the highest key, descending.
// The sort is stable so equal keys keep their input order.
func recent[T any](list []T, key func(T) int64) []T {
	out := make([]T, len(list))
	copy(out, list)

	sort.SliceStable(out, func(i, j int) bool { return key(out[i]) > key(out[j]) })

	if len(out) > recentN {
		out = out[:recentN]
	}
	return out
}
