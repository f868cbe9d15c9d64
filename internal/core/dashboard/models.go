package dashboard

import (
	"github.com/praxisapp/praxis/internal/core/client"
	"github.com/praxisapp/praxis/internal/core/project"
)

// Stats is the aggregate snapshot served to the dashboard view.
type Stats struct {
	TotalClients   int
	ActiveProjects int
	TotalRevenue   float64
	RecentClients  []client.Client
	RecentProjects []project.Project
}
