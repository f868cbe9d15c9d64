package handlers

import (
	"encoding/json"
	"time"

	"github.com/praxisapp/praxis/internal/core/client"
	"github.com/praxisapp/praxis/internal/core/dashboard"
	"github.com/praxisapp/praxis/internal/core/invoice"
	"github.com/praxisapp/praxis/internal/core/money"
	"github.com/praxisapp/praxis/internal/core/project"
)

// FlexFloat accepts a JSON number or a numeric string. Anything that
// does not parse to a non-negative finite number degrades to 0, the
// form-input fail-soft policy. It never produces a decode error on its
// own; only malformed JSON fails the request.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(bs []byte) error {
	var v any
	if err := json.Unmarshal(bs, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case float64:
		*f = FlexFloat(money.Normalize(t))
	case string:
		*f = FlexFloat(money.Parse(t))
	default:
		*f = 0
	}

	return nil
}

type MessageResp struct {
	Message string `json:"message"`
}

// ----------------------------------------------------------------------
// Clients

type ClientReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type ClientUpdateReq struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

type ClientResp struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Company  string    `json:"company"`
	JoinDate time.Time `json:"join_date"`
}

func toClientResp(c client.Client) ClientResp {
	return ClientResp{
		ID:       c.ID.String(),
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Company:  c.Company,
		JoinDate: c.JoinDate,
	}
}

func toClientResps(cs []client.Client) []ClientResp {
	slice := make([]ClientResp, len(cs))
	for i, c := range cs {
		slice[i] = toClientResp(c)
	}
	return slice
}

// ----------------------------------------------------------------------
// Projects

type ProjectReq struct {
	Name        string    `json:"name"`
	Client      string    `json:"client"`
	Budget      FlexFloat `json:"budget"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
}

type ProjectUpdateReq struct {
	Name        *string    `json:"name"`
	Client      *string    `json:"client"`
	Budget      *FlexFloat `json:"budget"`
	StartDate   *string    `json:"start_date"`
	EndDate     *string    `json:"end_date"`
	Status      *string    `json:"status"`
	Description *string    `json:"description"`
}

type ProjectResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Client      string    `json:"client"`
	Budget      float64   `json:"budget"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date,omitempty"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedDate time.Time `json:"created_date"`
}

func toNewProject(req ProjectReq) project.NewProject {
	return project.NewProject{
		Name:        req.Name,
		Client:      req.Client,
		Budget:      float64(req.Budget),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      project.Status(req.Status),
		Description: req.Description,
	}
}

func toUpdateProject(req ProjectUpdateReq) project.UpdateProject {
	up := project.UpdateProject{
		Name:        req.Name,
		Client:      req.Client,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	if req.Budget != nil {
		b := float64(*req.Budget)
		up.Budget = &b
	}
	if req.Status != nil {
		st := project.Status(*req.Status)
		up.Status = &st
	}
	return up
}

func toProjectResp(p project.Project) ProjectResp {
	return ProjectResp{
		ID:          p.ID.String(),
		Name:        p.Name,
		Client:      p.Client,
		Budget:      p.Budget,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      string(p.Status),
		Description: p.Description,
		CreatedDate: p.CreatedDate,
	}
}

func toProjectResps(ps []project.Project) []ProjectResp {
	slice := make([]ProjectResp, len(ps))
	for i, p := range ps {
		slice[i] = toProjectResp(p)
	}
	return slice
}

// ----------------------------------------------------------------------
// Invoices

type InvoiceReq struct {
	Client      string    `json:"client"`
	Project     string    `json:"project"`
	Amount      FlexFloat `json:"amount"`
	Hours       FlexFloat `json:"hours"`
	Rate        FlexFloat `json:"rate"`
	DueDate     string    `json:"due_date"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
}

type InvoiceUpdateReq struct {
	Client      *string    `json:"client"`
	Project     *string    `json:"project"`
	Amount      *FlexFloat `json:"amount"`
	Hours       *FlexFloat `json:"hours"`
	Rate        *FlexFloat `json:"rate"`
	DueDate     *string    `json:"due_date"`
	Status      *string    `json:"status"`
	Description *string    `json:"description"`
}

type InvoiceResp struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	Client        string    `json:"client"`
	Project       string    `json:"project"`
	Amount        float64   `json:"amount"`
	Hours         float64   `json:"hours,omitempty"`
	Rate          float64   `json:"rate,omitempty"`
	DueDate       string    `json:"due_date"`
	Status        string    `json:"status"`
	Description   string    `json:"description,omitempty"`
	CreatedDate   time.Time `json:"created_date"`
}

func toNewInvoice(req InvoiceReq) invoice.NewInvoice {
	return invoice.NewInvoice{
		Client:      req.Client,
		Project:     req.Project,
		Amount:      float64(req.Amount),
		Hours:       float64(req.Hours),
		Rate:        float64(req.Rate),
		DueDate:     req.DueDate,
		Status:      invoice.Status(req.Status),
		Description: req.Description,
	}
}

func toUpdateInvoice(req InvoiceUpdateReq) invoice.UpdateInvoice {
	ui := invoice.UpdateInvoice{
		Client:      req.Client,
		Project:     req.Project,
		DueDate:     req.DueDate,
		Description: req.Description,
	}
	if req.Amount != nil {
		v := float64(*req.Amount)
		ui.Amount = &v
	}
	if req.Hours != nil {
		v := float64(*req.Hours)
		ui.Hours = &v
	}
	if req.Rate != nil {
		v := float64(*req.Rate)
		ui.Rate = &v
	}
	if req.Status != nil {
		st := invoice.Status(*req.Status)
		ui.Status = &st
	}
	return ui
}

func toInvoiceResp(inv invoice.Invoice) InvoiceResp {
	return InvoiceResp{
		ID:            inv.ID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		Client:        inv.Client,
		Project:       inv.Project,
		Amount:        inv.Amount,
		Hours:         inv.Hours,
		Rate:          inv.Rate,
		DueDate:       inv.DueDate,
		Status:        string(inv.Status),
		Description:   inv.Description,
		CreatedDate:   inv.CreatedDate,
	}
}

func toInvoiceResps(invs []invoice.Invoice) []InvoiceResp {
	slice := make([]InvoiceResp, len(invs))
	for i, inv := range invs {
		slice[i] = toInvoiceResp(inv)
	}
	return slice
}

// ----------------------------------------------------------------------
// Dashboard

type DashboardResp struct {
	TotalClients   int           `json:"total_clients"`
	ActiveProjects int           `json:"active_projects"`
	TotalRevenue   float64       `json:"total_revenue"`
	RecentClients  []ClientResp  `json:"recent_clients"`
	RecentProjects []ProjectResp `json:"recent_projects"`
}

func toDashboardResp(s dashboard.Stats) DashboardResp {
	return DashboardResp{
		TotalClients:   s.TotalClients,
		ActiveProjects: s.ActiveProjects,
		TotalRevenue:   s.TotalRevenue,
		RecentClients:  toClientResps(s.RecentClients),
		RecentProjects: toProjectResps(s.RecentProjects),
	}
}
