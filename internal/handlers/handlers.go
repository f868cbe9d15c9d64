// Package handlers exposes the REST API consumed by the web frontend.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/praxisapp/praxis/internal/core/client"
	"github.com/praxisapp/praxis/internal/core/dashboard"
	"github.com/praxisapp/praxis/internal/core/invoice"
	"github.com/praxisapp/praxis/internal/core/project"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
)

func APIMux(s *Server, tracer trace.Tracer) *http.ServeMux {
	mid := func(h http.HandlerFunc) http.Handler {
		return middlewareWeb(tracer, middlewareMetrics(h))
	}

	mux := http.NewServeMux()

	mux.Handle("GET /api", mid(s.Root))
	mux.Handle("GET /api/dashboard", mid(s.Dashboard))

	mux.Handle("GET /api/clients", mid(s.ClientList))
	mux.Handle("POST /api/clients", mid(s.ClientCreate))
	mux.Handle("GET /api/clients/{id}", mid(s.ClientGet))
	mux.Handle("PUT /api/clients/{id}", mid(s.ClientUpdate))
	mux.Handle("DELETE /api/clients/{id}", mid(s.ClientDelete))

	mux.Handle("GET /api/projects", mid(s.ProjectList))
	mux.Handle("POST /api/projects", mid(s.ProjectCreate))
	mux.Handle("GET /api/projects/{id}", mid(s.ProjectGet))
	mux.Handle("PUT /api/projects/{id}", mid(s.ProjectUpdate))
	mux.Handle("DELETE /api/projects/{id}", mid(s.ProjectDelete))

	mux.Handle("GET /api/invoices", mid(s.InvoiceList))
	mux.Handle("POST /api/invoices", mid(s.InvoiceCreate))
	mux.Handle("GET /api/invoices/{id}", mid(s.InvoiceGet))
	mux.Handle("PUT /api/invoices/{id}", mid(s.InvoiceUpdate))
	mux.Handle("DELETE /api/invoices/{id}", mid(s.InvoiceDelete))

	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

type Server struct {
	log       *slog.Logger
	client    *client.Core
	project   *project.Core
	invoice   *invoice.Core
	dashboard *dashboard.Core
}

func NewServer(log *slog.Logger, c *client.Core, p *project.Core, i *invoice.Core, d *dashboard.Core) *Server {
	return &Server{
		log:       log,
		client:    c,
		project:   p,
		invoice:   i,
		dashboard: d,
	}
}

func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	serveJSON(w, r, s, func(ctx context.Context, _ struct{}) (MessageResp, error) {
		return MessageResp{Message: "Praxis API is running"}, nil
	})
}

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	serveJSON(w, r, s, func(ctx context.Context, _ struct{}) (DashboardResp, error) {
		stats, err := s.dashboard.Stats(ctx)
		if err != nil {
			return DashboardResp{}, err
		}
		return toDashboardResp(stats), nil
	})
}

// ----------------------------------------------------------------------
// Clients

func (s *Server) ClientList(w http.ResponseWriter, r *http.Request) {
	serveJSON(w, r, s, func(ctx context.Context, _ struct{}) ([]ClientResp, error) {
		cs, err := s.client.Query(ctx)
		if err != nil {
			return nil, err
		}
		return toClientResps(cs), nil
	})
}

func (s *Server) ClientCreate(w http.ResponseWriter, r *http.Request) {
	serveJSON(w, r, s, func(ctx context.Context, req ClientReq) (ClientResp, error) {
		c, err := s.client.Create(ctx, client.NewClient{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Company: req.Company,
		})
		if err != nil {
			return ClientResp{}, err
		}
		return toClientResp(c), nil
	})
}

func (s *Server) ClientGet(w http.ResponseWriter, r *http.Request) {
	serveJSONID(w, r, s, func(ctx context.Context, id uuid.UUID, _ struct{}) (ClientResp, error) {
		c, err := s.client.QueryByID(ctx, id)
		if err != nil {
			return ClientResp{}, err
		}
		return toClientResp(c), nil
	})
}

func (s *Server) ClientUpdate(w http.ResponseWriter, r *http.Request) {
	serveJSONID(w, r, s, func(ctx context.Context, id uuid.UUID, req ClientUpdateReq) (ClientResp, error) {
		c, err := s.client.Update(ctx, id, client.UpdateClient{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Company: req.Company,
		})
		if err != nil {
			return ClientResp{}, err
		}
		return toClientResp(c), nil
	})
}

func (s *Server) ClientDelete(w http.ResponseWriter, r *http.Request) {
	serveJSONID(w, r, s, func(ctx context.Context, id uuid.UUID, _ struct{}) (MessageResp, error) {
		if err := s.client.Delete(ctx, id); err != nil {
			return MessageResp{}, err
		}
		return MessageResp{Message: "Client deleted successfully"}, nil
	})
}

// ----------------------------------------------------------------------
// Projects

func (s *Server) ProjectList(w http.ResponseWriter, r *http.Request) {
	serveJSON(w, r, s, func(ctx context.Context, _ struct{}) ([]ProjectResp, error) {
		ps, err := s.project.Query(ctx)
		if err != nil {
			return nil, err
		}
		return toProjectResps(ps), nil
	})
}

func (s *Server) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	serveJSON(w, r, s, func(ctx context.Context, req ProjectReq) (ProjectResp, error) {
		p, err := s.project.Create(ctx, toNewProject(req))
		if err != nil {
			return ProjectResp{}, err
		}
		return toProjectResp(p), nil
	})
}

func (s *Server) ProjectGet(w http.ResponseWriter, r *http.Request) {
	serveJSONID(w, r, s, func(ctx context.Context, id uuid.UUID, _ struct{}) (ProjectResp, error) {
		p, err := s.project.QueryByID(ctx, id)
		if err != nil {
			return ProjectResp{}, err
		}
		return toProjectResp(p), nil
	})
}

func (s *Server) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	serveJSONID(w, r, s, func(ctx context.Context, id uuid.UUID, req ProjectUpdateReq) (ProjectResp, error) {
		p, err := s.project.Update(ctx, id, toUpdateProject(req))
		if err != nil {
			return ProjectResp{}, err
		}
		return toProjectResp(p), nil
	})
}

func (s *Server) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	serveJSONID(w, r, s, func(ctx context.Context, id uuid.UUID, _ struct{}) (MessageResp, error) {
		if err := s.project.Delete(ctx, id); err != nil {
			return MessageResp{}, err
		}
		return MessageResp{Message: "Project deleted successfully"}, nil
	})
}

// ----------------------------------------------------------------------
// Invoices

func (s *Server) InvoiceList(w http.ResponseWriter, r *http.Request) {
	serveJSON(w, r, s, func(ctx context.Context, _ struct{}) ([]InvoiceResp, error) {
		invs, err := s.invoice.Query(ctx)
		if err != nil {
			return nil, err
		}
		return toInvoiceResps(invs), nil
	})
}

func (s *Server) InvoiceCreate(w http.ResponseWriter, r *http.Request) {
	serveJSON(w, r, s, func(ctx context.Context, req InvoiceReq) (InvoiceResp, error) {
		inv, err := s.invoice.Create(ctx, toNewInvoice(req))
		if err != nil {
			return InvoiceResp{}, err
		}
		return toInvoiceResp(inv), nil
	})
}

func (s *Server) InvoiceGet(w http.ResponseWriter, r *http.Request) {
	serveJSONID(w, r, s, func(ctx context.Context, id uuid.UUID, _ struct{}) (InvoiceResp, error) {
		inv, err := s.invoice.QueryByID(ctx, id)
		if err != nil {
			return InvoiceResp{}, err
		}
		return toInvoiceResp(inv), nil
	})
}

func (s *Server) InvoiceUpdate(w http.ResponseWriter, r *http.Request) {
	serveJSONID(w, r, s, func(ctx context.Context, id uuid.UUID, req InvoiceUpdateReq) (InvoiceResp, error) {
		inv, err := s.invoice.Update(ctx, id, toUpdateInvoice(req))
		if err != nil {
			return InvoiceResp{}, err
		}
		return toInvoiceResp(inv), nil
	})
}

func (s *Server) InvoiceDelete(w http.ResponseWriter, r *http.Request) {
	serveJSONID(w, r, s, func(ctx context.Context, id uuid.UUID, _ struct{}) (MessageResp, error) {
		if err := s.invoice.Delete(ctx, id); err != nil {
			return MessageResp{}, err
		}
		return MessageResp{Message: "Invoice deleted successfully"}, nil
	})
}

// ----------------------------------------------------------------------

func serveJSON[Req any, Resp any](
	w http.ResponseWriter,
	r *http.Request,
	s *Server,
	fn func(ctx context.Context, req Req) (Resp, error),
) {
	var req Req
	if !decodeBody(w, r, s, &req) {
		return
	}

	resp, err := fn(r.Context(), req)
	if err != nil {
		respondError(w, s, err)
		return
	}

	respond(w, s, resp)
}

func serveJSONID[Req any, Resp any](
	w http.ResponseWriter,
	r *http.Request,
	s *Server,
	fn func(ctx context.Context, id uuid.UUID, req Req) (Resp, error),
) {
	var req Req
	if !decodeBody(w, r, s, &req) {
		return
	}

	// An id that is not a UUID cannot match any record.
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.log.Error("parse id", "ERROR", err)
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	resp, err := fn(r.Context(), id, req)
	if err != nil {
		respondError(w, s, err)
		return
	}

	respond(w, s, resp)
}

func decodeBody[Req any](w http.ResponseWriter, r *http.Request, s *Server, req *Req) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodDelete {
		return true
	}

	if r.Header.Get("Content-Type") != "application/json" {
		s.log.Error("request must be a json")
		http.Error(w, "request must be a json", http.StatusBadRequest)
		return false
	}

	err := json.NewDecoder(r.Body).Decode(req)
	r.Body.Close()
	if err != nil {
		s.log.Error("decoding json", "ERROR", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return false
	}

	return true
}

func respond(w http.ResponseWriter, s *Server, resp any) {
	bs, err := json.Marshal(resp)
	if err != nil {
		s.log.Error("failed to encode response", "ERROR", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(bs)
}

func respondError(w http.ResponseWriter, s *Server, err error) {
	s.log.Error("fn", "ERROR", err)
	switch {
	case errors.Is(err, client.ErrNotFound),
		errors.Is(err, project.ErrNotFound),
		errors.Is(err, invoice.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, client.ErrInvalidArgument),
		errors.Is(err, project.ErrInvalidArgument),
		errors.Is(err, invoice.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)

	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
