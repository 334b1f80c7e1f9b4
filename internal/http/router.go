package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/handlers"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/http/metrics"
	httpmw "github.com/Sumukwo12/recruitment-portal-sub000/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler        *handlers.AuthHandler
	JobHandler         *handlers.JobHandler
	QuestionHandler    *handlers.QuestionHandler
	ApplicationHandler *handlers.ApplicationHandler
	AdminApplications  *handlers.AdminApplicationHandler
	NotifyHandler      *handlers.NotifyHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	MetricsHandler     *metrics.Handler
	Metrics            *metrics.Collector
	Logger             *slog.Logger
	RequestTimeout     time.Duration
	MaxBodyBytes       int64
}

type Router struct {
	deps RouterDependencies
}

func NewRouter(deps RouterDependencies) http.Handler {
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = 1 << 20
	}
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.BodyLimit(r.deps.MaxBodyBytes),
		httpmw.Recover(r.deps.Logger),
		httpmw.Metrics(r.deps.Metrics),
		httpmw.Timeout(r.deps.RequestTimeout),
	)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/admin/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.JobHandler.ListPublic(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/"):
			r.deps.JobHandler.GetPublic(w, req)
			return
		case req.Method == http.MethodPost && path == "/applications":
			r.deps.ApplicationHandler.Submit(w, req)
			return
		case req.Method == http.MethodPut && strings.HasPrefix(path, "/applications/draft/"):
			r.deps.ApplicationHandler.SaveDraft(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/applications/draft/"):
			r.deps.ApplicationHandler.GetDraft(w, req)
			return
		}

		if strings.HasPrefix(path, "/admin/") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleAdmin(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleAdmin(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	segments := strings.Split(strings.Trim(path, "/"), "/")

	switch {
	case req.Method == http.MethodGet && path == "/admin/jobs":
		r.deps.JobHandler.ListAdmin(w, req)
		return
	case req.Method == http.MethodPost && path == "/admin/jobs":
		r.deps.JobHandler.Create(w, req)
		return
	case req.Method == http.MethodPost && path == "/admin/questions/preview":
		r.deps.QuestionHandler.Preview(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/questions/templates":
		r.deps.QuestionHandler.Templates(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/applications":
		r.deps.AdminApplications.List(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/applications/export":
		r.deps.AdminApplications.Export(w, req)
		return
	}

	if len(segments) >= 3 && segments[1] == "jobs" {
		switch {
		case len(segments) == 3 && req.Method == http.MethodGet:
			r.deps.JobHandler.Get(w, req)
			return
		case len(segments) == 3 && req.Method == http.MethodPatch:
			r.deps.JobHandler.Update(w, req)
			return
		case len(segments) == 3 && req.Method == http.MethodDelete:
			r.deps.JobHandler.Delete(w, req)
			return
		case len(segments) == 4 && segments[3] == "status" && req.Method == http.MethodPatch:
			r.deps.JobHandler.UpdateStatus(w, req)
			return
		case len(segments) == 4 && segments[3] == "deadline" && req.Method == http.MethodPatch:
			r.deps.JobHandler.ExtendDeadline(w, req)
			return
		case len(segments) == 4 && segments[3] == "questions" && req.Method == http.MethodGet:
			r.deps.QuestionHandler.List(w, req)
			return
		case len(segments) == 4 && segments[3] == "questions" && req.Method == http.MethodPut:
			r.deps.QuestionHandler.Replace(w, req)
			return
		case len(segments) == 4 && segments[3] == "notify" && req.Method == http.MethodPost:
			r.deps.NotifyHandler.Send(w, req)
			return
		}
	}

	if len(segments) >= 3 && segments[1] == "applications" {
		switch {
		case len(segments) == 3 && req.Method == http.MethodGet:
			r.deps.AdminApplications.Get(w, req)
			return
		case len(segments) == 4 && segments[3] == "status" && req.Method == http.MethodPatch:
			r.deps.AdminApplications.UpdateStatus(w, req)
			return
		case len(segments) == 4 && segments[3] == "emails" && req.Method == http.MethodGet:
			r.deps.AdminApplications.EmailHistory(w, req)
			return
		}
	}

	http.NotFound(w, req)
}
