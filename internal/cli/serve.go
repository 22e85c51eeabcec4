package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-forminput/pkg/preview"
)

const defaultAddr = ":8080"

func (a *app) serveCommand() *cobra.Command {
	var (
		addr      string
		scenarios string
		sanitize  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scenario previews and on-demand fragments over HTTP.",
		Long: "serve exposes GET / (scenario preview page), GET /scenarios/{name}, " +
			"GET /render (fragment from query parameters) and GET /healthz. " +
			"The listen address defaults to $FORMINPUT_ADDR or " + defaultAddr + ".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var doc *preview.Document
			if scenarios != "" {
				loaded, err := preview.LoadFile(scenarios)
				if err != nil {
					return err
				}
				doc = &loaded
			}

			page, err := preview.NewPage(preview.WithSanitize(sanitize))
			if err != nil {
				return err
			}

			if addr == "" {
				addr = os.Getenv("FORMINPUT_ADDR")
			}
			if addr == "" {
				addr = defaultAddr
			}
			return a.listen(cmd.Context(), addr, newServer(page, doc, a.logger))
		},
	}

	f := cmd.Flags()
	f.StringVar(&addr, "addr", "", "listen address")
	f.StringVar(&scenarios, "scenarios", "", "scenario YAML file served at /")
	f.BoolVar(&sanitize, "sanitize", false, "strip inline handlers and unknown attributes")
	return cmd
}

func (a *app) listen(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		a.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type server struct {
	page   *preview.Page
	doc    *preview.Document
	logger *log.Logger
}

func newServer(page *preview.Page, doc *preview.Document, logger *log.Logger) http.Handler {
	s := &server{page: page, doc: doc, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Get("/scenarios/{name}", s.handleScenario)
	r.Get("/render", s.handleRender)
	return r
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.doc == nil {
		http.Error(w, "no scenarios loaded", http.StatusNotFound)
		return
	}
	out, err := s.page.Render(r.Context(), *s.doc)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.write(w, out)
}

func (s *server) handleScenario(w http.ResponseWriter, r *http.Request) {
	if s.doc == nil {
		http.NotFound(w, r)
		return
	}
	scenario, ok := s.doc.Scenario(chi.URLParam(r, "name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	markup, err := s.page.Fragment(scenario)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.write(w, []byte(markup))
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	props, err := propsFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	markup, err := s.page.FragmentProps(props)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.write(w, []byte(markup))
}

func (s *server) write(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", s.page.ContentType())
	if _, err := w.Write(body); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}

func (s *server) fail(w http.ResponseWriter, err error) {
	s.logger.Error("render failed", "err", err)
	http.Error(w, "render failed", http.StatusInternalServerError)
}
