package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/astrowheel/astrowheel/pkg/cache"
	"github.com/astrowheel/astrowheel/pkg/observability"
	"github.com/astrowheel/astrowheel/pkg/pipeline"
	"github.com/astrowheel/astrowheel/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr          string // listen address
	theme         string // default render theme
	redisAddr     string // Redis cache backend, empty for a local file cache
	redisPassword string
	redisDB       int
	dataDir       string // file store directory, empty for the XDG default
	mongoURI      string // Mongo store backend, empty for the file store
	mongoDB       string
	mongoColl     string
	noCache       bool
}

// serveCommand creates the serve command running the HTTP rendering service.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      ":8080",
		theme:     pipeline.DefaultTheme,
		mongoDB:   appName,
		mongoColl: "charts",
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering and chart storage service",
		Long: `Serve runs an HTTP service that renders chart documents on demand and
stores the results for later retrieval.

Endpoints:
  POST /api/render       render a chart document, store it, return the SVG
  GET  /api/charts       list stored chart IDs
  GET  /api/charts/{id}  fetch a stored chart document
  DELETE /api/charts/{id}
  GET  /healthz

Artifacts are cached in Redis when --redis is set, otherwise in the local
file cache. Charts are stored in MongoDB when --mongo-uri is set, otherwise
on the local filesystem.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.theme, "theme", opts.theme, "default render theme")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the artifact cache (host:port)")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
	cmd.Flags().StringVar(&opts.dataDir, "data-dir", "", "chart storage directory (default ~/.local/share/astrowheel/charts)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB connection URI for chart storage")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "MongoDB database name")
	cmd.Flags().StringVar(&opts.mongoColl, "mongo-collection", opts.mongoColl, "MongoDB collection name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runServe wires the cache and store backends and runs the HTTP server until
// the context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	artifactCache, err := c.newServeCache(opts)
	if err != nil {
		return err
	}

	chartStore, err := c.newServeStore(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := chartStore.Close(context.Background()); err != nil {
			c.Logger.Warn("closing chart store", "err", err)
		}
	}()

	srv := &chartServer{
		runner: pipeline.NewRunner(artifactCache, nil, c.Logger),
		store:  chartStore,
		logger: c.Logger,
		theme:  opts.theme,
	}
	defer srv.runner.Close()

	httpSrv := &http.Server{
		Addr:              opts.addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newServeCache builds the artifact cache backend from flags.
func (c *CLI) newServeCache(opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		c.Logger.Info("using Redis artifact cache", "addr", opts.redisAddr)
		return cache.NewRedisCache(opts.redisAddr, opts.redisPassword, opts.redisDB), nil
	}
	return newCache(false)
}

// newServeStore builds the chart store backend from flags.
func (c *CLI) newServeStore(ctx context.Context, opts *serveOpts) (store.ChartStore, error) {
	if opts.mongoURI != "" {
		spin := newSpinnerWithContext(ctx, "connecting to MongoDB")
		spin.Start()
		st, err := store.NewMongoStore(ctx, opts.mongoURI, opts.mongoDB, opts.mongoColl)
		if err != nil {
			spin.StopWithError("MongoDB connection failed")
			return nil, err
		}
		spin.StopWithSuccess(fmt.Sprintf("Connected to MongoDB (%s/%s)", opts.mongoDB, opts.mongoColl))
		return st, nil
	}
	dir := opts.dataDir
	if dir == "" {
		var err error
		if dir, err = dataDir(); err != nil {
			return nil, err
		}
	}
	c.Logger.Info("using file chart store", "dir", dir)
	return store.NewFileStore(dir)
}

// chartServer handles the HTTP API.
type chartServer struct {
	runner *pipeline.Runner
	store  store.ChartStore
	logger *log.Logger
	theme  string
}

// routes builds the chi router with middleware and all endpoints.
func (s *chartServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Get("/charts", s.handleListCharts)
		r.Get("/charts/{id}", s.handleGetChart)
		r.Delete("/charts/{id}", s.handleDeleteChart)
	})

	return r
}

// requestLogger logs one line per request with the chi request ID.
func (s *chartServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond),
			"id", middleware.GetReqID(r.Context()))
	})
}

// renderResponse is the POST /api/render response body.
type renderResponse struct {
	ID  string `json:"id"`
	SVG string `json:"svg"`
}

// errorResponse is the error body for all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// handleHealth reports service liveness.
func (s *chartServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRender renders the posted chart document, stores the result, and
// returns the chart ID with the SVG. Render options come from query
// parameters: theme, minify, wheel_only, grid_only.
func (s *chartServer) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 4<<20))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
		return
	}

	q := r.URL.Query()
	theme := q.Get("theme")
	if theme == "" {
		theme = s.theme
	}

	opts := pipeline.Options{
		ChartJSON: string(body),
		Formats:   []string{pipeline.FormatSVG},
		Theme:     theme,
		Minify:    q.Get("minify") == "true",
		WheelOnly: q.Get("wheel_only") == "true",
		GridOnly:  q.Get("grid_only") == "true",
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	svg := string(result.Artifacts[pipeline.FormatSVG])
	doc := store.NewDocument(result.Chart)
	doc.SVG = svg
	doc.Theme = theme

	if err := s.store.Put(r.Context(), doc); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "store chart"})
		s.logger.Error("store chart", "id", doc.ID, "err", err)
		return
	}
	observability.Store().OnPut(r.Context(), doc.ID, len(svg))

	writeJSON(w, http.StatusCreated, renderResponse{ID: doc.ID, SVG: svg})
}

// handleListCharts returns the IDs of all stored charts.
func (s *chartServer) handleListCharts(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "list charts"})
		s.logger.Error("list charts", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"ids": ids})
}

// handleGetChart returns a stored chart document by ID.
func (s *chartServer) handleGetChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := s.store.Get(r.Context(), id)
	observability.Store().OnGet(r.Context(), id, err == nil)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("chart %s not found", id)})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "get chart"})
		s.logger.Error("get chart", "id", id, "err", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handleDeleteChart removes a stored chart document by ID.
func (s *chartServer) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := s.store.Delete(r.Context(), id)
	observability.Store().OnDelete(r.Context(), id, err)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("chart %s not found", id)})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "delete chart"})
		s.logger.Error("delete chart", "id", id, "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
