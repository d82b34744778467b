package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/etnz/cashcast"
	"github.com/etnz/cashcast/renderer"
	"github.com/google/subcommands"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

type serveCmd struct {
	simFlags
	addr  string
	every string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the forecast over HTTP, refreshing it on a schedule" }
func (*serveCmd) Usage() string {
	return `ccast serve [-addr <host:port>] [-every <cron spec>] [simulation flags]

  Simulates the event book and serves the result: / is the HTML report
  page, /report.json the raw document, /chart.svg the band chart. The
  forecast is recomputed on the given schedule so the day-0 anchor and the
  event book stay fresh.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	c.simFlags.SetFlags(f)
	f.StringVar(&c.addr, "addr", ":8087", "Listen address")
	f.StringVar(&c.every, "every", "@hourly", "Cron schedule for recomputing the forecast")
}

// forecastServer holds the latest report behind a lock; the cron job swaps
// it, the handlers read it.
type forecastServer struct {
	sim    *simFlags
	logger *logrus.Logger

	mu     sync.RWMutex
	report *cashcast.SimulationReport
}

func (s *forecastServer) refresh() {
	report, err := s.sim.simulate()
	if err != nil {
		s.logger.WithError(err).Error("simulation failed, keeping the previous forecast")
		return
	}
	s.mu.Lock()
	s.report = report
	s.mu.Unlock()
	s.logger.WithFields(logrus.Fields{
		"report": report.ID,
		"asOf":   report.Meta.AsOf.String(),
		"events": len(report.CashEvents),
	}).Info("forecast refreshed")
}

func (s *forecastServer) latest() *cashcast.SimulationReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

func (s *forecastServer) handlePage(w http.ResponseWriter, r *http.Request) {
	page, err := renderer.HTMLPage(s.latest())
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to render report: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}

func (s *forecastServer) handleJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := cashcast.EncodeReport(w, s.latest()); err != nil {
		s.logger.WithError(err).Error("failed to encode report")
	}
}

func (s *forecastServer) handleChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	fmt.Fprint(w, renderer.ChartSVG(s.latest()))
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	server := &forecastServer{sim: &c.simFlags, logger: logger}
	server.refresh()
	if server.latest() == nil {
		fmt.Fprintln(os.Stderr, "Error: could not compute an initial forecast")
		return subcommands.ExitFailure
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(c.every, server.refresh); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid schedule %q: %v\n", c.every, err)
		return subcommands.ExitUsageError
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := mux.NewRouter()
	r.HandleFunc("/", server.handlePage).Methods("GET")
	r.HandleFunc("/report.json", server.handleJSON).Methods("GET")
	r.HandleFunc("/chart.svg", server.handleChart).Methods("GET")

	httpServer := &http.Server{
		Addr:         c.addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Serving forecast on %s", c.addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Errorf("Server failed: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
