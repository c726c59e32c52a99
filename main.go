package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/go-kit/kit/log"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	stdopentracing "github.com/opentracing/opentracing-go"
	stdzipkin "github.com/openzipkin/zipkin-go"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"

	"github.com/Qalifah/logistics/classify"
	"github.com/Qalifah/logistics/dispatch"
	"github.com/Qalifah/logistics/ledger"
	"github.com/Qalifah/logistics/ledger/inmem"
	"github.com/Qalifah/logistics/ledger/sqlitestore"
)

type config struct {
	Addr      string `env:"ADDR" envDefault:":8080"`
	ZipkinURL string `env:"ZIPKIN_URL"`
	LedgerDSN string `env:"LEDGER_DSN"`
}

func main() {
	var logger log.Logger
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	if err := godotenv.Load(); err != nil {
		logger.Log("msg", "no .env file found, using environment")
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}

	// The ledger lives in memory unless a SQLite path is configured.
	var entries ledger.Repository
	if cfg.LedgerDSN != "" {
		store, err := sqlitestore.Open(cfg.LedgerDSN)
		if err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		defer store.Close()
		entries = store
	} else {
		entries = inmem.NewLedgerRepository()
	}

	fieldKeys := []string{"method"}

	var ds dispatch.Service
	ds = dispatch.NewService(classify.New(), entries)
	ds = dispatch.NewLoggingService(log.With(logger, "component", "dispatch", "session", dispatch.NextSessionID()), ds)
	ds = dispatch.NewInstrumentingService(
		kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: "logistics",
			Subsystem: "dispatch",
			Name:      "request_count",
			Help:      "Number of requests received.",
		}, fieldKeys),
		kitprometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
			Namespace: "logistics",
			Subsystem: "dispatch",
			Name:      "request_latency_seconds",
			Help:      "Total duration of requests in seconds.",
		}, fieldKeys),
		ds,
	)

	otTracer := stdopentracing.GlobalTracer()
	var zipkinTracer *stdzipkin.Tracer
	if cfg.ZipkinURL != "" {
		reporter := zipkinhttp.NewReporter(cfg.ZipkinURL)
		defer reporter.Close()

		hostPort := cfg.Addr
		if strings.HasPrefix(hostPort, ":") {
			hostPort = "localhost" + hostPort
		}
		zEP, err := stdzipkin.NewEndpoint("logistics", hostPort)
		if err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		zipkinTracer, err = stdzipkin.NewTracer(reporter, stdzipkin.WithLocalEndpoint(zEP))
		if err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
	}

	endpoints := dispatch.NewSet(ds, otTracer, zipkinTracer)

	mux := http.NewServeMux()
	mux.Handle("/dispatch/v1/", dispatch.MakeHandler(endpoints, log.With(logger, "component", "http")))
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errs := make(chan error, 2)
	go func() {
		logger.Log("transport", "http", "addr", cfg.Addr, "msg", "listening")
		errs <- srv.ListenAndServe()
	}()
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	logger.Log("terminated", <-errs)
}
