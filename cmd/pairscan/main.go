// cmd/pairscan walks two aligned daily price series through the admission
// filter bar by bar, logging each decision and optionally publishing the
// snapshot/decision streams to Redis for the dashboard gateway.
//
// Usage:
//
//	go run ./cmd/pairscan --a=A2ZINFRA --b=AARTIIND --csv=data/pair.csv
//	go run ./cmd/pairscan --a=A2ZINFRA --b=AARTIIND --lookback=120 --eval=eval.yaml
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"pairs-enginev1/config"
	"pairs-enginev1/internal/filter"
	"pairs-enginev1/internal/logger"
	"pairs-enginev1/internal/metrics"
	"pairs-enginev1/internal/model"
	"pairs-enginev1/internal/publish"
	"pairs-enginev1/internal/ringbuf"
	sqlitestore "pairs-enginev1/internal/store/sqlite"
)

func main() {
	symbolA := flag.String("a", "", "Symbol of the A leg (numerator)")
	symbolB := flag.String("b", "", "Symbol of the B leg (denominator)")
	csvPath := flag.String("csv", "", "CSV bar source: ts,close_a,close_b (overrides sqlite)")
	evalPath := flag.String("eval", "", "YAML evaluation config (defaults when empty)")
	lookback := flag.Int("lookback", 120, "Trailing window length in bars (0 = expanding)")
	flag.Parse()

	if *symbolA == "" || *symbolB == "" {
		log.Fatal("[pairscan] both --a and --b are required")
	}

	infra := config.Load()
	slogger := logger.Init("pairscan", logger.ParseLevel(os.Getenv("LOG_LEVEL")))

	evalCfg, err := config.LoadEval(*evalPath)
	if err != nil {
		log.Fatalf("[pairscan] eval config rejected: %v", err)
	}

	pair := model.Pair{A: *symbolA, B: *symbolB}
	f, err := filter.New(pair, evalCfg)
	if err != nil {
		log.Fatalf("[pairscan] filter init failed: %v", err)
	}

	bars, err := loadBars(*csvPath, infra.SQLitePath, pair)
	if err != nil {
		log.Fatalf("[pairscan] bar source failed: %v", err)
	}
	slogger.Info("bars loaded", slog.String("pair", pair.Key()), slog.Int("bars", len(bars)))

	m := metrics.New()
	metrics.Serve(infra.MetricsAddr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	var pub *publish.Publisher
	if infra.RedisAddr != "" {
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     infra.RedisAddr,
			Password: infra.RedisPassword,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("[pairscan] redis connection failed: %v", err)
		}
		pub = publish.New(rdb)
		slogger.Info("publishing enabled", slog.String("redis", infra.RedisAddr))
	}

	// Feed goroutine pushes bars through the SPSC ring; the evaluation loop
	// below is the single consumer.
	ring := ringbuf.New(1024)
	go func() {
		for _, b := range bars {
			for !ring.Push(b) {
				select {
				case <-ctx.Done():
					return
				default:
					time.Sleep(time.Millisecond)
				}
			}
		}
	}()

	var history model.PairWindow
	admits, rejects := 0, 0
	for len(history) < len(bars) {
		select {
		case <-ctx.Done():
			slogger.Info("interrupted", slog.Int("bars_done", len(history)))
			return
		default:
		}

		b, ok := ring.Pop()
		if !ok {
			time.Sleep(time.Millisecond)
			continue
		}
		history = append(history, b)
		m.BarsTotal.Inc()

		window := history
		if *lookback > 0 {
			window = history.Tail(*lookback)
		}

		start := time.Now()
		d := f.Evaluate(window)
		m.ObserveDecision(&d, time.Since(start))

		pub.Snapshot(ctx, pair, d.Snapshot)
		pub.Decision(ctx, pair, &d)

		if d.Admit {
			admits++
			slogger.Info("admitted",
				slog.Time("ts", d.TS),
				slog.Float64("zscore", d.Snapshot.ZScore),
				slog.Float64("rsi", d.Snapshot.RSI),
			)
		} else {
			rejects++
			slogger.Debug("rejected",
				slog.Time("ts", d.TS),
				slog.Any("reasons", d.Reasons),
			)
		}
	}

	slogger.Info("scan complete",
		slog.Int("bars", len(history)),
		slog.Int("admits", admits),
		slog.Int("rejects", rejects),
	)
}

// loadBars reads the pair's aligned daily bars from the CSV file when given,
// otherwise from the SQLite price store.
func loadBars(csvPath, dbPath string, pair model.Pair) ([]model.PairBar, error) {
	if csvPath != "" {
		return loadCSV(csvPath)
	}

	reader, err := sqlitestore.NewReader(dbPath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return reader.ReadPairBars(pair.A, pair.B, 0)
}

// loadCSV parses "ts,close_a,close_b" rows, ts in RFC3339 or YYYY-MM-DD.
// A header row is skipped when the first field does not parse as a date.
func loadCSV(path string) ([]model.PairBar, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	if err != nil {
		return nil, err
	}

	var bars []model.PairBar
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("csv row %d: want 3 fields, got %d", i+1, len(row))
		}
		ts, err := parseTS(row[0])
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("csv row %d: %w", i+1, err)
		}
		a, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: close_a: %w", i+1, err)
		}
		b, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: close_b: %w", i+1, err)
		}
		bars = append(bars, model.PairBar{TS: ts, PriceA: a, PriceB: b})
	}
	return bars, nil
}

func parseTS(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", s)
}
