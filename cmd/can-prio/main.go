package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/kstaniek/go-can-prio/internal/metrics"
	"github.com/kstaniek/go-can-prio/internal/txqueue"
)

// Helper implementations live in dedicated files: version.go, config.go,
// logger.go, words.go, metrics_logger.go.

func main() {
	cfg, showVersion := parseFlags()
	if showVersion {
		fmt.Printf("can-prio %s (commit %s, built %s)\n", version, commit, date)
		return
	}
	if cfg == nil {
		os.Exit(2)
	}
	l := setupLogger(cfg.logFormat, cfg.logLevel)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	var wg sync.WaitGroup
	startMetricsLogger(ctx, cfg.logMetricsEvery, l, &wg)
	if cfg.metricsAddr != "" {
		metrics.InitBuildInfo(version, commit, date)
		srv := metrics.StartHTTP(cfg.metricsAddr)
		defer srv.Close()
	}
	q := txqueue.New(cfg.queueCap)

	if args := flag.Args(); len(args) > 0 {
		rankWords(q, args, l)
		cancel()
		wg.Wait()
		return
	}

	// No args: read register words from stdin, one or more per line. In
	// follow mode a blank line closes a batch and prints its ranking.
	sc := bufio.NewScanner(os.Stdin)
	var pending []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if cfg.follow && len(pending) > 0 {
				rankWords(q, pending, l)
				pending = pending[:0]
			}
			continue
		}
		pending = append(pending, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		l.Error("stdin_read_error", "error", err)
	}
	if len(pending) > 0 {
		rankWords(q, pending, l)
	}
	cancel()
	wg.Wait()
}

// rankWords pushes every parsable word onto the queue and drains it,
// printing one line per frame, highest arbitration priority first.
func rankWords(q *txqueue.Queue, words []string, l *slog.Logger) {
	for _, w := range words {
		reg, err := parseWord(w)
		if err != nil {
			l.Warn("word_skipped", "word", w, "error", err)
			continue
		}
		if !q.Push(reg) {
			l.Warn("word_rejected", "word", w, "id", reg.ToID().String())
		}
	}
	rank := 0
	for {
		reg, ok := q.Pop()
		if !ok {
			break
		}
		rank++
		kind := "data"
		if reg.RTR() {
			kind = "remote"
		}
		fmt.Printf("%3d  %-14s  %s\n", rank, reg.ToID(), kind)
	}
}
