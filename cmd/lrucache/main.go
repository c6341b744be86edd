// lrucache is a command-line harness for the bounded LRU cache.
//
// It is a caller of the public cache API only: the demo walks through
// eviction and promotion step by step, and the bench measures throughput
// against a fastcache baseline.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/urfave/cli/v2"

	"lrucache/internal/lru"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	app := &cli.App{
		Name:  "lrucache",
		Usage: "exercise the fixed-capacity LRU cache",
		Commands: []*cli.Command{
			demoCommand,
			benchCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var demoCommand = &cli.Command{
	Name:  "demo",
	Usage: "walk through eviction and promotion on a tiny cache",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "capacity", Value: 2, Usage: "number of entries the cache holds"},
	},
	Action: runDemo,
}

func runDemo(ctx *cli.Context) error {
	capacity := ctx.Int("capacity")
	c, err := lru.New[string, string](capacity)
	if err != nil {
		return err
	}
	logger.Info("demo starting", "capacity", capacity)

	c.Put("a", "A")
	c.Put("b", "B")
	logger.Info("filled cache", "keys", c.Keys())

	// Touch "a" so "b" becomes least-recently-used.
	if v, ok := c.Get("a"); ok {
		logger.Info("GET a touches it to MRU", "value", v)
	}

	// Insert "c" => cache overflows and evicts LRU (expected: "b").
	c.Put("c", "C")
	if !c.Contains("b") {
		logger.Info("GET b: missing (evicted as LRU)")
	}
	logger.Info("keys after eviction (MRU->LRU)", "keys", c.Keys())

	// Updating an existing key replaces the value without growing the cache.
	c.Put("a", "A2")
	v, _ := c.Get("a")
	logger.Info("updated in place", "a", v, "len", c.Len())

	fmt.Println("Done.")
	return nil
}

var benchCommand = &cli.Command{
	Name:  "bench",
	Usage: "measure mixed get/put throughput, with a fastcache baseline",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "capacity", Value: 4096, Usage: "cache capacity in entries"},
		&cli.IntFlag{Name: "ops", Value: 1_000_000, Usage: "operations per pass"},
		&cli.IntFlag{Name: "key-space", Value: 8192, Usage: "distinct keys in the workload"},
		&cli.IntFlag{Name: "value-size", Value: 128, Usage: "value payload bytes"},
	},
	Action: runBench,
}

func runBench(cliCtx *cli.Context) error {
	// Signal-aware context so a long pass can be interrupted cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		capacity  = cliCtx.Int("capacity")
		ops       = cliCtx.Int("ops")
		keySpace  = cliCtx.Int("key-space")
		valueSize = cliCtx.Int("value-size")
	)

	keys := make([][]byte, keySpace)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("key-%07d", i))
	}
	value := make([]byte, valueSize)

	c, err := lru.NewSynced[string, []byte](capacity)
	if err != nil {
		return err
	}
	logger.Info("bench starting", "capacity", capacity, "ops", ops,
		"keySpace", keySpace, "valueSize", valueSize)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	elapsed, done, err := timedPass(ctx, ops, func(i int) {
		k := string(keys[rng.Intn(keySpace)])
		if i%4 == 0 {
			c.Put(k, value)
		} else {
			c.Get(k)
		}
	})
	if err != nil {
		return err
	}
	report("lru.Synced", done, elapsed)

	fc := fastcache.New(32 * 1024 * 1024)
	elapsed, done, err = timedPass(ctx, ops, func(i int) {
		k := keys[rng.Intn(keySpace)]
		if i%4 == 0 {
			fc.Set(k, value)
		} else {
			fc.Get(nil, k)
		}
	})
	if err != nil {
		return err
	}
	report("fastcache", done, elapsed)
	return nil
}

// timedPass runs op for n iterations, checking for cancellation in batches.
// It returns the elapsed time and how many iterations actually ran.
func timedPass(ctx context.Context, n int, op func(i int)) (time.Duration, int, error) {
	start := time.Now()
	for i := 0; i < n; i++ {
		if i%8192 == 0 && ctx.Err() != nil {
			return time.Since(start), i, ctx.Err()
		}
		op(i)
	}
	return time.Since(start), n, nil
}

func report(name string, ops int, elapsed time.Duration) {
	rate := float64(ops) / elapsed.Seconds()
	logger.Info("pass complete", "cache", name, "ops", ops,
		"elapsed", elapsed.Round(time.Millisecond), "ops/s", int64(rate))
}
