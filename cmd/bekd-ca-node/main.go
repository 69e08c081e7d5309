// Command bekd-ca-node launches a local simulation of the CA
// consortium: one HTTP listener per node, each backed by a share from a
// freshly run trusted-dealer DKG. Adapted from
// ca_consortium/run_consortium.py, which forks one OS process per node;
// here each node runs as a goroutine-backed HTTP server under a shared
// errgroup, matching the concurrent-fan-out idiom the teacher's LSS
// protocol uses for its own multi-party rounds.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"golang.org/x/sync/errgroup"

	"github.com/luxfi/bekd/internal/canode"
	"github.com/luxfi/bekd/internal/dealer"
)

var defaultPorts = []int{5001, 5002, 5003}

func main() {
	n := flag.Int("n", 3, "number of CA consortium nodes")
	t := flag.Int("t", 1, "CA threshold (quorum is t+1)")
	flag.Parse()

	if err := run(*n, *t); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(n, t int) error {
	dkg, err := dealer.Run(n, t, nil)
	if err != nil {
		return fmt.Errorf("simulating CA consortium DKG: %w", err)
	}

	ports := make([]int, n)
	for i := range ports {
		if i < len(defaultPorts) {
			ports[i] = defaultPorts[i]
		} else {
			ports[i] = defaultPorts[len(defaultPorts)-1] + i
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	servers := make([]*http.Server, n)

	for i, share := range dkg.Shares {
		i, share := i, share
		node := canode.NewNode(share)
		srv := &http.Server{Addr: fmt.Sprintf(":%d", ports[i]), Handler: node.Router()}
		servers[i] = srv

		g.Go(func() error {
			fmt.Printf("ca-node %d listening on %s\n", node.Index, srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("ca-node %d: %w", node.Index, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		for _, srv := range servers {
			_ = srv.Shutdown(context.Background())
		}
		return nil
	})

	return g.Wait()
}
