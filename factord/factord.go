// Command factord serves factorization requests over libp2p so that
// pipelines on other machines can offload factoring to a beefier host.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/arvid220u/letterworld/factor"
	"github.com/arvid220u/letterworld/network"
)

func main() {
	listen := flag.String("listen", "/ip4/0.0.0.0/tcp/0", "multiaddr to listen on")
	budget := flag.Int("budget", factor.DefaultBudget, "rho iteration budget per request")
	flag.Parse()

	cp, err := network.NewLibp2p(*listen)
	if err != nil {
		log.Fatalf("starting libp2p: %v", err)
	}
	defer cp.Close()

	if err := factor.Serve(cp, &factor.Local{Budget: *budget}); err != nil {
		log.Fatalf("registering factor service: %v", err)
	}

	fmt.Printf("factord serving at %s\n", cp.Me())
	select {}
}
