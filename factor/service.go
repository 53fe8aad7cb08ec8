package factor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/arvid220u/letterworld/network"
)

// FactorService exposes a Factorizer to other peers. The method shape
// (context, args value, reply pointer, error return) is what
// go-libp2p-gorpc dispatches.
type FactorService struct {
	f Factorizer
}

// Factor parses args.N and factors it. Arithmetic failures travel in
// reply.Err rather than the rpc error, keeping them separate from transport
// failures.
func (s *FactorService) Factor(ctx context.Context, args FactorArgs, reply *FactorReply) error {
	n, ok := new(big.Int).SetString(args.N, 10)
	if !ok {
		reply.Err = fmt.Sprintf("request %s: %q is not a decimal integer", args.Id, args.N)
		return nil
	}
	f, err := s.f.Factorize(n)
	if err != nil {
		reply.Err = fmt.Sprintf("request %s: %v", args.Id, err)
		return nil
	}
	reply.Factors = f
	return nil
}

// Serve registers a FactorService backed by f on the provider, making it
// reachable by Remote factorizers on other peers.
func Serve(cp network.ConnectionProvider, f Factorizer) error {
	return cp.Register(&FactorService{f: f})
}
