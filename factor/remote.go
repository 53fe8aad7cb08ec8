package factor

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/arvid220u/letterworld/network"
	"github.com/google/uuid"
)

// FactorArgs is the request sent to a remote factorizer. N carries the
// integer as decimal text because a big.Int cannot be sent over rpc. Id
// correlates the request with server-side logs.
type FactorArgs struct {
	Id uuid.UUID
	N  string
}

// FactorReply carries the factorization back. Err holds the remote
// collaborator's error text; an empty Err means success. Transport failures
// surface as rpc errors instead, so the two stay distinguishable.
type FactorReply struct {
	Factors Factorization
	Err     string
}

// Remote is a Factorizer that forwards every request to a FactorService
// registered on another peer.
type Remote struct {
	cp     network.ConnectionProvider
	server string
}

// NewRemote returns a Remote calling the FactorService at the given server
// address over cp.
func NewRemote(cp network.ConnectionProvider, server string) *Remote {
	return &Remote{cp: cp, server: server}
}

func (r *Remote) Factorize(n *big.Int) (Factorization, error) {
	if n == nil {
		return nil, errors.New("cannot factor nil")
	}
	args := FactorArgs{Id: uuid.New(), N: n.Text(10)}
	var reply FactorReply
	if err := r.cp.Call(r.server, "FactorService", "Factor", args, &reply); err != nil {
		return nil, fmt.Errorf("remote factorize %s: %w", args.Id, err)
	}
	if reply.Err != "" {
		return nil, errors.New(reply.Err)
	}
	return reply.Factors, nil
}
