package network

import (
	"context"
	"fmt"
	"strings"

	"github.com/libp2p/go-libp2p"
	"github.com/libp2p/go-libp2p-core/host"
	"github.com/libp2p/go-libp2p-core/peer"
	gorpc "github.com/libp2p/go-libp2p-gorpc"
	"github.com/multiformats/go-multiaddr"
)

const rpcProtocolID = "/p2p/rpc/letterworld"

// Libp2pConnectionProvider implements the ConnectionProvider interface using
// libp2p, with go-libp2p-gorpc carrying the calls.
type Libp2pConnectionProvider struct {
	Host   host.Host
	Client *gorpc.Client
	Server *gorpc.Server
}

// NewLibp2p creates a libp2p host listening on listenAddr (a multiaddr such
// as "/ip4/0.0.0.0/tcp/0") and attaches an rpc server and client to it.
func NewLibp2p(listenAddr string) (*Libp2pConnectionProvider, error) {
	ctx := context.Background()
	h, err := libp2p.New(ctx, libp2p.ListenAddrStrings(listenAddr))
	if err != nil {
		return nil, fmt.Errorf("creating libp2p host: %w", err)
	}

	cp := &Libp2pConnectionProvider{Host: h}
	cp.Server = gorpc.NewServer(h, rpcProtocolID)
	cp.Client = gorpc.NewClientWithServer(h, rpcProtocolID, cp.Server)
	return cp, nil
}

func (cp *Libp2pConnectionProvider) Register(rcvr interface{}) error {
	return cp.Server.Register(rcvr)
}

// Call interprets server as a p2p multiaddr, connects to the peer behind it
// if it is not this host, and invokes svcName.svcMeth over rpc.
func (cp *Libp2pConnectionProvider) Call(server string, svcName string, svcMeth string, args interface{}, reply interface{}) error {
	ma, err := multiaddr.NewMultiaddr(server)
	if err != nil {
		return fmt.Errorf("bad server address %q: %w", server, err)
	}
	peerInfo, err := peer.AddrInfoFromP2pAddr(ma)
	if err != nil {
		return fmt.Errorf("no peer info in %q: %w", server, err)
	}

	if peerInfo.ID != cp.Host.ID() {
		// Connect is idempotent; peers already in the peerstore are cheap.
		if err := cp.Host.Connect(context.Background(), *peerInfo); err != nil {
			return fmt.Errorf("connecting to %s (%s.%s): %w", peerInfo.ID, svcName, svcMeth, err)
		}
	}

	return cp.Client.Call(peerInfo.ID, svcName, svcMeth, args, reply)
}

// Me returns a dialable multiaddr for this host, choosing a non-loopback
// address when the host has one.
func (cp *Libp2pConnectionProvider) Me() string {
	pi := peer.AddrInfo{
		ID:    cp.Host.ID(),
		Addrs: cp.Host.Addrs(),
	}
	addrs, err := peer.AddrInfoToP2pAddrs(&pi)
	if err != nil || len(addrs) == 0 {
		return ""
	}
	chosen := addrs[0].String()
	for _, addr := range addrs {
		if !strings.Contains(addr.String(), "127.0.0.1") {
			chosen = addr.String()
		}
	}
	return chosen
}

func (cp *Libp2pConnectionProvider) Close() error {
	return cp.Host.Close()
}
