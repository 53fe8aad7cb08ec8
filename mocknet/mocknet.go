// Package mocknet provides an in-memory network.ConnectionProvider for
// tests. Peers are addressed by plain names instead of multiaddrs, and a
// call is a direct method invocation on the destination's registered
// service, so tests exercise the full rpc surface without opening sockets.
package mocknet

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Network is a fabric of named in-memory peers.
type Network struct {
	mu    sync.Mutex
	peers map[string]*Provider
}

func NewNetwork() *Network {
	return &Network{peers: make(map[string]*Provider)}
}

// Provider returns the peer with the given name, creating it on first use.
func (n *Network) Provider(name string) *Provider {
	n.mu.Lock()
	defer n.mu.Unlock()
	if p, ok := n.peers[name]; ok {
		return p
	}
	p := &Provider{name: name, net: n, services: make(map[string]interface{})}
	n.peers[name] = p
	return p
}

func (n *Network) lookup(name string) *Provider {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.peers[name]
}

// Provider implements network.ConnectionProvider without any transport.
type Provider struct {
	name string
	net  *Network

	mu       sync.Mutex
	services map[string]interface{}
}

func (p *Provider) Register(rcvr interface{}) error {
	t := reflect.TypeOf(rcvr)
	if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return errors.New("mocknet: Register needs a pointer to a struct")
	}
	name := t.Elem().Name()

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, dup := p.services[name]; dup {
		return fmt.Errorf("mocknet: service %q already registered on %q", name, p.name)
	}
	p.services[name] = rcvr
	return nil
}

// Call dispatches to the destination service by reflection, mirroring the
// signature go-libp2p-gorpc expects: a context, an args value and a reply
// pointer, returning error.
func (p *Provider) Call(server string, svcName string, svcMeth string, args interface{}, reply interface{}) error {
	dst := p.net.lookup(server)
	if dst == nil {
		return fmt.Errorf("mocknet: no peer %q", server)
	}

	dst.mu.Lock()
	svc, ok := dst.services[svcName]
	dst.mu.Unlock()
	if !ok {
		return fmt.Errorf("mocknet: peer %q has no service %q", server, svcName)
	}

	m := reflect.ValueOf(svc).MethodByName(svcMeth)
	if !m.IsValid() {
		return fmt.Errorf("mocknet: service %q has no method %q", svcName, svcMeth)
	}
	if m.Type().NumIn() != 3 {
		return fmt.Errorf("mocknet: method %q.%q does not have an rpc signature", svcName, svcMeth)
	}

	av := reflect.ValueOf(args)
	if av.Kind() == reflect.Ptr {
		av = av.Elem()
	}
	out := m.Call([]reflect.Value{
		reflect.ValueOf(context.Background()),
		av,
		reflect.ValueOf(reply),
	})
	if ierr := out[0].Interface(); ierr != nil {
		return ierr.(error)
	}
	return nil
}

func (p *Provider) Me() string {
	return p.name
}

func (p *Provider) Close() error {
	return nil
}
