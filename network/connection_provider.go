package network

// ConnectionProvider is an abstraction over the rpc transport. Callers
// identify servers by dialable addresses and invoke methods on services the
// server side has registered. Using this interface lets the same code run
// over a real libp2p network or over an in-memory fabric in tests.
type ConnectionProvider interface {
	// Register makes rcvr's exported methods callable by other peers. The
	// service name is the receiver's concrete type name.
	Register(rcvr interface{}) error

	// Call executes svcName.svcMeth on the given server, blocking until the
	// reply has been filled in or the transport fails.
	Call(server string, svcName string, svcMeth string, args interface{}, reply interface{}) error

	// Me returns the address other peers should use to reach this provider.
	Me() string

	Close() error
}
