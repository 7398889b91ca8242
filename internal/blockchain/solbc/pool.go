// internal/blockchain/solbc/pool.go
package solbc

import (
	"sync/atomic"

	"github.com/gagliardetto/solana-go/rpc"
)

// endpoint is one RPC node.
type endpoint struct {
	url    string
	client *rpc.Client
}

// pool rotates over endpoints. Each retry moves to the next node.
type pool struct {
	endpoints []endpoint
	curr      atomic.Uint64
}

func newPool(urls []string) (*pool, error) {
	if len(urls) == 0 {
		return nil, ErrNoEndpoints
	}
	p := &pool{endpoints: make([]endpoint, 0, len(urls))}
	for _, url := range urls {
		p.endpoints = append(p.endpoints, endpoint{url: url, client: rpc.New(url)})
	}
	return p, nil
}

// current returns the endpoint in use.
func (p *pool) current() endpoint {
	return p.endpoints[p.curr.Load()%uint64(len(p.endpoints))]
}

// next switches to the following endpoint.
func (p *pool) next() endpoint {
	return p.endpoints[p.curr.Add(1)%uint64(len(p.endpoints))]
}
