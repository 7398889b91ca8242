// internal/blockchain/solbc/errors.go
package solbc

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
)

var (
	// ErrAccountNotFound возникает, когда аккаунт отсутствует в блокчейне
	ErrAccountNotFound = errors.New("account not found")

	// ErrNoEndpoints возникает, если клиент создан без RPC адресов
	ErrNoEndpoints = errors.New("no RPC endpoints configured")
)

// RPCError представляет ошибку RPC с дополнительным контекстом
type RPCError struct {
	Err      error
	Endpoint string
	Method   string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error [%s] at %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *RPCError) Unwrap() error {
	return e.Err
}

// IsAccountNotFoundError сообщает, что аккаунта нет в блокчейне.
// Ошибки JSON-RPC узла (например -32601 "Method not found") отсутствием не считаются.
func IsAccountNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		return false
	}
	return errors.Is(err, ErrAccountNotFound) || errors.Is(err, rpc.ErrNotFound)
}

// JSON-RPC codes that will not change on retry.
const (
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// isRetryable reports whether another attempt may succeed.
func isRetryable(err error) bool {
	if err == nil || IsAccountNotFoundError(err) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		switch rpcErr.Code {
		case codeInvalidRequest, codeMethodNotFound, codeInvalidParams:
			return false
		}
	}
	return true
}
