package xcontext

import "context"

type roundTripKey struct{}

// roundTrip carries the mutable response/error of a request through the
// middleware chain.
type roundTrip struct {
	resp any
	err  error
}

func WithRoundTrip(ctx context.Context) context.Context {
	return context.WithValue(ctx, roundTripKey{}, &roundTrip{})
}

func SetResponse(ctx context.Context, resp any) {
	if rt, ok := ctx.Value(roundTripKey{}).(*roundTrip); ok {
		rt.resp = resp
	}
}

// GetResponse returns the response object set by the handler. It only returns
// a non-nil object in After middlewares and Closers.
func GetResponse(ctx context.Context) any {
	if rt, ok := ctx.Value(roundTripKey{}).(*roundTrip); ok {
		return rt.resp
	}

	return nil
}

func SetError(ctx context.Context, err error) {
	if rt, ok := ctx.Value(roundTripKey{}).(*roundTrip); ok {
		rt.err = err
	}
}

func GetError(ctx context.Context) error {
	if rt, ok := ctx.Value(roundTripKey{}).(*roundTrip); ok {
		return rt.err
	}

	return nil
}
