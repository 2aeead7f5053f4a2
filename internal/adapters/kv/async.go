package kv

import (
	"context"

	"go.trai.ch/handler/internal/core/ports"
)

var _ ports.AsyncKeyValueAdapter = (*syncBridge)(nil)

// Async adapts a synchronous adapter to the asynchronous interface.
// Calls fail with the context's error once it is done.
func Async(a ports.KeyValueAdapter) ports.AsyncKeyValueAdapter {
	return &syncBridge{a: a}
}

type syncBridge struct {
	a ports.KeyValueAdapter
}

func (b *syncBridge) Get(ctx context.Context, key string) (map[string]any, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	return b.a.Get(key)
}

func (b *syncBridge) Set(ctx context.Context, key string, value map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.a.Set(key, value)
}

func (b *syncBridge) Delete(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return b.a.Delete(key)
}

func (b *syncBridge) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.a.Clear()
}
