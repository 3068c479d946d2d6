package media

import (
	"bytes"
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/asadc0de/husnainatelier/internal/editor"
)

// Resolver turns staged editor slots into persisted URLs. Every slot with a
// pending file uploads concurrently; the first failure cancels the rest and
// aborts the whole resolution, so the caller never persists a partial image
// set. Slots without a pending file pass through untouched, and the output
// order always matches the input order.
type Resolver struct {
	Store Storage
}

func NewResolver(store Storage) *Resolver {
	return &Resolver{Store: store}
}

func (r *Resolver) Resolve(ctx context.Context, slots editor.SlotSet) (editor.SlotSet, error) {
	out := slots
	g, ctx := errgroup.WithContext(ctx)

	for i := range slots {
		if slots[i].File == nil {
			continue
		}
		i := i
		file := *slots[i].File
		g.Go(func() error {
			res, err := r.Store.Put(ctx, bytes.NewReader(file.Data), PutInput{
				Filename:    file.Name,
				ContentType: file.ContentType,
				Size:        int64(len(file.Data)),
			})
			if err != nil {
				return err
			}
			// Each goroutine owns exactly one index; no shared writes.
			out[i].URL = res.URL
			out[i].File = nil
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return slots, err
	}
	return out, nil
}
