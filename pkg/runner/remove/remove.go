// Package remove deletes records.
package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/nomilog/pkg/app"
)

type Remove struct {
	IDs     []string
	Service *app.Service
}

// Do deletes each id. Ids that match nothing are reported but do not stop
// the rest.
func (r *Remove) Do(ctx context.Context) error {
	faint := color.New(color.Faint)
	for _, raw := range r.IDs {
		id, err := r.Service.ResolveID(ctx, raw)
		if errors.Is(err, app.ErrNotFound) {
			_, _ = faint.Fprintf(color.Output, "%s: no such record\n", raw)
			continue
		}
		if err != nil {
			return err
		}
		if err := r.Service.Delete(ctx, id); err != nil {
			return fmt.Errorf("remove %s: %w", id, err)
		}
		_, _ = fmt.Fprintf(color.Output, "removed %s\n", id)
	}
	return nil
}
