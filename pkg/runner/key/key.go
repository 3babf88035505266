// Package key prints the category legend.
package key

import (
	"context"

	"tableflip.dev/nomilog/pkg/printers"
)

// Key prints every category with its marker color.
type Key struct {
	Printer *printers.PrettyPrint
}

func (k *Key) Do(_ context.Context) error {
	k.Printer.NewLine()
	k.Printer.Key()
	return nil
}
