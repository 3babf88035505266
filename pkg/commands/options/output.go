package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/nomilog/pkg/record"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
	// Out defaults to color.Output.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func (o *OutputOptions) Writer() io.Writer {
	if o.Out == nil {
		return color.Output
	}
	return o.Out
}

// PrintJSON writes v as indented JSON.
func (o *OutputOptions) PrintJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(o.Writer(), string(b))
	return err
}

// HandleError reports err as JSON when --json is set and swallows it;
// otherwise err is returned for cobra to print. Validation failures carry
// their field list either way.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil {
		return nil
	}
	var verr *record.ValidationError
	if o.JSON {
		out := map[string]any{
			"error": err.Error(),
		}
		if errors.As(err, &verr) {
			out["fields"] = verr.Fields
		}
		if perr := o.PrintJSON(out); perr != nil {
			return perr
		}
		return nil
	}
	if errors.As(err, &verr) {
		red := color.New(color.FgRed)
		for _, f := range verr.Fields {
			_, _ = red.Fprintf(o.Writer(), "  %s: %s\n", f.Field, f.Message)
		}
		return errors.New("invalid record")
	}
	return err
}
