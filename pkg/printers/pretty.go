package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// PrettyPrint writes human-oriented output.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	// Profile colors category markers. Ascii draws them uncolored.
	Profile termenv.Profile
	// Width wraps long text; zero means 80.
	Width int
}

// NewPretty picks a color profile from w: true terminals get the profile the
// environment advertises, everything else plain text.
func NewPretty(w io.Writer) *PrettyPrint {
	return &PrettyPrint{Out: w, Profile: profileFor(w)}
}

func profileFor(w io.Writer) termenv.Profile {
	f, ok := w.(*os.File)
	if !ok {
		return termenv.Ascii
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

var (
	spacing = strings.Repeat(" ", len("2b1f0c7e  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 80
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = fmt.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " record")
	default:
		_, _ = c.Fprintln(pp.out(), " records")
	}
}

// Dot draws a marker in a category color.
func (pp *PrettyPrint) Dot(hex string) string {
	return pp.Profile.String("●").Foreground(pp.Profile.Color(hex)).String()
}

// Line writes a plain line, used for banners.
func (pp *PrettyPrint) Line(s string) {
	_, _ = fmt.Fprintln(pp.out(), s)
}
