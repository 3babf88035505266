package ads

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Terminal draws house ads as framed text. It stands in for a real ad network.
type Terminal struct {
	Out io.Writer
	// Message is the interstitial body.
	Message string
}

const defaultMessage = "Enjoying nomilog? Go premium to remove ads: nomilog premium buy"

func (t *Terminal) Initialize(context.Context) error {
	if t.Out == nil {
		return fmt.Errorf("ads: no output")
	}
	return nil
}

func (t *Terminal) ShowInterstitial(context.Context) bool {
	if t.Out == nil {
		return false
	}
	msg := t.Message
	if msg == "" {
		msg = defaultMessage
	}
	frame := strings.Repeat("─", len([]rune(msg))+2)
	c := color.New(color.FgYellow)
	_, _ = c.Fprintf(t.Out, "┌%s┐\n│ %s │\n└%s┘\n", frame, msg, frame)
	return true
}

// Banner is the one-line ad under list views.
func (t *Terminal) Banner() string {
	return color.New(color.Faint).Sprint("ad · nomilog premium removes ads · nomilog premium buy")
}
