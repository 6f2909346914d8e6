// Package simulate wires the replay command: it loads a gesture script,
// replays it headless and prints the notification trace.
package simulate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/regenrek/dragbox/internal/cli/root"
	"github.com/regenrek/dragbox/internal/rect"
	replay "github.com/regenrek/dragbox/internal/simulate"
)

// Register registers simulate handler.
func Register(reg *root.Registry) {
	reg.Register("simulate", runSimulate)
}

type rectJSON struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type resultJSON struct {
	Widget string   `json:"widget"`
	Trace  []string `json:"trace"`
	Final  rectJSON `json:"final"`
	Active bool     `json:"active"`
}

func runSimulate(ctx root.CommandContext) error {
	path := ctx.Arg("script")
	if path == "" {
		return errors.New("missing argument \"script\"")
	}
	script, err := replay.Load(path)
	if err != nil {
		return err
	}
	logger := slog.Default().With(slog.String("script", path))
	res, err := replay.Run(script, logger)
	if err != nil {
		return err
	}
	logger.Debug("replay finished", slog.Int("steps", len(script.Steps)), slog.Int("events", len(res.Trace)))
	if ctx.Bool("json") {
		return writeJSON(ctx.Out, script.Widget.ID, res)
	}
	return writeText(ctx.Out, res)
}

func writeText(w io.Writer, res replay.Result) error {
	for _, line := range res.Trace {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "final %s active=%t\n", formatRect(res.Final), res.Active)
	return err
}

func writeJSON(w io.Writer, id string, res replay.Result) error {
	trace := res.Trace
	if trace == nil {
		trace = []string{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resultJSON{
		Widget: id,
		Trace:  trace,
		Final: rectJSON{
			Left:   res.Final.Left,
			Top:    res.Final.Top,
			Width:  res.Final.Width,
			Height: res.Final.Height,
		},
		Active: res.Active,
	})
}

func formatRect(r rect.Rect) string {
	return fmt.Sprintf("%s %s %sx%s", num(r.Left), num(r.Top), num(r.Width), num(r.Height))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
