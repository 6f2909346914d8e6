package version

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/dragbox/internal/cli/root"
)

func TestRunVersionWrites(t *testing.T) {
	var out bytes.Buffer
	ctx := root.CommandContext{
		Deps: root.Dependencies{Version: "test", AppName: "dragbox"},
		Out:  &out,
		Cmd:  &cli.Command{Name: "version"},
	}
	if err := runVersion(ctx); err != nil {
		t.Fatalf("runVersion error: %v", err)
	}
	if out.String() != "dragbox test\n" {
		t.Fatalf("out=%q", out.String())
	}
}

func TestRegisterAddsHandler(t *testing.T) {
	reg := root.NewRegistry()
	Register(reg)
	if _, ok := reg.HandlerFor("version"); !ok {
		t.Fatalf("version handler missing")
	}
}

func TestRunVersionVerbose(t *testing.T) {
	var out bytes.Buffer
	cmd := &cli.Command{
		Name:  "version",
		Flags: []cli.Flag{&cli.BoolFlag{Name: "verbose"}},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runVersion(root.CommandContext{Context: ctx, Cmd: c, Out: &out, Deps: root.Dependencies{Version: "1.0.0"}})
		},
	}
	if err := cmd.Run(context.Background(), []string{"version", "--verbose"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	for _, want := range []string{"dragbox 1.0.0\n", "go: " + runtime.Version(), "platform: " + runtime.GOOS + "/" + runtime.GOARCH, "revision: "} {
		if !strings.Contains(got, want) {
			t.Fatalf("out=%q missing %q", got, want)
		}
	}
}
