package root

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/dragbox/internal/cli/cmdspec"
	"github.com/regenrek/dragbox/internal/runenv"
)

func testSpec() *cmdspec.Spec {
	return &cmdspec.Spec{
		App: cmdspec.AppSpec{Name: "db", DefaultCommand: "canvas", AllowSceneShorthand: true},
		GlobalFlags: []cmdspec.Flag{
			{Name: "version", Aliases: []string{"v"}, Type: "bool"},
			{Name: "config", Aliases: []string{"c"}, Type: "path"},
			{Name: "fresh-config", Type: "bool"},
		},
		Commands: []cmdspec.Command{
			{Name: "canvas", ID: "canvas", Aliases: []string{"ui"}},
			{Name: "simulate", ID: "simulate", Args: []cmdspec.Arg{{Name: "script", Required: true}}},
			{Name: "scene", ID: "scene", Subcommands: []cmdspec.Command{
				{Name: "path", ID: "scene.path"},
			}},
		},
	}
}

func testRegistry(calls *[]string) *Registry {
	reg := NewRegistry()
	for _, id := range []string{"canvas", "simulate", "scene.path"} {
		id := id
		reg.Register(id, func(ctx CommandContext) error {
			*calls = append(*calls, id+":"+ctx.String("config")+":"+ctx.Arg("script"))
			return nil
		})
	}
	return reg
}

func TestBuildAppErrors(t *testing.T) {
	if _, err := BuildApp(nil, Dependencies{}, NewRegistry()); err == nil {
		t.Fatalf("expected error for nil description")
	}
	if _, err := BuildApp(testSpec(), Dependencies{}, nil); err == nil {
		t.Fatalf("expected error for nil registry")
	}
	if _, err := BuildApp(testSpec(), Dependencies{}, NewRegistry()); err == nil {
		t.Fatalf("expected missing handler error")
	}
}

func TestBuildAppRunsDefaultCommandWithGlobalFlags(t *testing.T) {
	var calls []string
	app, err := BuildApp(testSpec(), Dependencies{}, testRegistry(&calls))
	if err != nil {
		t.Fatalf("BuildApp() error: %v", err)
	}
	if err := app.Run(context.Background(), []string{"db", "--config", "a.yml"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(calls) != 1 || calls[0] != "canvas:a.yml:" {
		t.Fatalf("calls=%v", calls)
	}
}

func TestBuildAppRunsSubcommand(t *testing.T) {
	var calls []string
	app, err := BuildApp(testSpec(), Dependencies{}, testRegistry(&calls))
	if err != nil {
		t.Fatalf("BuildApp() error: %v", err)
	}
	if err := app.Run(context.Background(), []string{"db", "scene", "path"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(calls) != 1 || calls[0] != "scene.path::" {
		t.Fatalf("calls=%v", calls)
	}
}

func TestBuildAppRequiresArgs(t *testing.T) {
	var calls []string
	app, err := BuildApp(testSpec(), Dependencies{}, testRegistry(&calls))
	if err != nil {
		t.Fatalf("BuildApp() error: %v", err)
	}
	err = app.Run(context.Background(), []string{"db", "simulate"})
	if err == nil || !strings.Contains(err.Error(), "script") {
		t.Fatalf("err=%v want missing script", err)
	}
	if len(calls) != 0 {
		t.Fatalf("handler should not run: %v", calls)
	}
	if err := app.Run(context.Background(), []string{"db", "simulate", "drag.yml"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(calls) != 1 || calls[0] != "simulate::drag.yml" {
		t.Fatalf("calls=%v", calls)
	}
}

func TestBuildAppVersionFlag(t *testing.T) {
	var calls []string
	var out bytes.Buffer
	app, err := BuildApp(testSpec(), Dependencies{Version: "1.2.3", Stdout: &out, Stderr: &out}, testRegistry(&calls))
	if err != nil {
		t.Fatalf("BuildApp() error: %v", err)
	}
	app.ExitErrHandler = func(ctx context.Context, cmd *cli.Command, err error) {}
	_ = app.Run(context.Background(), []string{"db", "--version"})
	if !strings.Contains(out.String(), "db 1.2.3") {
		t.Fatalf("out=%q", out.String())
	}
	if len(calls) != 0 {
		t.Fatalf("handler should not run: %v", calls)
	}
}

func TestBuildAppFreshConfigRestoresEnv(t *testing.T) {
	t.Setenv(runenv.FreshConfigEnv, "")
	os.Unsetenv(runenv.FreshConfigEnv)
	var seen bool
	reg := NewRegistry()
	reg.Register("canvas", func(ctx CommandContext) error {
		seen = runenv.FreshConfigEnabled()
		return nil
	})
	reg.Register("simulate", func(ctx CommandContext) error { return nil })
	reg.Register("scene.path", func(ctx CommandContext) error { return nil })
	app, err := BuildApp(testSpec(), Dependencies{}, reg)
	if err != nil {
		t.Fatalf("BuildApp() error: %v", err)
	}
	if err := app.Run(context.Background(), []string{"db", "--fresh-config", "canvas"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !seen {
		t.Fatalf("fresh config should be enabled during the command")
	}
	if _, ok := os.LookupEnv(runenv.FreshConfigEnv); ok {
		t.Fatalf("fresh config env should be restored")
	}
}

func TestRunHandlerPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := runHandler(context.Background(), nil, cmdspec.Command{ID: "x"}, Dependencies{}, func(CommandContext) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v want boom", err)
	}
	if err := runHandler(context.Background(), nil, cmdspec.Command{}, Dependencies{}, nil); err != nil {
		t.Fatalf("nil handler err=%v", err)
	}
}

func TestRegistryEnsureHandlers(t *testing.T) {
	reg := NewRegistry()
	reg.Register("", func(CommandContext) error { return nil })
	reg.Register("a", nil)
	if _, ok := reg.HandlerFor("a"); ok {
		t.Fatalf("nil handler should not register")
	}
	doc := &cmdspec.Spec{Commands: []cmdspec.Command{{ID: "a"}, {ID: "b", Subcommands: []cmdspec.Command{{ID: "b.c"}}}}}
	err := reg.EnsureHandlers(doc)
	if !errors.Is(err, ErrMissingHandler) || err.Error() != "missing CLI handler for a, b.c" {
		t.Fatalf("err=%v", err)
	}
	reg.Register("a", func(CommandContext) error { return nil })
	reg.Register("b.c", func(CommandContext) error { return nil })
	if err := reg.EnsureHandlers(doc); err != nil {
		t.Fatalf("EnsureHandlers: %v", err)
	}
	var nilReg *Registry
	if _, ok := nilReg.HandlerFor("a"); ok {
		t.Fatalf("nil registry should miss")
	}
}

func TestCommandContextNilCommand(t *testing.T) {
	var ctx CommandContext
	if ctx.String("config") != "" || ctx.Bool("json") {
		t.Fatalf("nil command should read zero flags")
	}
}
