package cmdspec

import "testing"

func TestLoadDefault(t *testing.T) {
	doc, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() err=%v", err)
	}
	if doc.App.Name != "dragbox" || doc.App.DefaultCommand != "canvas" {
		t.Fatalf("app=%+v", doc.App)
	}
	for _, id := range []string{"canvas", "simulate", "scene.init", "scene.check", "scene.path", "version"} {
		if doc.FindByID(id) == nil {
			t.Fatalf("expected %s command", id)
		}
	}
	if cmd := doc.FindByID("simulate"); cmd.JSON == nil || !cmd.JSON.Supported {
		t.Fatalf("simulate should support --json")
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse([]byte("  \n")); err == nil {
		t.Fatalf("expected error for empty commands")
	}
	if err := Validate(nil); err == nil {
		t.Fatalf("expected error for empty commands")
	}
}

func TestValidateRejectsSchemaViolations(t *testing.T) {
	tests := map[string]string{
		"missing name":   "version: 1\napp: {summary: x}\ncommands: []\n",
		"unknown field":  "version: 1\napp: {name: a, summary: x}\ncommands: []\nextra: 1\n",
		"bad flag type":  "version: 1\napp: {name: a, summary: x}\nglobal_flags: [{name: f, type: blob}]\ncommands: []\n",
		"command no id":  "version: 1\napp: {name: a, summary: x}\ncommands: [{name: run, summary: x}]\n",
		"bad command id": "version: 1\napp: {name: a, summary: x}\ncommands: [{name: run, id: Run, summary: x}]\n",
	}
	for name, doc := range tests {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestParseMinimal(t *testing.T) {
	doc, err := Parse([]byte("version: 1\napp: {name: a, summary: x}\ncommands: [{name: run, id: run, summary: x, aliases: [r]}]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !doc.IsTopLevel("run") || !doc.IsTopLevel("R") || doc.IsTopLevel("walk") || doc.IsTopLevel(" ") {
		t.Fatalf("unexpected IsTopLevel results")
	}
}

func TestAllCommandsFlattensSubcommands(t *testing.T) {
	doc := &Spec{Commands: []Command{
		{ID: "a"},
		{ID: "b", Subcommands: []Command{{ID: "b.c"}}},
	}}
	all := doc.AllCommands()
	if len(all) != 3 || all[2].ID != "b.c" {
		t.Fatalf("commands=%+v", all)
	}
	if doc.FindByID("") != nil || doc.FindByID("zz") != nil {
		t.Fatalf("FindByID should miss")
	}
	var nilSpec *Spec
	if nilSpec.AllCommands() != nil || nilSpec.FindByID("a") != nil {
		t.Fatalf("nil spec should be empty")
	}
}
