package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) note(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Create(ctx context.Context) error   { return f.note("create") }
func (f *fakeExec) List(ctx context.Context) error     { return f.note("list") }
func (f *fakeExec) Show(ctx context.Context) error     { return f.note("show") }
func (f *fakeExec) Update(ctx context.Context) error   { return f.note("update") }
func (f *fakeExec) Autosave(ctx context.Context) error { return f.note("autosave") }
func (f *fakeExec) History(ctx context.Context) error  { return f.note("history") }
func (f *fakeExec) EditMap(ctx context.Context) error  { return f.note("map") }
func (f *fakeExec) Export(ctx context.Context) error   { return f.note("export") }
func (f *fakeExec) Stats(ctx context.Context) error    { return f.note("stats") }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"create",
		"list",
		"l",
		"show",
		"history",
		"map",
		"export",
		"stats",
		"foobar",
		"exit",
	}, "\n") + "\n"

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, rdr(input), &out)

	want := []string{"create", "list", "list", "show", "history", "map", "export", "stats"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls mismatch at %d: got %v, want %v", i, exec.calls, want)
		}
	}

	if !strings.Contains(out.String(), "Unknown command: foobar") {
		t.Fatalf("expected unknown-command report, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Bye!") {
		t.Fatalf("expected exit banner, got:\n%s", out.String())
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, rdr("list\n"), &out)

	if len(exec.calls) != 1 || exec.calls[0] != "list" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_BlankLinesIgnored(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, rdr("\n\nquit\n"), &out)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
