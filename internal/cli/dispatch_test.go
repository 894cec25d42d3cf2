package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"ltask/internal/cli"
	"ltask/internal/commands"
	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/service"
	"ltask/internal/testutil"
)

// testFactory creates a store factory that returns the given FakeStore.
func testFactory(st *testutil.FakeStore) cli.StoreFactory {
	return func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Store, error) {
		return st, nil
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.Failure {
		t.Errorf("expected exit code %d, got %d", exitcode.Failure, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.Failure {
		t.Errorf("expected exit code %d, got %d", exitcode.Failure, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_NoArgsListsTasks(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "No tasks found.\n" {
		t.Errorf("expected empty list output, got %q", stdout.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "ltask 0.1.0\n" {
		t.Errorf("expected 'ltask 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.Failure {
		t.Errorf("expected exit code %d, got %d", exitcode.Failure, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagNeedsArgument(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--description"}, &stdout, &stderr)

	if code != exitcode.Failure {
		t.Errorf("expected exit code %d, got %d", exitcode.Failure, code)
	}
	expected := "error: flag needs an argument: -description\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_AddThenComplete(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "Buy", "milk"}, &stdout, &stderr)
	if code != exitcode.Success {
		t.Fatalf("add failed: %d (%q)", code, stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	code = dispatcher.Run(context.Background(), []string{"complete", "1"}, &stdout, &stderr)
	if code != exitcode.Success {
		t.Fatalf("complete failed: %d (%q)", code, stderr.String())
	}
	if !st.Tasks()[0].Completed {
		t.Error("task should be completed")
	}
}

// Without an injected factory the dispatcher uses the real file store,
// honoring --tasks-file.
func TestDispatcher_TasksFileFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)
	path := filepath.Join(t.TempDir(), "tasks.json")

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--tasks-file", path, "Buy milk"}, &stdout, &stderr)
	if code != exitcode.Success {
		t.Fatalf("add failed: %d (%q)", code, stderr.String())
	}
	if stdout.String() != "✓ Task added [1]: Buy milk\n" {
		t.Errorf("expected add confirmation, got %q", stdout.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("store file should exist: %v", err)
	}

	stdout.Reset()
	stderr.Reset()
	code = dispatcher.Run(context.Background(), []string{"complete", "--tasks-file", path, "99"}, &stdout, &stderr)
	if code != exitcode.Failure {
		t.Errorf("expected exit code %d, got %d", exitcode.Failure, code)
	}
	if stderr.String() != "error: task not found: 99\n" {
		t.Errorf("expected not-found error, got %q", stderr.String())
	}
}

func TestDispatcher_CorruptStoreFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("{{{ not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--tasks-file", path}, &stdout, &stderr)

	if code != exitcode.Failure {
		t.Errorf("expected exit code %d, got %d", exitcode.Failure, code)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("corrupt store file")) {
		t.Errorf("expected corrupt-store error, got %q", stderr.String())
	}

	// The broken file must be left alone
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{{{ not json" {
		t.Errorf("corrupt file should be untouched, got %q", data)
	}
}

func TestDispatcher_QuietFlag(t *testing.T) {
	st := testutil.NewFakeStore()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(st))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--quiet", "Buy milk"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("add failed: %d (%q)", code, stderr.String())
	}
	if stdout.String() != "" {
		t.Errorf("expected no output in quiet mode, got %q", stdout.String())
	}
}
