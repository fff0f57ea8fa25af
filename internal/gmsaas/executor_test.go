package gmsaas

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// init sets up the test environment
func init() {
	// Replace the exec command context with our mock in tests
	execCommandContext = mockExecCommandContext
}

// mockExecCommandContext is our mock implementation
func mockExecCommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", name}
	cs = append(cs, args...)
	cmd := exec.Command(os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

// TestHelperProcess is a helper process for mocking exec.Command
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}

	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "No command\n")
		os.Exit(2)
	}

	// args[0] is the gmsaas binary name; the rest is the argument vector.
	switch strings.Join(args[1:], " ") {
	case "--format json recipes list":
		fmt.Print(`[{"name":"Pixel 7","uuid":"r-1","os_version":"13.0"}]`)
		os.Exit(0)

	case "--format json instances start r-1 dev":
		fmt.Print(`{"instance":{"uuid":"i-1","state":"BOOTING","adb_serial":"Unknown"}}`)
		os.Exit(0)

	case "--format json boom":
		fmt.Fprint(os.Stderr, "boom: quota exceeded")
		os.Exit(1)

	case "--format json fail-stdout-only":
		fmt.Print("stdout failure detail")
		os.Exit(1)

	case "--format json fail-silent":
		os.Exit(1)

	case "--format json not-json":
		fmt.Print("plain text output")
		os.Exit(0)

	case "--format json env-echo":
		fmt.Printf(`{"agent":%q}`, os.Getenv("GMSAAS_USER_AGENT_EXTRA_DATA"))
		os.Exit(0)

	case "auth token tok-ok":
		os.Exit(0)

	case "auth token tok-bad":
		fmt.Fprint(os.Stderr, "invalid token")
		os.Exit(1)

	default:
		fmt.Fprintf(os.Stderr, "unexpected command: %v\n", args)
		os.Exit(2)
	}
}

func TestExecute_DecodesJSONList(t *testing.T) {
	e := NewCLIExecutor("gmsaas")

	result, err := e.Execute(context.Background(), "recipes", "list")
	require.NoError(t, err)

	recipes, ok := AsList(result)
	require.True(t, ok)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pixel 7", recipes[0].Field("name"))
	assert.Equal(t, "r-1", recipes[0].Field("uuid"))
}

func TestExecute_DecodesNestedObject(t *testing.T) {
	e := NewCLIExecutor("gmsaas")

	result, err := e.Execute(context.Background(), "instances", "start", "r-1", "dev")
	require.NoError(t, err)

	obj, ok := AsObject(result)
	require.True(t, ok)
	instance, ok := obj.Child("instance")
	require.True(t, ok)
	assert.Equal(t, "i-1", instance.Field("uuid"))
}

func TestExecute_NonZeroExitUsesStderr(t *testing.T) {
	e := NewCLIExecutor("gmsaas")

	_, err := e.Execute(context.Background(), "boom")
	require.Error(t, err)

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "boom: quota exceeded", execErr.Message)
	assert.Contains(t, err.Error(), "boom: quota exceeded")
}

func TestExecute_NonZeroExitFallsBackToStdout(t *testing.T) {
	e := NewCLIExecutor("gmsaas")

	_, err := e.Execute(context.Background(), "fail-stdout-only")
	require.Error(t, err)

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "stdout failure detail", execErr.Message)
}

func TestExecute_NonZeroExitWithNoOutput(t *testing.T) {
	e := NewCLIExecutor("gmsaas")

	_, err := e.Execute(context.Background(), "fail-silent")
	require.Error(t, err)

	var execErr *ExecError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "command failed", execErr.Message)
}

func TestExecute_UnparseableOutputIsParseError(t *testing.T) {
	e := NewCLIExecutor("gmsaas")

	_, err := e.Execute(context.Background(), "not-json")
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestExecute_TagsEnvironment(t *testing.T) {
	e := NewCLIExecutor("gmsaas")

	result, err := e.Execute(context.Background(), "env-echo")
	require.NoError(t, err)

	obj, ok := AsObject(result)
	require.True(t, ok)
	assert.Equal(t, "mcp", obj.Field("agent"))
}

func TestConfigureToken_DoesNotFail(t *testing.T) {
	e := NewCLIExecutor("gmsaas")

	// None of these may panic or abort: token bootstrap is strictly
	// best-effort.
	e.ConfigureToken(context.Background(), "")
	e.ConfigureToken(context.Background(), "tok-ok")
	e.ConfigureToken(context.Background(), "tok-bad")
}
