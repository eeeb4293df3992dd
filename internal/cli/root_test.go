package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/registrar/internal/config"
	"github.com/roach88/registrar/internal/testutil"
)

func init() {
	color.NoColor = true
}

// cliRun executes the command tree against a database in a fresh temp dir
// and returns stdout and stderr.
type cliRun struct {
	t     *testing.T
	db    string
	clock *testutil.FixedClock
}

func newCLIRun(t *testing.T) *cliRun {
	t.Helper()
	t.Setenv(config.EnvDatabase, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	return &cliRun{
		t:     t,
		db:    filepath.Join(t.TempDir(), "registrar.db"),
		clock: testutil.NewFixedClockOn("2024-09-01"),
	}
}

func (r *cliRun) execWithInput(stdin string, args ...string) (string, string, error) {
	r.t.Helper()
	cmd := newRootCommand(&RootOptions{Clock: r.clock})
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--db", r.db}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func (r *cliRun) exec(args ...string) (string, error) {
	r.t.Helper()
	out, _, err := r.execWithInput("", args...)
	return out, err
}

// mustExec runs args and fails the test on error.
func (r *cliRun) mustExec(args ...string) string {
	r.t.Helper()
	out, err := r.exec(args...)
	require.NoError(r.t, err, "registrar %v\n%s", args, out)
	return out
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "registrar", cmd.Use)
	assert.Contains(t, cmd.Long, "interactive menu")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := [][]string{
		{"menu"},
		{"student", "add"}, {"student", "get"}, {"student", "list"},
		{"student", "update"}, {"student", "delete"}, {"student", "courses"},
		{"course", "add"}, {"course", "get"}, {"course", "list"},
		{"course", "delete"}, {"course", "students"},
		{"faculty", "add"}, {"faculty", "get"}, {"faculty", "list"}, {"faculty", "delete"},
		{"department", "add"}, {"department", "get"}, {"department", "list"}, {"department", "delete"},
		{"event", "add"}, {"event", "get"}, {"event", "list"}, {"event", "delete"},
		{"enroll"},
		{"seed"},
		{"report", "summary"}, {"report", "majors"}, {"report", "departments"}, {"report", "events"},
		{"check"},
	}

	for _, path := range commands {
		t.Run(strings.Join(path, " "), func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err, "Command %v should exist", path)
			require.NotNil(t, subCmd)
			assert.Equal(t, path[len(path)-1], subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	dbFlag := cmd.PersistentFlags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "", dbFlag.DefValue)

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("env-file"))
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	checkCmd, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)

	updateFlag := checkCmd.Flags().Lookup("update")
	require.NotNil(t, updateFlag)
	assert.Equal(t, "false", updateFlag.DefValue)

	assert.NotNil(t, checkCmd.Flags().Lookup("filter"))
}

func TestFormatValidationIntegration(t *testing.T) {
	r := newCLIRun(t)

	_, err := r.exec("--format", "xml", "student", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConfigFileSetsDatabase(t *testing.T) {
	r := newCLIRun(t)
	dir := t.TempDir()
	db := filepath.Join(dir, "from-config.db")
	cfgPath := filepath.Join(dir, "registrar.yaml")
	require.NoError(t, writeTestFile(cfgPath, "database: "+db+"\n"))

	cmd := newRootCommand(&RootOptions{Clock: r.clock})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "report", "summary"})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, db)
	assert.Contains(t, out.String(), "Total Students: 0")
}

func TestInvalidConfigIsCommandError(t *testing.T) {
	r := newCLIRun(t)
	cfgPath := filepath.Join(t.TempDir(), "registrar.yaml")
	require.NoError(t, writeTestFile(cfgPath, "databse: typo.db\n"))

	_, err := r.exec("--config", cfgPath, "student", "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestVerboseLogsCarryRunID(t *testing.T) {
	r := newCLIRun(t)

	_, stderr, err := r.execWithInput("", "--verbose", "student", "list")
	require.NoError(t, err)
	assert.Contains(t, stderr, "opening database")
	assert.Contains(t, stderr, "run=")
}

func TestExecute(t *testing.T) {
	t.Setenv(config.EnvDatabase, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	db := filepath.Join(t.TempDir(), "registrar.db")
	ctx := context.Background()

	var out, errOut bytes.Buffer
	code := Execute(ctx, []string{"--db", db, "student", "get", "S404"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, out.String(), "Error [E002]: Student with ID S404 not found")
	// Already reported on stdout.
	assert.NotContains(t, errOut.String(), "Error:")

	out.Reset()
	errOut.Reset()
	code = Execute(ctx, []string{"--db", db, "--format", "yaml", "student", "list"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, errOut.String(), "Error: invalid format")

	out.Reset()
	errOut.Reset()
	code = Execute(ctx, []string{"--db", db, "report", "summary"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out.String(), "University System Summary")
}
