package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	env        []string
}

func newCLIRunner(t *testing.T, env ...string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "minesweeper-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/minesweeper")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		env:        env,
	}
}

// run executes the binary with stdin, returning stdout and stderr separately
func (r *cliRunner) run(stdin string, args ...string) (string, string, error) {
	cmd := exec.Command(r.binaryPath, args...)
	cmd.Env = append(os.Environ(), r.env...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// Response types for JSON parsing
type boardResponse struct {
	State       string     `json:"state"`
	Size        int        `json:"size"`
	Mines       int        `json:"mines"`
	FlagsPlaced int        `json:"flags_placed"`
	Moves       int        `json:"moves"`
	Cells       [][]string `json:"cells"`
}

type scoresResponse struct {
	Recorded bool     `json:"recorded"`
	Lines    []string `json:"lines"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_FileStorageGame(t *testing.T) {
	saveDir := filepath.Join(t.TempDir(), "saves")
	cli := newCLIRunner(t,
		"MINES_STORAGE_TYPE=file",
		"MINES_SAVE_DIR="+saveDir,
		"MINES_GRID_SIZE=2",
		"MINES_MINE_COUNT=0",
	)

	stdout, stderr, err := cli.run("e 0,0\nbob\n", "play")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "You won in")
	assert.Contains(t, stdout, "BOB : ")

	data, err := os.ReadFile(filepath.Join(saveDir, "high_scores.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "identifier: BOB")

	stdout, stderr, err = cli.run("", "-o", "json", "scores")
	require.NoError(t, err, "stderr: %s", stderr)

	var scores scoresResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &scores))
	require.Len(t, scores.Lines, 1)
	assert.True(t, strings.HasPrefix(scores.Lines[0], "BOB : "))
}

func TestCLI_SaveAndResume(t *testing.T) {
	saveDir := filepath.Join(t.TempDir(), "saves")
	cli := newCLIRunner(t, "MINES_SAVE_DIR="+saveDir, "MINES_SEED=99")

	_, stderr, err := cli.run("f 4,4\nsave\nquit\n", "play")
	require.NoError(t, err, "stderr: %s", stderr)

	data, err := os.ReadFile(filepath.Join(saveDir, "saved_game.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "size: 9")
	assert.Contains(t, string(data), "mine_count: 10")

	stdout, stderr, err := cli.run("quit\n", "play", "--resume")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "10 mines. 1 flags placed.")
}

func TestCLI_RedisStorage(t *testing.T) {
	mini := miniredis.RunT(t)
	cli := newCLIRunner(t,
		"MINES_STORAGE_TYPE=redis",
		"MINES_REDIS_URL=redis://"+mini.Addr(),
		"MINES_REDIS_NAMESPACE=e2e",
	)

	_, stderr, err := cli.run("e 0,0\nred\n", "play", "--size", "2", "--mines", "0")
	require.NoError(t, err, "stderr: %s", stderr)

	doc, err := mini.Get("mines:e2e:high_scores")
	require.NoError(t, err)
	assert.Contains(t, doc, "identifier: RED")

	stdout, stderr, err := cli.run("", "-o", "json", "reset-scores")
	require.NoError(t, err, "stderr: %s", stderr)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &msg))
	assert.Equal(t, "High scores cleared.", msg.Message)
	assert.False(t, mini.Exists("mines:e2e:high_scores"))
}

func TestCLI_SQLiteStorage(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "mines.db")
	cli := newCLIRunner(t, "MINES_STORAGE_TYPE=sqlite", "MINES_SQLITE_PATH="+dbPath)

	_, stderr, err := cli.run("e 0,0\nsql\n", "play", "--size", "2", "--mines", "0")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := cli.run("", "scores")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "SQL : ")
}

func TestCLI_JSONBoard(t *testing.T) {
	cli := newCLIRunner(t, "MINES_STORAGE_TYPE=memory")

	stdout, stderr, err := cli.run("quit\n", "-o", "json", "play", "--size", "3", "--mines", "2")
	require.NoError(t, err, "stderr: %s", stderr)

	// The first JSON document follows the welcome message
	start := strings.Index(stdout, "{\n  \"state\"")
	require.GreaterOrEqual(t, start, 0, "stdout: %s", stdout)

	var board boardResponse
	require.NoError(t, json.NewDecoder(strings.NewReader(stdout[start:])).Decode(&board))
	assert.Equal(t, "in_progress", board.State)
	assert.Equal(t, 3, board.Size)
	assert.Equal(t, 2, board.Mines)
	assert.Len(t, board.Cells, 3)
	assert.Equal(t, "*", board.Cells[0][0])
}

func TestCLI_InvalidConfiguration(t *testing.T) {
	cli := newCLIRunner(t, "MINES_STORAGE_TYPE=memory", "MINES_MINE_COUNT=100")

	_, stderr, err := cli.run("", "play")
	require.Error(t, err)
	assert.Contains(t, stderr, "invalid grid configuration")
}
