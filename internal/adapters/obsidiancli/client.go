// Package obsidiancli shells out to the external Obsidian CLI. Every rich
// vault operation (search, read, daily append, graph checks) is delegated
// here first; callers fall back to direct filesystem access when the binary
// is missing.
package obsidiancli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"lifememory/internal/ports"
)

// ErrUnavailable signals that the CLI binary is not installed; callers
// should take their filesystem fallback path.
var ErrUnavailable = errors.New("obsidian CLI binary not found")

// DefaultBinary is the CLI binary name when no override is configured.
const DefaultBinary = "obsidian"

// Client implements ports.NoteCLI by invoking the Obsidian CLI with the
// vault as working directory.
type Client struct {
	vaultPath string
	binary    string
	geteuid   func() int // swapped in tests
}

// Ensure Client implements NoteCLI
var _ ports.NoteCLI = (*Client)(nil)

// Option configures the Client.
type Option func(*Client)

// WithBinary overrides the CLI binary name.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// NewClient creates a client for the given vault path.
func NewClient(vaultPath string, opts ...Option) *Client {
	c := &Client{
		vaultPath: vaultPath,
		binary:    DefaultBinary,
		geteuid:   os.Geteuid,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsAvailable checks if the CLI binary is installed and accessible.
func (c *Client) IsAvailable() bool {
	_, err := exec.LookPath(c.binary)
	return err == nil
}

// Search runs a full-text search across the vault.
func (c *Client) Search(query string) (string, error) {
	return c.run("search", "query="+query, "matches")
}

// ReadFile reads a note by file name.
func (c *Client) ReadFile(name string) (string, error) {
	return c.run("read", "file="+name)
}

// ReadPath reads a note by path.
func (c *Client) ReadPath(path string) (string, error) {
	return c.run("read", "path="+path)
}

// DailyAppend appends content to today's daily note.
func (c *Client) DailyAppend(content string) error {
	_, err := c.run("daily:append", "content="+content, "silent")
	return err
}

// Check runs a graph health check (unresolved, orphans, deadends).
func (c *Client) Check(name string) (string, error) {
	return c.run(name, "total", "verbose")
}

func (c *Client) run(command string, args ...string) (string, error) {
	if !c.IsAvailable() {
		return "", ErrUnavailable
	}

	cmd := exec.Command(c.binary, c.buildArgs(command, args)...)
	cmd.Dir = c.vaultPath
	cmd.Env = c.buildEnv(os.Environ())

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			if stderr != "" {
				return "", fmt.Errorf("obsidian CLI error: %s", stderr)
			}
		}
		return "", fmt.Errorf("obsidian %s failed: %w", command, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// buildArgs assembles the CLI argument list. Running as root requires
// --no-sandbox or the embedded Electron runtime refuses to start.
func (c *Client) buildArgs(command string, args []string) []string {
	all := append([]string{command}, args...)
	if c.geteuid() == 0 {
		all = append(all, "--no-sandbox")
	}
	return all
}

// buildEnv guarantees a DISPLAY value so the CLI works on headless hosts
// with a virtual X server.
func (c *Client) buildEnv(base []string) []string {
	for _, kv := range base {
		if strings.HasPrefix(kv, "DISPLAY=") {
			return base
		}
	}
	return append(base, "DISPLAY=:99")
}
