package pkgin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// Client spawns the pkgin binary and captures its output streams
type Client struct {
	binary  string
	env     []string
	timeout time.Duration
	logger  *log.Logger
}

func NewClient(binary string, timeout time.Duration, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		binary:  binary,
		timeout: timeout,
		logger:  logger,
	}
}

// WithEnv returns a copy of the client that appends env to the child's environment
func (c *Client) WithEnv(env ...string) *Client {
	cp := *c
	cp.env = append(append([]string(nil), c.env...), env...)
	return &cp
}

// Binary returns the executable path the client runs
func (c *Client) Binary() string {
	return c.binary
}

// Run executes the binary with args. When stdin is non-nil it is written to
// the child while stdout and stderr are drained concurrently, so a child that
// prints more than a pipe buffer before reading its input cannot stall.
func (c *Client) Run(ctx context.Context, stdin io.Reader, args ...string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var outBuf, errBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	// pkg_add and pkg_delete children inherit the output pipes and outlive a
	// killed pkgin; stop waiting for them once the context is done
	cmd.WaitDelay = PipeDrainDelay
	if len(c.env) > 0 {
		cmd.Env = append(os.Environ(), c.env...)
	}

	var input io.WriteCloser
	if stdin != nil {
		var err error
		input, err = cmd.StdinPipe()
		if err != nil {
			return nil, fmt.Errorf("creating stdin pipe: %w", err)
		}
	}

	c.logger.Printf("exec %s %v", c.binary, args)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", c.binary, err)
	}

	var g errgroup.Group
	if input != nil {
		g.Go(func() error {
			defer input.Close()
			_, err := io.Copy(input, stdin)
			// the child may exit without consuming its input
			if errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return err
		})
	}

	// Wait drains stdout and stderr and closes stdin once the child exits
	waitErr := cmd.Wait()
	inputErr := g.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("running %s: %w", c.binary, ctxErr)
	}
	if errors.Is(waitErr, exec.ErrWaitDelay) {
		// exited cleanly but a descendant still held the output pipes
		c.logger.Printf("output pipes held open after exit, closed after %s", PipeDrainDelay)
		waitErr = nil
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			c.logger.Printf("exit status %d", exitErr.ExitCode())
			return outBuf.Bytes(), newCommandError(args, exitErr.ExitCode(), errBuf.Bytes())
		}
		return nil, fmt.Errorf("running %s: %w", c.binary, waitErr)
	}
	if inputErr != nil {
		return nil, fmt.Errorf("writing %s input: %w", c.binary, inputErr)
	}

	c.logger.Printf("exit status 0 (%d bytes)", outBuf.Len())
	return outBuf.Bytes(), nil
}
