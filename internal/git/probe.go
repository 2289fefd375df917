package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

const (
	defaultTimeout   = 5 * time.Second
	defaultMaxOutput = 1 << 20 // 1 MiB of stdout is plenty for any query we run
)

// Probe describes one bounded git query: the arguments passed to the git
// binary, a timeout budget, and a cap on how much stdout is captured.
type Probe struct {
	Args      []string
	Timeout   time.Duration
	MaxOutput int
}

// Result is the outcome of running a probe. A probe that times out, exits
// non-zero, or cannot run at all (git missing, no repository) yields
// OK=false with empty output. Probes never return errors; each metric built
// on top of one degrades to its own worst-case default instead.
type Result struct {
	OK     bool
	Output string
}

// Lines splits the captured output into non-empty trimmed lines.
func (r Result) Lines() []string {
	if !r.OK || r.Output == "" {
		return nil
	}
	raw := strings.Split(r.Output, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// FirstLine returns the first non-empty line of output, or "".
func (r Result) FirstLine() string {
	lines := r.Lines()
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

// Run executes the probe in dir. The process is killed when the timeout
// elapses; stdout beyond MaxOutput is discarded rather than failing the
// probe, so truncated output still parses line by line from the top.
func (p Probe) Run(ctx context.Context, dir string) Result {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxOutput := p.MaxOutput
	if maxOutput <= 0 {
		maxOutput = defaultMaxOutput
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", p.Args...)
	cmd.Dir = dir

	var stdout bytes.Buffer
	cmd.Stdout = &capWriter{buf: &stdout, limit: maxOutput}

	if err := cmd.Run(); err != nil {
		return Result{}
	}
	return Result{OK: true, Output: stdout.String()}
}

// capWriter accepts writes up to limit bytes and silently discards the
// rest, so a chatty git command still exits cleanly.
type capWriter struct {
	buf   *bytes.Buffer
	limit int
}

func (w *capWriter) Write(p []byte) (int, error) {
	remaining := w.limit - w.buf.Len()
	if remaining > 0 {
		if len(p) > remaining {
			w.buf.Write(p[:remaining])
		} else {
			w.buf.Write(p)
		}
	}
	return len(p), nil
}
