// Package dump invokes the external binary-inspection tools (nm,
// llvm-dwarfdump) and captures their standard output as line sequences.
package dump

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Runner runs an external tool and returns its standard output as lines.
type Runner interface {
	Run(name string, args []string, stdin []byte) ([]string, error)
}

// ExecRunner runs tools via os/exec. The zero value is ready to use and
// may be shared; it keeps no state besides an invocation counter.
type ExecRunner struct {
	count atomic.Int64
}

// Run executes name with args, feeding stdin when non-nil. A non-zero exit
// status is an error carrying the tool's stderr, never an empty result: an
// empty line sequence always means the tool ran fine and printed nothing.
func (r *ExecRunner) Run(name string, args []string, stdin []byte) ([]string, error) {
	r.count.Inc()

	cmd := exec.Command(name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logrus.WithFields(logrus.Fields{"tool": name, "args": args}).Debug("run external tool")

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("run %s: %v: %s", name, err, msg)
		}
		return nil, fmt.Errorf("run %s: %w", name, err)
	}
	return SplitLines(stdout.String()), nil
}

// Count returns how many tool invocations this runner has performed.
func (r *ExecRunner) Count() int64 {
	return r.count.Load()
}

// SplitLines splits captured tool output into lines without the trailing
// newline, returning nil for empty output.
func SplitLines(out string) []string {
	out = strings.TrimSuffix(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
