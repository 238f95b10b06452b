package dump

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// dumperCandidates executable names probed for the DWARF dumper, the
// unversioned name first, then the version-suffixed ones distros install.
var dumperCandidates = []string{
	"llvm-dwarfdump",
	"llvm-dwarfdump-15",
	"llvm-dwarfdump-14",
	"llvm-dwarfdump-13",
	"llvm-dwarfdump-12",
	"llvm-dwarfdump-11",
}

// ErrToolUnavailable no usable llvm-dwarfdump executable on this host.
// Fatal for the whole session: no query can run without the dumper.
type ErrToolUnavailable struct {
	Candidates []string
}

func (e *ErrToolUnavailable) Error() string {
	return fmt.Sprintf("llvm-dwarfdump not found in PATH (tried %s)",
		strings.Join(e.Candidates, ", "))
}

// DiscoverDumper resolves the DWARF dumper executable, trying any
// caller-supplied names before the built-in candidate list and returning
// the first one found in PATH.
func DiscoverDumper(extra ...string) (string, error) {
	names := make([]string, 0, len(extra)+len(dumperCandidates))
	for _, name := range extra {
		if name != "" {
			names = append(names, name)
		}
	}
	names = append(names, dumperCandidates...)

	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			logrus.WithField("dumper", path).Debug("dumper resolved")
			return path, nil
		}
	}
	return "", &ErrToolUnavailable{Candidates: names}
}
