package mutengine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	semver "github.com/Masterminds/semver/v3"

	mutengineerrors "github.com/fuzzforge/mutengine/internal/errors"
)

// SupportedSchema is the config schema_version range this engine accepts.
// Bumped only on a breaking config-shape change.
const SupportedSchema = ">=1.0.0, <2.0.0"

// PriorInputSource fetches a random prior input's bytes from the corpus.
// ok is false when the corpus is empty, never an error: the Splice
// operators treat an empty corpus as a soft fall-through condition, not a
// failure.
type PriorInputSource interface {
	FetchRandomPrior() (data []byte, ok bool)
}

// Clock supplies now_ms() and the last-coverage-update timestamp the
// dispatcher reads to decide whether to force a splice.
type Clock interface {
	NowMS() uint64
	LastCovUpdateMS() uint64
}

// Config is the process-wide, read-only-during-mutation configuration.
type Config struct {
	// SchemaVersion stamps a config loaded from a file; code
	// constructing a Config directly may leave it empty.
	SchemaVersion string `json:"schema_version,omitempty"`

	MaxInputSz      int      `json:"max_input_sz"`
	MutationsPerRun uint64   `json:"mutations_per_run"`
	OnlyPrintable   bool     `json:"only_printable"`
	Dictionary      [][]byte `json:"-"`
}

// Validate checks MaxInputSz and, when SchemaVersion is set, that it
// satisfies SupportedSchema.
func (c Config) Validate() error {
	if c.MaxInputSz < 1 {
		return fmt.Errorf("mutengine: max_input_sz must be >= 1, got %d", c.MaxInputSz)
	}

	if c.SchemaVersion == "" {
		return nil
	}

	v, err := semver.NewVersion(c.SchemaVersion)
	if err != nil {
		return fmt.Errorf("mutengine: invalid schema_version %q: %w", c.SchemaVersion, err)
	}

	constraint, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return err
	}

	if !constraint.Check(v) {
		return mutengineerrors.IncompatibleSchema(c.SchemaVersion, SupportedSchema)
	}

	return nil
}

// LoadConfig reads a JSON-encoded Config from path and validates it,
// including the SchemaVersion range check. The dictionary is not part of
// the file; load it separately with LoadDictionary.
func LoadConfig(path string) (Config, error) {
	var c Config

	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}

	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("mutengine: %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}

	return c, nil
}

// LoadDictionary parses a dictionary file in either of honggfuzz's two
// accepted shapes: one raw token per line, or a double-quoted C-string
// literal per line (supporting \xHH escapes), so existing honggfuzz/AFL
// dictionaries can be reused as-is. Blank lines and lines starting with
// '#' are ignored.
func LoadDictionary(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out [][]byte

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tok, err := parseDictLine(line)
		if err != nil {
			return nil, fmt.Errorf("mutengine: %s: %w", path, err)
		}

		if len(tok) > 0 {
			out = append(out, tok)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func parseDictLine(line string) ([]byte, error) {
	if len(line) >= 2 && line[0] == '"' && line[len(line)-1] == '"' {
		return unquoteDictToken(line[1 : len(line)-1])
	}

	return []byte(line), nil
}

// unquoteDictToken decodes \xHH and \\ escapes inside a quoted dictionary
// token; any other byte is passed through literally.
func unquoteDictToken(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			out = append(out, s[i])
			continue
		}

		if i+1 >= len(s) {
			return nil, fmt.Errorf("dangling escape at end of token")
		}

		switch s[i+1] {
		case '\\':
			out = append(out, '\\')
			i++
		case 'x':
			if i+3 >= len(s) {
				return nil, fmt.Errorf("truncated \\x escape")
			}

			v, err := strconv.ParseUint(s[i+2:i+4], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid \\x escape %q: %w", s[i+2:i+4], err)
			}

			out = append(out, byte(v))
			i += 3
		default:
			out = append(out, '\\', s[i+1])
			i++
		}
	}

	return out, nil
}
