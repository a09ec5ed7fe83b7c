// Command mutengine-run is a demo CLI that drives the content-mutation
// engine against a small pluggable target for a fixed duration, printing
// locale-aware execution statistics.
package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"

	"github.com/fuzzforge/mutengine/internal/corpus"
	"github.com/fuzzforge/mutengine/internal/harness"
	"github.com/fuzzforge/mutengine/internal/mutengine"
)

func main() {
	var (
		dur         time.Duration
		maxInput    int
		concurrency int
		mutations   uint64
		printable   bool
		dictPath    string
		configPath  string
		corpusDir   string
		corpusOut   string
		crashPath   string
		lang        string
		target      string
	)

	flag.DurationVar(&dur, "duration", 5*time.Second, "fuzzing duration")
	flag.IntVar(&maxInput, "max", 4096, "max input size")
	flag.IntVar(&concurrency, "p", 1, "parallel workers")
	flag.Uint64Var(&mutations, "mutations", 6, "mutations per run")
	flag.BoolVar(&printable, "printable", false, "restrict mutations to printable ASCII")
	flag.StringVar(&dictPath, "dict", "", "optional dictionary file (honggfuzz/AFL format)")
	flag.StringVar(&configPath, "config", "", "optional JSON config file (overrides -max/-mutations/-printable)")
	flag.StringVar(&corpusDir, "corpus-dir", "", "optional corpus directory to splice from")
	flag.StringVar(&corpusOut, "corpus-out", "", "optional directory to save every distinct generated input")
	flag.StringVar(&crashPath, "out", "", "optional crash log output file")
	flag.StringVar(&lang, "lang", "en", "message language (ja|en)")
	flag.StringVar(&target, "target", "noop", "target selector (noop|balanced|utf8)")
	flag.Parse()

	p := newPrinter(lang)

	cfg := mutengine.Config{
		MaxInputSz:      maxInput,
		MutationsPerRun: mutations,
		OnlyPrintable:   printable,
	}

	if configPath != "" {
		loaded, err := mutengine.LoadConfig(configPath)
		if err != nil {
			fatal(p, err)
		}

		cfg = loaded
		maxInput = cfg.MaxInputSz
	}

	if dictPath != "" {
		dict, err := mutengine.LoadDictionary(dictPath)
		if err != nil {
			fatal(p, err)
		}

		cfg.Dictionary = dict
	}

	if err := cfg.Validate(); err != nil {
		fatal(p, err)
	}

	var prior mutengine.PriorInputSource

	if corpusDir != "" {
		w, err := corpus.NewWatcher(corpusDir)
		if err != nil {
			fatal(p, err)
		}

		defer w.Close()
		prior = w
	}

	tgt := selectTarget(target)

	var crashFile *os.File

	if crashPath != "" {
		f, err := os.Create(crashPath)
		if err != nil {
			fatal(p, err)
		}

		defer f.Close()
		crashFile = f
	}

	wrapped := tgt
	if corpusOut != "" {
		wrapped = dedupingTarget(tgt, corpusOut)
	}

	opts := harness.Options{
		Duration:    dur,
		MaxInput:    maxInput,
		Concurrency: concurrency,
		Config:      cfg,
		Prior:       prior,
	}

	start := time.Now()
	stats := harness.Run(context.Background(), opts, []byte("SEED"), wrapped, crashFile)
	elapsed := time.Since(start)

	p.Printf("executions: %v\n", number.Decimal(stats.Executions))
	p.Printf("crashes: %v\n", number.Decimal(stats.Crashes))
	p.Printf("duration: %s\n", elapsed.Truncate(time.Millisecond))
}

// selectTarget builds one of a handful of small self-contained targets for
// the demo CLI to fuzz; none of these belong to the mutation engine's
// public surface.
func selectTarget(kind string) harness.Target {
	switch strings.ToLower(kind) {
	case "balanced":
		return func(data []byte) error {
			depth := 0

			for _, c := range data {
				switch c {
				case '(', '[', '{':
					depth++
				case ')', ']', '}':
					depth--
					if depth < 0 {
						return fmt.Errorf("unbalanced delimiter at negative depth")
					}
				}
			}

			if depth != 0 {
				return fmt.Errorf("unbalanced delimiters: depth=%d", depth)
			}

			return nil
		}
	case "utf8":
		return func(data []byte) error {
			for i := 0; i < len(data); {
				r := data[i]
				switch {
				case r < 0x80:
					i++
				case r&0xE0 == 0xC0:
					i += 2
				case r&0xF0 == 0xE0:
					i += 3
				case r&0xF8 == 0xF0:
					i += 4
				default:
					return fmt.Errorf("invalid utf8 lead byte at %d", i)
				}

				if i > len(data) {
					return fmt.Errorf("truncated utf8 sequence")
				}
			}

			return nil
		}
	default:
		return func(data []byte) error { return nil }
	}
}

// dedupingTarget saves each distinct candidate to dir once, before the
// inner target runs, named by the first 8 bytes of its blake2b-256 digest.
func dedupingTarget(inner harness.Target, dir string) harness.Target {
	_ = os.MkdirAll(dir, 0o755)

	return func(data []byte) error {
		sum := blake2b.Sum256(data)
		name := fmt.Sprintf("%x.bin", sum[:8])
		path := filepath.Join(dir, name)

		if _, err := os.Stat(path); err != nil {
			// Atomic rename-into-place so a concurrent corpus reader never
			// observes a partially written file.
			_ = atomic.WriteFile(path, bytes.NewReader(data))
		}

		return inner(data)
	}
}

func newPrinter(lang string) *message.Printer {
	var tag language.Tag

	switch strings.ToLower(lang) {
	case "ja", "jp", "japanese":
		tag = language.Japanese
	default:
		tag = language.English
	}

	cat := catalog.NewBuilder()
	_ = cat.SetString(language.Japanese, "executions: %v\n", "実行回数: %v\n")
	_ = cat.SetString(language.Japanese, "crashes: %v\n", "クラッシュ数: %v\n")
	_ = cat.SetString(language.Japanese, "duration: %s\n", "経過時間: %s\n")

	return message.NewPrinter(tag, message.Catalog(cat))
}

func fatal(p *message.Printer, err error) {
	p.Fprintf(os.Stderr, "mutengine-run: %v\n", err)
	os.Exit(1)
}
