package organize

import (
	"path/filepath"
	"sort"
	"time"

	"github.com/arthur-debert/organizer/pkg/classifier"
	"github.com/arthur-debert/organizer/pkg/errors"
	"github.com/arthur-debert/organizer/pkg/filesystem"
	"github.com/arthur-debert/organizer/pkg/logging"
	"github.com/arthur-debert/organizer/pkg/relocator"
	"github.com/arthur-debert/organizer/pkg/types"
)

// Options holds options for a run
type Options struct {
	// InputDir is scanned non-recursively.
	InputDir string
	// OutputDir is the destination root; defaults to InputDir.
	OutputDir    string
	Rules        classifier.Ruleset
	IgnoreHidden bool
	DryRun       bool
	// SkipNames are file names left alone, such as the tool's own binary.
	SkipNames []string
	// OnOutcome, when set, is called after each file is processed.
	OnOutcome func(relocator.Outcome)
	// FileSystem allows injecting a filesystem for testing
	FileSystem types.FS
}

// Result is the outcome of a run.
type Result struct {
	InputDir  string              `json:"input_dir"`
	OutputDir string              `json:"output_dir"`
	DryRun    bool                `json:"dry_run"`
	Outcomes  []relocator.Outcome `json:"outcomes"`
	Summary   Summary             `json:"summary"`
}

// Run organizes every regular file directly inside opts.InputDir. Only
// problems with the input directory are returned as errors; per-file
// failures are recorded in the result.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("organize")
	done := logging.LogOperationStart(logger, "organize")
	defer done()
	start := time.Now()

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	input := filepath.Clean(opts.InputDir)
	output := opts.OutputDir
	if output == "" {
		output = input
	}
	output = filepath.Clean(output)

	info, err := fsys.Stat(input)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputDir, "cannot access input directory %s", input).
			WithDetail("path", input)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInputDir, "input path %s is not a directory", input).
			WithDetail("path", input)
	}

	entries, err := fsys.ReadDir(input)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputDir, "cannot read input directory %s", input).
			WithDetail("path", input)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	logger.Info().
		Str("input", input).
		Str("output", output).
		Int("entries", len(entries)).
		Bool("dryRun", opts.DryRun).
		Msg("Organizing directory")

	skip := make(map[string]bool, len(opts.SkipNames))
	for _, name := range opts.SkipNames {
		skip[name] = true
	}

	rel := relocator.New(fsys)
	result := &Result{InputDir: input, OutputDir: output, DryRun: opts.DryRun}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || skip[name] {
			logger.Trace().Str("name", name).Bool("dir", entry.IsDir()).Msg("Skipping entry")
			result.Summary.Skipped++
			continue
		}

		source := filepath.Join(input, name)
		category := classifier.Classify(name, opts.Rules)

		var out relocator.Outcome
		if opts.DryRun {
			out = rel.Plan(source, output, category, opts.IgnoreHidden)
		} else {
			out = rel.Organize(source, output, category, opts.IgnoreHidden)
		}

		result.Outcomes = append(result.Outcomes, out)
		result.Summary.Add(out)
		if opts.OnOutcome != nil {
			opts.OnOutcome(out)
		}
	}

	result.Summary.Duration = time.Since(start)

	logger.Info().
		Int("moved", result.Summary.Moved).
		Int("renamed", result.Summary.Renamed).
		Int("ignored", result.Summary.Ignored).
		Int("failed", result.Summary.Failed).
		Int("skipped", result.Summary.Skipped).
		Dur("duration", result.Summary.Duration).
		Msg("Organize complete")

	return result, nil
}
