package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/seqkit/foundation/core/config"
	mdwerror "github.com/msto63/seqkit/foundation/core/error"
	mdwerrors "github.com/msto63/seqkit/foundation/core/errors"
	mdwlog "github.com/msto63/seqkit/foundation/core/log"
	"github.com/msto63/seqkit/foundation/utils/filex"
	"github.com/msto63/seqkit/foundation/utils/seqx"
	mdwstringx "github.com/msto63/seqkit/foundation/utils/stringx"
	"github.com/msto63/seqkit/internal/textio"
)

// exit status for flag and argument errors reported by cobra
const exitUsage = 2

var configRules = config.ValidationRules{
	"seqx.classifier": {Type: "string", OneOf: []string{"unicode", "ascii", "c"}, Default: "unicode"},
	"cli.encoding":    {Type: "string", OneOf: textio.Names(), Default: "utf-8"},
	"cli.wide":        {Type: "bool"},
	"log.level":       {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "audit"}, Default: "warn"},
	"log.format":      {Type: "string", OneOf: []string{"text", "json", "console", "logfmt"}, Default: "text"},
}

type options struct {
	cfgFile  string
	verbose  bool
	encoding string
	wide     bool
	file     string
}

// app carries the state shared by all subcommands of one invocation
type app struct {
	opts options

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg        *config.Config
	logger     *mdwlog.Logger
	classifier seqx.Classifier
	encoding   textio.Encoding
	wide       bool
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "seqkit",
		Short: "Python-style slicing, search and segmentation of text",
		Long: `seqkit applies Python's sequence and string methods to text.

The haystack is the last argument or the content of --file ("-" reads
stdin). Text is processed as narrow code units (bytes of the selected
encoding) or, with --wide, as UTF-16 code units, so every index printed
is a code-unit offset.

Configuration is read from seqkit.toml or seqkit.yaml in ., ./configs or
~/.config/seqkit and can be overridden with SEQKIT_* variables, e.g.
SEQKIT_SEQX_CLASSIFIER=ascii.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.opts.cfgFile, "config", "", "config file (default: discovered seqkit.toml|yaml)")
	root.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().StringVarP(&a.opts.encoding, "encoding", "e", "", "input encoding: utf-8, latin1, utf-16le, utf-16be")
	root.PersistentFlags().BoolVarP(&a.opts.wide, "wide", "w", false, "operate on UTF-16 code units")
	root.PersistentFlags().StringVarP(&a.opts.file, "file", "f", "", "read the haystack from a file (- for stdin)")

	root.AddCommand(
		newSliceCmd(a),
		newAtCmd(a),
		newSearchCmd(a, "find", "Lowest index of NEEDLE, or -1"),
		newSearchCmd(a, "rfind", "Highest index of NEEDLE, or -1"),
		newSearchCmd(a, "index", "Lowest index of NEEDLE, failing when absent"),
		newSearchCmd(a, "rindex", "Highest index of NEEDLE, failing when absent"),
		newSearchCmd(a, "count", "Number of non-overlapping occurrences of NEEDLE"),
		newAffixCmd(a, "startswith"),
		newAffixCmd(a, "endswith"),
		newSplitCmd(a),
		newPartitionCmd(a),
		newStripCmd(a),
		newLinesCmd(a),
		newTranslateCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{
		in:     in,
		out:    out,
		errOut: errOut,
		logger: mdwlog.New().WithOutput(errOut),
	}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.Execute(); err != nil {
		return a.fail(err)
	}
	return 0
}

func (a *app) fail(err error) int {
	a.logger.LogError(err)
	fmt.Fprintf(a.errOut, "Error: %v\n", err)

	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		return mdwErr.Code().ExitCode()
	}
	return exitUsage
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules); err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := mdwlog.ParseLevel(cfg.GetString("log.level"))
	if a.opts.verbose {
		level = mdwlog.LevelDebug
	}
	format, _ := mdwlog.ParseFormat(cfg.GetString("log.format"))
	a.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: a.errOut,
		Name:   "seqkit",
	}).WithCorrelationID(uuid.NewString()).WithField("command", cmd.Name())

	a.classifier, err = seqx.ClassifierByName(cfg.GetString("seqx.classifier"))
	if err != nil {
		return err
	}

	a.encoding, err = textio.Lookup(mdwstringx.FirstNonBlank(a.opts.encoding, cfg.GetString("cli.encoding")))
	if err != nil {
		return err
	}

	a.wide = a.opts.wide
	if f := cmd.Flag("wide"); f == nil || !f.Changed {
		a.wide = cfg.GetBool("cli.wide")
	}
	if a.encoding.Wide && !a.wide {
		a.logger.Debug("encoding has no narrow form, using UTF-16 code units",
			mdwlog.String("encoding", a.encoding.Name))
		a.wide = true
	}

	a.logger.Debug("configuration loaded", mdwlog.Fields{
		"config":     cfg.FilePath(),
		"encoding":   a.encoding.Name,
		"wide":       a.wide,
		"classifier": cfg.GetString("seqx.classifier"),
	})
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	options := config.DefaultDiscoveryOptions()
	if a.opts.cfgFile == "" {
		return config.Discover(options)
	}
	return config.LoadWithOptions(filex.ExpandHome(a.opts.cfgFile), config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
}

// open reads the haystack from --file or the remaining argument and binds
// it to a session of the configured code-unit width
func (a *app) open(rest []string) (runner, error) {
	hay, err := a.haystack(rest)
	if err != nil {
		return nil, err
	}
	if a.wide {
		return newSession[uint16](hay, wideCodec{}, a.classifier)
	}
	return newSession[byte](hay, narrowCodec{enc: a.encoding}, a.classifier)
}

func (a *app) haystack(rest []string) (string, error) {
	if a.opts.file == "" {
		if len(rest) == 0 {
			return "", mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "input", "", "a HAYSTACK argument or --file")
		}
		return rest[0], nil
	}
	if len(rest) > 0 {
		return "", mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "input", rest[0], "either a HAYSTACK argument or --file, not both")
	}

	if a.opts.file == "-" {
		return a.encoding.Decode(a.in)
	}

	f, err := filex.Open(a.opts.file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if size, err := filex.Size(f.Name()); err == nil {
		a.logger.Debug("reading haystack", mdwlog.Fields{
			"file": f.Name(),
			"size": filex.FormatSize(size),
		})
	}
	return a.encoding.Decode(f)
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) printQuoted(values ...string) {
	for _, v := range values {
		fmt.Fprintf(a.out, "%q\n", v)
	}
}
