package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/rawvalue/odatapath"
	"github.com/wippyai/rawvalue/serializer"
	"github.com/wippyai/rawvalue/sink"
	"github.com/wippyai/rawvalue/types"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds state shared by all commands, filled in by setup.
type app struct {
	log        *zap.Logger
	ser        *serializer.Serializer
	reg        *types.Registry
	configPath string
	nullPolicy string
	timeZone   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "rawvalue",
		Short:         "Render scalar values as raw value payloads",
		Long:          "Renders a single scalar value the way a $value or $count response body carries it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML file declaring enums and serializer defaults")
	pf.StringVar(&a.nullPolicy, "null-policy", "", "what a null value produces: reject or empty")
	pf.StringVar(&a.timeZone, "tz", "", "observer time zone for datetime values (IANA name, Local or UTC)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log serializer decisions to stderr")

	root.AddCommand(newFormatCmd(a), newTypesCmd(a), newInteractiveCmd(a))
	return root
}

// setup builds the logger, registry and serializer. Flags override the
// config file.
func (a *app) setup(cmd *cobra.Command) error {
	a.log = zap.NewNop()
	if a.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		a.log = l
	}
	types.SetLogger(a.log)

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("null-policy") {
		cfg.NullPolicy = a.nullPolicy
	}
	if cmd.Flags().Changed("tz") {
		cfg.TimeZone = a.timeZone
	}

	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	opts, err := cfg.options()
	if err != nil {
		return err
	}
	opts.Registry = reg
	opts.Logger = a.log

	a.reg = reg
	a.ser = serializer.New(opts)
	a.log.Debug("configured",
		zap.String("config", a.configPath),
		zap.Stringer("nullPolicy", opts.NullPolicy),
		zap.String("location", locationName(opts.Location)),
		zap.Strings("enums", reg.Names()))
	return nil
}

// request describes one value to render.
type request struct {
	declared *types.Descriptor
	text     string
	null     bool
	count    bool
}

// countPath is the path used to simulate a $count request.
var countPath = odatapath.Path{odatapath.EntitySet("Items"), odatapath.Count()}

// write renders req into a single-payload sink.
func (a *app) write(req request, out *sink.Buffer) error {
	var ctx odatapath.Context
	if req.count {
		ctx = odatapath.NewContext(countPath)
	}

	var (
		v   any
		err error
	)
	switch {
	case req.null:
		v = nil
	case req.count:
		v, err = parseCount(req.text)
	default:
		if req.declared == nil {
			return fmt.Errorf("--type is required unless --count is set")
		}
		v, err = parseValue(req.text, req.declared)
	}
	if err != nil {
		return err
	}
	return a.ser.WriteObject(v, req.declared, out, ctx)
}

// render is write into a fresh buffer.
func (a *app) render(req request) (string, error) {
	buf := sink.NewBuffer()
	if err := a.write(req, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// emit copies payload to w, adding a newline for interactive terminals.
func emit(w io.Writer, payload string) error {
	if err := sink.Writer(w).WriteRaw(payload); err != nil {
		return err
	}
	if isTerminal(w) {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func locationName(loc *time.Location) string {
	if loc == nil {
		return "Local"
	}
	return loc.String()
}
