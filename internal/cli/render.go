package cli

// This file implements the "render" command: it builds a chain from its
// arguments (last argument innermost) and renders it to stdout.

import (
	"errors"
	"fmt"
	"io"
	"strings"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xgx-io/errchain"
	"github.com/xgx-io/errchain/internal/config"
	"github.com/xgx-io/errchain/promalloc"
	"github.com/xgx-io/errchain/zapchain"
)

// ErrRender is returned when the chain could not be written to the output.
var ErrRender = errors.New("render failed")

// escapes turns the escape sequences users type on a shell into bytes.
var escapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\\`, `\`)

type renderOptions struct {
	configPath string
	header     string
	trailer    string
	maxLen     int
	metrics    bool
}

// NewRenderCmd returns the render subcommand.
func NewRenderCmd(logger *zap.Logger) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [MESSAGE...]",
		Short: "Build an error chain from messages and render it",
		Long: `Build an error chain from the given messages and render it.
The first message is the outermost context, the last one the root cause:

  errchain render --header "[ERR] " "load profile" "dial db" "connection refused"
  [ERR] load profile: dial db: connection refused`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runRender(cmd.OutOrStdout(), cmd.ErrOrStderr(), logger, cfg, args)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&opts.header, "header", "", `Text printed before the chain (supports \n, \t)`)
	cmd.Flags().StringVar(&opts.trailer, "trailer", `\n`, `Text printed after the chain (supports \n, \t)`)
	cmd.Flags().IntVar(&opts.maxLen, "max-len", errchain.MaxLen, "Maximum message size in bytes, including the terminator slot")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Write allocator metrics to stderr in Prometheus text format after destroying the chain")

	return cmd
}

// resolveConfig applies, in order: defaults, the config file, changed flags.
func resolveConfig(cmd *cobra.Command, opts renderOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("header") {
		cfg.Header = opts.header
	}
	if flags.Changed("trailer") {
		cfg.Trailer = opts.trailer
	}
	if flags.Changed("max-len") {
		cfg.MaxLen = opts.maxLen
	}
	if flags.Changed("metrics") {
		cfg.Metrics = opts.metrics
	}
	cfg.Header = escapes.Replace(cfg.Header)
	cfg.Trailer = escapes.Replace(cfg.Trailer)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runRender(stdout, stderr io.Writer, logger *zap.Logger, cfg config.Config, messages []string) error {
	opts := cfg.FactoryOptions()
	var reg *prom.Registry
	if cfg.Metrics {
		reg = prom.NewRegistry()
		opts = append(opts, errchain.WithAllocator(promalloc.New(errchain.HeapAllocator{}, reg)))
	}
	f := errchain.NewFactory(opts...)

	e := buildChain(f, messages)
	defer func() {
		errchain.Destroy(e)
		if reg != nil {
			if err := writeMetrics(stderr, reg); err != nil {
				logger.Warn("failed to write metrics", zap.Error(err))
			}
		}
	}()

	logger.Debug("built chain", zap.Int("depth", errchain.Len(e)), zapchain.Chain("messages", e))
	if errchain.IsSentinel(e) {
		zapchain.Log(logger, zap.WarnLevel, "chain degraded to sentinel", e)
	}

	if rc := errchain.Fprint(stdout, cfg.Header, e, cfg.Trailer); rc < 0 {
		return fmt.Errorf("%w: status %d", ErrRender, rc)
	}
	return nil
}

// writeMetrics dumps every family in reg in the Prometheus text format.
func writeMetrics(w io.Writer, reg prom.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

// buildChain wraps from the last message outwards. No messages yields nil,
// which renders as the Empty sentinel.
func buildChain(f *errchain.Factory, messages []string) *errchain.Error {
	var e *errchain.Error
	for i := len(messages) - 1; i >= 0; i-- {
		if e == nil {
			e = f.New(messages[i])
			continue
		}
		e = f.Wrap(e, messages[i])
	}
	return e
}
