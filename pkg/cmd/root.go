package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alibaba/arraystack/pkg/shell"
	"github.com/alibaba/arraystack/pkg/stack"
)

// rootCmd represents the base command when called without any subcommands
var (
	rootCmd = &cobra.Command{
		Use:          "arraystack",
		Short:        "fixed capacity integer stack driven by a text menu",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = loadConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			if debug {
				config.LogLevel = "debug"
			}
			if err := config.Validate(); err != nil {
				return err
			}
			logLevel, _ := log.ParseLevel(config.LogLevel)
			log.SetLevel(logLevel)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), config, bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
		},
	}

	debug      bool
	configPath string
	config     *Config
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path for arraystack")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug log information")
	addConfigFlags(rootCmd.PersistentFlags())
}

func run(ctx context.Context, cfg *Config, in *bufio.Reader, out io.Writer) error {
	capacity := cfg.Capacity
	if capacity == 0 && !cfg.capacitySet {
		var err error
		capacity, err = readCapacity(ctx, in, out)
		if err != nil {
			return err
		}
	}

	st, err := stack.New(capacity)
	if err != nil {
		return err
	}
	log.Debugf("created stack with capacity %d", capacity)

	format, err := shell.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	metrics := shell.NewMetrics()

	err = shell.New(st, in, out, shell.WithFormat(format), shell.WithMetrics(metrics)).Run(ctx)

	if cfg.MetricsFile != "" {
		if werr := writeMetrics(cfg.MetricsFile, metrics); werr != nil {
			log.Errorf("failed write metrics: %v", werr)
		}
	}
	return err
}

func readCapacity(ctx context.Context, in *bufio.Reader, out io.Writer) (int, error) {
	fmt.Fprint(out, "Enter size of stack: ")
	line, err := shell.ReadLine(ctx, in)
	if err != nil {
		return 0, fmt.Errorf("failed read stack size: %w", err)
	}
	capacity, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid stack size %q", line)
	}
	return capacity, nil
}

func writeMetrics(path string, m *shell.Metrics) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := m.WriteTo(f); err != nil {
		return err
	}
	log.Infof("metrics have been saved to %s", path)
	return nil
}
