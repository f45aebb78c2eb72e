package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/coreman2200/ledring/internal/config"
	"github.com/coreman2200/ledring/internal/led"
	"github.com/coreman2200/ledring/internal/ring"
)

// app owns the ring for the life of the process.
type app struct {
	// flags
	configPath string
	driver     string
	spiPort    string
	logLevel   string
	origin     int

	defaultConfig string
	out           io.Writer
	clock         ring.Clock

	cfg     *config.Config
	drv     led.Driver
	kind    led.Kind
	strip   *led.Buffer
	display *ring.Display
}

func newApp() *app {
	return &app{
		defaultConfig: "config.yaml",
		out:           os.Stdout,
		clock:         clockwork.NewRealClock(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ledring",
		Short:         "Drive the 16 LED direction ring",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Info().
				Str("state", string(a.display.State())).
				Int("lit", a.display.Lit()).
				Msg("ring settled")
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", a.defaultConfig, "path to config.yaml")
	pf.StringVar(&a.driver, "driver", string(led.KindSPI), "driver: spi | console | sim")
	pf.StringVar(&a.spiPort, "spi-port", "", "periph SPI port name, empty for the first available")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: trace | debug | info | warn | error")

	root.AddCommand(
		a.initCmd(),
		a.calibrateCmd(),
		a.directionCmd(),
		a.demoCmd(),
	)
	return root
}

// setup loads config.yaml, applies flags the user set explicitly, then
// opens the strip.
func (a *app) setup(cmd *cobra.Command) error {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: a.out, TimeFormat: time.Kitchen})

	cfg, err := config.Load(a.configPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		log.Debug().Str("path", a.configPath).Msg("no config file; using flags")
		cfg = config.Default()
	default:
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("driver") {
		cfg.Driver = a.driver
	}
	if flags.Changed("spi-port") {
		cfg.SPI.Port = a.spiPort
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Lookup("origin") != nil && flags.Changed("origin") {
		cfg.Origin = a.origin
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.Level())
	a.cfg = cfg

	a.drv, a.kind = led.Open(led.Options{
		Kind:   led.Kind(cfg.Driver),
		Port:   cfg.SPI.Port,
		Freq:   cfg.SPI.Freq(),
		Count:  ring.NumPixels,
		Logger: log.Logger,
	})
	a.strip = led.NewBuffer(a.drv, ring.NumPixels)
	a.display = ring.New(a.strip,
		ring.WithClock(a.clock),
		ring.WithLogger(log.Logger.With().Str("driver", string(a.kind)).Logger()),
	)
	log.Info().Str("driver", string(a.kind)).Int("origin", cfg.Origin).Msg("ring ready")
	return nil
}

// run executes the command line in args. The driver is closed even when
// the command fails, since cobra skips post-run hooks after an error.
func (a *app) run(ctx context.Context, args []string) error {
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

// halt blanks the strip when the driver supports it.
func (a *app) halt() {
	h, ok := a.drv.(interface{ Halt() error })
	if !ok {
		return
	}
	if err := h.Halt(); err != nil {
		log.Warn().Err(err).Str("driver", string(a.kind)).Msg("halt failed")
	}
}

func (a *app) close() error {
	if a.drv == nil {
		return nil
	}
	return a.drv.Close()
}
