// Package cli implementa el binario "shelter": la recepción interactiva del
// refugio, en proceso o contra una API remota.
package cli

import (
	"fmt"
	"time"

	"animal-shelter/internal/client"
	"animal-shelter/internal/platform/config"
	"animal-shelter/internal/platform/logger"
	"animal-shelter/internal/shelter"

	"github.com/spf13/cobra"
)

const (
	exitSuccess   = 0
	exitUserError = 1

	clientTimeout = 10 * time.Second
)

// Version se pisa en build con -ldflags "-X animal-shelter/internal/cli.Version=...".
var Version = "dev"

// state es lo que comparten los subcomandos después de PersistentPreRunE.
type state struct {
	configPath string
	server     string
	verbose    bool

	cfg config.Config
	log logger.Logger
}

// NewRootCmd arma "shelter" con sus flags globales y subcomandos.
func NewRootCmd() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:           "shelter",
		Short:         "Animal shelter front desk",
		Long:          "shelter registers animals, staff and adopters and walks through an adoption,\neither in-process or against a running shelter API (--server).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&st.configPath, "config", "", "config file (yaml)")
	root.PersistentFlags().StringVar(&st.server, "server", "", "shelter API base URL (default: in-process)")
	root.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "log business events to stderr")

	root.AddCommand(newSessionCmd(st))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute corre el comando raíz y devuelve el código de salida.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		return exitUserError
	}
	return exitSuccess
}

func (st *state) load(cmd *cobra.Command) error {
	cfg, err := config.Load(st.configPath)
	if err != nil {
		return err
	}
	if st.server != "" {
		cfg.Server = st.server
	}
	st.cfg = cfg

	// El prompt va por stdout; los logs nunca se mezclan con él.
	level := logger.Warn
	if st.verbose {
		level = logger.ParseLevel(cfg.LogLevel)
	}
	st.log = logger.New(logger.Options{
		Level:  level,
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Output: cmd.ErrOrStderr(),
	})
	return nil
}

func (st *state) desk() (Desk, error) {
	if st.cfg.Server == "" {
		return shelter.NewInMemory(st.log), nil
	}
	c, err := client.New(st.cfg.Server, clientTimeout)
	if err != nil {
		return nil, fmt.Errorf("server %q: %w", st.cfg.Server, err)
	}
	st.log.Debug("using remote shelter", map[string]any{"server": st.cfg.Server})
	return c, nil
}
