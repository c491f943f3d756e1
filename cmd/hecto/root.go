package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/hecto"
	"github.com/iw2rmb/hecto/editor"
	"github.com/iw2rmb/hecto/internal/log"
)

const (
	uiTcell = "tcell"
	uiTea   = "tea"
)

// options is the resolved command line: flags override HECTO_* environment
// variables, which override flag defaults.
type options struct {
	path     string
	ui       string
	debug    bool
	logFile  string
	logLevel log.Level
}

type runFunc func(opts options, out io.Writer) error

func newRootCmd(runner runFunc) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "hecto [path]",
		Short:        "A minimal terminal text editor",
		Long:         "hecto opens path (or an empty buffer) for editing.\nKeys: " + keyHelp(editor.DefaultKeyMap()),
		Version:      hecto.Version(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(v, args)
			if err != nil {
				return err
			}
			return runner(opts, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.String("ui", uiTcell, "front-end: tcell or tea")
	f.Bool("debug", false, "write a debug log and stop on input errors")
	f.String("log-file", "hecto.log", "debug log path")
	f.String("log-level", "debug", "minimum debug log level: debug, info, warn or error")

	v.SetEnvPrefix("HECTO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(f)

	return cmd
}

func loadOptions(v *viper.Viper, args []string) (options, error) {
	opts := options{
		ui:      strings.ToLower(strings.TrimSpace(v.GetString("ui"))),
		debug:   v.GetBool("debug"),
		logFile: v.GetString("log-file"),
	}
	if len(args) > 0 {
		opts.path = args[0]
	}

	switch opts.ui {
	case uiTcell, uiTea:
	default:
		return options{}, fmt.Errorf("unknown --ui %q (want %s or %s)", opts.ui, uiTcell, uiTea)
	}
	level, err := log.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return options{}, err
	}
	opts.logLevel = level

	if opts.debug && opts.logFile == "" {
		return options{}, fmt.Errorf("--debug needs a --log-file")
	}
	return opts, nil
}

func keyHelp(km editor.KeyMap) string {
	parts := make([]string, 0, 2)
	for _, b := range km.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, ", ")
}
