package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ytget/vdio/internal/config"
	"github.com/ytget/vdio/internal/download"
	"github.com/ytget/vdio/internal/logging"
	"github.com/ytget/vdio/internal/model"
	"github.com/ytget/vdio/internal/platform"
)

// ErrRunFailed is returned when a download did not succeed
var ErrRunFailed = errors.New("download did not succeed")

// Options holds the command line flags
type Options struct {
	Dir        string
	Yes        bool
	Executable string
	LogLevel   string
	ConfigPath string
}

// NewRootCommand builds the vdio command
func NewRootCommand(version string) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:     "vdio [url]",
		Short:   "Download a video into a folder named after its title",
		Long:    "vdio resolves the title of a video with yt-dlp, creates a folder named after it under the save directory, asks before replacing earlier downloads of the same title and streams the yt-dlp output.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := ""
			if len(args) == 1 {
				url = strings.TrimSpace(args[0])
			}
			logging.Setup(opts.LogLevel, cmd.ErrOrStderr())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			notifier := NewTerminalNotifier(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.Yes)
			return Run(ctx, url, opts, notifier)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", "", "save directory (default: last used, or ~/Downloads)")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "delete existing files of the same title without asking")
	cmd.Flags().StringVar(&opts.Executable, "executable", "", "yt-dlp executable (default: from config, or yt-dlp)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file (default: <user config dir>/vdio/config.json)")

	return cmd
}

// Run performs one download with notifier and returns ErrRunFailed wrapped
// with the outcome when it did not succeed.
func Run(ctx context.Context, url string, opts *Options, notifier download.Notifier) error {
	log := logging.Component("cli")

	if url == "" {
		return fmt.Errorf("URL not set")
	}

	store, err := openStore(opts.ConfigPath, log)
	if err != nil {
		return err
	}

	saveDir, executable := resolveSettings(store, opts, log)
	fetcher := download.NewProcessFetcher(executable)
	if _, err := fetcher.LookPath(); err != nil {
		return err
	}

	orchestrator := download.NewOrchestrator(fetcher,
		platform.NewOSFileSystem(logging.Component("fs")),
		notifier,
		download.WithLogger(logging.Component("download")))

	outcome := orchestrator.Run(ctx, model.DownloadRequest{URL: url, RootDir: saveDir})
	log.WithFields(logrus.Fields{"status": outcome.Status, "exit_code": outcome.ExitCode}).Info("Done")
	if !outcome.Status.IsSuccess() {
		return fmt.Errorf("%w: %s", ErrRunFailed, outcome.Message())
	}
	return nil
}

// resolveSettings picks the save directory and executable, preferring flags
// over stored values. A --dir flag is persisted for the next run.
func resolveSettings(store config.Store, opts *Options, log *logrus.Entry) (saveDir, executable string) {
	saveDir = strings.TrimSpace(opts.Dir)
	if saveDir == "" {
		saveDir = store.SaveDirectory()
	} else if err := store.SetSaveDirectory(saveDir); err != nil {
		log.WithError(err).Debug("Save directory not persisted")
	}

	executable = strings.TrimSpace(opts.Executable)
	if executable == "" {
		executable = store.Executable()
	}
	return saveDir, executable
}

func openStore(path string, log *logrus.Entry) (config.Store, error) {
	if path == "" {
		var err error
		if path, err = config.DefaultFilePath(); err != nil {
			return nil, err
		}
	}
	return config.LoadFileStore(path, log), nil
}
