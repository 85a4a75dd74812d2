package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/shelf/internal/app"
	"github.com/llehouerou/shelf/internal/catalog"
	"github.com/llehouerou/shelf/internal/config"
	"github.com/llehouerou/shelf/internal/errmsg"
	"github.com/llehouerou/shelf/internal/listing"
	"github.com/llehouerou/shelf/internal/logging"
	"github.com/llehouerou/shelf/internal/notify"
	"github.com/llehouerou/shelf/internal/view"
)

var (
	urlFlag    string
	configFlag string
	verbose    bool

	listFilter   string
	listCategory string
	listSort     string
	listDesc     bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shelf",
		Short:         "Browse a product catalogue in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runUI,
	}
	root.PersistentFlags().StringVar(&urlFlag, "url", "", "catalogue endpoint (overrides config)")
	root.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: standard locations)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	list := &cobra.Command{
		Use:   "list",
		Short: "Print the product table once and exit",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	list.Flags().StringVarP(&listFilter, "filter", "f", "", "case-insensitive filter text")
	list.Flags().StringVarP(&listCategory, "category", "c", "", "only this exact category")
	list.Flags().StringVarP(&listSort, "sort", "s", "", "sort column: title, price or category")
	list.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
	root.AddCommand(list)

	return root
}

func loadConfig() (*config.Config, error) {
	if configFlag != "" {
		return config.LoadFrom(configFlag)
	}
	return config.Load()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	path := cfg.Log.File
	if path == "" && cfg.LogEnabled() {
		p, err := config.DefaultLogPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return logging.New(logging.Options{
		Enabled: cfg.LogEnabled(),
		Path:    path,
		Level:   cfg.Log.Level,
		Verbose: verbose,
	})
}

func newClient(cfg *config.Config) *catalog.Client {
	url := cfg.Catalog.URL
	if urlFlag != "" {
		url = urlFlag
	}
	return catalog.New(url,
		catalog.WithTimeout(cfg.FetchTimeout()),
		catalog.WithUserAgent(cfg.Catalog.UserAgent),
	)
}

// fail prints a user-facing message and returns err so cobra exits non-zero.
func fail(op errmsg.Op, err error) error {
	fmt.Fprintln(os.Stderr, errmsg.Format(op, err))
	return err
}

func runUI(*cobra.Command, []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fail(errmsg.OpConfigLoad, err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return fail(errmsg.OpLoggerInit, err)
	}
	defer func() { _ = logger.Sync() }()

	client := newClient(cfg)
	logger.Info("starting",
		zap.String("url", client.URL()),
		zap.Duration("timeout", cfg.FetchTimeout()),
		zap.Bool("desktop", cfg.DesktopNotifications()))

	var notifier notify.Notifier
	if cfg.DesktopNotifications() {
		n, err := notify.New()
		if err != nil {
			logger.Warn(errmsg.Format(errmsg.OpDesktopSend, err))
		} else {
			notifier = n
		}
	}

	m := app.New(app.Options{
		Fetcher:              client,
		Logger:               logger,
		Notifier:             notifier,
		NotificationDuration: cfg.NotificationDuration(),
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fail(errmsg.OpUIRun, err)
	}
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	key, err := view.ParseSortKey(listSort)
	if err != nil {
		return fail(errmsg.OpInitialize, err)
	}
	cfg, err := loadConfig()
	if err != nil {
		return fail(errmsg.OpConfigLoad, err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return fail(errmsg.OpLoggerInit, err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	client := newClient(cfg)
	items, err := client.Fetch(ctx)
	if err != nil {
		logger.Error("fetch failed", zap.Error(err))
		return fail(errmsg.OpCatalogFetch, err)
	}
	logger.Info("fetch finished", zap.Int("items", len(items)))

	s := listing.Derive(items, listing.Options{
		Category: listCategory,
		Filter:   listFilter,
		Sort:     key,
		Desc:     listDesc,
	})
	fmt.Fprint(cmd.OutOrStdout(), listing.Render(s))
	return nil
}
