package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lookuply/webcrawler/internal/clock/system"
	"github.com/lookuply/webcrawler/internal/crawler"
	"github.com/lookuply/webcrawler/internal/extract"
	collyfetcher "github.com/lookuply/webcrawler/internal/fetcher/colly"
	"github.com/lookuply/webcrawler/internal/id/uuid"
	"github.com/lookuply/webcrawler/internal/langid"
	"github.com/lookuply/webcrawler/internal/languages"
	"github.com/lookuply/webcrawler/internal/logging"
	"github.com/lookuply/webcrawler/internal/monitor"
	"github.com/lookuply/webcrawler/internal/pipeline"
	"github.com/lookuply/webcrawler/internal/policy/ratelimit"
	"github.com/lookuply/webcrawler/internal/spider"
	"github.com/lookuply/webcrawler/pkg/config"
)

// testModeQuota caps every language at a handful of pages for smoke runs.
const testModeQuota = 10

type crawlFlags struct {
	languages     string
	maxPages      int
	outputDir     string
	testMode      bool
	listLanguages bool
	verbose       bool
}

// newCrawlCmd creates and configures the 'crawl' subcommand.
func newCrawlCmd() *cobra.Command {
	flags := &crawlFlags{}
	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Starts a crawl run",
		Long: `Seeds the frontier with the configured languages' seed URLs and
crawls until every language reaches its page quota, the frontier drains,
or the process is interrupted. Interrupts are graceful: in-flight fetches
finish and the per-run summary is still printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCrawl(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.languages, "languages", "", "comma-separated language codes to crawl (default: all 24)")
	cmd.Flags().IntVar(&flags.maxPages, "max-pages", -1, "per-language page quota (0 = unlimited)")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "directory for per-language JSONL output")
	cmd.Flags().BoolVar(&flags.testMode, "test", false, "smoke-test mode: quota of 10 pages per language")
	cmd.Flags().BoolVar(&flags.listLanguages, "list-languages", false, "print the language registry and exit")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging, including individual pipeline drops")

	return cmd
}

func runCrawl(cmd *cobra.Command, flags *crawlFlags) error {
	if flags.listLanguages {
		printLanguages(cmd)
		return nil
	}

	v, err := config.InitConfig(cfgFile)
	if err != nil {
		return err
	}
	cfg, err := crawler.LoadConfig(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	codes, err := languages.Resolve(flags.languages)
	if err != nil {
		return err
	}
	cfg.Languages = codes
	if flags.maxPages >= 0 {
		cfg.MaxPages = flags.maxPages
	}
	if flags.testMode {
		cfg.MaxPages = testModeQuota
	}
	if flags.outputDir != "" {
		cfg.OutputDir = flags.outputDir
	}

	logger, err := logging.New(cfg.LogDevelopment, flags.verbose || v.GetBool("logging.verbose"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush

	return crawlRun(cmd.Context(), cfg, logger)
}

func crawlRun(ctx context.Context, cfg crawler.Config, logger *zap.Logger) error {
	runID, err := uuid.NewUUIDGenerator().NewID()
	if err != nil {
		return fmt.Errorf("generate run id: %w", err)
	}

	sink, err := pipeline.NewJSONLSink(cfg.OutputDir, logger)
	if err != nil {
		return fmt.Errorf("init sink: %w", err)
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil {
			logger.Warn("failed to close output files", zap.Error(cerr))
		}
	}()

	stats := pipeline.NewStats()
	pipe := pipeline.New(logger,
		pipeline.NewValidation(cfg.MinTextLength),
		pipeline.NewLanguageFilter(cfg.MinConfidence, cfg.Languages),
		pipeline.NewDedup(),
		sink,
		stats,
	)

	quota := crawler.NewQuotaTracker(cfg.MaxPages, cfg.Languages)
	preferred := make(map[string][]string, len(cfg.Languages))
	for _, code := range cfg.Languages {
		preferred[code] = languages.PreferredDomains(code)
	}
	filter := crawler.NewLinkFilter(languages.GlobalBlockedDomains, languages.BlockedExtensions, preferred)
	frontier := crawler.NewFrontier(filter, quota, cfg.DepthLimit)

	logger.Info("loading language classification models")
	detector := langid.NewDetector(langid.NewLinguaClassifier())

	engine := spider.NewEngine(cfg, spider.Deps{
		Frontier: frontier,
		Quota:    quota,
		Fetcher: collyfetcher.New(collyfetcher.Config{
			UserAgent:     cfg.UserAgent,
			RespectRobots: cfg.RespectRobots,
			Timeout:       cfg.RequestTimeout,
		}),
		Robots:   crawler.NewRobotsEnforcer(cfg.RespectRobots, cfg.UserAgent, logger),
		Limiter:  ratelimit.New(cfg.PerDomainDelay),
		Content:  extract.NewContentExtractor(cfg.MinTextLength, cfg.MaxTextLength, cfg.MinParagraphLen, cfg.MaxLinksPerPage),
		Metadata: extract.NewMetadataExtractor(),
		Detector: detector,
		Pipeline: pipe,
		Stats:    stats,
		Clock:    system.New(),
		Logger:   logger,
		RunID:    runID,
	})

	var mon *monitor.Server
	if cfg.MonitorEnabled {
		mon = monitor.NewServer(cfg.MonitorAddr, stats, logger)
		go mon.Start()
	}

	logger.Info("starting crawl",
		zap.String("run_id", runID),
		zap.Strings("languages", cfg.Languages),
		zap.Int("max_pages", cfg.MaxPages),
		zap.String("output_dir", cfg.OutputDir),
	)
	runErr := engine.Run(ctx)

	if mon != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mon.Shutdown(shutdownCtx); err != nil {
			logger.Warn("monitor shutdown failed", zap.Error(err))
		}
	}

	stats.LogSummary(logger)
	return runErr
}

func printLanguages(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-6s %-12s %-16s %s\n", "CODE", "NAME", "NATIVE", "LOCALE")
	for _, code := range languages.Codes() {
		lang, _ := languages.Get(code)
		fmt.Fprintf(out, "%-6s %-12s %-16s %s\n", lang.Code, lang.Name, lang.Native, lang.Locale)
	}
}
