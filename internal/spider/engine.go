// Package spider orchestrates a crawl run: it seeds the frontier, drives
// the worker pool, and moves each response through extraction, language
// detection, and the item pipeline.
package spider

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/lookuply/webcrawler/internal/crawler"
	"github.com/lookuply/webcrawler/internal/extract"
	"github.com/lookuply/webcrawler/internal/langid"
	"github.com/lookuply/webcrawler/internal/languages"
	"github.com/lookuply/webcrawler/internal/metrics"
	"github.com/lookuply/webcrawler/internal/pipeline"
	"github.com/lookuply/webcrawler/internal/policy/ratelimit"
)

// Engine ties the crawl components together. Construct one per run.
type Engine struct {
	cfg      crawler.Config
	frontier *crawler.Frontier
	quota    *crawler.QuotaTracker
	fetcher  crawler.Fetcher
	robots   crawler.RobotsPolicy
	limiter  *ratelimit.Limiter
	content  *extract.ContentExtractor
	metadata *extract.MetadataExtractor
	detector *langid.Detector
	pipe     *pipeline.Pipeline
	stats    *pipeline.Stats
	clock    crawler.Clock
	logger   *zap.Logger
	seeds    func(code string) []string
	runID    string
}

// Deps are the collaborators an Engine needs. Everything is injected so
// tests can substitute fakes for the transport and the classifier.
type Deps struct {
	Frontier *crawler.Frontier
	Quota    *crawler.QuotaTracker
	Fetcher  crawler.Fetcher
	Robots   crawler.RobotsPolicy
	Limiter  *ratelimit.Limiter
	Content  *extract.ContentExtractor
	Metadata *extract.MetadataExtractor
	Detector *langid.Detector
	Pipeline *pipeline.Pipeline
	Stats    *pipeline.Stats
	Clock    crawler.Clock
	Logger   *zap.Logger
	RunID    string

	// Seeds overrides the registry seed lists; nil uses languages.Seeds.
	Seeds func(code string) []string
}

func NewEngine(cfg crawler.Config, deps Deps) *Engine {
	seeds := deps.Seeds
	if seeds == nil {
		seeds = languages.Seeds
	}
	return &Engine{
		cfg:      cfg,
		frontier: deps.Frontier,
		quota:    deps.Quota,
		fetcher:  deps.Fetcher,
		robots:   deps.Robots,
		limiter:  deps.Limiter,
		content:  deps.Content,
		metadata: deps.Metadata,
		detector: deps.Detector,
		pipe:     deps.Pipeline,
		stats:    deps.Stats,
		clock:    deps.Clock,
		logger:   deps.Logger,
		seeds:    seeds,
		runID:    deps.RunID,
	}
}

// Run seeds the frontier with every configured language's seed URLs and
// processes requests until the frontier drains, every quota is reached, or
// ctx is canceled. Cancellation is a soft stop: in-flight fetches finish,
// nothing new is scheduled.
func (e *Engine) Run(ctx context.Context) error {
	e.seed()
	if e.frontier.Pending() == 0 {
		e.logger.Warn("no seed URLs admitted; nothing to crawl")
		return nil
	}

	stop := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			e.logger.Info("crawl interrupted; letting in-flight work finish")
			e.frontier.Close()
		case <-stop:
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < e.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.worker(ctx)
		}()
	}
	wg.Wait()
	close(stop)

	return nil
}

func (e *Engine) seed() {
	admitted := 0
	for _, code := range e.cfg.Languages {
		for _, seedURL := range e.seeds(code) {
			ok, reason := e.frontier.Enqueue(crawler.Candidate{
				URL:            seedURL,
				Depth:          0,
				TargetLanguage: code,
			})
			if !ok {
				e.logger.Warn("seed rejected",
					zap.String("url", seedURL),
					zap.String("language", code),
					zap.String("reason", reason),
				)
				continue
			}
			admitted++
		}
	}
	e.logger.Info("frontier seeded",
		zap.String("run_id", e.runID),
		zap.Strings("languages", e.cfg.Languages),
		zap.Int("seeds", admitted),
	)
}

func (e *Engine) worker(ctx context.Context) {
	for {
		req, ok := e.frontier.Next()
		if !ok {
			return
		}
		e.process(ctx, req)
		e.frontier.Done()
		metrics.SetFrontierPending(e.frontier.Pending())

		if e.quota.AllReached() {
			e.logger.Info("all language quotas reached; stopping admission")
			e.frontier.Close()
		}
	}
}

// process handles one fetched response end to end. Each response is one
// atomic unit of work; failures along the way drop the unit without
// affecting others.
func (e *Engine) process(ctx context.Context, req crawler.FetchRequest) {
	metrics.IncActiveWorkers()
	defer metrics.DecActiveWorkers()

	if ctx.Err() != nil {
		return
	}
	if !e.robots.Allowed(ctx, req.URL) {
		e.logger.Debug("blocked by robots.txt", zap.String("url", req.URL))
		return
	}
	if err := e.limiter.Wait(ctx, req.DomainKey); err != nil {
		return
	}

	resp, err := e.fetcher.Fetch(ctx, req)
	if err != nil {
		e.logger.Warn("fetch failed", zap.String("url", req.URL), zap.Error(err))
		return
	}

	contentType := resp.Headers.Get("Content-Type")
	if !isHTML(contentType) {
		e.logger.Debug("skipping non-HTML response",
			zap.String("url", req.URL),
			zap.String("content_type", contentType),
		)
		return
	}

	record, links := e.buildRecord(resp)
	e.submit(record)
	e.follow(links, resp)
}

// buildRecord runs extraction and detection over one response and
// assembles the immutable PageRecord, returning the discovered links
// separately for frontier admission.
func (e *Engine) buildRecord(resp crawler.FetchResponse) (*crawler.PageRecord, []crawler.Link) {
	pageURL := resp.FinalURL
	if pageURL == "" {
		pageURL = resp.URL
	}
	body := string(resp.Body)

	content := e.content.Extract(body, pageURL)
	if !content.IsValid && content.Text == "" {
		e.logger.Warn("content extraction produced nothing", zap.String("url", pageURL))
	}
	meta := e.metadata.Extract(body, pageURL)
	detected := e.detector.Detect(content.Text, 1)[0]

	internal, external := 0, 0
	for _, link := range content.Links {
		if link.Type == crawler.LinkInternal {
			internal++
		} else {
			external++
		}
	}

	return &crawler.PageRecord{
		URL:          pageURL,
		Domain:       crawler.Domain(pageURL),
		CanonicalURL: meta.CanonicalURL,

		Title:       meta.Title,
		Description: meta.Description,
		Text:        content.Text,
		TextLength:  content.TextLength,
		Paragraphs:  content.Paragraphs,
		Headings:    content.Headings,

		LanguageCode:       detected.Code,
		LanguageConfidence: detected.Confidence,
		LanguageName:       languages.Name(detected.Code),
		IsTargetLanguage:   languages.IsTarget(detected.Code),

		Keywords:      meta.Keywords,
		Author:        meta.Author,
		PublishedDate: meta.PublishedDate,
		ModifiedDate:  meta.ModifiedDate,
		OpenGraph:     meta.OpenGraph,
		TwitterCard:   meta.TwitterCard,
		Favicon:       meta.Favicon,

		Links:              content.Links,
		InternalLinksCount: internal,
		ExternalLinksCount: external,

		StatusCode:  resp.StatusCode,
		ContentType: mediaType(resp.Headers.Get("Content-Type")),
		Encoding:    resp.Encoding,
		CrawledAt:   e.clock.Now(),
		CrawlDepth:  resp.Meta.Depth,
		Referrer:    resp.Meta.Referrer,

		IsValid: content.IsValid,
	}, content.Links
}

// submit runs one record through the quota gate and the pipeline.
// Acceptance-time quota enforcement lives here: a reached quota drops the
// record before the pipeline, and a record that clears the Sink is counted
// against its detected language.
func (e *Engine) submit(record *crawler.PageRecord) {
	if e.quota.Reached(record.LanguageCode) {
		e.logger.Debug("quota reached; dropping record",
			zap.String("url", record.URL),
			zap.String("language", record.LanguageCode),
		)
		e.stats.RecordDrop()
		metrics.ObservePipelineDrop("quota")
		return
	}

	decision := e.pipe.Process(record)
	if !decision.Accepted {
		e.stats.RecordDrop()
		metrics.ObservePipelineDrop(decision.Stage)
		return
	}

	accepted := e.quota.Accept(record.LanguageCode)
	metrics.ObserveAccepted(record.LanguageCode)
	e.logger.Info("page accepted",
		zap.String("url", record.URL),
		zap.String("language", record.LanguageCode),
		zap.Int("accepted_for_language", accepted),
	)
}

// follow proposes every discovered link to the frontier at depth+1.
func (e *Engine) follow(links []crawler.Link, resp crawler.FetchResponse) {
	referrer := resp.FinalURL
	if referrer == "" {
		referrer = resp.URL
	}
	for _, link := range links {
		ok, reason := e.frontier.Enqueue(crawler.Candidate{
			URL:            link.URL,
			Depth:          resp.Meta.Depth + 1,
			Referrer:       referrer,
			TargetLanguage: resp.Meta.TargetLanguage,
		})
		if !ok {
			metrics.ObserveFrontierRejection(reason)
		}
	}
}

func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml")
}

func mediaType(header string) string {
	if i := strings.Index(header, ";"); i >= 0 {
		return strings.TrimSpace(header[:i])
	}
	return strings.TrimSpace(header)
}
