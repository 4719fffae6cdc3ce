package crawler

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config captures every knob that influences a crawl run. All values
// originate from Viper so the crawler can be configured via files, env
// vars, or CLI flags.
type Config struct {
	Languages       []string
	MaxPages        int
	OutputDir       string
	UserAgent       string
	DepthLimit      int
	Concurrency     int
	RequestTimeout  time.Duration
	PerDomainDelay  time.Duration
	RespectRobots   bool
	MinTextLength   int
	MinConfidence   float64
	MaxTextLength   int
	MaxLinksPerPage int
	MinParagraphLen int
	MonitorEnabled  bool
	MonitorAddr     string
	LogDevelopment  bool
}

// LoadConfig constructs a Config by reading from Viper.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		MaxPages:        v.GetInt("crawler.max_pages"),
		OutputDir:       v.GetString("crawler.output_dir"),
		UserAgent:       v.GetString("crawler.user_agent"),
		DepthLimit:      v.GetInt("crawler.depth_limit"),
		Concurrency:     v.GetInt("crawler.concurrency"),
		RequestTimeout:  v.GetDuration("crawler.request_timeout"),
		PerDomainDelay:  v.GetDuration("crawler.per_domain_delay"),
		RespectRobots:   v.GetBool("crawler.respect_robots"),
		MinTextLength:   v.GetInt("crawler.min_text_length"),
		MinConfidence:   v.GetFloat64("crawler.min_language_confidence"),
		MaxTextLength:   v.GetInt("crawler.max_text_length"),
		MaxLinksPerPage: v.GetInt("crawler.max_links_per_page"),
		MinParagraphLen: v.GetInt("crawler.min_paragraph_length"),
		MonitorEnabled:  v.GetBool("monitor.enabled"),
		MonitorAddr:     v.GetString("monitor.addr"),
		LogDevelopment:  v.GetBool("logging.development"),
	}
	return cfg, cfg.Validate()
}

// Validate checks for obviously bad configuration combinations.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("crawler.output_dir must be set")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("crawler.user_agent must be set")
	}
	if c.DepthLimit < 0 {
		return fmt.Errorf("crawler.depth_limit must be >= 0")
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("crawler.concurrency must be > 0")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("crawler.request_timeout must be > 0")
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("crawler.max_pages must be >= 0")
	}
	if c.MinTextLength <= 0 {
		return fmt.Errorf("crawler.min_text_length must be > 0")
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("crawler.min_language_confidence must be in [0,1]")
	}
	if c.MaxTextLength <= 0 {
		return fmt.Errorf("crawler.max_text_length must be > 0")
	}
	if c.MaxLinksPerPage <= 0 {
		return fmt.Errorf("crawler.max_links_per_page must be > 0")
	}
	if c.MonitorEnabled && c.MonitorAddr == "" {
		return fmt.Errorf("monitor.addr must be set when monitor.enabled is true")
	}
	return nil
}
