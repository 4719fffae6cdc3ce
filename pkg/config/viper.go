// Package config is responsible for initializing the application's
// configuration. It uses the Viper library to read settings from a config
// file and environment variables, providing a unified configuration
// system.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// InitConfig initializes the application's configuration using Viper.
// It sets defaults, defines configuration search paths, and enables
// reading from environment variables. Call once at startup; an explicit
// cfgFile path takes precedence over the search paths.
func InitConfig(cfgFile string) (*viper.Viper, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/lookuply/")
		v.AddConfigPath("$HOME/.lookuply")
	}

	v.SetDefault("crawler.user_agent", "LookuplyBot/1.0 (+https://lookuply.eu/bot)")
	v.SetDefault("crawler.output_dir", "data/crawled")
	v.SetDefault("crawler.max_pages", 0)
	v.SetDefault("crawler.depth_limit", 3)
	v.SetDefault("crawler.concurrency", 8)
	v.SetDefault("crawler.request_timeout", "15s")
	v.SetDefault("crawler.per_domain_delay", "1s")
	v.SetDefault("crawler.respect_robots", true)
	v.SetDefault("crawler.min_text_length", 100)
	v.SetDefault("crawler.min_language_confidence", 0.5)
	v.SetDefault("crawler.max_text_length", 50000)
	v.SetDefault("crawler.max_links_per_page", 100)
	v.SetDefault("crawler.min_paragraph_length", 50)

	v.SetDefault("monitor.enabled", false)
	v.SetDefault("monitor.addr", ":9090")

	v.SetDefault("logging.development", false)
	v.SetDefault("logging.verbose", false)

	v.SetEnvPrefix("LOOKUPLY") // e.g. LOOKUPLY_CRAWLER_CONCURRENCY=16
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			// No config file is fine; defaults and env vars carry the run.
			return v, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return v, nil
}
