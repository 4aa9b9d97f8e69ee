// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the site-engine CLI.
//
// site-engine is the content backend of the research group website: it
// reads the group's published spreadsheet (members, publications, awards,
// certificates, news, home page copy), joins and filters it, and prints or
// exports the typed results the site renders.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/site-engine/internal/httputil"
	"github.com/pdiddy/site-engine/internal/secrets"
	"github.com/pdiddy/site-engine/internal/sheets"
	"github.com/pdiddy/site-engine/internal/tabcache"
	"github.com/pdiddy/site-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the site-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "site-engine",
	Short: "Spreadsheet-backed content engine for the group website",
	Long: `site-engine pulls the research group's content out of its published
spreadsheet document. Tabs hold members, publications, presentations, awards,
certificates, their relation tables, news articles with block-structured
bodies, and the home page copy.

Each content family is a subcommand: community, news, and home read and
print joined, approved-only data; export writes a full snapshot to disk.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./site-engine.yaml or ~/.config/site-engine/config.yaml)")
	rootCmd.PersistentFlags().String("document", "", "spreadsheet document id (overrides config)")
	rootCmd.PersistentFlags().Int("revalidate", 300, "transport response reuse window in seconds")
	rootCmd.PersistentFlags().String("cache", "none", "tab cache backend: none, memory, redis, or sqlite")
	rootCmd.PersistentFlags().Int("cache-ttl", 300000, "tab cache freshness window in milliseconds")
	rootCmd.PersistentFlags().String("secrets", "secrets", "directory of credential files (redis-url)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("site-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "site-engine"))
		}
	}

	viper.SetEnvPrefix("SITE_ENGINE")
	viper.AutomaticEnv()

	viper.SetDefault("sheets.revalidate_seconds", 300)
	viper.SetDefault("cache.backend", string(types.CacheNone))
	viper.SetDefault("cache.ttl_millis", 300000)
	viper.SetDefault("cache.redis_url", "redis://localhost:6379/0")
	viper.SetDefault("cache.path", filepath.Join("data", "tabs.db"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// sheetsConfig resolves the effective source settings from flags, env, and
// config file.
func sheetsConfig(cmd *cobra.Command) (types.SheetsConfig, types.CacheConfig, error) {
	documentID, _ := cmd.Flags().GetString("document")
	if documentID == "" {
		documentID = viper.GetString("sheets.document_id")
	}
	if documentID == "" {
		return types.SheetsConfig{}, types.CacheConfig{}, fmt.Errorf("no document id: set --document, SITE_ENGINE_SHEETS_DOCUMENT_ID, or sheets.document_id in the config file")
	}

	revalidate := viper.GetInt("sheets.revalidate_seconds")
	if cmd.Flags().Changed("revalidate") {
		revalidate, _ = cmd.Flags().GetInt("revalidate")
	}

	cacheCfg := types.CacheConfig{
		Backend:   types.CacheBackend(viper.GetString("cache.backend")),
		TTLMillis: viper.GetInt("cache.ttl_millis"),
		RedisURL:  viper.GetString("cache.redis_url"),
		Path:      viper.GetString("cache.path"),
	}
	if cmd.Flags().Changed("cache") {
		backend, _ := cmd.Flags().GetString("cache")
		cacheCfg.Backend = types.CacheBackend(backend)
	}
	if cmd.Flags().Changed("cache-ttl") {
		cacheCfg.TTLMillis, _ = cmd.Flags().GetInt("cache-ttl")
	}

	// A redis-url secret file beats the config value, so passwords never
	// have to live in site-engine.yaml.
	secretsDir, _ := cmd.Flags().GetString("secrets")
	if secretsDir != "" {
		loaded, err := secrets.Load(secretsDir)
		if err != nil {
			return types.SheetsConfig{}, types.CacheConfig{}, err
		}
		if url := loaded[secrets.RedisURLKey]; url != "" {
			cacheCfg.RedisURL = url
		}
	}

	return types.SheetsConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "site-engine/" + version,
		},
		DocumentID:        documentID,
		RevalidateSeconds: revalidate,
	}, cacheCfg, nil
}

// newClient builds the sheets client with the configured cache backend. The
// returned cleanup closes whatever the backend holds open.
func newClient(sheetsCfg types.SheetsConfig, cacheCfg types.CacheConfig) (*sheets.Client, func(), error) {
	client := &sheets.Client{
		HTTP: &http.Client{
			Timeout:   sheetsCfg.Timeout,
			Transport: &httputil.RevalidatingTransport{},
		},
		CacheTTL:  cacheCfg.TTL(),
		UserAgent: sheetsCfg.UserAgent,
	}
	cleanup := func() {}

	switch cacheCfg.Backend {
	case types.CacheNone, "":
	case types.CacheMemory:
		client.Cache = tabcache.NewMemory()
	case types.CacheRedis:
		store, err := tabcache.NewRedis(cacheCfg.RedisURL, cacheCfg.TTL())
		if err != nil {
			return nil, nil, err
		}
		client.Cache = store
		cleanup = func() { store.Close() }
	case types.CacheSQLite:
		store, err := tabcache.NewSQLite(cacheCfg.Path)
		if err != nil {
			return nil, nil, err
		}
		client.Cache = store
		cleanup = func() { store.Close() }
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cacheCfg.Backend)
	}

	return client, cleanup, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
