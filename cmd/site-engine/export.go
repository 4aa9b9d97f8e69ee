// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/site-engine/internal/community"
	"github.com/pdiddy/site-engine/internal/news"
	"github.com/pdiddy/site-engine/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a content snapshot to disk",
	Long: `Export fetches the community tables and the news index and writes them
to a single snapshot file, YAML by default. Snapshots are useful for
diffing content changes and for building the site without network access.`,
	RunE: runExport,
}

// snapshot is the export file layout.
type snapshot struct {
	Community types.CommunityTables `json:"community" yaml:"community"`
	News      []types.NewsListItem  `json:"news" yaml:"news"`
}

func runExport(cmd *cobra.Command, args []string) error {
	sheetsCfg, cacheCfg, err := sheetsConfig(cmd)
	if err != nil {
		return err
	}
	client, cleanup, err := newClient(sheetsCfg, cacheCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	opts := community.Options{
		DocumentID:        sheetsCfg.DocumentID,
		RevalidateSeconds: sheetsCfg.RevalidateSeconds,
	}

	tables, err := community.GetCommunityTables(ctx, client, opts)
	if err != nil {
		return err
	}
	items, err := news.GetAllNews(ctx, client, news.Options{
		DocumentID:        opts.DocumentID,
		RevalidateSeconds: opts.RevalidateSeconds,
	})
	if err != nil {
		return err
	}

	snap := snapshot{Community: tables, News: items}

	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	var data []byte
	switch format {
	case "yaml":
		data, err = yaml.Marshal(snap)
	case "json":
		data, err = json.MarshalIndent(snap, "", "  ")
	default:
		return fmt.Errorf("unknown format %q: use yaml or json", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	if out == "" {
		out = "content-snapshot." + format
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	fmt.Printf("Wrote %s (%d member(s), %d publication(s), %d article(s))\n",
		out, len(tables.Members), len(tables.Publications), len(items))
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "snapshot format: yaml or json")
	exportCmd.Flags().String("out", "", "output path (default: content-snapshot.<format>)")

	rootCmd.AddCommand(exportCmd)
}
