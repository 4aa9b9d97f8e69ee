// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/site-engine/internal/home"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Read the home page copy",
	Long: `Home reads the "home" meta tab (a key/value table of page copy) plus
the about_* and home_gallery tabs and prints the assembled sections.`,
	RunE: runHome,
}

func runHome(cmd *cobra.Command, args []string) error {
	sheetsCfg, cacheCfg, err := sheetsConfig(cmd)
	if err != nil {
		return err
	}
	client, cleanup, err := newClient(sheetsCfg, cacheCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := home.Options{
		DocumentID:        sheetsCfg.DocumentID,
		RevalidateSeconds: sheetsCfg.RevalidateSeconds,
	}

	ctx := context.Background()
	about, err := home.GetHomeAbout(ctx, client, opts)
	if err != nil {
		return err
	}
	newsSection, err := home.GetHomeNews(ctx, client, opts)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(struct {
			About any `json:"about"`
			News  any `json:"news"`
		}{about, newsSection})
	}

	fmt.Printf("%s / %s\n", about.Eyebrow, about.Title)
	for _, b := range about.Bullets {
		fmt.Println("  •", b)
	}
	for _, s := range about.Stats {
		fmt.Printf("  %s: %s\n", s.Label, s.Value)
	}
	fmt.Printf("%s / %s (%d gallery image(s))\n",
		newsSection.Eyebrow, newsSection.Title, len(newsSection.Gallery.Images))
	return nil
}

func init() {
	homeCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(homeCmd)
}
