// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/site-engine/internal/news"
	"github.com/pdiddy/site-engine/internal/sheets"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Read the news articles",
	Long: `News reads the news_articles tab and, per article, the block-structured
body from news_blocks. Only approved rows are visible.`,
}

var newsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List approved articles, newest first",
	RunE:  runNewsList,
}

var newsShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Print one article with its decoded content blocks",
	Args:  cobra.ExactArgs(1),
	RunE:  runNewsShow,
}

func newsOptions(cmd *cobra.Command) (*newsClient, error) {
	sheetsCfg, cacheCfg, err := sheetsConfig(cmd)
	if err != nil {
		return nil, err
	}
	client, cleanup, err := newClient(sheetsCfg, cacheCfg)
	if err != nil {
		return nil, err
	}
	return &newsClient{
		client:  client,
		cleanup: cleanup,
		opts: news.Options{
			DocumentID:        sheetsCfg.DocumentID,
			RevalidateSeconds: sheetsCfg.RevalidateSeconds,
		},
	}, nil
}

type newsClient struct {
	client  *sheets.Client
	cleanup func()
	opts    news.Options
}

func runNewsList(cmd *cobra.Command, args []string) error {
	nc, err := newsOptions(cmd)
	if err != nil {
		return err
	}
	defer nc.cleanup()

	items, err := news.GetAllNews(context.Background(), nc.client, nc.opts)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(items)
	}

	for _, item := range items {
		fmt.Printf("%s  %-30s  %s\n", item.PublishedAt, item.Slug, item.Title)
	}
	fmt.Printf("\n%d article(s)\n", len(items))
	return nil
}

func runNewsShow(cmd *cobra.Command, args []string) error {
	nc, err := newsOptions(cmd)
	if err != nil {
		return err
	}
	defer nc.cleanup()

	ctx := context.Background()
	article, diagnostics, err := news.GetNewsBySlug(ctx, nc.client, nc.opts, args[0])
	if err != nil {
		return err
	}
	if article == nil {
		fmt.Fprintf(os.Stderr, "article %q not found\n", args[0])
		return nil
	}

	for _, d := range diagnostics {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(article)
	}

	fmt.Println(article.Title)
	fmt.Printf("%s · %s\n", news.FormatDate(article.PublishedAt), news.EstimateReadingTime(*article))
	if article.Author.Name != "" {
		fmt.Printf("By %s\n", article.Author.Name)
	}
	fmt.Printf("%d content block(s)\n", len(article.Content))

	if similar, _ := cmd.Flags().GetBool("similar"); similar {
		all, err := news.GetAllNews(ctx, nc.client, nc.opts)
		if err != nil {
			return err
		}
		fmt.Println("\nSimilar articles:")
		for _, s := range news.GetSimilarArticles(all, *article, 4) {
			fmt.Printf("  %s  %s\n", s.PublishedAt, s.Title)
		}
	}
	return nil
}

func init() {
	newsCmd.PersistentFlags().Bool("json", false, "output as JSON")
	newsShowCmd.Flags().Bool("similar", false, "also list articles with overlapping tags")

	newsCmd.AddCommand(newsListCmd)
	newsCmd.AddCommand(newsShowCmd)
	rootCmd.AddCommand(newsCmd)
}
