// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/site-engine/internal/community"
	"github.com/pdiddy/site-engine/pkg/types"
)

var communityCmd = &cobra.Command{
	Use:   "community",
	Short: "Read the community and publications content",
	Long: `Community fetches the eleven community tabs (members, publications,
presentations, awards, certificates, and their relation tables), keeps
approved rows only, and prints joined results.

Without a subcommand it prints the member roster grouped by type.`,
	RunE: runCommunityRoster,
}

var communityTablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print every community table after filtering and sorting",
	RunE:  runCommunityTables,
}

var communityMemberCmd = &cobra.Command{
	Use:   "member <id>",
	Short: "Print one member with their publications, awards, and certificates",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommunityMember,
}

var communityPublicationCmd = &cobra.Command{
	Use:   "publication <id>",
	Short: "Print one publication with its ordered byline and links",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommunityPublication,
}

// fetchTables is the shared entry for the community subcommands.
func fetchTables(cmd *cobra.Command) (types.CommunityTables, error) {
	sheetsCfg, cacheCfg, err := sheetsConfig(cmd)
	if err != nil {
		return types.CommunityTables{}, err
	}
	client, cleanup, err := newClient(sheetsCfg, cacheCfg)
	if err != nil {
		return types.CommunityTables{}, err
	}
	defer cleanup()

	return community.GetCommunityTables(context.Background(), client, community.Options{
		DocumentID:        sheetsCfg.DocumentID,
		RevalidateSeconds: sheetsCfg.RevalidateSeconds,
	})
}

func runCommunityRoster(cmd *cobra.Command, args []string) error {
	tables, err := fetchTables(cmd)
	if err != nil {
		return err
	}

	buckets := community.SplitMembersByType(tables.Members)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(buckets)
	}

	printRoster("Admins", buckets.Admins)
	printRoster("Members", buckets.Members)
	printRoster("Alumni", buckets.Alumni)
	return nil
}

func printRoster(heading string, members []types.Member) {
	if len(members) == 0 {
		return
	}
	fmt.Printf("%s (%d)\n", heading, len(members))
	for _, m := range members {
		line := fmt.Sprintf("  %s, %s", m.LastName, m.FirstName)
		if m.Specialization != "" {
			line += " - " + m.Specialization
		}
		fmt.Println(line)
	}
}

func runCommunityTables(cmd *cobra.Command, args []string) error {
	tables, err := fetchTables(cmd)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(tables)
	}

	fmt.Printf("members: %d\n", len(tables.Members))
	fmt.Printf("publications: %d (links %d, authors %d)\n",
		len(tables.Publications), len(tables.PublicationLinks), len(tables.PublicationAuthors))
	fmt.Printf("presentations: %d (authors %d)\n",
		len(tables.Presentations), len(tables.PresentationAuthors))
	fmt.Printf("awards: %d (recipients %d, publications %d)\n",
		len(tables.Awards), len(tables.AwardRecipients), len(tables.AwardPublications))
	fmt.Printf("certificates: %d (holders %d)\n",
		len(tables.Certificates), len(tables.CertificateHolders))
	return nil
}

func runCommunityMember(cmd *cobra.Command, args []string) error {
	tables, err := fetchTables(cmd)
	if err != nil {
		return err
	}

	detail := community.BuildMemberDetail(tables, args[0])
	if detail == nil {
		fmt.Fprintf(os.Stderr, "member %q not found\n", args[0])
		return nil
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(detail)
	}

	fmt.Printf("%s, %s (%s)\n", detail.Member.LastName, detail.Member.FirstName, detail.Member.Type)
	fmt.Printf("Publications: %d  Awards: %d  Certificates: %d\n",
		len(detail.Publications), len(detail.Awards), len(detail.Certificates))
	for _, p := range detail.Publications {
		fmt.Printf("  %s  %s (%d author(s))\n", p.PublishingDate, p.Title, len(p.Authors))
	}
	return nil
}

func runCommunityPublication(cmd *cobra.Command, args []string) error {
	tables, err := fetchTables(cmd)
	if err != nil {
		return err
	}

	detail := community.BuildPublicationDetail(tables, args[0])
	if detail == nil {
		fmt.Fprintf(os.Stderr, "publication %q not found\n", args[0])
		return nil
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(detail)
	}

	fmt.Println(detail.Publication.Title)
	for _, a := range detail.Authors {
		fmt.Printf("  %s, %s\n", a.Member.LastName, a.Member.FirstName)
	}
	for _, l := range detail.Links {
		fmt.Printf("  %s: %s\n", l.Label, l.URL)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	communityCmd.PersistentFlags().Bool("json", false, "output as JSON")

	communityCmd.AddCommand(communityTablesCmd)
	communityCmd.AddCommand(communityMemberCmd)
	communityCmd.AddCommand(communityPublicationCmd)
	rootCmd.AddCommand(communityCmd)
}
