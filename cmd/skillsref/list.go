package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentskills/skillsref/pkg/presenter"
	"github.com/agentskills/skillsref/pkg/skills"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered skills",
	Long:  `List all skills under the skills root with their names, descriptions, and directory paths.`,
	Run: func(cmd *cobra.Command, _ []string) {
		root, _ := cmd.Flags().GetString("root")
		if root == "" {
			root = viper.GetString("root")
		}
		if root == "" {
			root = skills.DefaultRoot
		}
		listSkills(root)
	},
}

func init() {
	listCmd.Flags().String("root", "", "Root directory holding one subdirectory per skill")
}

func listSkills(root string) {
	discovery, err := skills.NewDiscovery(skills.WithRoot(root))
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	packages, err := discovery.Discover()
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	if len(packages) == 0 {
		presenter.Info("No skills found")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIRECTORY\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t---------\t-----------")

	for _, pkg := range packages {
		description := "-"
		if doc, err := skills.ParseDocument(pkg.Raw); err == nil {
			var meta skills.Metadata
			if err := mapstructure.Decode(doc.Frontmatter, &meta); err == nil && meta.Description != "" {
				description = meta.Description
			}
		}
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", pkg.DirName, pkg.Dir, description)
	}
	tw.Flush()
}
