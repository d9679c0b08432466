package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// front matter for the root page, required by the just-the-docs theme
// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: 0
has_children: true
permalink: /
---
`

// front matter for a subcommand page
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// newDocsCmd writes Markdown docs for every command. Hidden since it's only
// for maintaining the docs site.
func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "docs [dir]",
		Short:  "Write Markdown docs for phynex's commands",
		Hidden: true,
		Args:   cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "docs"
			if len(args) > 0 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create docs dir: %v", err)
			}

			root := cmd.Root()
			order := map[string]int{}
			for i, c := range root.Commands() {
				order[root.Name()+"_"+c.Name()] = i
			}

			// filePrepender adds the YAML front matter each page needs
			filePrepender := func(filename string) string {
				base := docBase(filename)
				if base == root.Name() {
					return fmt.Sprintf(rootPage, base)
				}
				title := strings.TrimPrefix(base, root.Name()+"_")
				return fmt.Sprintf(childPage, title, root.Name(), order[base])
			}

			// linkHandler returns the URL to a documentation page
			linkHandler := func(filename string) string {
				if base := docBase(filename); base != root.Name() {
					return base
				}
				return "/"
			}

			return doc.GenMarkdownTreeCustom(root, dir, filePrepender, linkHandler)
		},
	}
}

// docBase is a doc file's name without its directory or extension
func docBase(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}
