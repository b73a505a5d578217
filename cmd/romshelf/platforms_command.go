package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"romshelf/internal/platform"
)

func newPlatformsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List supported platforms and their folder codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors := platform.NewRegistry().Descriptors()
			rows := make([][]string, 0, len(descriptors))
			for _, desc := range descriptors {
				bios := make([]string, 0, len(desc.BIOS))
				for _, b := range desc.BIOS {
					bios = append(bios, b.Name)
				}
				rows = append(rows, []string{
					desc.FolderCode,
					desc.CatalogueName,
					desc.ScraperID,
					strings.Join(desc.Extensions, " "),
					strings.Join(bios, " "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Code", "Catalogue", "Scraper ID", "Extensions", "BIOS"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
