// Version command for the brandsass CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillpress/brandsass/pkg/brandsass"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the brandsass version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("brandsass", brandsass.Version)
	},
}
