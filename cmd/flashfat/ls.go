package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var lsCmd = &cobra.Command{
	Use:   "ls IMAGE",
	Short: "list the files of the volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := openImage(args[0])
		if err != nil {
			return err
		}
		defer img.Close()
		all := viper.GetBool("all")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, record := range img.ScanFiles() {
			if record.Hidden && !all {
				continue
			}
			attrs := "r"
			if record.Hidden {
				attrs += "h"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", record.Name, attrs, record.Size, humanize.IBytes(uint64(record.Size)))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().BoolP("all", "a", false, "include hidden files")
	cobra.CheckErr(viper.BindPFlag("all", lsCmd.Flags().Lookup("all")))
}
