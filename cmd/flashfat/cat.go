package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat IMAGE NAME",
	Short: "write one file of the volume to stdout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := openImage(args[0])
		if err != nil {
			return err
		}
		defer img.Close()
		file, err := img.FileSystem().File(args[1])
		if err != nil {
			return err
		}
		_, err = io.Copy(os.Stdout, file.Reader())
		return err
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}
