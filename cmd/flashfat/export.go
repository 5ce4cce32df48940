package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:   "export IMAGE DIR",
	Short: "copy the files of the volume into a directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := openImage(args[0])
		if err != nil {
			return err
		}
		defer img.Close()
		err = img.Export(afero.NewOsFs(), args[1], viper.GetBool("hidden"))
		if err != nil {
			return err
		}
		log.Info("exported", "image", args[0], "dir", args[1], "logs", len(img.Table().Segments))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().Bool("hidden", false, "include hidden files")
	cobra.CheckErr(viper.BindPFlag("hidden", exportCmd.Flags().Lookup("hidden")))
}
