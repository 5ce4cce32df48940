package main

import (
	"os"

	"github.com/rstms/flashfat/image"
	"github.com/rstms/flashfat/scan"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type tableReport struct {
	Label    string             `yaml:"label"`
	DiskSize int64              `yaml:"disk_size"`
	Used     int64              `yaml:"used"`
	Segments []scan.Segment     `yaml:"segments"`
	Files    []image.FileRecord `yaml:"files"`
}

var tableCmd = &cobra.Command{
	Use:   "table IMAGE",
	Short: "dump the file table as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := openImage(args[0])
		if err != nil {
			return err
		}
		defer img.Close()
		t := img.Table()
		report := tableReport{
			Label:    t.Label,
			DiskSize: t.DiskSize,
			Used:     t.Used,
			Segments: t.Segments,
			Files:    img.ScanFiles(),
		}
		encoder := yaml.NewEncoder(os.Stdout)
		defer encoder.Close()
		return encoder.Encode(report)
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
