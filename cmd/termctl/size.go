package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srlehn/termctl"
)

func init() { rootCmd.AddCommand(sizeCmd) }

var sizeCmd = &cobra.Command{
	Use:   `size`,
	Short: `print the terminal size`,
	Long:  `print the terminal size in character cells and, if reported, in pixels`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(sizeFunc(cmd, args))
	},
}

func sizeFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		sz, err := termctl.Size()
		if err != nil {
			return err
		}
		fmt.Printf("%dx%d cells\n", sz.Width, sz.Height)
		if sz.PixelWidth > 0 || sz.PixelHeight > 0 {
			fmt.Printf("%dx%d pixels\n", sz.PixelWidth, sz.PixelHeight)
		}
		return nil
	}
}
