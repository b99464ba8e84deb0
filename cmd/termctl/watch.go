package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/srlehn/termctl"
	"github.com/srlehn/termctl/internal/errors"
)

func init() { rootCmd.AddCommand(watchCmd) }

var watchCmd = &cobra.Command{
	Use:   `watch`,
	Short: `print the terminal size on every resize`,
	Long:  `print the terminal size on every resize until interrupted`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(watchFunc(cmd, args))
	},
}

func watchFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		rx, err := termctl.OnResize()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sz := rx.Latest()
		fmt.Printf("%dx%d\n", sz.Width, sz.Height)
		for {
			sz, err := rx.Changed(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
			fmt.Printf("%dx%d\n", sz.Width, sz.Height)
		}
	}
}
