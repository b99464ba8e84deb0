package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/termctl"
)

func init() { rootCmd.AddCommand(rawCmd) }

var rawCmd = &cobra.Command{
	Use:   `raw`,
	Short: `enable raw mode and echo key codes`,
	Long:  `enable raw mode and print the code of every pressed key until 'q' or ctrl-c`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(rawFunc(cmd, args))
	},
}

func rawFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		guard, err := termctl.EnableRawMode()
		if err != nil {
			return err
		}
		defer guard.Close()

		enabled, err := termctl.IsRawModeEnabled()
		if err != nil {
			return err
		}
		// raw mode: \r\n by hand
		fmt.Printf("raw mode enabled: %t, press keys ('q' quits)\r\n", enabled)

		buf := make([]byte, 64)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return err
			}
			for _, b := range buf[:n] {
				fmt.Printf("0x%02x ", b)
				if b == 'q' || b == 0x03 {
					fmt.Print("\r\n")
					return nil
				}
			}
			fmt.Print("\r\n")
		}
	}
}
