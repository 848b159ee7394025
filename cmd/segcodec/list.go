package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the codec names registered in this binary",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	handle, err := builtinHandle()
	if err != nil {
		return err
	}

	names, err := handle.Names()
	if err != nil {
		return err
	}

	def := handle.Default()
	for _, name := range names {
		if name == def.Name() {
			fmt.Printf("%s (default)\n", name)
		} else {
			fmt.Println(name)
		}
	}
	return nil
}
