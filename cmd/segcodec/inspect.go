package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <name>",
	Short: "Show the formats bundled by a codec",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	handle, err := builtinHandle()
	if err != nil {
		return err
	}

	codec, err := handle.Resolve(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Codec: %s\n", codec)
	fmt.Printf("  postings:      %T\n", codec.PostingsFormat())
	fmt.Printf("  doc values:    %T\n", codec.DocValuesFormat())
	fmt.Printf("  stored fields: %T\n", codec.StoredFieldsFormat())
	fmt.Printf("  term vectors:  %T\n", codec.TermVectorsFormat())
	fmt.Printf("  field infos:   %T\n", codec.FieldInfosFormat())
	fmt.Printf("  segment info:  %T\n", codec.SegmentInfoFormat())
	fmt.Printf("  norms:         %T\n", codec.NormsFormat())
	fmt.Printf("  live docs:     %T\n", codec.LiveDocsFormat())
	return nil
}
