package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexigraph/segcodec/internal/codecutil"
	"github.com/lexigraph/segcodec/store/diskdir"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the format headers of persisted segment files",
	Long: `Verify that every segment file in the data directory carries a valid
format header and checksum footer.

This command checks:
- Each file starts with the segment-file magic
- Each file's checksum matches its content
- Each segment metadata file names a codec known to this binary`,
	RunE: runVerify,
}

var dataDir string

func init() {
	verifyCmd.Flags().StringVarP(&dataDir, "data-dir", "d", "./index", "directory containing segment files")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	dir, err := diskdir.New(dataDir)
	if err != nil {
		return err
	}
	defer dir.Close()

	files, err := dir.ListFiles(ctx)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No segment files found in data directory.")
		return nil
	}

	handle, err := builtinHandle()
	if err != nil {
		return err
	}

	fmt.Printf("Verifying %d files...\n", len(files))

	var errCount int
	for i, name := range files {
		if verbose {
			fmt.Printf("  [%d/%d] %s\n", i+1, len(files), name)
		}

		data, err := dir.ReadFile(ctx, name)
		if err != nil {
			fmt.Printf("  ERROR: %s: %v\n", name, err)
			errCount++
			continue
		}

		formatName, err := codecutil.FormatName(data)
		if err != nil {
			fmt.Printf("  ERROR: %s: %v\n", name, err)
			errCount++
			continue
		}

		// Verify checksum and header consistency against the name the
		// file itself declares.
		if _, _, err := codecutil.Open(data, formatName, 0, 1<<30); err != nil {
			fmt.Printf("  ERROR: %s: %v\n", name, err)
			errCount++
			continue
		}

		// For segment metadata files, cross-check that the codec the
		// segment claims to be written with is resolvable.
		if strings.HasSuffix(name, ".si") {
			segment := strings.TrimSuffix(name, ".si")
			info, err := handle.Default().SegmentInfoFormat().ReadSegmentInfo(ctx, dir, segment)
			if err != nil {
				fmt.Printf("  ERROR: %s: %v\n", name, err)
				errCount++
				continue
			}
			if _, err := handle.Resolve(info.Codec); err != nil {
				fmt.Printf("  ERROR: %s: segment written by unknown codec: %v\n", name, err)
				errCount++
				continue
			}
		}
	}

	if errCount > 0 {
		return fmt.Errorf("%d files failed verification", errCount)
	}

	fmt.Println("All files verified successfully.")
	return nil
}
