package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/pkgin/pkg/pkgin"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: `Export "non auto-removable" packages`,
	Long: `List kept packages as pkgsrc locations.

With --output the raw pkgin export is also saved to a file, compressed
when the name ends in .gz, .xz or .zst.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "save the raw export to this file")
}

func runExport(cmd *cobra.Command, args []string) error {
	pm := newManager(cmd)

	var entries []pkgin.ExportEntry
	var err error
	switch {
	case exportOutput == "":
		entries, err = pm.Export(cmd.Context(), "")
	case pkgin.CompressionFor(exportOutput) == pkgin.CompressionNone:
		entries, err = pm.Export(cmd.Context(), exportOutput)
	default:
		entries, err = exportCompressed(cmd, pm, exportOutput)
	}
	if err != nil {
		return err
	}

	return emit(cmd.OutOrStdout(), entries, func(w io.Writer) {
		for _, e := range entries {
			fmt.Fprintf(w, "%s/%s\n", e.Location, e.PackageName)
		}
	})
}

func exportCompressed(cmd *cobra.Command, pm *pkgin.PackageManager, path string) ([]pkgin.ExportEntry, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	entries, err := writeCompressed(cmd, pm, f, path)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing %s: %w", path, closeErr)
	}
	if err != nil {
		// unparsable output was still saved whole, like Export does
		if !errors.Is(err, pkgin.ErrMalformedOutput) {
			os.Remove(path)
		}
		return nil, err
	}
	return entries, nil
}

func writeCompressed(cmd *cobra.Command, pm *pkgin.PackageManager, f *os.File, path string) ([]pkgin.ExportEntry, error) {
	w, err := pkgin.NewListWriter(f, path)
	if err != nil {
		return nil, err
	}
	entries, err := pm.ExportTo(cmd.Context(), w)
	if closeErr := w.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("flushing %s: %w", path, closeErr)
	}
	return entries, err
}
