package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pageza/recipe-ai/config"
	"github.com/pageza/recipe-ai/internal/export"
)

const exportLinkTTL = 24 * time.Hour

var (
	exportWhat   string
	exportUpload bool
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export the inventory and recipes as CSV or XLSX",
	Long: `Export to FILE. The extension picks the format: .xlsx writes one sheet
per table, .csv holds a single table so --what must name one. With
--upload the file is also stored in the S3_BUCKET_NAME bucket under
exports/ and a download link valid for a day is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportWhat, "what", "w", "all", "ingredients, recipes or all")
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false, "upload the file to S3 and print a download link")
}

func runExport(cmd *cobra.Command, args []string) error {
	var tables []export.Table
	switch exportWhat {
	case "ingredients", "all":
		page := kitchen.Ingredients()
		if err := page.Load(cmd.Context()); err != nil {
			return report(cmd, err)
		}
		tables = append(tables, export.IngredientsTable(page.Items()))
	case "recipes":
	default:
		return fmt.Errorf("unknown export selection %q", exportWhat)
	}
	if exportWhat == "recipes" || exportWhat == "all" {
		page := kitchen.Recipes()
		if err := page.Load(cmd.Context()); err != nil {
			return report(cmd, err)
		}
		tables = append(tables, export.RecipesTable(page.Recipes()))
	}

	if err := export.WriteFile(args[0], tables...); err != nil {
		return fmt.Errorf("export %s: %w", args[0], err)
	}
	for _, t := range tables {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows\n", t.Name, len(t.Rows))
	}

	if exportUpload {
		link, err := uploadExport(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("upload %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), link)
	}
	return report(cmd, nil)
}

// uploadExport stores the written file under exports/ and returns a
// presigned download link
func uploadExport(ctx context.Context, file string) (string, error) {
	format, err := export.FormatFromPath(file)
	if err != nil {
		return "", err
	}
	storage, err := config.NewS3Config(ctx)
	if err != nil {
		return "", err
	}

	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := path.Join("exports", time.Now().Format("20060102-150405")+"-"+filepath.Base(file))
	if err := storage.Upload(ctx, key, f, format.ContentType()); err != nil {
		return "", err
	}
	return storage.GeneratePresignedURL(ctx, key, exportLinkTTL)
}
