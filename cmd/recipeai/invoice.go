package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	invoiceSkip   []string
	invoiceDryRun bool
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice FILE.pdf",
	Short: "Extract items from a PDF invoice and add them to the inventory",
	Long: `Upload a PDF invoice for extraction and add every extracted item to
the inventory. Items can be left out by name with --skip, and --dry-run
only lists what was extracted.`,
	Args: cobra.ExactArgs(1),
	RunE: runInvoice,
}

func init() {
	invoiceCmd.Flags().StringSliceVar(&invoiceSkip, "skip", nil, "item names to leave out (case-insensitive)")
	invoiceCmd.Flags().BoolVar(&invoiceDryRun, "dry-run", false, "list the extracted items without adding them")
}

func runInvoice(cmd *cobra.Command, args []string) error {
	page := kitchen.UploadInvoice()
	if err := page.SelectPath(args[0]); err != nil {
		return report(cmd, err)
	}
	if err := page.Upload(cmd.Context()); err != nil {
		return report(cmd, err)
	}

	skip := make(map[string]bool, len(invoiceSkip))
	for _, name := range invoiceSkip {
		skip[strings.ToLower(strings.TrimSpace(name))] = true
	}

	w := cmd.OutOrStdout()
	for _, item := range page.Items() {
		if skip[strings.ToLower(item.Name)] && page.IsSelected(item.Key()) {
			page.Toggle(item.Key())
		}
		mark := "[x]"
		if !page.IsSelected(item.Key()) {
			mark = "[ ]"
		}
		fmt.Fprintf(w, "%s %-24s x%-4d %s\n", mark, item.Name, item.CommitQuantity(), item.Category)
	}
	if invoiceDryRun {
		return report(cmd, nil)
	}

	results, err := page.Commit(cmd.Context())
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "  %-8s %s: %v\n", r.Status, r.Item.Name, r.Err)
		} else {
			fmt.Fprintf(w, "  %-8s %s\n", r.Status, r.Item.Name)
		}
	}
	return report(cmd, err)
}
