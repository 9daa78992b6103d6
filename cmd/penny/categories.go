package main

import (
	"fmt"

	"github.com/hollisb/penny/internal/cli"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage spending categories",
		Long: `List or add spending categories. Ingestion never assigns categories;
the hierarchy exists so transactions can be classified after import.`,
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())

	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			categories, err := store.ListCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			fmt.Println(cli.FormatTitle("Categories"))
			if len(categories) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no categories defined"))
				return nil
			}
			for _, cat := range categories {
				line := fmt.Sprintf("%4d  %s", cat.ID, cat.Name)
				if cat.ParentID != nil {
					line += cli.SubtleStyle.Render(fmt.Sprintf("  (parent: %d)", *cat.ParentID))
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			parent, _ := cmd.Flags().GetInt64("parent")

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var parentID *int64
			if cmd.Flags().Changed("parent") {
				parentID = &parent
			}

			cat, err := store.CreateCategory(ctx, args[0], parentID)
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("created category %q (id %d)", cat.Name, cat.ID)))
			return nil
		},
	}

	cmd.Flags().Int64("parent", 0, "parent category id")

	return cmd
}
