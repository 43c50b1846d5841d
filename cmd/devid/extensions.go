package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teklink/devid/internal/catalog"
	"github.com/teklink/devid/internal/cli"
	"github.com/teklink/devid/internal/common"
	"github.com/teklink/devid/internal/model"
)

func extensionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extensions",
		Short: "Manage identifier-tree extensions and billing overrides",
		Long: `Manage the extension store.

Extension entries are merged into the identifier tree when a server or
classify run starts; editing the store never changes a running server.`,
	}

	cmd.AddCommand(extensionsListCmd())
	cmd.AddCommand(extensionsAddCmd())
	cmd.AddCommand(extensionsSetCodeCmd())

	return cmd
}

func extensionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List extension entries and billing overrides",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			extensions, err := store.ListExtensions(ctx)
			if err != nil {
				return err
			}
			overrides, err := store.ListBillingOverrides(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.TitleStyle.Render("Identifier extensions"))
			if len(extensions) == 0 {
				fmt.Fprintln(out, cli.SubtleStyle.Render("(none)"))
			}
			for _, ext := range extensions {
				fmt.Fprintf(out, "%s -> %s\n",
					cli.TableCellStyle.Render(strings.Join(ext.Path, " ")), ext.Family)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.TitleStyle.Render("Billing overrides"))
			if len(overrides) == 0 {
				fmt.Fprintln(out, cli.SubtleStyle.Render("(none)"))
			}
			for _, o := range overrides {
				fmt.Fprintf(out, "%s / %s -> %s\n", o.Platform, o.Product, o.Code)
			}
			return nil
		},
	}
}

func extensionsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <token>... --family <family>",
		Short: "Add an identifier-tree extension entry",
		Long: `Add one extension entry: a token path and the family its leaf
resolves to. An existing entry for the same path is overwritten.

Example:
  devid extensions add akuvox x912 --family "Door Bell"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawFamily, _ := cmd.Flags().GetString("family")
			family, err := model.ParseFamily(rawFamily)
			if err != nil {
				return common.NewUserError(
					fmt.Sprintf("pick one of: %v", model.Families()), err)
			}

			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.AddExtension(ctx, model.Extension{Path: args, Family: family}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(),
				cli.FormatSuccess(fmt.Sprintf("added %s -> %s", strings.Join(args, " "), family)))
			return nil
		},
	}

	cmd.Flags().String("family", "", "device family for the new entry (required)")
	_ = cmd.MarkFlagRequired("family")

	return cmd
}

func extensionsSetCodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-code <product> <code>",
		Short: "Override the billing code for a platform/product pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawPlatform, _ := cmd.Flags().GetString("platform")
			override := catalog.Override{
				Platform: model.ParsePlatform(rawPlatform),
				Product:  args[0],
				Code:     args[1],
			}

			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.AddBillingOverride(ctx, override); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(),
				cli.FormatSuccess(fmt.Sprintf("%s / %s -> %s", override.Platform, override.Product, override.Code)))
			return nil
		},
	}

	cmd.Flags().String("platform", "kazoo", "billing platform (kazoo, skyswitch)")

	return cmd
}
