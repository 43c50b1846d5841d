package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teklink/devid/internal/cli"
	"github.com/teklink/devid/internal/model"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a single device from the command line",
		Long: `Classify one device without going through the HTTP API.

Examples:
  devid classify --ua "Yealink SIP-T46S 66.84.0.15" --mac "80:5e:c0:11:22:33"
  devid classify --platform skyswitch --ua "Grandstream HT802 1.0.17.5"
  devid classify --device-type cellphone --json`,
		RunE: runClassify,
	}

	cmd.Flags().String("platform", "kazoo", "billing platform (kazoo, skyswitch)")
	cmd.Flags().String("device-type", "", "device type hint")
	cmd.Flags().String("ua", "", "client identifier (user agent) string")
	cmd.Flags().String("mac", "", "hardware address")
	cmd.Flags().String("line", "", "line number (default 1)")
	cmd.Flags().String("name", "", "free-text device name")
	cmd.Flags().Bool("json", false, "print the raw JSON response")

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	eng, err := buildEngine(cmd.Context())
	if err != nil {
		return err
	}

	flagStr := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	result := eng.Classify(model.Request{
		Platform:   flagStr("platform"),
		DeviceType: flagStr("device-type"),
		UserAgent:  flagStr("ua"),
		MAC:        flagStr("mac"),
		Line:       flagStr("line"),
		DeviceName: flagStr("name"),
	})

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out, marshalErr := json.MarshalIndent(result, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to encode result: %w", marshalErr)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	renderResult(cmd, result)
	return nil
}

func renderResult(cmd *cobra.Command, result model.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, cli.TitleStyle.Render("Classification"))

	family := "none"
	if result.Family != nil {
		family = string(*result.Family)
	}
	fmt.Fprintf(out, "%s %s\n", cli.BoldStyle.Render("Platform:"), result.Platform)
	fmt.Fprintf(out, "%s %s\n", cli.BoldStyle.Render("Family:"), family)

	if len(result.Candidates) == 0 {
		fmt.Fprintln(out, cli.FormatWarning("no billable candidates"))
	} else {
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.TableHeaderStyle.Render("Product")+"  "+cli.TableHeaderStyle.Render("Code"))
		for _, c := range result.Candidates {
			code := c.Code
			if code == "" {
				code = "-"
			}
			fmt.Fprintf(out, "%s %s\n", cli.TableCellStyle.Render(c.Product), code)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.SubtleStyle.Render("basis: "+result.Basis))
}
