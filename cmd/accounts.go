package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"account-sync/core/document"
	"account-sync/core/utils"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	accountsFile     string
	accountsShowKeys bool
)

// accountsCmd lists the accounts of a document.
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List accounts in the local document",
	Long:  `Lists aliases, addresses and private keys of an account document. Keys are masked unless --show-keys is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := accountsFile
		if path == "" {
			rt, err := loadRuntime(pathOverrides{})
			if err != nil {
				return err
			}
			if path, err = rt.cfg.Sync.ResolveLocalPath(); err != nil {
				return err
			}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		set := document.Parse(string(data))
		if set.Len() == 0 {
			color.Yellow("No accounts in %s", path)
			return nil
		}

		out := cmd.OutOrStdout()
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ALIAS\tADDRESS\tPRIVATE KEY")
		for _, alias := range set.Aliases() {
			acc := set[alias]
			key := utils.MaskSecret(acc.PrivateKey)
			if accountsShowKeys {
				key = acc.PrivateKey
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", alias, dash(acc.Address), dash(key))
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if accountsShowKeys {
			color.Red("Private keys shown in clear text.")
		}
		return nil
	},
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	accountsCmd.Flags().StringVar(&accountsFile, "file", "", "Document to read (default: configured local document)")
	accountsCmd.Flags().BoolVar(&accountsShowKeys, "show-keys", false, "Print private keys in clear text")

	RootCmd.AddCommand(accountsCmd)
}
