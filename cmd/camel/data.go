package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/camel-lab/camelgo/data"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Manage pretrained datasets",
}

var dataListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installable packages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := data.Default()
		if err != nil {
			return err
		}
		for _, pkg := range cat.PublicPackages() {
			fmt.Printf("%-30s %-8s %s\n", pkg.Name, pkg.Version, pkg.Description)
		}
		return nil
	},
}

var (
	dataInstallForce       bool
	dataInstallNoRecursive bool
)

var dataInstallCmd = &cobra.Command{
	Use:   "install package...",
	Short: "Download and install packages",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := data.Default()
		if err != nil {
			return err
		}
		opts := data.InstallOptions{
			Force:       dataInstallForce,
			NoRecursive: dataInstallNoRecursive,
		}
		for _, name := range args {
			if err := cat.InstallPackage(name, opts); err != nil {
				return err
			}
		}
		return nil
	},
}

var dataUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch the latest package catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		return data.UpdateCatalogue()
	},
}

func init() {
	dataInstallCmd.Flags().BoolVarP(&dataInstallForce, "force", "f", false, "reinstall up-to-date packages")
	dataInstallCmd.Flags().BoolVar(&dataInstallNoRecursive, "no-recursive", false, "skip dependencies")

	dataCmd.AddCommand(dataListCmd, dataInstallCmd, dataUpdateCmd)
	rootCmd.AddCommand(dataCmd)
}
