package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/util"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Manage daily app limits",
	RunE:  runLimitsList,
}

var limitsSetCmd = &cobra.Command{
	Use:   "set <package> <label> <minutes>",
	Short: "Set or update a daily limit for one app",
	Args:  cobra.ExactArgs(3),
	RunE:  runLimitsSet,
}

var limitsRemoveCmd = &cobra.Command{
	Use:   "remove <package>",
	Short: "Remove the daily limit for one app",
	Args:  cobra.ExactArgs(1),
	RunE:  runLimitsRemove,
}

var limitsExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export limits and alerts to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLimitsExport,
}

var limitsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import limits and alerts from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLimitsImport,
}

func init() {
	rootCmd.AddCommand(limitsCmd)
	limitsCmd.AddCommand(limitsSetCmd)
	limitsCmd.AddCommand(limitsRemoveCmd)
	limitsCmd.AddCommand(limitsExportCmd)
	limitsCmd.AddCommand(limitsImportCmd)
}

func runLimitsList(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	limits, err := st.LoadLimits()
	if err != nil {
		return err
	}
	if len(limits) == 0 {
		fmt.Println("No limits configured")
		return nil
	}
	for _, limit := range limits {
		fmt.Printf("%-32s %-20s limit %s, used %s\n",
			limit.PackageName,
			util.TruncateLabel(limit.Label, 20),
			util.FormatMinutes(limit.UsageLimitInMinutes),
			util.FormatMinutes(limit.TimeUsedInMinutes))
	}
	return nil
}

func runLimitsSet(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}
	minutes, err := strconv.Atoi(args[2])
	if err != nil || minutes < 0 {
		return fmt.Errorf("invalid minutes value: %s", args[2])
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	limits, err := st.LoadLimits()
	if err != nil {
		return err
	}

	updated := false
	for i := range limits {
		if limits[i].PackageName == args[0] {
			limits[i].Label = args[1]
			limits[i].UsageLimitInMinutes = minutes
			updated = true
			break
		}
	}
	if !updated {
		limits = append(limits, model.AppLimit{
			PackageName:         args[0],
			Label:               args[1],
			UsageLimitInMinutes: minutes,
		})
	}
	if err := st.SaveLimits(limits); err != nil {
		return err
	}
	fmt.Printf("Limit for %s set to %s\n", args[0], util.FormatMinutes(minutes))
	return nil
}

func runLimitsRemove(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	limits, err := st.LoadLimits()
	if err != nil {
		return err
	}
	kept := limits[:0]
	for _, limit := range limits {
		if limit.PackageName != args[0] {
			kept = append(kept, limit)
		}
	}
	if len(kept) == len(limits) {
		return fmt.Errorf("no limit configured for %s", args[0])
	}
	if err := st.SaveLimits(kept); err != nil {
		return err
	}
	fmt.Printf("Limit for %s removed\n", args[0])
	return nil
}

func runLimitsExport(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.ExportJSON(expandPath(args[0])); err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", expandPath(args[0]))
	return nil
}

func runLimitsImport(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.ImportJSON(expandPath(args[0])); err != nil {
		return err
	}
	fmt.Println("Import complete")
	return nil
}
