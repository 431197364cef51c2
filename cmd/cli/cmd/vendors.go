// Package cmd - vendors command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pharmacy-cost/core/output"
	"pharmacy-cost/core/tariff"
)

// vendorsCmd lists the registered vendors and their fee schedules
var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "List supported vendors and their fee schedules",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(output.RenderSchedules(tariff.Schedules()))
	},
}
