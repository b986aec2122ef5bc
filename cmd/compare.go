// cmd/compare.go implements the "compare" subcommand, running every
// scheduling policy against identical demand and printing the ranked
// policy scores (spec §4.5).

package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/theatresim/theatresim/sim"
)

var compareConfigPath string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare scheduling policies against identical demand",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := sim.DefaultConfig()
		if compareConfigPath != "" {
			loaded, err := sim.LoadConfig(compareConfigPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg = loaded
		}

		scores, err := sim.ComparePolicies(uuid.NewString(), cfg, sim.ValidPolicyNames())
		if err != nil {
			return fmt.Errorf("comparing policies: %w", err)
		}
		sort.Slice(scores, func(i, j int) bool { return scores[i].Score < scores[j].Score })

		out, err := json.MarshalIndent(scores, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling scores: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareConfigPath, "config", "", "Path to a YAML config file")
}
