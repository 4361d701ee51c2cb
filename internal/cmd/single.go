package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/686f6c6/goldbach/internal/goldbach"
)

var singleCmd = &cobra.Command{
	Use:   "single <n>",
	Short: "List all Goldbach pairs for one even number",
	Long: `List every pair of primes (p, q) with p <= q and p+q = n.

The number must be even and greater than 2. An empty result is printed
as such, not treated as a failure: it would be a counterexample to the
conjecture.`,
	Args: cobra.ExactArgs(1),
	RunE: runSingle,
}

var singleJSON bool // Output as JSON

func init() {
	singleCmd.Flags().BoolVar(&singleJSON, "json", false, "Output pairs as JSON")
	rootCmd.AddCommand(singleCmd)
}

func runSingle(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("not a number: %q", args[0])
	}

	pairs, err := goldbach.DecomposeNumber(n)
	if err != nil {
		return err
	}

	if singleJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(goldbach.Entry{N: n, Pairs: pairs})
	}

	if len(pairs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no prime pairs sum to %d (a conjecture counterexample!)\n", n)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d prime pair(s) sum to %d:\n", len(pairs), n)
	for _, pair := range pairs {
		fmt.Fprintf(cmd.OutOrStdout(), "  %d + %d = %d\n", pair.P, pair.Q, n)
	}
	return nil
}
