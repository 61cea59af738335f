package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/services"
	"strings"

	"github.com/spf13/cobra"
)

var quoteCmd = &cobra.Command{
	Use:   "quote <order-json | ->",
	Short: "Print the minimum route cost for an order",
	Long: `Quote prices a product->quantity order and prints the cost of every
candidate starting center along with the minimum.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := args[0]
		if raw == "-" {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read order: %w", err)
			}
			raw = string(b)
		}
		if strings.TrimSpace(raw) == "" {
			return fmt.Errorf("no order data provided")
		}

		var order domain.Order
		if err := json.Unmarshal([]byte(raw), &order); err != nil {
			return fmt.Errorf("parse order: %w", err)
		}

		net, err := loadNetwork(cmd)
		if err != nil {
			return err
		}

		quote, err := services.NewQuoteService(net, nil).Quote(cmd.Context(), order)
		if err != nil {
			return err
		}

		printQuote(cmd.OutOrStdout(), quote)
		return nil
	},
}

func printQuote(w io.Writer, q domain.RouteQuote) {
	if len(q.Weights) == 0 {
		fmt.Fprintln(w, "no valid products in order")
		fmt.Fprintf(w, "cost: %s\n", q.Cost)
		return
	}

	fmt.Fprintf(w, "weights: %s\n", q.Weights.Key())
	for _, c := range q.Candidates {
		marker := " "
		if c.Start == q.Start {
			marker = "*"
		}
		fmt.Fprintf(w, "%s start %s: %s\n", marker, c.Start, c.Cost)
	}
	fmt.Fprintf(w, "cost: %s\n", q.Cost)
}
