// Package cmd - slots command
package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"agency-quote/core/booking"
)

// slotsCmd lists appointment slots for a date
var slotsCmd = &cobra.Command{
	Use:   "slots [date]",
	Short: "List bookable appointment slots for a date (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := time.Parse("2006-01-02", args[0])
		if err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		slots := booking.SlotsForDate(date, rng)
		if len(slots) == 0 {
			fmt.Println("No slots available on this day.")
			return nil
		}

		for _, slot := range slots {
			fmt.Println(slot)
		}
		return nil
	},
}
