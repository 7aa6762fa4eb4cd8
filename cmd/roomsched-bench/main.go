// SPDX-FileCopyrightText: 2025 Jon Thor Kristinsson
// SPDX-License-Identifier: Apache-2.0

// Command roomsched-bench drives a Scheduler with concurrent request_room
// load and reports how many attempts succeeded, were rejected by
// RequestRoom, or failed to form a valid time slot.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kjartan/roomsched"
	"github.com/kjartan/roomsched/pkg/config"
	"github.com/kjartan/roomsched/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	threads   int
	attempts  int
	roomCount int

	rootCmd = &cobra.Command{
		Use:   "roomsched-bench",
		Short: "Load driver for the meeting-room scheduler",
		Long:  `roomsched-bench hammers a Scheduler with concurrent booking requests and reports a summary.`,
		RunE:  run,
	}
)

func init() {
	rootCmd.Flags().IntVarP(&threads, "threads", "t", 1, "number of concurrent requester goroutines")
	rootCmd.Flags().IntVarP(&attempts, "iterations", "i", 5_000_000, "booking attempts per goroutine")
	rootCmd.Flags().IntVarP(&roomCount, "rooms", "r", 3, "number of rooms to register")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.NewDefault()
	cfg.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := logging.NewLogger(&logging.Config{
		Level:   level,
		Format:  logging.FormatText,
		Output:  os.Stdout,
		Version: "dev",
	})

	s := roomsched.NewScheduler(
		roomsched.WithCleanupPollFloor(cfg.CleanupPollFloor),
		roomsched.WithLogger(logger),
	)
	defer s.Close()

	rooms := make([]roomsched.Room, roomCount)
	for i := range rooms {
		rooms[i] = roomsched.NewRoom(fmt.Sprintf("M%d", i), i+1)
		s.RegisterRoom(rooms[i])
	}

	now := time.Now()

	var wg sync.WaitGroup
	var successCount, conflictCount, errorCount int64
	var mu sync.Mutex

	for t := 0; t < threads; t++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))

			var localSuccess, localConflict, localError int64
			for i := 0; i < attempts; i++ {
				start := now.Add(time.Duration(rng.Int63n(int64(attempts))) * time.Second)
				slot, err := roomsched.NewTimeSlot(start, time.Millisecond)
				if err != nil {
					localError++
					continue
				}

				if _, err := s.RequestRoom(slot); err != nil {
					localConflict++
					continue
				}
				localSuccess++
			}

			mu.Lock()
			successCount += localSuccess
			conflictCount += localConflict
			errorCount += localError
			mu.Unlock()
		}(int64(t) + now.UnixNano())
	}

	wg.Wait()

	printSummary(int64(threads)*int64(attempts), successCount, conflictCount, errorCount)
	return nil
}

func printSummary(total, success, conflict, errs int64) {
	titleCaser := cases.Title(language.English)

	headers := []string{"attempts", "successful bookings", "conflicts", "errors"}
	values := []int64{total, success, conflict, errs}

	fmt.Println()
	for i, h := range headers {
		fmt.Printf("%-24s %d\n", titleCaser.String(h), values[i])
	}
}
