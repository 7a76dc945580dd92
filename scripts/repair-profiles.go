package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Simple representation to check stored profile structure
type ProfileData struct {
	ID    string `json:"id"`
	XP    int    `json:"xp"`
	Coins int    `json:"coins"`
	Level int    `json:"level"`
}

const xpPerLevel = 100

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for broken profile data...")

	// Find all profile keys
	iter := client.Scan(ctx, 0, "profile:*", 0).Iterator()

	var corruptedKeys []string
	var staleKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var prof ProfileData
		if err := json.Unmarshal([]byte(data), &prof); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		// Level is derived from XP; flag rows where an old write drifted
		expected := prof.XP/xpPerLevel + 1
		if prof.Level != expected {
			fmt.Printf("✗ Stale level in %s: level is %d, XP %d implies %d\n", key, prof.Level, prof.XP, expected)
			staleKeys = append(staleKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys: %d corrupted, %d with stale levels\n", checkedCount, len(corruptedKeys), len(staleKeys))

	if len(corruptedKeys) == 0 && len(staleKeys) == 0 {
		fmt.Println("No broken profiles found!")
		return
	}

	if len(staleKeys) > 0 {
		fmt.Print("\nRecompute levels for the stale profiles? (yes/no): ")
		var response string
		fmt.Scanln(&response)

		if response == "yes" {
			for _, key := range staleKeys {
				data, err := client.Get(ctx, key).Result()
				if err != nil {
					fmt.Printf("Failed to re-read %s: %v\n", key, err)
					continue
				}

				var prof ProfileData
				if err := json.Unmarshal([]byte(data), &prof); err != nil {
					fmt.Printf("Failed to parse %s: %v\n", key, err)
					continue
				}

				prof.Level = prof.XP/xpPerLevel + 1
				fixed, err := json.Marshal(prof)
				if err != nil {
					fmt.Printf("Failed to marshal %s: %v\n", key, err)
					continue
				}

				if err := client.Set(ctx, key, fixed, 0).Err(); err != nil {
					fmt.Printf("Failed to write %s: %v\n", key, err)
				} else {
					fmt.Printf("Repaired %s\n", key)
				}
			}
		} else {
			fmt.Println("Skipping stale profiles")
		}
	}

	if len(corruptedKeys) > 0 {
		fmt.Println("\nCorrupted keys:")
		for _, key := range corruptedKeys {
			fmt.Printf("  - %s\n", key)
		}

		fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
		var response string
		fmt.Scanln(&response)

		if response == "yes" {
			for _, key := range corruptedKeys {
				if err := client.Del(ctx, key).Err(); err != nil {
					fmt.Printf("Failed to delete %s: %v\n", key, err)
				} else {
					fmt.Printf("Deleted %s\n", key)
				}
			}
			fmt.Println("\nCleanup complete!")
		} else {
			fmt.Println("Aborted - no changes made")
		}
	}
}
