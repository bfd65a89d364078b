package redis

import "fmt"

// Key prefix for all minesweeper data
const keyPrefix = "mines"

// gameKey returns the Redis key for the saved game document
func gameKey(namespace string) string {
	return fmt.Sprintf("%s:%s:saved_game", keyPrefix, namespace)
}

// scoresKey returns the Redis key for the scoreboard document
func scoresKey(namespace string) string {
	return fmt.Sprintf("%s:%s:high_scores", keyPrefix, namespace)
}
