package ui

import "fmt"

// Caption formats the HUD line.
func Caption(generation, population int) string {
	return fmt.Sprintf("gen %d  pop %d", generation, population)
}
