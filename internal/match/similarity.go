package match

import "strings"

// Ratio computes a case-insensitive similarity ratio in [0,1] between two
// strings: twice the longest-common-subsequence length divided by the summed
// lengths. Identical strings score 1.0, disjoint strings 0.0, and the result
// is symmetric in its arguments.
func Ratio(first string, second string) float64 {
	firstRunes := []rune(strings.ToLower(first))
	secondRunes := []rune(strings.ToLower(second))

	totalLength := len(firstRunes) + len(secondRunes)
	if totalLength == 0 {
		return 1.0
	}

	commonLength := longestCommonSubsequence(firstRunes, secondRunes)
	return 2.0 * float64(commonLength) / float64(totalLength)
}

// longestCommonSubsequence runs the classic dynamic program with two rolling
// rows, O(len(first)*len(second)) time and O(len(second)) space.
func longestCommonSubsequence(first []rune, second []rune) int {
	if len(first) == 0 || len(second) == 0 {
		return 0
	}

	previousRow := make([]int, len(second)+1)
	currentRow := make([]int, len(second)+1)

	for firstIndex := 1; firstIndex <= len(first); firstIndex++ {
		for secondIndex := 1; secondIndex <= len(second); secondIndex++ {
			if first[firstIndex-1] == second[secondIndex-1] {
				currentRow[secondIndex] = previousRow[secondIndex-1] + 1
				continue
			}
			if previousRow[secondIndex] >= currentRow[secondIndex-1] {
				currentRow[secondIndex] = previousRow[secondIndex]
			} else {
				currentRow[secondIndex] = currentRow[secondIndex-1]
			}
		}
		previousRow, currentRow = currentRow, previousRow
		for index := range currentRow {
			currentRow[index] = 0
		}
	}

	return previousRow[len(second)]
}
