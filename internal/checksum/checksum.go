// Package checksum inspects box ids: a letter-count checksum and the
// common letters of the two ids that differ in a single position.
package checksum

// Counts reports whether an id contains some letter exactly twice and
// some letter exactly three times.
func Counts(id string) (two, three bool) {
	freq := make(map[rune]int, len(id))
	for _, r := range id {
		freq[r]++
	}
	for _, n := range freq {
		switch n {
		case 2:
			two = true
		case 3:
			three = true
		}
	}
	return two, three
}

// Checksum multiplies the number of ids with a doubled letter by the number
// of ids with a tripled letter. Each id counts at most once per category.
func Checksum(ids []string) int {
	twos, threes := 0, 0
	for _, id := range ids {
		two, three := Counts(id)
		if two {
			twos++
		}
		if three {
			threes++
		}
	}
	return twos * threes
}

// Diff compares two ids of equal length position by position. It returns
// the number of differing positions and the letters they share, in order.
// ok is false when the lengths differ: ids of different lengths are never
// treated as near-matches, even when the shorter is a prefix of the longer.
func Diff(a, b string) (diffs int, common string, ok bool) {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return 0, "", false
	}
	shared := make([]rune, 0, len(ra))
	for i := range ra {
		if ra[i] != rb[i] {
			diffs++
			continue
		}
		shared = append(shared, ra[i])
	}
	return diffs, string(shared), true
}

// CommonLetters finds the first pair of ids (i < j) that differ in exactly
// one position and returns their shared letters.
func CommonLetters(ids []string) (string, bool) {
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if d, common, ok := Diff(ids[i], ids[j]); ok && d == 1 {
				return common, true
			}
		}
	}
	return "", false
}
