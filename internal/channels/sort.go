package channels

import "sort"

// Sort orders channels the way the Discord client lists them: uncategorized
// channels first, then category by category. Inside a category the category
// itself leads, voice-like channels trail, and position decides the rest.
func Sort(list []Channel) {
	sort.SliceStable(list, func(i, j int) bool {
		return compare(list[i], list[j]) < 0
	})
}

func compare(a, b Channel) int {
	if a.Uncategorized() != b.Uncategorized() {
		if a.Uncategorized() {
			return -1
		}
		return 1
	}

	if c := compareInt(a.CategoryPosition, b.CategoryPosition); c != 0 {
		return c
	}

	aHead, bHead := a.ParentName == "", b.ParentName == ""
	if aHead != bHead {
		if aHead {
			return -1
		}
		return 1
	}

	if a.Kind.VoiceLike() != b.Kind.VoiceLike() {
		if b.Kind.VoiceLike() {
			return -1
		}
		return 1
	}

	if c := compareSnowflake(a.ParentID, b.ParentID); c != 0 {
		return c
	}
	if c := compareInt(a.Position, b.Position); c != 0 {
		return c
	}

	return compareSnowflake(a.ID, b.ID)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareSnowflake orders decimal IDs numerically without parsing them.
func compareSnowflake(a, b string) int {
	if len(a) != len(b) {
		return compareInt(len(a), len(b))
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
