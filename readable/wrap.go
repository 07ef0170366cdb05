package readable

// contMark flags a physical line that continues onto the next one
// within the same logical table row.
const contMark = " ↪"

// chunk is a contiguous half-open column range [lo, hi) rendered on
// one physical line.
type chunk struct {
	lo, hi int
}

// chunkColumns splits columns into physical-line chunks so every line
// stays within maxWidth.  Widths are computed once per section, so
// borders, the header, and every row wrap identically.  Each column
// costs its width plus two pad spaces and one separator; a line costs
// one leading border character plus its columns.
func chunkColumns(widths []int, maxWidth int) []chunk {
	if maxWidth <= 0 {
		return []chunk{{0, len(widths)}}
	}
	total := 1
	for _, w := range widths {
		total += w + 3
	}
	if total <= maxWidth {
		return []chunk{{0, len(widths)}}
	}

	// Reserve room for the continuation marker on wrapped lines.
	budget := maxWidth - len([]rune(contMark))
	var chunks []chunk
	lo, cur := 0, 1
	for i, w := range widths {
		c := w + 3
		if i > lo && cur+c > budget {
			chunks = append(chunks, chunk{lo, i})
			lo, cur = i, 1
		}
		cur += c
	}
	return append(chunks, chunk{lo, len(widths)})
}
