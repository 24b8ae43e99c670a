package table

// Names generates spreadsheet-style column labels for n columns:
// A, B, ..., Z, AA, AB, and so on. It is used to synthesize a header when the
// caller supplies none.
func Names(n int) []string {
	if n <= 0 {
		return nil
	}
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = columnName(i)
	}
	return names
}

// columnName converts a 0-based column offset to its bijective base-26 label.
func columnName(i int) string {
	var buf [8]byte
	pos := len(buf)
	for {
		pos--
		buf[pos] = byte('A' + i%26)
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	return string(buf[pos:])
}
