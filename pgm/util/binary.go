package util

func BytesToInts(b []byte) []int {
	result := make([]int, len(b))
	for i, v := range b {
		result[i] = int(v)
	}
	return result
}
