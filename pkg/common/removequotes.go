package common

// RemoveQuotesIfAny strips one pair of matching single or double quotes around `str`. Terminals quote file paths
// which are dragged and dropped into them.
func RemoveQuotesIfAny(str string) string {
	if len(str) >= 2 {
		first, last := str[0], str[len(str)-1]
		if first == last && (first == '"' || first == '\'') {
			return str[1 : len(str)-1]
		}
	}
	return str
}
