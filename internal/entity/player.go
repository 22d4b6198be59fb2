package entity

// Other - returns the mark of the opponent.
func Other(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
