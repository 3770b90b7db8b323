package mask

// shiftRow maps a decimal digit to the character on the same key of a
// US keyboard with shift held. Indexed by digit value, so '0' gives ')'.
var shiftRow = [10]rune{')', '!', '@', '#', '$', '%', '^', '&', '*', '('}

func shiftSymbol(digit byte) rune {
	return shiftRow[digit-'0']
}
