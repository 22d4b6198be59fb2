package console

import (
	"bufio"
	"bytes"
	"unicode"
)

// maxMoveToken - longest token handed to the move parser. Anything longer is never a legal move.
const maxMoveToken = 64

// moveSplitter - bufio.ScanWords with a token length cap. An oversized run of non-space bytes is cut
// to its first maxMoveToken bytes and the remainder is dropped, so the scanner never hits ErrTooLong.
type moveSplitter struct {
	discarding bool
}

func (that *moveSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	if that.discarding {
		end := bytes.IndexFunc(data, unicode.IsSpace)
		if end < 0 {
			return len(data), nil, nil
		}

		that.discarding = false
		return end, nil, nil
	}

	advance, token, err := bufio.ScanWords(data, atEOF)
	if err == nil && token == nil && advance == 0 && len(data) >= maxMoveToken {
		that.discarding = true
		return maxMoveToken, data[:maxMoveToken], nil
	}

	return advance, token, err
}
