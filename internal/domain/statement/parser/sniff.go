package parser

import (
	"strings"
	"unicode/utf8"
)

// normalizeTextBytes prepares raw CSV bytes for parsing: strips a UTF-8 BOM
// and decodes Latin-1 exports that are not valid UTF-8.
func normalizeTextBytes(data []byte) []byte {
	data = stripUTF8BOM(data)
	if utf8.Valid(data) {
		return data
	}
	return decodeLatin1(data)
}

func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}

func decodeLatin1(data []byte) []byte {
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return []byte(string(runes))
}

// delimiterCandidates in preference order when counts tie.
var delimiterCandidates = []rune{';', '\t', ',', '|'}

const delimiterProbeLines = 20

// detectDelimiter picks the candidate delimiter occurring most often across
// the first lines of the file. Defaults to comma when nothing stands out.
func detectDelimiter(text string) rune {
	best := ','
	bestCount := 0

	probed := 0
	for _, line := range strings.Split(text, "\n") {
		if probed >= delimiterProbeLines {
			break
		}
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		probed++

		for _, d := range delimiterCandidates {
			if count := strings.Count(line, string(d)); count > bestCount {
				bestCount = count
				best = d
			}
		}
	}

	return best
}
