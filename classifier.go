package text_to_sounds

// Classify
// Decides the sound at the scanner's cursor and advances past it. Rules are
// tried in order and the first match wins:
//
//	c + h/H                          -> Ch  (two letters)
//	p t c at a unit edge             -> Ptk (a t followed by h/H gives Th)
//	t + h/H                          -> Th  (two letters)
//	w at a unit start                -> W
//	v at a unit start                -> V
//	n + g/G/k/K, n not at a unit end -> Ng  (two letters)
//	j at a unit start                -> Dj
//
// Anything else is a one letter Unclassified sound. Letters match in lower
// and upper ASCII case only; the produced text keeps the source case.
func Classify(scanner *Scanner) Sound {
	switch letter := scanner.Peek(); {
	case isAny(letter, 'c', 'C') &&
		!scanner.IsLast() && scanner.IsNextAny('h', 'H'):
		return popPair(scanner, Ch)
	case isAny(letter, 'p', 'P', 't', 'T', 'c', 'C') &&
		(scanner.IsFirst() || scanner.IsLast()):
		// A unit edge t still forms Th with a following h.
		if isAny(letter, 't', 'T') &&
			!scanner.IsLast() && scanner.IsNextAny('h', 'H') {
			return popPair(scanner, Th)
		}
		return popOne(scanner, Ptk)
	case isAny(letter, 't', 'T') && scanner.IsNextAny('h', 'H'):
		return popPair(scanner, Th)
	case isAny(letter, 'w', 'W') && scanner.IsFirst():
		return popOne(scanner, W)
	case isAny(letter, 'v', 'V') && scanner.IsFirst():
		return popOne(scanner, V)
	case isAny(letter, 'n', 'N') &&
		!scanner.IsLast() && scanner.IsNextAny('g', 'G', 'k', 'K'):
		return popPair(scanner, Ng)
	case isAny(letter, 'j', 'J') && scanner.IsFirst():
		return popOne(scanner, Dj)
	default:
		return popOne(scanner, Unclassified)
	}
}

func isAny(letter rune, letters ...rune) bool {
	return runeIsIn(letter, letters)
}

func popOne(scanner *Scanner, kind SoundKind) Sound {
	return Sound{Kind: kind, Text: string(scanner.Pop())}
}

func popPair(scanner *Scanner, kind SoundKind) Sound {
	first := scanner.Pop()
	second := scanner.Pop()
	return Sound{Kind: kind, Text: string([]rune{first, second})}
}
