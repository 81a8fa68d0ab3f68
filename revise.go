package justext

// ReviseParagraphs refines each paragraph's class from the classes of its
// neighbours. It expects ClassifyParagraphs to have set InitialClass on
// every paragraph; afterwards every Class is either Good or Bad.
//
// Four stages run in order. Stage two collects its changes and applies
// them after the pass, so neighbour lookups within the stage see the
// pre-stage classes; stage three applies changes as it goes.
func ReviseParagraphs(paragraphs []*Paragraph, maxHeadingDistance int) {
	for _, p := range paragraphs {
		p.Class = p.InitialClass
	}

	// Stage 1: short headings followed closely by good content become
	// near-good.
	for i, p := range paragraphs {
		if !(p.Heading && p.Class == Short) {
			continue
		}
		if goodFollows(paragraphs, i, maxHeadingDistance) {
			p.Class = NearGood
		}
	}

	// Stage 2: resolve short paragraphs from their neighbours.
	newClasses := make(map[int]Class)
	for i, p := range paragraphs {
		if p.Class != Short {
			continue
		}
		prev := neighbour(paragraphs, i, -1, true)
		next := neighbour(paragraphs, i, +1, true)
		switch {
		case prev == Good && next == Good:
			newClasses[i] = Good
		case prev == Bad && next == Bad:
			newClasses[i] = Bad
		case (prev == Bad && neighbour(paragraphs, i, -1, false) == NearGood) ||
			(next == Bad && neighbour(paragraphs, i, +1, false) == NearGood):
			newClasses[i] = Good
		default:
			newClasses[i] = Bad
		}
	}
	for i, class := range newClasses {
		paragraphs[i].Class = class
	}

	// Stage 3: resolve near-good paragraphs from their neighbours.
	for i, p := range paragraphs {
		if p.Class != NearGood {
			continue
		}
		prev := neighbour(paragraphs, i, -1, true)
		next := neighbour(paragraphs, i, +1, true)
		if prev == Bad && next == Bad {
			p.Class = Bad
		} else {
			p.Class = Good
		}
	}

	// Stage 4: headings that were demoted to bad, but did not start out
	// bad, are promoted back when good content follows closely.
	for i, p := range paragraphs {
		if !(p.Heading && p.Class == Bad && p.InitialClass != Bad) {
			continue
		}
		if goodFollows(paragraphs, i, maxHeadingDistance) {
			p.Class = Good
		}
	}
}

// goodFollows reports whether a Good paragraph follows paragraphs[i]
// within maxDistance characters. A candidate's class is checked before its
// length is added to the distance, so the paragraph directly after the
// heading is always examined.
func goodFollows(paragraphs []*Paragraph, i, maxDistance int) bool {
	distance := 0
	for j := i + 1; j < len(paragraphs) && distance <= maxDistance; j++ {
		if paragraphs[j].Class == Good {
			return true
		}
		distance += paragraphs[j].Length()
	}
	return false
}

// neighbour walks from paragraphs[i] in the direction of step and returns
// the class of the first paragraph that is not skipped. Short paragraphs
// are always skipped; near-good ones are skipped too when strict is true.
// Walking off either end of the document returns Bad.
func neighbour(paragraphs []*Paragraph, i, step int, strict bool) Class {
	for j := i + step; 0 <= j && j < len(paragraphs); j += step {
		switch paragraphs[j].Class {
		case Good, Bad:
			return paragraphs[j].Class
		case NearGood:
			if !strict {
				return NearGood
			}
		}
	}
	return Bad
}
