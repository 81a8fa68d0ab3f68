package justext

import "strings"

// ClassifyParagraphs assigns the context-free class to each paragraph and
// marks headings. The decision tree is ordered and the first matching rule
// wins, so a high link density makes a paragraph Bad even when its length
// and stopword density would otherwise make it Good.
func ClassifyParagraphs(paragraphs []*Paragraph, stoplist Stoplist, config Config) {
	for _, p := range paragraphs {
		p.Heading = !config.NoHeadings && p.IsHeading()

		length := p.Length()
		linkDensity := p.LinkDensity()
		stopwordDensity := p.StopwordDensity(stoplist)

		switch {
		case linkDensity > config.MaxLinkDensity:
			p.InitialClass = Bad
		case strings.Contains(p.Text, "©") || strings.Contains(p.Text, "&copy"):
			p.InitialClass = Bad
		case strings.Contains(p.DOMPath, "select"):
			p.InitialClass = Bad
		case length < config.LengthLow:
			if p.LinkCharCount > 0 {
				p.InitialClass = Bad
			} else {
				p.InitialClass = Short
			}
		case stopwordDensity >= config.StopwordsHigh:
			if length > config.LengthHigh {
				p.InitialClass = Good
			} else {
				p.InitialClass = NearGood
			}
		case stopwordDensity >= config.StopwordsLow:
			p.InitialClass = NearGood
		default:
			p.InitialClass = Bad
		}
	}
}
