package textmodel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"kgeyst.com/modelkit/pkg/modelkit/domain"
)

const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	// SimulatedScore the confidence of every simulated prediction
	SimulatedScore = 0.95
)

var positiveWords = []string{"good", "great"}

var whitespaceReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

type processor struct {
	maxLength int
}

func (p *processor) Prepare(input string) (*domain.Result, error) {
	text := CleanText(input)
	if utf8.RuneCountInString(text) > p.maxLength {
		return nil, domain.NewUnsupportedFormatError(fmt.Sprintf("Text too long (max %d characters)", p.maxLength))
	}
	return &domain.Result{Input: text}, nil
}

func (p *processor) Simulate(text string) []domain.Prediction {
	label := LabelNegative
	lowered := strings.ToLower(text)
	for _, word := range positiveWords {
		if strings.Contains(lowered, word) {
			label = LabelPositive
			break
		}
	}
	return []domain.Prediction{{Label: label, Score: SimulatedScore}}
}

// CleanText trims the text and replaces each line break or tab inside it with a space.
func CleanText(text string) string {
	return whitespaceReplacer.Replace(strings.TrimSpace(text))
}
