package imagemodel

import (
	"path/filepath"
	"strings"

	"kgeyst.com/modelkit/pkg/common"
	"kgeyst.com/modelkit/pkg/modelkit/domain"
)

type guess struct {
	keyword     string
	predictions []domain.Prediction
}

var simulatedGuesses = []guess{
	{
		keyword: "cat",
		predictions: []domain.Prediction{
			{Label: "tabby cat", Score: 0.85},
			{Label: "domestic cat", Score: 0.12},
		},
	},
	{
		keyword: "dog",
		predictions: []domain.Prediction{
			{Label: "golden retriever", Score: 0.78},
			{Label: "labrador", Score: 0.15},
		},
	},
}

var fallbackGuess = []domain.Prediction{
	{Label: "object", Score: 0.65},
	{Label: "item", Score: 0.25},
	{Label: "thing", Score: 0.10},
}

type processor struct{}

func (p *processor) Prepare(imagePath string) (*domain.Result, error) {
	if !common.IsImageFormat(imagePath) {
		return nil, domain.NewUnsupportedFormatError("Invalid image format")
	}
	info := ReadImageInfo(imagePath)
	return &domain.Result{
		Input:     imagePath,
		ImageInfo: &info,
	}, nil
}

// Simulate guesses by the file name only, the content is never looked at.
func (p *processor) Simulate(imagePath string) []domain.Prediction {
	fileName := strings.ToLower(filepath.Base(imagePath))
	for _, g := range simulatedGuesses {
		if strings.Contains(fileName, g.keyword) {
			return clonePredictions(g.predictions)
		}
	}
	return clonePredictions(fallbackGuess)
}

func clonePredictions(predictions []domain.Prediction) []domain.Prediction {
	result := make([]domain.Prediction, len(predictions))
	copy(result, predictions)
	return result
}
