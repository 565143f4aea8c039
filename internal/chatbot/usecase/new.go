package usecase

import (
	"math/rand/v2"

	"customer-support-chatbot/internal/analytics"
	"customer-support-chatbot/internal/corpus"
	"customer-support-chatbot/internal/generative"
	"customer-support-chatbot/internal/intent"
	pkgLog "customer-support-chatbot/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	catalog    *intent.Catalog
	classifier *intent.Classifier
	matcher    *corpus.Matcher
	responder  *generative.Responder
	recorder   *analytics.Recorder
	exportDir  string

	// pick chooses an index in [0, n). Injected so tests can pin the
	// response selection.
	pick func(n int) int
}

// New creates a new chatbot UseCase instance.
func New(
	l pkgLog.Logger,
	catalog *intent.Catalog,
	classifier *intent.Classifier,
	matcher *corpus.Matcher,
	responder *generative.Responder,
	recorder *analytics.Recorder,
	exportDir string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		catalog:    catalog,
		classifier: classifier,
		matcher:    matcher,
		responder:  responder,
		recorder:   recorder,
		exportDir:  exportDir,
		pick:       rand.IntN,
	}
}
