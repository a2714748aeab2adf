package content

import (
	"context"
	"fmt"
	"os"
	"sync"

	"jstore/internal/shared/logger"
	"jstore/internal/shared/services/markdown"
)

const missingTutorialNotice = "<p>Installation guide is being updated. Contact support if you need assistance.</p>"

// TutorialProvider renders the markdown installation guide that ships with
// the product download. The rendered HTML is cached after the first read;
// the source file only changes on deploy.
type TutorialProvider struct {
	path     string
	renderer markdown.Service
	logger   logger.Interface

	once sync.Once
	html string
	err  error
}

func NewTutorialProvider(path string, renderer markdown.Service, logger logger.Interface) *TutorialProvider {
	return &TutorialProvider{
		path:     path,
		renderer: renderer,
		logger:   logger,
	}
}

func (p *TutorialProvider) Content(ctx context.Context) (string, error) {
	p.once.Do(func() {
		raw, err := os.ReadFile(p.path)
		if err != nil {
			if os.IsNotExist(err) {
				p.logger.Warnw("tutorial file missing, serving placeholder", "path", p.path)
				p.html = missingTutorialNotice
				return
			}
			p.err = fmt.Errorf("read tutorial file: %w", err)
			return
		}

		html, err := p.renderer.RenderSanitized(string(raw))
		if err != nil {
			p.err = fmt.Errorf("render tutorial: %w", err)
			return
		}
		p.html = html
	})
	return p.html, p.err
}
