package pipeline

import (
	"context"
	"strings"
	"time"

	"medibuddy/internal/model"
	"medibuddy/internal/translate"
)

// TranslateText translates a single client string. The result's Text is
// always safe to show: it is the input itself when the service failed.
func (p *Pipeline) TranslateText(ctx context.Context, in model.TranslateRequest) (translate.Result, error) {
	if in.Text == "" {
		return translate.Result{}, invalid("Missing required parameter: text")
	}
	target := strings.TrimSpace(in.TargetLang)
	if target == "" {
		return translate.Result{}, invalid("Missing required parameter: targetLang")
	}

	start := time.Now()
	res := p.deps.Translator.Translate(ctx, in.Text, target)
	p.metrics.ObserveStep("translate", start, res.Err)
	if res.Fallback {
		p.metrics.Fallback("translate")
	}
	return res, nil
}
