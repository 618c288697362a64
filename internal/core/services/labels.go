package services

import (
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

// LabelBox holds the active Labels. Every session reads through the same
// box, so a locale change reaches all of them at once.
type LabelBox struct {
	p atomic.Pointer[domain.Labels]
}

// NewLabelBox creates a box holding l, or the Korean strings when l is nil.
func NewLabelBox(l *domain.Labels) *LabelBox {
	b := &LabelBox{}
	b.Set(l)
	return b
}

// Get returns the active Labels.
func (b *LabelBox) Get() *domain.Labels {
	return b.p.Load()
}

// Set replaces the active Labels. nil restores the Korean strings.
func (b *LabelBox) Set(l *domain.Labels) {
	if l == nil {
		l = domain.KoreanLabels()
	}
	b.p.Store(l)
}

// printerFor returns a number printer for the labels' locale.
func printerFor(l *domain.Labels) *message.Printer {
	tag, err := language.Parse(l.Locale)
	if err != nil {
		tag = language.Korean
	}
	return message.NewPrinter(tag)
}
