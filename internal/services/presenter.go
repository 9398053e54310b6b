package services

import "intervo/internal/domain"

// ResultPresenter holds the latest scored result and its visibility flag.
// It is decoupled from which session produced the result: deleting that
// session leaves a previously shown result intact. Passive holder, locked
// by the owning controller.
type ResultPresenter struct {
	result  *domain.Result
	visible bool
}

// NewResultPresenter creates an empty presenter
func NewResultPresenter() *ResultPresenter {
	return &ResultPresenter{}
}

// Show replaces the current result and makes it visible
func (p *ResultPresenter) Show(result domain.Result) {
	p.result = &result
	p.visible = true
}

// Hide clears visibility but keeps the result, so a dismissed result stays
// retrievable
func (p *ResultPresenter) Hide() {
	p.visible = false
}

// Current returns the most recently shown result, if any
func (p *ResultPresenter) Current() (domain.Result, bool) {
	if p.result == nil {
		return domain.Result{}, false
	}
	return *p.result, true
}

// Visible reports whether the result should be displayed
func (p *ResultPresenter) Visible() bool {
	return p.visible
}
