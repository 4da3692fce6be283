// Package search maps an engine id and a free-text query to a destination URL.
package search

import (
	"context"
	"strings"

	"github.com/fwojciec/startpage"
)

// Dispatcher resolves search queries against a set of engines.
type Dispatcher struct {
	engines  map[string]startpage.Engine
	order    []string
	fallback string
}

// NewDispatcher creates a Dispatcher from engines in selector order.
// Engines sharing an id replace earlier definitions in place. Unknown ids
// resolve to startpage.FallbackEngineID, or to the first engine when that
// id is absent.
func NewDispatcher(engines []startpage.Engine) *Dispatcher {
	d := &Dispatcher{engines: make(map[string]startpage.Engine, len(engines))}
	for _, e := range engines {
		if _, ok := d.engines[e.ID]; !ok {
			d.order = append(d.order, e.ID)
		}
		d.engines[e.ID] = e
	}

	d.fallback = startpage.FallbackEngineID
	if _, ok := d.engines[d.fallback]; !ok && len(d.order) > 0 {
		d.fallback = d.order[0]
	}
	return d
}

// NewDefaultDispatcher creates a Dispatcher with the built-in engines
// followed by extra, which may override them by id.
func NewDefaultDispatcher(extra ...startpage.Engine) *Dispatcher {
	return NewDispatcher(append(startpage.DefaultEngines(), extra...))
}

// Engines returns the engines in selector order.
func (d *Dispatcher) Engines() []startpage.Engine {
	out := make([]startpage.Engine, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.engines[id])
	}
	return out
}

// Engine returns the engine with id.
func (d *Dispatcher) Engine(id string) (startpage.Engine, bool) {
	e, ok := d.engines[id]
	return e, ok
}

// EngineForKey returns the engine bound to the Alt hotkey key.
func (d *Dispatcher) EngineForKey(key string) (startpage.Engine, bool) {
	key = strings.ToLower(key)
	for _, id := range d.order {
		if e := d.engines[id]; e.Key != "" && strings.ToLower(e.Key) == key {
			return e, true
		}
	}
	return startpage.Engine{}, false
}

// URL returns the destination for query on engineID.
// The boolean is false if the trimmed query is empty.
func (d *Dispatcher) URL(engineID, query string) (string, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", false
	}

	if engineID == startpage.EngineChatGPT {
		return startpage.ChatGPTURL + startpage.EncodeURIComponent(q), true
	}

	e, ok := d.engines[engineID]
	if !ok || e.Template == "" {
		e = d.engines[d.fallback]
	}
	return e.Template + startpage.EncodeURIComponent(q), true
}

// Dispatch opens the destination for query on engineID via nav.
// Empty queries are a silent no-op. The opened URL is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, nav startpage.Navigator, engineID, query string) (string, error) {
	u, ok := d.URL(engineID, query)
	if !ok {
		return "", nil
	}
	if err := nav.Open(ctx, u); err != nil {
		return "", err
	}
	return u, nil
}
