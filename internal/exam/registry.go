package exam

import (
	"fmt"

	"github.com/lingua-prep/linguaprep-backend/internal/formats"
	"github.com/lingua-prep/linguaprep-backend/internal/grading"
)

// Registry holds one Service per registered exam profile, all constructed up
// front at process start. Lookup after that is read-only, so handlers can
// share the registry freely across requests.
type Registry struct {
	services map[string]*Service
}

// GraderFactory builds the grader for one profile; deployments use it to pick
// the oracle and transcriber wiring.
type GraderFactory func(p *formats.Profile) *grading.Grader

func NewRegistry(store Store, newGrader GraderFactory, events EventSink) (*Registry, error) {
	r := &Registry{services: map[string]*Service{}}
	for _, code := range formats.Codes() {
		p, _ := formats.Lookup(code)
		if err := formats.Validate(p); err != nil {
			return nil, fmt.Errorf("invalid profile %s: %w", code, err)
		}
		r.services[code] = NewService(p, store, newGrader(p), events)
	}
	if len(r.services) == 0 {
		return nil, fmt.Errorf("no exam profiles registered")
	}
	return r, nil
}

// Get resolves the service bundle for an exam-type code.
func (r *Registry) Get(examType string) (*Service, error) {
	s, ok := r.services[examType]
	if !ok {
		return nil, fmt.Errorf("%q: %w", examType, ErrExamTypeNotFound)
	}
	return s, nil
}

// Codes lists the exam-type codes the registry serves.
func (r *Registry) Codes() []string { return formats.Codes() }
