package pipeline

import (
	"fmt"

	"github.com/verte-zerg/wordcrunch/internal/model"
	"github.com/verte-zerg/wordcrunch/internal/source"
)

// Pipeline wires the per-line stages over one or more sources.
// Any nil stage is skipped. Lines flow strictly one at a time:
// normalize, filter, transform, dedup/subtract, emit.
type Pipeline struct {
	Normalizer Normalizer
	Filter     FilterFunc
	Transform  model.Transform
	Tracker    *Tracker
	Exclude    *ExclusionSet

	// Progress, when set, is called once per input line read.
	Progress func()
}

// Run streams every source through the stages into emit, in argument order.
func (p *Pipeline) Run(paths []string, emit func(string) error) error {
	for _, path := range paths {
		if err := p.runSource(path, emit); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) runSource(path string, emit func(string) error) error {
	reader, err := source.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = reader.Close()
	}()

	for reader.Scan() {
		if p.Progress != nil {
			p.Progress()
		}
		line, ok := p.Normalizer.Apply(reader.Text())
		if !ok {
			continue
		}
		if p.Filter != nil && !p.Filter(line) {
			continue
		}
		line = Transform(p.Transform, line)
		if p.Exclude != nil && p.Exclude.Contains(line) {
			continue
		}
		if p.Tracker != nil && !p.Tracker.Observe(line) {
			continue
		}
		if err := emit(line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return reader.Err()
}

// BuildExclusionSet materializes the union of the exclusion sources,
// normalized the same way the primary source will be.
func BuildExclusionSet(paths []string, norm Normalizer, fold bool) (*ExclusionSet, error) {
	set := NewExclusionSet(fold)
	collect := &Pipeline{Normalizer: norm}
	err := collect.Run(paths, func(line string) error {
		set.Add(line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}
