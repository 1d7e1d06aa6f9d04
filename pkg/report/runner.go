// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/slukits/nativeunit"
)

// ErrVersion is returned by a Runner walking a boundary of an
// unsupported protocol version.
var ErrVersion = errors.New("report: unsupported protocol version")

// Boundary is the enumeration and execution protocol a Runner drives.
// It is implemented by *nativeunit.Registry.
type Boundary interface {
	GetVersion() int
	GetHeadTest() nativeunit.Position
	GetNextTest(*nativeunit.Position) (nativeunit.TestInfoData, bool, error)
	RunTest(nativeunit.Position) (nativeunit.TestResultData, error)
	GetString(nativeunit.Handle) (string, error)
	ReleaseString(nativeunit.Handle)
	ReleaseAllStrings()
}

// Runner walks a Boundary.  It pulls and releases the texts of every
// handle it receives and releases all texts of a boundary once a walk
// is done.  The zero value is ready to use and doesn't log.
type Runner struct {

	// Logger logs the nodes of a walk on debug level and a walk's
	// summary on info level.
	Logger *zap.Logger
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Enumerate walks given boundary without running its tests.
func (r *Runner) Enumerate(b Boundary) (*Report, error) {
	return r.walk(b, false)
}

// Run walks given boundary and runs each test and row test.
func (r *Runner) Run(b Boundary) (*Report, error) {
	return r.walk(b, true)
}

func (r *Runner) walk(b Boundary, run bool) (*Report, error) {
	if v := b.GetVersion(); v != nativeunit.Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, v)
	}
	defer b.ReleaseAllStrings()
	rpt := &Report{
		ID:      uuid.New().String(),
		Version: nativeunit.Version,
		Start:   time.Now(),
	}
	log := r.logger().With(zap.String("report", rpt.ID))
	var (
		fixture *FixtureResult
		group   *Result
	)
	p := b.GetHeadTest()
	for {
		info, ok, err := b.GetNextTest(&p)
		if err != nil {
			return nil, fmt.Errorf("report: enumerate: %w", err)
		}
		if !ok {
			break
		}
		res, err := pullInfo(b, info)
		if err != nil {
			return nil, err
		}
		log.Debug("node", zap.Stringer("kind", info.Kind),
			zap.String("name", res.Name), zap.Int("index", res.Index))
		switch info.Kind {
		case nativeunit.KindFixture:
			fixture = &FixtureResult{
				Name: res.Name, Index: res.Index, Metadata: res.Metadata}
			rpt.fixtures = append(rpt.fixtures, fixture)
			continue
		case nativeunit.KindGroup:
			group = res
			fixture.tests = append(fixture.tests, res)
			continue
		case nativeunit.KindRowTest:
			group.subs = append(group.subs, res)
		default:
			fixture.tests = append(fixture.tests, res)
		}
		if !run {
			continue
		}
		if err := execute(b, info.Position, res); err != nil {
			return nil, err
		}
		if res.Outcome == nativeunit.Failed {
			log.Debug("failed", zap.String("name", res.Name),
				zap.String("description", res.Failure.Description))
		}
	}
	rpt.Duration = time.Since(rpt.Start)
	log.Info("walked", zap.Bool("run", run),
		zap.Int("fixtures", rpt.LenFixtures()), zap.Int("tests", rpt.Len()),
		zap.Int("failed", rpt.LenFailed()),
		zap.Duration("duration", rpt.Duration))
	return rpt, nil
}

// pull returns the text of given handle and releases it.  The absent
// text is the empty string.
func pull(b Boundary, h nativeunit.Handle) (string, error) {
	if h == nativeunit.NoString {
		return "", nil
	}
	s, err := b.GetString(h)
	if err != nil {
		return "", fmt.Errorf("report: pull: %w", err)
	}
	b.ReleaseString(h)
	return s, nil
}

func pullInfo(b Boundary, info nativeunit.TestInfoData) (*Result, error) {
	res := &Result{
		Index: int(info.Index),
		Kind:  info.Kind,
		Line:  int(info.LineNumber),
	}
	var err error
	if res.Name, err = pull(b, info.Name); err != nil {
		return nil, err
	}
	if res.File, err = pull(b, info.FileName); err != nil {
		return nil, err
	}
	if res.Metadata, err = pull(b, info.Metadata); err != nil {
		return nil, err
	}
	return res, nil
}

// execute runs the test at given position and resolves its result into
// given result.
func execute(b Boundary, p nativeunit.Position, res *Result) error {
	data, err := b.RunTest(p)
	if err != nil {
		return fmt.Errorf("report: run %s: %w", res.Name, err)
	}
	res.Outcome = data.Outcome
	res.AssertCount = int(data.AssertCount)
	res.Duration = time.Duration(data.DurationMilliseconds) *
		time.Millisecond
	if res.Log, err = pull(b, data.TestLog); err != nil {
		return err
	}
	if data.Outcome != nativeunit.Failed {
		return nil
	}
	res.Failure, err = pullFailure(b, data.Failure)
	return err
}

func pullFailure(
	b Boundary, f nativeunit.AssertionFailure,
) (_ *Failure, err error) {
	rf := &Failure{}
	if rf.Description, err = pull(b, f.Description); err != nil {
		return nil, err
	}
	if rf.Message, err = pull(b, f.Message); err != nil {
		return nil, err
	}
	if rf.Expected, err = pullValue(b, f.Expected); err != nil {
		return nil, err
	}
	if rf.Actual, err = pullValue(b, f.Actual); err != nil {
		return nil, err
	}
	for _, lv := range []nativeunit.LabeledValue{f.Extra0, f.Extra1} {
		v, err := pullValue(b, lv)
		if err != nil {
			return nil, err
		}
		if v != nil {
			rf.Extras = append(rf.Extras, *v)
		}
	}
	return rf, nil
}

func pullValue(b Boundary, lv nativeunit.LabeledValue) (*Value, error) {
	if lv.IsZero() {
		return nil, nil
	}
	v := &Value{Kind: lv.Kind}
	var err error
	if v.Label, err = pull(b, lv.Label); err != nil {
		return nil, err
	}
	if v.Text, err = pull(b, lv.Value); err != nil {
		return nil, err
	}
	return v, nil
}
