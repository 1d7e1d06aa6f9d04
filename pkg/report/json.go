// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"fmt"
	"io"

	cyberphone "github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
)

type jsonReport struct {
	ID         string        `json:"id"`
	Version    int           `json:"version"`
	Start      string        `json:"start"`
	DurationMs int64         `json:"durationMs"`
	Tests      int           `json:"tests"`
	Failed     int           `json:"failed"`
	Fixtures   []jsonFixture `json:"fixtures"`
}

type jsonFixture struct {
	Name     string       `json:"name"`
	Index    int          `json:"index"`
	Metadata string       `json:"metadata,omitempty"`
	Tests    []jsonResult `json:"tests"`
}

type jsonResult struct {
	Name        string       `json:"name"`
	Index       int          `json:"index"`
	Kind        string       `json:"kind"`
	File        string       `json:"file,omitempty"`
	Line        int          `json:"line,omitempty"`
	Metadata    string       `json:"metadata,omitempty"`
	Outcome     string       `json:"outcome"`
	AssertCount int          `json:"assertCount"`
	DurationMs  int64        `json:"durationMs"`
	Log         string       `json:"log,omitempty"`
	Failure     *jsonFailure `json:"failure,omitempty"`
	Rows        []jsonResult `json:"rows,omitempty"`
}

type jsonFailure struct {
	Description string      `json:"description"`
	Message     string      `json:"message,omitempty"`
	Expected    *jsonValue  `json:"expected,omitempty"`
	Actual      *jsonValue  `json:"actual,omitempty"`
	Extras      []jsonValue `json:"extras,omitempty"`
}

type jsonValue struct {
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
	Kind  string `json:"kind"`
}

func toJSONValue(v *Value) *jsonValue {
	if v == nil {
		return nil
	}
	return &jsonValue{Label: v.Label, Text: v.Text, Kind: v.Kind.String()}
}

func toJSONResult(r *Result) jsonResult {
	jr := jsonResult{
		Name:        r.Name,
		Index:       r.Index,
		Kind:        r.Kind.String(),
		File:        r.File,
		Line:        r.Line,
		Metadata:    r.Metadata,
		Outcome:     r.Outcome.String(),
		AssertCount: r.AssertCount,
		DurationMs:  r.Duration.Milliseconds(),
		Log:         r.Log,
	}
	if f := r.Failure; f != nil {
		jr.Failure = &jsonFailure{
			Description: f.Description,
			Message:     f.Message,
			Expected:    toJSONValue(f.Expected),
			Actual:      toJSONValue(f.Actual),
		}
		for _, v := range f.Extras {
			v := v
			jr.Failure.Extras = append(jr.Failure.Extras, *toJSONValue(&v))
		}
	}
	r.For(func(row *Result) { jr.Rows = append(jr.Rows, toJSONResult(row)) })
	return jr
}

// MarshalJSON returns the canonical JSON (RFC 8785) rendering of a
// report, i.e. the same report always renders to the same bytes.
func (r *Report) MarshalJSON() ([]byte, error) {
	jr := jsonReport{
		ID:         r.ID,
		Version:    r.Version,
		Start:      r.Start.UTC().Format("2006-01-02T15:04:05.000Z"),
		DurationMs: r.Duration.Milliseconds(),
		Tests:      r.Len(),
		Failed:     r.LenFailed(),
		Fixtures:   []jsonFixture{},
	}
	r.For(func(f *FixtureResult) {
		jf := jsonFixture{Name: f.Name, Index: f.Index,
			Metadata: f.Metadata, Tests: []jsonResult{}}
		f.For(func(t *Result) { jf.Tests = append(jf.Tests, toJSONResult(t)) })
		jr.Fixtures = append(jr.Fixtures, jf)
	})
	bb, err := json.Marshal(jr)
	if err != nil {
		return nil, fmt.Errorf("report: marshal: %w", err)
	}
	canonical, err := cyberphone.Transform(bb)
	if err != nil {
		return nil, fmt.Errorf("report: canonicalize: %w", err)
	}
	return canonical, nil
}

// WriteJSON writes the canonical JSON rendering of given report to
// given writer.
func WriteJSON(w io.Writer, rpt *Report) error {
	bb, err := rpt.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(bb)
	return err
}
