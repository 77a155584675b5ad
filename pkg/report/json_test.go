// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/slukits/gounit"
	"github.com/tabeval/tabeval/pkg/report"
)

type JSON struct{ gounit.Suite }

func (s *JSON) SetUp(t *gounit.T) { t.Parallel() }

func (s *JSON) document(t *gounit.T) report.Document[int] {
	buf := &bytes.Buffer{}
	j := &report.JSON[int]{W: buf}
	t.FatalOn(j.Report(mixed()))
	doc := report.Document[int]{}
	t.FatalOn(json.Unmarshal(buf.Bytes(), &doc))
	return doc
}

func (s *JSON) Encodes_one_record_per_case(t *gounit.T) {
	doc := s.document(t)
	t.Eq(3, len(doc.Cases))
	t.Eq(1, doc.Cases[0].Input)
	t.Eq(2, doc.Cases[0].Actual)
	t.True(doc.Cases[0].Passed)
	t.Eq("", doc.Cases[0].Reason)
	t.True(!doc.Cases[1].Passed)
	t.Eq(10, doc.Cases[1].Actual)
	t.Contains(doc.Cases[1].Reason, "11")
}

func (s *JSON) Encodes_the_run_s_meta_data(t *gounit.T) {
	doc := s.document(t)
	t.Eq(3, doc.Meta.Cases)
	t.Eq(1, doc.Meta.Failed)
	t.True(!doc.Meta.Passed)
	_, err := uuid.Parse(doc.Meta.RunID)
	t.FatalOn(err)
	_, err = time.Parse(time.RFC3339, doc.Meta.Timestamp)
	t.FatalOn(err)
}

func (s *JSON) Pretty_prints_if_requested(t *gounit.T) {
	buf := &bytes.Buffer{}
	j := &report.JSON[int]{W: buf, Indent: true}
	t.FatalOn(j.Report(mixed()))
	t.Contains(buf.String(), "\n  \"meta\"")
}

func TestJSON(t *testing.T) {
	t.Parallel()
	gounit.Run(&JSON{}, t)
}
