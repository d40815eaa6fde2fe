package census

import (
	"math"
	"testing"
)

func TestSummarizeWeightedMean(t *testing.T) {
	table := NewTable([]Row{
		{Region: "서울특별시", Total: 300, Ages: map[int]int{0: 100, 10: 100, 20: 100}},
	})

	s := Summarize(table)[0]
	if math.Abs(s.MeanAge-10) > 1e-9 {
		t.Errorf("uniform counts over ages 0/10/20 must mean 10, got %f", s.MeanAge)
	}

	skewed := NewTable([]Row{
		{Region: "부산광역시", Total: 400, Ages: map[int]int{0: 300, 20: 100}},
	})
	s = Summarize(skewed)[0]
	if math.Abs(s.MeanAge-5) > 1e-9 {
		t.Errorf("expected weighted mean 5, got %f", s.MeanAge)
	}
}

func TestSummarizePeak(t *testing.T) {
	table := NewTable([]Row{
		{Region: "인천광역시", Total: 260, Ages: map[int]int{0: 50, 40: 150, 70: 60}},
	})

	s := Summarize(table)[0]
	if s.PeakAge != 40 || s.PeakCount != 150 {
		t.Errorf("expected peak at age 40 with 150, got age %d with %d", s.PeakAge, s.PeakCount)
	}
}

func TestSummarizeCountStatistics(t *testing.T) {
	table := NewTable([]Row{
		{Region: "대전광역시", Total: 60, Ages: map[int]int{0: 10, 10: 20, 20: 30}},
	})

	s := Summarize(table)[0]
	if math.Abs(s.MedianCount-20) > 1e-9 {
		t.Errorf("expected median count 20, got %f", s.MedianCount)
	}
	if s.StdDevCount <= 0 {
		t.Errorf("expected positive stddev, got %f", s.StdDevCount)
	}
}

func TestSummarizeRowOrderAndZeroMass(t *testing.T) {
	table := NewTable([]Row{
		{Region: "서울특별시", Total: 10, Ages: map[int]int{0: 10}},
		{Region: "세종특별자치시", Total: 0, Ages: map[int]int{0: 0}},
	})

	out := Summarize(table)
	if len(out) != 2 || out[0].Region != "서울특별시" || out[1].Region != "세종특별자치시" {
		t.Fatalf("summaries must follow row order: %+v", out)
	}
	if out[1].MeanAge != 0 {
		t.Errorf("zero-mass region must report mean age 0, got %f", out[1].MeanAge)
	}
}

func TestSummarizeEmptyTable(t *testing.T) {
	if out := Summarize(Table{}); len(out) != 0 {
		t.Errorf("expected no summaries, got %d", len(out))
	}
}
