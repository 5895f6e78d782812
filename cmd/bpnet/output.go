// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/born-ml/bpnet/nn"
	"github.com/born-ml/bpnet/train"
)

var (
	normalStyle       = lipgloss.NewStyle().Padding(0, 1)
	rightAlignedStyle = lipgloss.NewStyle().Align(lipgloss.Right).Padding(0, 1)
	headerStyle       = lipgloss.NewStyle().Padding(0, 1).Bold(true)
)

func newTable(headers ...string) *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == lgtable.HeaderRow:
				return headerStyle
			case col == 0:
				return rightAlignedStyle
			default:
				return normalStyle
			}
		}).
		Headers(headers...)
}

// summary is what a scenario run reports.
type summary struct {
	scenario train.Scenario[float64]
	net      *nn.Network[float64]
	seed     uint64
	trained  int
	elapsed  time.Duration
	report   train.Report
	goal     *train.Goal
}

func summaryTable(s summary) string {
	table := newTable("Scenario", s.scenario.Name)
	table.Row("Topology", widthsString(s.net.Widths()))
	table.Row("Parameters", humanize.Comma(int64(s.net.NumParameters())))
	table.Row("Activation", s.net.Activation().String())
	table.Row("Propagation", s.net.Propagation().String())
	table.Row("Learning rate", humanize.Ftoa(s.net.LearningRate()))
	table.Row("Seed", fmt.Sprint(s.seed))
	if s.goal != nil {
		table.Row("Goal", fmt.Sprintf("%s%% × %d batches of %s",
			humanize.Ftoa(100*s.goal.Accuracy), max(s.goal.Streak, 1), humanize.Comma(int64(s.goal.Batch))))
	}
	table.Row("Training cycles", humanize.Comma(int64(s.trained)))
	table.Row("Training time", s.elapsed.Round(time.Millisecond).String())
	table.Row("Control samples", humanize.Comma(int64(s.report.Samples)))
	table.Row("Positive", humanize.FtoaWithDigits(100*s.report.PositiveRate(), 1)+"%")
	table.Row("Correct", humanize.FtoaWithDigits(100*s.report.Accuracy(), 1)+"%")
	table.Row("Average error", fmt.Sprintf("%.4f", s.report.AverageError))
	return table.String()
}

func scenarioTable(scenarios []train.Scenario[float64]) string {
	table := newTable("Name", "Topology", "Learning rate", "Cycles", "Description")
	for _, s := range scenarios {
		cycles := humanize.Comma(int64(s.Cycles))
		if s.Goal != nil {
			cycles = fmt.Sprintf("%s per batch, until %s%%", humanize.Comma(int64(s.Goal.Batch)), humanize.Ftoa(100*s.Goal.Accuracy))
		}
		table.Row(s.Name, widthsString(s.Widths), humanize.Ftoa(s.LearningRate), cycles, s.Description)
	}
	return table.String()
}

// widthsString formats widths as "2-4-1".
func widthsString(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = fmt.Sprint(w)
	}
	return strings.Join(parts, "-")
}
