package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"peano/internal/selftest"
	"peano/internal/ui"
)

type selftestOutcome struct {
	result selftest.Result
	err    error
}

func runSelftestWithUI(ctx context.Context, title string, req *selftest.Request) (selftest.Result, error) {
	events := make(chan selftest.Event, 256)
	outcomeCh := make(chan selftestOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = selftest.ChannelSink{Ch: events}
		res, err := selftest.Run(ctx, &reqCopy)
		outcomeCh <- selftestOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, selftest.BatchNames(req), events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
