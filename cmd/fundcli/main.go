// Command fundcli is an interactive shell over the fund engine. Typed text
// feeds the debounced suggestion engine the same way keystrokes would; chart
// requests go through a sequence-gated session so a stale fetch never
// replaces the selection on screen.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/wynet321/fund-insight-backend/internal/config"
	"github.com/wynet321/fund-insight-backend/internal/fundapi"
	"github.com/wynet321/fund-insight-backend/internal/model"
	"github.com/wynet321/fund-insight-backend/internal/service"
	"github.com/wynet321/fund-insight-backend/internal/suggest"
)

const banner = `fund-insight interactive shell
Type to search funds; suggestions appear after you pause.
Commands: .select N   .chart PERIOD [START END]   .simulate AMOUNT DAYS   .quit
`

const prompt = "fund> "

type shell struct {
	in  io.Reader
	out io.Writer

	engine  *suggest.Engine
	session *service.ChartSession
	funds   *service.FundService

	// mu guards suggestions, which the notify callback replaces from a
	// lookup goroutine while the input loop reads it.
	mu          sync.Mutex
	suggestions []model.Suggestion
}

func newShell(cfg *config.Config) *shell {
	client := fundapi.NewHTTPClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	funds := service.NewFundService(client)

	sh := &shell{in: os.Stdin, out: os.Stdout, funds: funds}
	sh.engine = suggest.NewEngine(client,
		suggest.WithQuietInterval(cfg.Suggest.QuietInterval),
		suggest.WithLimit(cfg.Suggest.Limit),
		suggest.WithNotify(sh.showSuggestions),
	)
	sh.session = service.NewChartSession(funds, sh.showChart, sh.showChartError)
	return sh
}

// run blocks until EOF or .quit.
func (sh *shell) run(ctx context.Context) {
	fmt.Fprint(sh.out, banner)
	scanner := bufio.NewScanner(sh.in)
	for {
		fmt.Fprint(sh.out, prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			sh.engine.Clear()
			continue
		}
		if strings.HasPrefix(line, ".") {
			if sh.handleCommand(ctx, line) {
				break
			}
			continue
		}
		sh.engine.Input(line)
	}
	sh.engine.Close()
}

// handleCommand returns true on .quit.
func (sh *shell) handleCommand(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ".quit":
		return true

	case ".select":
		if len(fields) != 2 {
			fmt.Fprintln(sh.out, "usage: .select N")
			return false
		}
		sh.mu.Lock()
		current := sh.suggestions
		sh.mu.Unlock()
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 || n > len(current) {
			fmt.Fprintf(sh.out, "no suggestion %s\n", fields[1])
			return false
		}
		picked := current[n-1]
		sh.engine.Select(picked)
		fmt.Fprintf(sh.out, "selected %s (%s)\n", picked.Name, picked.ID)
		sh.session.Request(ctx, picked.ID, "daily", "", "")

	case ".chart":
		selected, ok := sh.engine.Selected()
		if !ok {
			fmt.Fprintln(sh.out, "select a fund first")
			return false
		}
		period := "daily"
		if len(fields) > 1 {
			period = fields[1]
		}
		var start, end string
		if len(fields) > 3 {
			start, end = fields[2], fields[3]
		}
		sh.session.Request(ctx, selected.ID, period, start, end)

	case ".simulate":
		sh.simulate(ctx, fields[1:])

	default:
		fmt.Fprintf(sh.out, "unknown command %s\n", fields[0])
	}
	return false
}

func (sh *shell) simulate(ctx context.Context, args []string) {
	selected, ok := sh.engine.Selected()
	if !ok {
		fmt.Fprintln(sh.out, "select a fund first")
		return
	}
	if len(args) != 2 {
		fmt.Fprintln(sh.out, "usage: .simulate AMOUNT DAYS")
		return
	}
	amount, errA := strconv.ParseFloat(args[0], 64)
	days, errD := strconv.Atoi(args[1])
	if errA != nil || errD != nil {
		fmt.Fprintln(sh.out, "usage: .simulate AMOUNT DAYS")
		return
	}

	result, err := sh.funds.SimulateInvestment(ctx, selected.ID, "daily", "", "",
		model.SimulationInput{DailyAmount: amount, Days: days})
	if err != nil {
		fmt.Fprintf(sh.out, "simulation failed: %v\n", err)
		return
	}
	fmt.Fprintf(sh.out,
		"invested %.2f over %d days, shares %.4f, final value %.2f, profit %.2f (%.2f%%)\n",
		result.TotalInvested, result.ActualDays, result.TotalShares,
		result.FinalValue, result.Profit, result.ProfitRatePercent)
}

func (sh *shell) showSuggestions(suggestions []model.Suggestion) {
	sh.mu.Lock()
	sh.suggestions = suggestions
	sh.mu.Unlock()
	if len(suggestions) == 0 {
		fmt.Fprintln(sh.out, "(no matches)")
		return
	}
	for i, s := range suggestions {
		fmt.Fprintf(sh.out, "%2d. %s (%s)\n", i+1, s.Name, s.ID)
	}
}

func (sh *shell) showChart(data model.ChartData) {
	if len(data.Series) == 0 {
		fmt.Fprintln(sh.out, "(empty series)")
		return
	}
	first, last := data.Series[0], data.Series[len(data.Series)-1]
	fmt.Fprintf(sh.out, "%d points, %s to %s, price %.4f to %.4f\n",
		len(data.Series), first.Date, last.Date, first.Price, last.Price)
	if data.PeriodReturn.RatePercent != nil {
		fmt.Fprintf(sh.out, "period return %.2f%%\n", *data.PeriodReturn.RatePercent)
	} else {
		fmt.Fprintln(sh.out, "period return n/a")
	}
}

func (sh *shell) showChartError(err error) {
	fmt.Fprintf(sh.out, "chart fetch failed: %v\n", err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	newShell(cfg).run(context.Background())
}
