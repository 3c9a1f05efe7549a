//
// Copyright 2025 Frontier3 Tech
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/component"
	"github.com/frontier3tech/detfl/configuration"
	"github.com/frontier3tech/detfl/internal/app/recovery/flow"
	"github.com/frontier3tech/detfl/internal/tui"
	"github.com/frontier3tech/detfl/observability"
)

var configPath = flag.String("config", "", "path to detfl.yaml")
var logPath = flag.String("log", "detfl.log", "log file, the terminal is owned by the UI")

func main() {
	flag.Parse()
	cfg := configuration.Load(logrus.StandardLogger(), *configPath)
	obs := observability.Make(cfg.Log.Level, cfg.Log.Format)

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	obs.Log().SetOutput(logFile)

	notifier := tui.NewNotifier()
	manager, err := component.Prepare(cfg, obs, notifier)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing recovery: %v\n", err)
		os.Exit(1)
	}
	defer manager.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := flow.New(ctx, manager.Session(), manager.Resolver(), manager.Reader(), notifier)
	defer f.Close()

	model := tui.New(ctx, f, manager.Actions(), notifier)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
