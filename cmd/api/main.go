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
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/frontier3tech/detfl/component"
	"github.com/frontier3tech/detfl/configuration"
	"github.com/frontier3tech/detfl/internal/app/api"
	"github.com/frontier3tech/detfl/observability"
)

var configPath = flag.String("config", "", "path to detfl.yaml")

func main() {
	flag.Parse()
	cfg := configuration.Load(logrus.StandardLogger(), *configPath)
	obs := observability.Make(cfg.Log.Level, cfg.Log.Format)
	logger := obs.Log()

	manager, err := component.Prepare(cfg, obs, nil)
	if err != nil {
		logger.Fatal(err)
	}
	manager.Start()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(api.MetricsMiddleware(obs))

	recoveryAPI := api.NewRecoveryServer(
		logger.WithField("component", "api"),
		manager.Session(),
		manager.Resolver(),
		manager.Reader(),
		manager.Actions(),
		manager.Journal(),
	)
	api.RegisterHandlers(e, recoveryAPI)

	go func() {
		if err := e.Start(cfg.API.Listen); err != nil {
			logger.Info(err)
		}
	}()
	graceful(logger, func() {
		_ = e.Close()
		manager.Stop()
	})
}

func graceful(logger logrus.FieldLogger, that func()) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Infof("gracefully stopping...")
	that()
}
