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

package api

import (
	"net/http"

	"github.com/deepmap/oapi-codegen/pkg/runtime"
	"github.com/labstack/echo/v4"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/treasury/{address}/membership)
	GetMembership(ctx echo.Context, address string) error
	// (GET /api/v1/membership/{contract}/stake/{user})
	GetStake(ctx echo.Context, contract string, user string) error
	// (POST /api/v1/membership/{contract}/unstake)
	Unstake(ctx echo.Context, contract string) error
	// (POST /api/v1/membership/{contract}/claim)
	Claim(ctx echo.Context, contract string) error
	// (GET /api/v1/submissions)
	GetSubmissions(ctx echo.Context, params GetSubmissionsParams) error
}

type GetSubmissionsParams struct {
	Limit int `json:"limit"`
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetMembership(ctx echo.Context) error {
	var address string
	err := runtime.BindStyledParameter("simple", false, "address", ctx.Param("address"), &address)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("invalid format for parameter address"))
	}
	return w.Handler.GetMembership(ctx, address)
}

func (w *ServerInterfaceWrapper) GetStake(ctx echo.Context) error {
	var contract, user string
	err := runtime.BindStyledParameter("simple", false, "contract", ctx.Param("contract"), &contract)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("invalid format for parameter contract"))
	}
	err = runtime.BindStyledParameter("simple", false, "user", ctx.Param("user"), &user)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("invalid format for parameter user"))
	}
	return w.Handler.GetStake(ctx, contract, user)
}

func (w *ServerInterfaceWrapper) Unstake(ctx echo.Context) error {
	var contract string
	err := runtime.BindStyledParameter("simple", false, "contract", ctx.Param("contract"), &contract)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("invalid format for parameter contract"))
	}
	return w.Handler.Unstake(ctx, contract)
}

func (w *ServerInterfaceWrapper) Claim(ctx echo.Context) error {
	var contract string
	err := runtime.BindStyledParameter("simple", false, "contract", ctx.Param("contract"), &contract)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("invalid format for parameter contract"))
	}
	return w.Handler.Claim(ctx, contract)
}

func (w *ServerInterfaceWrapper) GetSubmissions(ctx echo.Context) error {
	params := GetSubmissionsParams{Limit: defaultLimit}
	if ctx.QueryParam("limit") != "" {
		err := runtime.BindQueryParameter("form", true, true, "limit", ctx.QueryParams(), &params.Limit)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("invalid format for parameter limit"))
		}
	}
	return w.Handler.GetSubmissions(ctx, params)
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router runtime.EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET("/api/v1/treasury/:address/membership", wrapper.GetMembership)
	router.GET("/api/v1/membership/:contract/stake/:user", wrapper.GetStake)
	router.POST("/api/v1/membership/:contract/unstake", wrapper.Unstake)
	router.POST("/api/v1/membership/:contract/claim", wrapper.Claim)
	router.GET("/api/v1/submissions", wrapper.GetSubmissions)
}
