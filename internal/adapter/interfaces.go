// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FundVista Authors

// Package adapter provides a typed client for the fund-api HTTP surface.
//
// The primary abstraction is [APIClient], which decouples callers (the
// fundctl command-line tool) from the wire protocol. The package ships an
// HTTP/REST implementation ([NewHTTPAPIClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/fundvista/fund-api/models"
)

// APIClient defines transport-agnostic read access to the fund API.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type APIClient interface {
	// Login checks the given credentials against the server and returns the
	// matching customer's public fields. Returns ErrNotFound for an unknown
	// email and ErrUnauthorized for a wrong password.
	Login(ctx context.Context, request models.LoginRequest) (models.Customer, error)

	// Customers lists all customers.
	Customers(ctx context.Context) ([]models.Customer, error)

	// Customer fetches one customer by id.
	Customer(ctx context.Context, customerID int64) (models.Customer, error)

	// RiskTolerance fetches the customer's risk category.
	RiskTolerance(ctx context.Context, customerID int64) (string, error)

	// Investments lists the customer's fund holdings.
	Investments(ctx context.Context, customerID int64) ([]models.CustomerFund, error)

	// Funds lists all funds.
	Funds(ctx context.Context) ([]models.Fund, error)

	// Fund fetches one fund by id. The server reports an absent fund inside
	// a 200 body; the client translates that into ErrNotFound so callers see
	// a uniform error surface.
	Fund(ctx context.Context, fundID int64) (models.Fund, error)

	// LatestPrice fetches the most recent price row of a fund.
	LatestPrice(ctx context.Context, fundID int64) (models.PriceData, error)

	// PricesByPeriod fetches a fund's price rows within the inclusive
	// [start, end] window, ascending by date.
	PricesByPeriod(ctx context.Context, fundID int64, start, end models.Date) ([]models.PriceData, error)

	// PriceByDate fetches a fund's price row for an exact trading day.
	PriceByDate(ctx context.Context, fundID int64, date models.Date) (models.PriceData, error)

	// AssetComposition lists a fund's holdings breakdown.
	AssetComposition(ctx context.Context, fundID int64) ([]models.AssetComposition, error)

	// ManagementCompany fetches the name of the company managing the fund.
	ManagementCompany(ctx context.Context, fundID int64) (string, error)
}
