// Package cartera provides the valuation and budget accounting engine behind
// the `cartera` command-line tool, a personal investment tracker reporting in
// Colombian pesos.
//
// The core functionalities include:
//   - Position & Portfolio Model: validated, immutable investment positions
//     aggregated into portfolios with exact-decimal totals and allocation
//     breakdowns by platform, currency, or asset type.
//   - Currency Normalization: conversion of position values into the COP
//     reporting currency through caller-supplied rate tables, with a single
//     built-in USD→COP fallback.
//   - Usage Ledger: an append-only, durable record of AI-assistant API costs,
//     persisted as JSONL, from which totals and daily spend are always derived.
//   - Budget Policy: a pure classification of ledger totals against configured
//     limits into ordered alert levels, recomputed on every query.
//
// All monetary arithmetic uses exact decimals; binary floating point is never
// used where money flows.
//
// The usage ledger file assumes a single process appending at a time. Running
// several assistant sessions concurrently against the same ledger file is an
// accepted limitation: appends are not coordinated between processes.
package cartera
