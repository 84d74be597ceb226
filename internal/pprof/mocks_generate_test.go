// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package pprof

//go:generate mockgen -destination=runner_mock_test.go -package $GOPACKAGE . Runner
