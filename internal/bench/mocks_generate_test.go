// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package bench

//go:generate mockgen -destination=mock_recorder_test.go -package $GOPACKAGE . Recorder
