// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

// Package appconsts defines application-wide constants.
package appconsts

// Name is the canonical name of the binary.
const Name = "uploader"

// Version is the application version. It is overridden at build time via
// -ldflags "-X github.com/mcpany/uploader/pkg/appconsts.Version=v1.2.3".
var Version = "dev"
