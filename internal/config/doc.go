// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic model of labware definition
// files, along with the Loader interface that reads them.
//
// The `config.Model` is the single source of truth for the catalog. Concrete
// loaders, such as the HCL one, live in separate packages.
package config
