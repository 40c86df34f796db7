/*
 * vex
 *
 * Copyright 2026 The Vex Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package config holds the interpreter's process-wide tunables: the
product version string and the handful of options the command-line
tool exposes (call-depth limit, debug dump flags). Values live in a
flat string-keyed map, read through typed accessors, rather than a
struct, so the CLI flag parser and any future config file loader can
populate the same store uniformly.
*/
package config

import (
	"fmt"
	"strconv"

	"devt.de/krotik/common/errorutil"
)

// Global variables
// ================

/*
ProductVersion is the current version of vex.
*/
const ProductVersion = "1.0.0"

/*
Known configuration options.
*/
const (
	MaxCallDepth    = "MaxCallDepth"
	DumpTokens      = "DumpTokens"
	DumpAST         = "DumpAST"
	DumpVarsOnError = "DumpVarsOnError"
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	MaxCallDepth:    4096,
	DumpTokens:      false,
	DumpAST:         false,
	DumpVarsOnError: false,
}

/*
Config is the actual configuration in use, seeded from DefaultConfig
and mutated in place by the CLI's flag parsing.
*/
var Config map[string]interface{}

func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}
	Config = data
}

// Helper functions
// ================

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
