/*
 * vex
 *
 * Copyright 2026 The Vex Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import "testing"

func TestConfigDefaults(t *testing.T) {
	if res := Int(MaxCallDepth); res != 4096 {
		t.Error("Unexpected result:", res)
	}
	if res := Bool(DumpTokens); res {
		t.Error("Unexpected result:", res)
	}
}

func TestConfigMutation(t *testing.T) {
	Config[DumpAST] = true
	if res := Bool(DumpAST); !res {
		t.Error("Unexpected result:", res)
	}
	Config[DumpAST] = false
}

func TestConfigStr(t *testing.T) {
	if res := Str(MaxCallDepth); res != "4096" {
		t.Error("Unexpected result:", res)
	}
}
