// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package rt

// RaceEnabled is true when the race detector is active. Tests for the
// queue and hashmap packages use it to skip their heaviest stress
// scenarios, which run an order of magnitude slower instrumented.
const RaceEnabled = true
