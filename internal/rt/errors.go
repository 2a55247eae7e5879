// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rt

import (
	"errors"

	"code.hybscloud.com/iox"
)

// NonFailure reports whether err is a non-failure control signal: nil,
// one of iox's own non-failure sentinels, or one of the caller-supplied
// sentinels. Packages above rt (pool's ErrShutdown, for instance) use
// this so their own lifecycle sentinels are classified the same way
// iox's ErrWouldBlock/ErrMore are, instead of inventing a separate
// parallel convention.
func NonFailure(err error, sentinels ...error) bool {
	if iox.IsNonFailure(err) {
		return true
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}
