// SPDX-License-Identifier: EPL-2.0

package mipmap

import "errors"

// ErrNegativeClip is returned by New for a negative or NaN MaxSourceClip.
var ErrNegativeClip = errors.New("max source clip must be a non-negative number")
