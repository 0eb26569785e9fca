// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package document

import (
	"fmt"
)

type InvalidPosErr struct {
	Pos Pos
}

func (e *InvalidPosErr) Error() string {
	return fmt.Sprintf("invalid position: %s", e.Pos)
}

type DocumentNotOpenErr struct {
	Path string
}

func (e *DocumentNotOpenErr) Error() string {
	return fmt.Sprintf("document is not open: %s", e.Path)
}

func (e *DocumentNotOpenErr) Is(err error) bool {
	_, ok := err.(*DocumentNotOpenErr)
	return ok
}
